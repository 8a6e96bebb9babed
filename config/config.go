// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file looked for by [LoadDir].
const FileName = "config.toml"

// Default helper program paths, relative to the working directory of the
// executor that eventually runs the fingerprinting actions.
const (
	DefaultJavaRuntimesHelper     = "./fpr_java_runtimes"
	DefaultJavaJBossModulesHelper = "./fpr_java_jboss_modules"
)

// Config is the fingerprinting configuration. It must be treated as read-only
// after it has been loaded, as it gets shared by all concurrent detections.
type Config struct {
	Helpers      Helpers      `toml:"helpers"`
	Fingerprints Fingerprints `toml:"fingerprints"`
}

// Helpers names the external helper programs that fingerprinting actions
// invoke in order to extract further runtime details.
type Helpers struct {
	JavaRuntimes     string `toml:"java_runtimes"`      // inspects an executable jar.
	JavaJBossModules string `toml:"java_jboss_modules"` // inspects a JBoss home directory.
	KindExecutable   string `toml:"kind_executable"`    // called as <outdir> <executable> <runtime-name>; no default.
}

// Fingerprints lists the runtime hints per runtime family.
type Fingerprints struct {
	Java       []JavaFingerprint       `toml:"java"`
	Executable []ExecutableFingerprint `toml:"executable"`
}

// JavaFingerprint identifies a Java runtime launched via a classpath by its
// main class, as well as the jar to inspect.
type JavaFingerprint struct {
	RuntimeName string `toml:"runtime_name"`
	MainClass   string `toml:"main_class"` // exact command line token.
	MainJar     string `toml:"main_jar"`   // substring of a classpath element.
}

// ExecutableFingerprint identifies a runtime by the name of its executable.
type ExecutableFingerprint struct {
	RuntimeName string `toml:"runtime_name"`
	ProcessName string `toml:"process_name"`
}

// Parse reads and validates a TOML configuration from the specified reader.
func Parse(r io.Reader) (*Config, error) {
	c := &Config{}
	if _, err := toml.NewDecoder(r).Decode(c); err != nil {
		return nil, fmt.Errorf("unable to decode toml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads the TOML configuration file at the specified path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration, reason: %w", err)
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration %s, reason: %w", path, err)
	}
	return c, nil
}

// LoadDir reads the configuration file named [FileName] from the specified
// directory.
func LoadDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Validate checks that all fingerprint entries carry the fields required for
// matching them, reporting all offending entries at once.
func (c *Config) Validate() error {
	var errs []error
	for idx, java := range c.Fingerprints.Java {
		if java.MainClass == "" {
			errs = append(errs, fmt.Errorf("java fingerprint #%d (%q) lacks main_class",
				idx, java.RuntimeName))
		}
		if java.MainJar == "" {
			errs = append(errs, fmt.Errorf("java fingerprint #%d (%q) lacks main_jar",
				idx, java.RuntimeName))
		}
	}
	if len(c.Fingerprints.Executable) > 0 && c.Helpers.KindExecutable == "" {
		errs = append(errs, errors.New("executable fingerprints require helpers.kind_executable"))
	}
	for idx, exe := range c.Fingerprints.Executable {
		if exe.ProcessName == "" {
			errs = append(errs, fmt.Errorf("executable fingerprint #%d (%q) lacks process_name",
				idx, exe.RuntimeName))
		}
		if exe.RuntimeName == "" {
			errs = append(errs, fmt.Errorf("executable fingerprint #%d lacks runtime_name", idx))
		}
	}
	return errors.Join(errs...)
}

// JavaRuntimesPath returns the path of the helper inspecting executable jars.
func (h Helpers) JavaRuntimesPath() string {
	return orDefault(h.JavaRuntimes, DefaultJavaRuntimesHelper)
}

// JavaJBossModulesPath returns the path of the helper inspecting JBoss Modules
// based installations.
func (h Helpers) JavaJBossModulesPath() string {
	return orDefault(h.JavaJBossModules, DefaultJavaJBossModulesHelper)
}

// KindExecutablePath returns the path of the helper asking an executable for
// its version, or "" if not configured.
func (h Helpers) KindExecutablePath() string {
	return h.KindExecutable
}

func orDefault(path, def string) string {
	if path == "" {
		return def
	}
	return path
}
