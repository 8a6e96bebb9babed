// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package java

import (
	"path/filepath"
	"strings"

	"github.com/siemens/runtimefinder/config"
	"github.com/siemens/runtimefinder/fingerprint"
	"github.com/siemens/runtimefinder/process"
	"github.com/thediveo/go-plugger/v3"
	"github.com/thediveo/lxkns/log"
	"golang.org/x/exp/slices"
)

// Register this Java fingerprint detector plugin. This statically ensures
// that the Detector interface is fully implemented.
func init() {
	plugger.Group[fingerprint.Detector]().Register(
		&Detector{}, plugger.WithPlugin("java"))
}

const (
	// JBossModulesJar is the name of the JBoss Modules loader jar.
	JBossModulesJar = "jboss-modules.jar"
	// JBossHomeDirProperty is the system property naming the JBoss home.
	JBossHomeDirProperty = "-Djboss.home.dir"
)

// Detector implements the fingerprint.Detector interface for Java processes.
type Detector struct{}

// TryDetect returns the action for fingerprinting the specified process if it
// is a Java process, otherwise nil.
func (d *Detector) TryDetect(cfg *config.Config, outdir string, proc *process.Descriptor) fingerprint.Action {
	if !strings.HasSuffix(proc.Name, "java") {
		return nil
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	log.Debugf("fingerprinting Java application from process %d with command line %q",
		proc.PID, proc.CommandLine)

	// A "java -jar" process never gets its classpath considered, even if we
	// cannot make sense of its jar.
	if jar, ok := proc.Arg("-jar"); ok {
		log.Debugf("process %d executable jar is %s", proc.PID, jar)
		if filepath.Base(jar) == JBossModulesJar {
			return jbossModulesExecutable(cfg, outdir, proc)
		}
		return jarExecutable(cfg, outdir, proc, jar)
	}

	classpath, ok := proc.Arg("-classpath", "-cp")
	if !ok {
		return nil
	}
	log.Debugf("process %d is using classpath %s", proc.PID, classpath)
	jars := strings.Split(classpath, ":")
	for _, java := range cfg.Fingerprints.Java {
		if !slices.Contains(proc.CommandLine, java.MainClass) {
			continue
		}
		log.Debugf("process %d main class %s indicates %s",
			proc.PID, java.MainClass, java.RuntimeName)
		// Only the first matching classpath element counts, even if later
		// elements would match too.
		idx := slices.IndexFunc(jars, func(jar string) bool {
			return strings.Contains(jar, java.MainJar)
		})
		if idx < 0 {
			continue
		}
		return jarExecutable(cfg, outdir, proc, jars[idx])
	}
	return nil
}

// jbossModulesExecutable returns the action for inspecting the JBoss home
// directory of a process launched using JBoss Modules, or nil if the process
// doesn't specify its JBoss home.
func jbossModulesExecutable(cfg *config.Config, outdir string, proc *process.Descriptor) fingerprint.Action {
	log.Debugf("process %d is using JBoss Modules", proc.PID)
	idx := slices.IndexFunc(proc.CommandLine, func(arg string) bool {
		return strings.HasPrefix(arg, JBossHomeDirProperty)
	})
	if idx < 0 {
		return nil
	}
	_, home, ok := strings.Cut(proc.CommandLine[idx], "=")
	if !ok {
		return nil
	}
	log.Debugf("process %d is using JBoss Modules from JBoss home %s", proc.PID, home)
	return fingerprint.NewAction(cfg.Helpers.JavaJBossModulesPath(), outdir, home)
}

// jarExecutable returns the action for inspecting the specified jar, which is
// resolved against the working directory of the process if relative. Relative
// jars of processes with an unknown working directory are declined, as the
// helper would otherwise look for them relative to its own working directory.
func jarExecutable(cfg *config.Config, outdir string, proc *process.Descriptor, jar string) fingerprint.Action {
	if !filepath.IsAbs(jar) && proc.Cwd == "" {
		log.Debugf("process %d jar %s is relative, but working directory is unknown",
			proc.PID, jar)
		return nil
	}
	return fingerprint.NewAction(cfg.Helpers.JavaRuntimesPath(), outdir, proc.Resolve(jar))
}
