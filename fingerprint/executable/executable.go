// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

// Package executable implements a fingerprint detector plugin for runtimes
// that are recognized by the name of their executable alone, such as Node.js
// or Python. The proposed action asks the executable for its version.
package executable

import (
	"path/filepath"
	"strings"

	"github.com/siemens/runtimefinder/config"
	"github.com/siemens/runtimefinder/fingerprint"
	"github.com/siemens/runtimefinder/process"
	"github.com/thediveo/go-plugger/v3"
	"github.com/thediveo/lxkns/log"
)

// Register this executable fingerprint detector plugin after the Java plugin,
// so that more specific detectors get their chance first.
func init() {
	plugger.Group[fingerprint.Detector]().Register(
		&Detector{}, plugger.WithPlugin("executable"), plugger.WithPlacement(">java"))
}

// Detector implements the fingerprint.Detector interface for runtimes listed
// in the executable fingerprints configuration.
type Detector struct{}

// TryDetect returns the action for querying the executable of the specified
// process for its version, if the process name matches a configured
// executable fingerprint. Processes whose executable path cannot be
// determined are declined, as are all processes as long as no helper has been
// configured. The helper gets passed the output directory, the executable path
// and the runtime name.
func (d *Detector) TryDetect(cfg *config.Config, outdir string, proc *process.Descriptor) fingerprint.Action {
	if cfg == nil || cfg.Helpers.KindExecutablePath() == "" {
		return nil
	}
	for _, exe := range cfg.Fingerprints.Executable {
		if proc.Name != exe.ProcessName {
			continue
		}
		path := executablePath(proc)
		if path == "" {
			log.Debugf("process %d looks like %s, but its executable is unknown",
				proc.PID, exe.RuntimeName)
			return nil
		}
		log.Debugf("process %d is %s with executable %s", proc.PID, exe.RuntimeName, path)
		return fingerprint.NewAction(cfg.Helpers.KindExecutablePath(), outdir,
			path, exe.RuntimeName)
	}
	return nil
}

// executablePath returns the absolute path of the executable of the specified
// process, or "" if unknown. An argv[0] without any directory would need a
// PATH lookup, so it doesn't count.
func executablePath(proc *process.Descriptor) string {
	if proc.Executable != "" {
		return proc.Executable
	}
	if len(proc.CommandLine) == 0 {
		return ""
	}
	argv0 := proc.CommandLine[0]
	switch {
	case filepath.IsAbs(argv0):
		return argv0
	case strings.Contains(argv0, "/") && proc.Cwd != "":
		return proc.Resolve(argv0)
	}
	return ""
}
