// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package fingerprint

import (
	"github.com/siemens/runtimefinder/config"
	"github.com/siemens/runtimefinder/process"
)

// Detector allows specialized runtime fingerprint plugins to interface with
// the generic dispatch mechanism. Detectors register with the plugin group
// plugger.Group[Detector](); the placement of the plugins within this group
// determines the order in which detectors are tried.
type Detector interface {
	// TryDetect returns the action for further fingerprinting the specified
	// process, or nil if the process doesn't belong to the runtime family of
	// this detector. TryDetect must neither modify the configuration nor the
	// process descriptor and it must quickly decline processes it does not
	// recognize. A nil configuration is treated the same as an empty one.
	TryDetect(cfg *config.Config, outdir string, proc *process.Descriptor) Action
}

// Action is the argument vector of an external helper program invocation, in
// the form of [helper path, output directory, helper args...]. A nil Action
// signals that a process wasn't recognized.
type Action []string

// NewAction returns the action for invoking the specified helper with the
// output directory and further arguments.
func NewAction(helper string, outdir string, args ...string) Action {
	a := make(Action, 0, 2+len(args))
	a = append(a, helper, outdir)
	return append(a, args...)
}

// Helper returns the path of the helper program to run, or "" for no action.
func (a Action) Helper() string {
	if len(a) == 0 {
		return ""
	}
	return a[0]
}

// OutputDir returns the directory the helper is to write its results to.
func (a Action) OutputDir() string {
	if len(a) < 2 {
		return ""
	}
	return a[1]
}

// Args returns the helper-specific arguments following the output directory.
func (a Action) Args() []string {
	if len(a) < 2 {
		return nil
	}
	return a[2:]
}
