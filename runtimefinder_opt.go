// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package runtimefinder

import "github.com/siemens/runtimefinder/fingerprint"

// NewOption represents options to New when creating a new runtime finder.
type NewOption func(*RuntimeFinder)

// WithWorkers sets the maximum number of processes fingerprinted in parallel by
// the same RuntimeFinder. A maximum number of zero or less is taken as
// GOMAXPROCS instead. Please note that this maximum applies to all concurrent
// [RuntimeFinder.Scan] calls, and not to individual [RuntimeFinder.Scan] calls
// separately.
func WithWorkers(num int) NewOption {
	return func(f *RuntimeFinder) {
		f.numworkers = num
	}
}

// WithDetector adds a fingerprint detector under the specified name. When
// given at least once, only the detectors added this way are used, in the
// order of the options, instead of the registered detector plugins.
func WithDetector(name string, detector fingerprint.Detector) NewOption {
	return func(f *RuntimeFinder) {
		f.detectors = append(f.detectors, detectorPlugin{
			detector:   detector,
			pluginname: name,
		})
	}
}

// WithProcfs sets the mount point of the proc filesystem to look up process
// details in; it defaults to "/proc".
func WithProcfs(procfs string) NewOption {
	return func(f *RuntimeFinder) {
		f.procfs = procfs
	}
}
