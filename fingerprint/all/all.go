// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package all

import (
	_ "github.com/siemens/runtimefinder/fingerprint/executable" // fingerprint runtimes by executable name
	_ "github.com/siemens/runtimefinder/fingerprint/java"       // fingerprint Java applications
)
