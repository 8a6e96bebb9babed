// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package process

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/thediveo/lxkns/log"
	"github.com/thediveo/lxkns/model"
	"github.com/thediveo/procfsroot"
)

// deletedSuffix is appended by the kernel to the exe link target of a process
// whose executable file has been deleted.
const deletedSuffix = " (deleted)"

// DefaultProcfs is the mount point of the proc filesystem used by
// [FromProcess].
const DefaultProcfs = "/proc"

// Descriptor is a snapshot of a single container process. Descriptors must not
// be modified after construction, as detectors on different go routines might
// be looking at them.
type Descriptor struct {
	PID         model.PIDType
	Name        string   // executable name, without any directory.
	CommandLine []string // full argv, in order.
	Cwd         string   // working directory; might be empty if unknown.
	Executable  string   // executable path; might be empty if unknown.
}

// FromProcess returns a descriptor for the specified lxkns process, looking up
// additional details in the proc filesystem mounted at [DefaultProcfs].
func FromProcess(proc *model.Process) *Descriptor {
	return FromProcessAt(proc, DefaultProcfs)
}

// FromProcessAt returns a descriptor for the specified lxkns process, looking
// up its working directory and executable in the proc filesystem mounted at
// procfs. Any details that cannot be looked up are left empty; the executable
// name then falls back to the process name as known to lxkns.
func FromProcessAt(proc *model.Process, procfs string) *Descriptor {
	base := filepath.Join(procfs, strconv.FormatUint(uint64(proc.PID), 10))
	d := &Descriptor{
		PID:         proc.PID,
		Name:        proc.Name,
		CommandLine: proc.Cmdline,
	}
	cwd, err := os.Readlink(filepath.Join(base, "cwd"))
	if err != nil {
		log.Debugf("cannot determine working directory of process %d: %s",
			proc.PID, err.Error())
	}
	d.Cwd = cwd
	d.Executable = executable(proc, base)
	if d.Executable != "" {
		d.Name = filepath.Base(d.Executable)
	}
	return d
}

// executable returns the path of the executable of the specified process,
// preferably as indicated by the proc filesystem. If this isn't accessible,
// then an absolute argv[0] gets its symbolic links evaluated in the context
// of the process' root, so that, for instance, an alternatives-managed
// “/usr/bin/java” turns into the path of the JDK's java binary.
func executable(proc *model.Process, base string) string {
	if exe, err := os.Readlink(filepath.Join(base, "exe")); err == nil {
		// the kernel marks executables replaced or removed after the process
		// started, such as after a JDK upgrade underneath a running JVM.
		return strings.TrimSuffix(exe, deletedSuffix)
	}
	if len(proc.Cmdline) == 0 || !filepath.IsAbs(proc.Cmdline[0]) {
		return ""
	}
	wormhole := filepath.Join(base, "root")
	exe, err := procfsroot.EvalSymlinks(proc.Cmdline[0], wormhole, procfsroot.EvalFullPath)
	if err != nil {
		log.Debugf("cannot evaluate executable %s of process %d in the context of %s",
			proc.Cmdline[0], proc.PID, wormhole)
		return ""
	}
	return exe
}

// Arg returns the command line argument following the first occurrence of any
// of the specified flags, together with whether such an argument exists.
func (d *Descriptor) Arg(flags ...string) (string, bool) {
	for idx, arg := range d.CommandLine {
		for _, flag := range flags {
			if arg != flag {
				continue
			}
			if idx+1 >= len(d.CommandLine) {
				return "", false
			}
			return d.CommandLine[idx+1], true
		}
	}
	return "", false
}

// Resolve returns the specified path made absolute using the process' working
// directory, unless it already is absolute.
func (d *Descriptor) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(d.Cwd, path)
}
