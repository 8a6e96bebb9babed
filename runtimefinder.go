// (c) Siemens AG 2024
//
// SPDX-License-Identifier: MIT

package runtimefinder

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/siemens/runtimefinder/config"
	"github.com/siemens/runtimefinder/fingerprint"
	"github.com/siemens/runtimefinder/process"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/semaphore"

	_ "github.com/siemens/runtimefinder/fingerprint/all" // pull in fingerprint detector plugins

	"github.com/thediveo/go-plugger/v3"
	"github.com/thediveo/lxkns/log"
	"github.com/thediveo/lxkns/model"
)

// RuntimeFinder dispatches processes to fingerprint detectors in order to
// find out which application runtimes they belong to. It can be safely used
// from multiple goroutines.
type RuntimeFinder struct {
	detectors  []detectorPlugin    // static, ordered list of detector plugins.
	numworkers int                 // max number of processes fingerprinted in parallel.
	workersem  *semaphore.Weighted // bounded pool.
	procfs     string              // where to look up process details.
}

// detectorPlugin represents a fingerprint detector together with its plugin
// name.
type detectorPlugin struct {
	detector   fingerprint.Detector
	pluginname string // for housekeeping and logging.
}

// Result is the outcome of fingerprinting a single process that has been
// recognized by one of the detectors.
type Result struct {
	PID    model.PIDType
	Name   string             // executable name of the process.
	Plugin string             // name of the detector plugin recognizing the process.
	Action fingerprint.Action // helper invocation to carry out; read-only, might be shared.
}

// New returns a RuntimeFinder object for further use. Unless specified
// otherwise using [WithDetector], the runtime finder uses all registered
// fingerprint detector plugins in their plugin order.
func New(opts ...NewOption) *RuntimeFinder {
	f := &RuntimeFinder{
		procfs: process.DefaultProcfs,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.numworkers <= 0 {
		f.numworkers = runtime.GOMAXPROCS(0)
	}
	f.workersem = semaphore.NewWeighted(int64(f.numworkers))
	if len(f.detectors) == 0 {
		// We're working only with a static set of plugins, so we need to query
		// the plugin group only once.
		detectors := plugger.Group[fingerprint.Detector]().PluginsSymbols()
		f.detectors = make([]detectorPlugin, 0, len(detectors))
		for _, detector := range detectors {
			f.detectors = append(f.detectors, detectorPlugin{
				detector:   detector.S,
				pluginname: detector.Plugin,
			})
		}
	}
	log.Infof("available runtime fingerprint detector plugins: %s",
		strings.Join(f.Detectors(), ", "))
	return f
}

// Detectors returns the names of the fingerprint detectors in the order they
// are tried.
func (f *RuntimeFinder) Detectors() []string {
	names := make([]string, 0, len(f.detectors))
	for _, detector := range f.detectors {
		names = append(names, detector.pluginname)
	}
	return names
}

// Dispatch returns the action for fingerprinting the specified process as
// proposed by the first detector recognizing the process, or nil if no
// detector recognizes it.
func (f *RuntimeFinder) Dispatch(cfg *config.Config, outdir string, proc *process.Descriptor) fingerprint.Action {
	action, _ := f.dispatch(cfg, outdir, proc)
	return action
}

// dispatch returns the action of the first detector recognizing the specified
// process, together with the name of the detector plugin.
func (f *RuntimeFinder) dispatch(cfg *config.Config, outdir string, proc *process.Descriptor) (fingerprint.Action, string) {
	for _, detector := range f.detectors {
		if action := detector.detector.TryDetect(cfg, outdir, proc); action != nil {
			log.Debugf("process %s (%d) recognized by %s fingerprint detector",
				proc.Name, proc.PID, detector.pluginname)
			return action, detector.pluginname
		}
	}
	return nil, ""
}

// memoized is the dispatch outcome for all identical process descriptors
// within the same scan.
type memoized struct {
	once   sync.Once
	action fingerprint.Action
	plugin string
}

// Scan fingerprints the processes in the specified process table, returning
// the results for the recognized processes only, sorted by PID. Processes with
// identical executable names, command lines, working directories and
// executables are dispatched only once per scan, as detectors don't look at
// anything else. Cancelling the context stops fingerprinting further processes
// and returns the results gathered so far.
func (f *RuntimeFinder) Scan(ctx context.Context, cfg *config.Config, outdir string, procs model.ProcessTable) []Result {
	results := []Result{}
	if len(procs) == 0 {
		return results
	}
	var mux sync.Mutex // protects the memo and results.
	memo := map[uint64]*memoized{}
	var wg sync.WaitGroup
	for _, proc := range procs {
		if ctx.Err() != nil {
			break
		}
		// Please note that the number of parallel fingerprintings is bounded
		// over *all parallel calls* to this method.
		if err := f.workersem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(proc *model.Process) {
			defer wg.Done()
			defer f.workersem.Release(1)
			desc := process.FromProcessAt(proc, f.procfs)
			key := descriptorKey(desc)
			mux.Lock()
			m, ok := memo[key]
			if !ok {
				m = &memoized{}
				memo[key] = m
			}
			mux.Unlock()
			m.once.Do(func() {
				m.action, m.plugin = f.dispatch(cfg, outdir, desc)
			})
			if m.action == nil {
				return
			}
			mux.Lock()
			results = append(results, Result{
				PID:    desc.PID,
				Name:   desc.Name,
				Plugin: m.plugin,
				Action: m.action,
			})
			mux.Unlock()
		}(proc)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		log.Warnf("runtime fingerprint scan aborted, reason: %s", err.Error())
	}
	slices.SortFunc(results, func(a, b Result) int {
		return int(a.PID) - int(b.PID)
	})
	log.Infof("fingerprinted %d runtime processes out of %d processes (%d distinct)",
		len(results), len(procs), len(memo))
	return results
}

// descriptorKey returns the hash over all process descriptor fields detectors
// base their decisions on, so everything except the PID.
func descriptorKey(desc *process.Descriptor) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(desc.Name)
	_, _ = h.WriteString("\x00")
	for _, arg := range desc.CommandLine {
		_, _ = h.WriteString(arg)
		_, _ = h.WriteString("\x00")
	}
	_, _ = h.WriteString("\x01")
	_, _ = h.WriteString(desc.Cwd)
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(desc.Executable)
	return h.Sum64()
}
