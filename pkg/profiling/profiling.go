// Package profiling writes CPU and heap profiles requested on the command line.
package profiling

import (
	"context"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dumbcommander/dumbcommander/pkg/logs"
)

var log = logs.Logger("profiling")

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = func(w io.Writer) error {
		return pprof.WriteHeapProfile(w)
	}
	memProfilingInterval = 10 * time.Second
)

// DoCPUProfiling starts CPU profiling into path and returns the function that stops it.
// On failure profiling is skipped and the returned function does nothing.
func DoCPUProfiling(path string) (stop func()) {
	f, err := osCreate(path)
	if err != nil {
		log.Errorf("could not create CPU profile: %v", err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.Errorf("could not start CPU profile: %v", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		if err := f.Close(); err != nil {
			log.Warnf("failed to close CPU profile: %v", err)
		}
	}
}

// DoMemProfiling rewrites the heap profile at path every memProfilingInterval
// until ctx is done. The returned function writes it once more, e.g. on exit.
func DoMemProfiling(ctx context.Context, path string) (write func()) {
	write = func() {
		writeHeapProfile(path)
	}
	go func() {
		ticker := time.NewTicker(memProfilingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				write()
			}
		}
	}()
	return write
}

func writeHeapProfile(path string) {
	f, err := osCreate(path)
	if err != nil {
		log.Errorf("could not create memory profile: %v", err)
		return
	}
	defer func() {
		_ = f.Close()
	}()
	if err = pprofWriteHeapProfile(f); err != nil {
		log.Errorf("could not write memory profile: %v", err)
	}
}
