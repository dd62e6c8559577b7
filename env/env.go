//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package env implements the run configuration for BISO digest
// computations.
package env

import (
	"io"
	"os"
	"runtime"
)

// Config defines the configuration for batch digest computations and
// the command-line tools. Config must not be modified after being
// passed to any function. It is safe for concurrent use as the
// functions do not modify it.
type Config struct {
	// Workers limits the number of messages hashed concurrently. The
	// value 0 selects one worker per CPU.
	Workers int

	// Verbose enables verbose diagnostics.
	Verbose bool

	// Diagnostics receives log output. The value nil selects
	// os.Stderr.
	Diagnostics io.Writer
}

// GetWorkers returns the number of concurrent workers.
func (config *Config) GetWorkers() int {
	if config != nil && config.Workers > 0 {
		return config.Workers
	}
	return runtime.NumCPU()
}

// GetLogger returns a logger writing to the configured diagnostics
// output.
func (config *Config) GetLogger() *Logger {
	var out io.Writer = os.Stderr
	var verbose bool
	if config != nil {
		if config.Diagnostics != nil {
			out = config.Diagnostics
		}
		verbose = config.Verbose
	}
	return &Logger{
		out:     out,
		verbose: verbose,
	}
}
