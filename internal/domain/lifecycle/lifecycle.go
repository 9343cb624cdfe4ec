// Package lifecycle holds the timeouts shared by fx start/stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds a single OnStart/OnStop hook.
	DefaultTimeout = 10 * time.Second

	// RunDrainTimeout is how long shutdown waits for an in-flight pipeline run.
	RunDrainTimeout = 30 * time.Second
)
