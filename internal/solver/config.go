package solver

import (
	"io"
	"log"
)

// Config carries the solver's ambient tunables: where to log, how chatty to be,
// and how often SolveContext should pay for a context.Err() check. It is
// generalized from EricR-saturday/config/config.go's *log.Logger-plus-tunables
// shape, with the teacher's own VSIDS/restart knobs (VarDecay, ClaDecay) dropped
// since this kernel has no heuristics to tune.
type Config struct {
	// Logger receives conflict/decision trace lines when Verbose is set. Defaults
	// to a logger writing to io.Discard.
	Logger *log.Logger
	// Verbose enables per-conflict trace logging via Logger.
	Verbose bool
	// CancelCheckEvery bounds how many search-loop iterations pass between
	// ctx.Err() checks in SolveContext; 0 (the default) checks every iteration,
	// which is always safe and is what plain Solve()'s absence of a context
	// effectively assumes.
	CancelCheckEvery int
}

// DefaultConfig returns a Config with logging disabled and cancellation checked
// on every iteration.
func DefaultConfig() *Config {
	return &Config{
		Logger: log.New(io.Discard, "", 0),
	}
}

func (c *Config) logger() *log.Logger {
	if c == nil || c.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return c.Logger
}
