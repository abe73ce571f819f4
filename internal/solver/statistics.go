package solver

// Statistics accumulates counters over the lifetime of a Solver, in the manner of
// the teacher's own Statistics type — trimmed to the counters a restart-free,
// deletion-free, heuristic-free kernel can actually produce (no RestartCount,
// no ReduceDBCount, no RemovedClauseCount: those describe features this kernel
// deliberately does not implement).
type Statistics struct {
	Decisions     uint64
	Propagations  uint64
	Conflicts     uint64
	LearnedClauses uint64
}
