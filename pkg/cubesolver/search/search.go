// Package search implements iterative-deepening A* (IDA*) over the Korf
// pattern-database heuristic, plus an uninformed IDDFS baseline used as a
// correctness oracle and benchmark floor.
package search

import (
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/cube"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/heuristic"
	"github.com/LarryWang2718/cubesolver/pkg/cubesolver/move"
)

// maxPathLen bounds the DFS recursion depth. No scramble this engine targets
// requires anywhere near 50 moves to undo optimally; the buffer is sized
// generously rather than tightly to the God's Number bound (20).
const maxPathLen = 50

// canonicalOrder is the fixed move enumeration order DFS iterates in,
// making the search deterministic: two runs on the same inputs and the same
// PDBs produce identical solutions.
var canonicalOrder = [...]move.Name{
	move.U, move.U2, move.UPrime,
	move.D, move.D2, move.DPrime,
	move.L, move.L2, move.LPrime,
	move.R, move.R2, move.RPrime,
	move.F, move.F2, move.FPrime,
	move.B, move.B2, move.BPrime,
}

// Stats reports the work a search performed, for CLI reporting and
// benchmarking.
type Stats struct {
	NodesExpanded int
	Iterations    int
}

// IDAStar holds the heuristic a search is bounded by.
type IDAStar struct {
	Heuristic heuristic.Korf

	// OnIteration, if set, is called before each threshold iteration with
	// the iteration number and the threshold about to be searched. It lets
	// a caller (e.g. the CLI) log progress without this package itself
	// performing any logging.
	OnIteration func(iteration, threshold int)
}

// dfsContext carries the single mutable working state and scratch buffers
// reused across the entire recursion, so DFS never allocates.
type dfsContext struct {
	working cube.State
	scratch move.Scratch
	path    [maxPathLen]move.Name
	stats   *Stats
	lastLen int // set by IDDFS.dfs on success; unused by IDAStar
}

// Solve runs IDA* from initial, raising the threshold by the minimum
// overshoot each time an iteration fails to find a solution within it, for
// up to maxIterations rounds. It reports the solution move sequence and
// true on success, or nil and false if maxIterations is exhausted first.
func (s IDAStar) Solve(initial cube.State, maxIterations int) ([]move.Name, bool, Stats) {
	stats := Stats{}
	threshold := int(s.Heuristic.Max(initial))

	for stats.Iterations = 0; stats.Iterations < maxIterations; stats.Iterations++ {
		if s.OnIteration != nil {
			s.OnIteration(stats.Iterations, threshold)
		}
		ctx := &dfsContext{working: initial, stats: &stats}
		next, found := s.dfs(ctx, 0, threshold)
		if found {
			solution := make([]move.Name, next)
			copy(solution, ctx.path[:next])
			return solution, true, stats
		}
		if next == noBound {
			return nil, false, stats
		}
		threshold = next
	}
	return nil, false, stats
}

// noBound signals that a DFS call found no candidate next threshold at all
// (every branch was pruned before reaching the heuristic bound), meaning no
// solution exists within the move set reachable from initial. This never
// actually happens for a solvable cube, but is handled for completeness.
const noBound = -1

// dfs explores from ctx.working (already at depth g) under budget, using the
// move at path index g-1 (if any) for pruning. It returns either the path
// length on success (found=true), or the minimum f value exceeding budget
// seen across children (found=false), used as the next iteration's threshold.
func (s IDAStar) dfs(ctx *dfsContext, g, budget int) (int, bool) {
	ctx.stats.NodesExpanded++

	h := int(s.Heuristic.Max(ctx.working))
	f := g + h
	if f > budget {
		return f, false
	}
	if ctx.working.IsSolved() {
		return g, true
	}

	var prev move.Name
	hasPrev := g > 0
	if hasPrev {
		prev = ctx.path[g-1]
	}

	minOverflow := noBound
	for _, n := range canonicalOrder {
		if hasPrev && (n == prev.Inverse() || n.Face() == prev.Face()) {
			continue
		}

		move.Table[n].ApplyInPlace(&ctx.working, &ctx.scratch)
		ctx.path[g] = n

		next, found := s.dfs(ctx, g+1, budget)

		move.Table[n.Inverse()].ApplyInPlace(&ctx.working, &ctx.scratch)

		if found {
			return next, true
		}
		if next != noBound && (minOverflow == noBound || next < minOverflow) {
			minOverflow = next
		}
	}

	return minOverflow, false
}

// IDDFS is an uninformed depth-bounded DFS sharing IDA*'s pruning rules but
// no heuristic, used as a correctness oracle: it must agree with IDAStar on
// whether a solution exists, though not necessarily on move count for
// thresholds below the optimal depth.
type IDDFS struct{}

// Solve runs IDDFS from initial, trying depth limits 0, 1, 2, ... up to
// maxIterations, returning the first solution found (optimal, since depths
// are tried in increasing order) or false if none is found by then.
func (d IDDFS) Solve(initial cube.State, maxIterations int) ([]move.Name, bool, Stats) {
	stats := Stats{}

	for depth := 0; depth < maxIterations; depth++ {
		ctx := &dfsContext{working: initial, stats: &stats, lastLen: -1}
		stats.Iterations++
		if d.dfs(ctx, 0, depth) {
			solution := make([]move.Name, ctx.lastLen)
			copy(solution, ctx.path[:ctx.lastLen])
			return solution, true, stats
		}
	}
	return nil, false, stats
}

func (d IDDFS) dfs(ctx *dfsContext, g, limit int) bool {
	ctx.stats.NodesExpanded++

	if ctx.working.IsSolved() {
		ctx.lastLen = g
		return true
	}
	if g >= limit {
		return false
	}

	var prev move.Name
	hasPrev := g > 0
	if hasPrev {
		prev = ctx.path[g-1]
	}

	for _, n := range canonicalOrder {
		if hasPrev && (n == prev.Inverse() || n.Face() == prev.Face()) {
			continue
		}

		move.Table[n].ApplyInPlace(&ctx.working, &ctx.scratch)
		ctx.path[g] = n

		found := d.dfs(ctx, g+1, limit)

		move.Table[n.Inverse()].ApplyInPlace(&ctx.working, &ctx.scratch)

		if found {
			return true
		}
	}
	return false
}
