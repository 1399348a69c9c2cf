// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package graph

// Resolve drains the pending queue, applying the propagation and aux
// rules until the queue is empty or bound newly-solved blocks have been
// emitted.
//
// bound limits the number of newly-solved ids a single call may return;
// zero or negative means unbounded. A caller running in stepping mode
// passes 1 so it can interleave packet reception with decoding. The
// pending queue persists across calls: a bounded call that stops early
// leaves unprocessed entries for the next call.
//
// done reports whether unsolvedMessageCount has reached zero as of this
// call's return; it can already be true on entry, in which case Resolve
// still drains whatever is pending (a solved auxiliary reached via
// cascade after the last message block does not need a new check block
// to finish resolving, and a fully-redundant check block ingested after
// done still needs its empty down array discarded).
//
// Resolve may be called again after it returns with done == false and
// an empty newlySolved: that simply means the graph needs more check
// blocks before anything new can be solved.
func (g *Graph) Resolve(bound int) (done bool, newlySolved []NodeID) {
	defer mon.Task()(nil)(nil)

	for {
		from, ok := g.shiftPending()
		if !ok {
			return g.done, newlySolved
		}

		if solved, ok := g.dispatch(from); ok {
			newlySolved = append(newlySolved, solved)
			if g.unsolvedMessageCount == 0 {
				g.done = true
			}
		}

		if bound > 0 && len(newlySolved) >= bound {
			return g.done, newlySolved
		}
	}
}

// dispatch applies whichever rule (if any) fires for from. from must be
// auxiliary or check; message nodes never enter the
// pending queue. ok is false when from makes no progress this visit
// (already decommissioned, already-solved auxiliary, redundant check,
// u >= 2, or an unsolved auxiliary one neighbour away from the aux rule).
func (g *Graph) dispatch(from NodeID) (solved NodeID, ok bool) {
	if g.Kind(from) == Message {
		invariant("dispatch: node %d dequeued is a message node", from)
	}

	if g.solved[from] && g.down[from] == nil {
		// Already decommissioned: a duplicate queue entry. Its u[] is
		// stale and must not be acted on.
		return 0, false
	}

	u := g.u[from]
	switch {
	case u >= 2:
		return 0, false

	case u == 1:
		if !g.solved[from] {
			// Unsolved auxiliary one neighbour short of the aux rule;
			// nothing to do until cascade drops u[from] to 0.
			return 0, false
		}
		to := g.uniqueUnsolvedDown(from)
		rest := g.solvedDownExcept(from, to)
		g.solve(to, g.xorList[from], rest)
		g.decommission(from)
		if g.Kind(to) == Auxiliary {
			// Re-enqueue an auxiliary solved by propagation, to probe
			// whether it can now cascade further.
			g.pushPending(to)
		}
		g.cascade(to)
		return to, true

	default: // u == 0
		if g.Kind(from) == Auxiliary && !g.solved[from] {
			g.solve(from, nil, g.down[from])
			g.decommission(from)
			g.cascade(from)
			return from, true
		}
		// Check node, or an auxiliary already solved by propagation:
		// redundant arrival or a duplicate wake-up. Discard.
		g.decommission(from)
		return 0, false
	}
}

// uniqueUnsolvedDown returns the one down-neighbour of from that is not
// yet solved. Only valid when u[from] == 1.
func (g *Graph) uniqueUnsolvedDown(from NodeID) NodeID {
	for _, n := range g.down[from] {
		if !g.solved[n] {
			return n
		}
	}
	invariant("uniqueUnsolvedDown: node %d has u=1 but no unsolved down-neighbour", from)
	return 0
}

// solvedDownExcept returns from's down-neighbours other than except, all
// of which must already be solved (true whenever u[from] == 1 and
// except is the one unsolved neighbour).
func (g *Graph) solvedDownExcept(from, except NodeID) []NodeID {
	down := g.down[from]
	out := make([]NodeID, 0, len(down)-1)
	for _, n := range down {
		if n != except {
			out = append(out, n)
		}
	}
	return out
}

// solve marks n solved with xor_list = prefix ++ suffix, and maintains
// unsolvedMessageCount. n must not already be solved.
func (g *Graph) solve(n NodeID, prefix, suffix []NodeID) {
	if g.solved[n] {
		invariant("solve: node %d is already solved", n)
	}
	xorList := make([]NodeID, 0, len(prefix)+len(suffix))
	xorList = append(xorList, prefix...)
	xorList = append(xorList, suffix...)

	g.solved[n] = true
	g.setXORList(n, xorList)
	if g.Kind(n) == Message {
		g.unsolvedMessageCount--
	}

	if debugEnabled {
		println("graph: solved", int(n), "kind", g.Kind(n).String(), "xor_list len", len(xorList))
	}
}

// cascade propagates to's solve along its up-edges: every higher node h
// that still has a down-edge to to loses one unsolved neighbour. h is
// re-enqueued if that drops u[h] below 2. The up-edge itself is left in
// place; it is removed lazily when h is next dispatched and
// decommissioned.
func (g *Graph) cascade(to NodeID) {
	for c := g.up[to]; c != nil; c = c.next {
		h := c.value
		g.u[h]--
		if g.u[h] < 2 {
			g.pushPending(h)
		}
	}
}
