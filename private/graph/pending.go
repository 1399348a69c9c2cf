// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package graph

// pushPending appends n to the end of the pending queue. Duplicates
// are fine: the resolver tolerates revisiting an already-processed
// node.
func (g *Graph) pushPending(n NodeID) {
	c := g.pool.acquire()
	c.value = n
	c.next = nil

	if g.pendingTail != nil {
		g.pendingTail.next = c
	} else {
		g.pendingHead = c
	}
	g.pendingTail = c

	g.pendingLen++
	mon.IntVal("pending_fill_level").Observe(int64(g.pendingLen))
	if g.pendingLen > g.pendingMaxFull {
		g.pendingMaxFull = g.pendingLen
	}
}

// shiftPending removes and returns the node at the front of the
// pending queue. ok is false if the queue is empty.
func (g *Graph) shiftPending() (n NodeID, ok bool) {
	c := g.pendingHead
	if c == nil {
		return 0, false
	}
	g.pendingHead = c.next
	if g.pendingHead == nil {
		g.pendingTail = nil
	}
	n = c.value
	g.pool.release(c)
	g.pendingLen--
	return n, true
}

// flushPending drains the queue without processing any of it. A Graph
// being closed calls this to release its remaining pending entries
// back to the pool.
func (g *Graph) flushPending() {
	for c := g.pendingHead; c != nil; {
		next := c.next
		g.pool.release(c)
		c = next
	}
	g.pendingHead = nil
	g.pendingTail = nil
	g.pendingLen = 0
}
