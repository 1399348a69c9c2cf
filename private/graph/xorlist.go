// Copyright (C) 2024 Storj Labs, Inc.
// See LICENSE for copying information.

package graph

// XORList returns the sequence of ids whose XOR equals n's payload.
// n must be solved.
//
// With expandAux false, the raw append-only sequence is returned: it
// may contain message or auxiliary ids as indirection. With expandAux
// true, every non-check entry is recursively replaced by its own
// expansion, so the result contains only check-node ids (the leaves).
//
// The involution property of XOR means a caller applying these ids'
// payloads as physical XORs doesn't need the result
// deduplicated first: repeated ids cancel out under XOR regardless of
// how many times or where they appear in the sequence. XORList doesn't
// dedup eagerly for exactly that reason, since it would be pure overhead.
func (g *Graph) XORList(n NodeID, expandAux bool) []NodeID {
	raw := g.xorList[n]
	if raw == nil {
		invariant("XORList: node %d is not solved", n)
	}
	if !expandAux {
		out := make([]NodeID, len(raw))
		copy(out, raw)
		return out
	}
	var out []NodeID
	g.expandInto(&out, raw)
	return out
}

// expandInto recursively expands ids into out, stopping at check-node
// leaves. Recursion is well-founded: every entry in a node's xor_list
// names a node that was already solved (and whose own xor_list was
// already frozen) at the moment it was appended, so following
// indirection can never cycle back.
func (g *Graph) expandInto(out *[]NodeID, ids []NodeID) {
	for _, id := range ids {
		if g.Kind(id) == Check {
			*out = append(*out, id)
			continue
		}
		g.expandInto(out, g.xorList[id])
	}
}

// setXORList freezes n's xor list. Once set it must never be written
// again.
func (g *Graph) setXORList(n NodeID, ids []NodeID) {
	if g.xorList[n] != nil {
		invariant("setXORList: node %d already has a frozen xor list", n)
	}
	g.xorList[n] = ids
}
