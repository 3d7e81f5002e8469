package charstats

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  It is either a *Leaf or an *Internal.
type Node interface {
	// Weight returns the sum of the counts of every leaf under this node.
	Weight() uint64

	isNode()
}

// Leaf is a Huffman tree node holding a single Symbol.
type Leaf struct {
	Symbol Symbol
	weight uint64
}

// Weight fulfills Node.
func (leaf *Leaf) Weight() uint64 {
	return leaf.weight
}

func (*Leaf) isNode() {}

// Internal is a Huffman tree node joining two subtrees.  Left was the first of
// the two nodes removed from the queue when it was merged.
type Internal struct {
	Left   Node
	Right  Node
	weight uint64
	seq    uint
}

// Weight fulfills Node.
func (node *Internal) Weight() uint64 {
	return node.weight
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Tree is an immutable Huffman tree.
type Tree struct {
	root      Node
	numLeaves uint
}

// BuildTree constructs a Huffman tree from the symbols of d that have a
// non-zero count, by repeatedly merging the two lightest nodes.
//
// Ties between equal weights are broken deterministically: leaves sort before
// internal nodes, leaves sort by Symbol, and internal nodes sort by the order
// in which they were created.  The tie-break affects the shape of the tree but
// never its average code length.
//
// A distribution with a single symbol yields a tree consisting of one leaf,
// whose code length is 0.
//
func BuildTree(d Distribution) (*Tree, error) {
	// Step 1: seed a minheap with one leaf per symbol.

	h := nodeHeap{list: make([]Node, 0, d.Len())}
	d.Each(func(sym Symbol, count uint64) {
		h.list = append(h.list, &Leaf{Symbol: sym, weight: count})
	})
	numLeaves := uint(h.Len())
	if numLeaves == 0 {
		return nil, ErrEmptyDistribution
	}
	h.Init()

	// Step 2: pop the two lightest nodes, join them, and push the join
	// back until a single node remains.

	var seq uint
	for h.Len() > 1 {
		a := heap.Pop(&h).(Node)
		b := heap.Pop(&h).(Node)

		// Compute weight using saturating addition
		weight := a.Weight() + b.Weight()
		if weight < a.Weight() {
			weight = ^uint64(0)
		}

		heap.Push(&h, &Internal{Left: a, Right: b, weight: weight, seq: seq})
		seq++
	}

	root := heap.Pop(&h).(Node)
	assert.Assertf(seq+1 == numLeaves, "made %d merges for %d leaves", seq, numLeaves)
	return &Tree{root: root, numLeaves: numLeaves}, nil
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return t.root
}

// NumLeaves returns the number of leaves, which equals the number of distinct
// symbols in the distribution the tree was built from.
func (t *Tree) NumLeaves() int {
	return int(t.numLeaves)
}

// Leaves returns the symbols of the tree in left-to-right order.
func (t *Tree) Leaves() []Symbol {
	out := make([]Symbol, 0, t.numLeaves)
	t.walk(func(leaf *Leaf, _ Code) {
		out = append(out, leaf.Symbol)
	})
	return out
}

// Codes returns the prefix code described by the tree, indexed by Symbol.  A
// step to the Left child is a 0 bit and a step to the Right child is a 1 bit.
// Symbols absent from the tree have a Code with Size 0, as does the only
// symbol of a single-leaf tree.
func (t *Tree) Codes() [NumSymbols]Code {
	var out [NumSymbols]Code
	t.walk(func(leaf *Leaf, hc Code) {
		out[leaf.Symbol] = hc
	})
	return out
}

// Lengths returns the code length table of the tree.
func (t *Tree) Lengths() CodeLengths {
	var out CodeLengths
	t.walk(func(leaf *Leaf, hc Code) {
		out.depths[leaf.Symbol] = hc.Size
		out.present[leaf.Symbol] = true
	})
	return out
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.root.Weight())
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.numLeaves)
	t.walk(func(leaf *Leaf, hc Code) {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s [weight %d]\n", leaf.Symbol, hc, leaf.weight)
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every leaf in left-to-right order, along with the path from the
// root to that leaf.
func (t *Tree) walk(fn func(leaf *Leaf, hc Code)) {
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Internal
		code Code
		x    byte
	}

	var stack []stackItem

	processChild := func(child Node, hc Code) {
		switch node := child.(type) {
		case *Leaf:
			fn(node, hc)
		case *Internal:
			stack = append(stack, stackItem{node: node, code: hc})
		default:
			panic(fmt.Errorf("unexpected Huffman node type %T", child))
		}
	}

	stack = make([]stackItem, 0, log2uint(t.numLeaves)+1)
	processChild(t.root, Code{})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.Left, top.code.Append(0))
		case 1:
			processChild(top.node.Right, top.code.Append(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
}

// type nodeHeap {{{

type nodeHeap struct {
	list []Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if aw, bw := a.Weight(), b.Weight(); aw != bw {
		return aw < bw
	}
	switch x := a.(type) {
	case *Leaf:
		if y, ok := b.(*Leaf); ok {
			return x.Symbol < y.Symbol
		}
		return true
	case *Internal:
		if y, ok := b.(*Internal); ok {
			return x.seq < y.seq
		}
		return false
	}
	return false
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
