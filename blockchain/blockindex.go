// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"sync"

	"github.com/riecoin/riecoind/chaincfg/chainhash"
)

// BlockNode is the minimal view of a block the retarget engine and its
// callers need: the pieces of a header that feed CalcNextRequiredDifficulty,
// plus the chain-navigation methods the retarget window walk relies on.
// Production callers implement this over their own header/index types;
// blockNode below is the reference implementation this package uses
// internally and in tests.
type BlockNode interface {
	// Hash returns the header hash identifying this node.
	Hash() chainhash.Hash

	// Height returns the node's height in the chain, with the genesis
	// block at height 0.
	Height() int64

	// Time returns the node's header timestamp as a Unix time.
	Time() int64

	// Bits returns the node's compact-encoded difficulty target.
	Bits() uint32

	// Parent returns the node immediately preceding this one in the
	// chain, or nil for the genesis block.
	Parent() BlockNode

	// Ancestor returns the ancestor block node at the provided height,
	// or nil if there is no such ancestor (height is negative or
	// greater than the node's own height).
	Ancestor(height int64) BlockNode
}

// blockNode is the block index's own BlockNode implementation. Rather than
// following parent pointers one at a time, it keeps a logarithmic "skip"
// pointer so Ancestor can walk arbitrarily far back in O(log n) steps --
// the retarget window spans hundreds of blocks and the superblock schedule
// spans thousands, so a linear walk would make every retarget calculation
// touch the full window redundantly.
type blockNode struct {
	parent *blockNode
	skip   *blockNode

	hash      chainhash.Hash
	height    int64
	bits      uint32
	timestamp int64
}

// newBlockNode returns a new block node connected to the passed parent. The
// parent may be nil for the genesis block.
func newBlockNode(hash chainhash.Hash, height int64, bits uint32, timestamp int64, parent *blockNode) *blockNode {
	node := &blockNode{
		parent:    parent,
		hash:      hash,
		height:    height,
		bits:      bits,
		timestamp: timestamp,
	}
	node.skip = node.calcSkip()
	return node
}

// calcSkipHeight returns the height to skip to when building the skip
// pointer for a node at the given height. It follows the standard
// logarithmic skip-list construction: the skip distance roughly halves
// every other level, so the worst-case ancestor walk is O(log height).
func calcSkipHeight(height int64) int64 {
	if height < 2 {
		return 0
	}
	// Even heights clear their lowest set bit; odd heights clear the two
	// lowest set bits of height-1 and step one block forward again.
	if height&1 != 0 {
		return invert(invert(height-1)) + 1
	}
	return invert(height)
}

// invert clears the lowest set bit of n. It is a building block of
// calcSkipHeight's bit manipulation and has no meaning on its own.
func invert(n int64) int64 {
	return n & (n - 1)
}

// calcSkip returns the node to use as this node's skip pointer.
func (node *blockNode) calcSkip() *blockNode {
	if node.height < 1 {
		return nil
	}
	return node.ancestor(calcSkipHeight(node.height))
}

// ancestor returns the ancestor block node at the provided height by
// following a node's skip pointer whenever it does not land below the
// requested height, and its parent pointer otherwise.
func (node *blockNode) ancestor(height int64) *blockNode {
	if height < 0 || height > node.height {
		return nil
	}

	n := node
	for n.height > height {
		skipHeight := calcSkipHeight(n.height)
		if skipHeight >= height && n.skip != nil {
			n = n.skip
			continue
		}
		n = n.parent
	}
	return n
}

// relativeAncestor returns the ancestor block node a relative distance
// blocks before this node.
func (node *blockNode) relativeAncestor(distance int64) *blockNode {
	return node.ancestor(node.height - distance)
}

// Hash implements BlockNode.
func (node *blockNode) Hash() chainhash.Hash { return node.hash }

// Height implements BlockNode.
func (node *blockNode) Height() int64 { return node.height }

// Time implements BlockNode.
func (node *blockNode) Time() int64 { return node.timestamp }

// Bits implements BlockNode.
func (node *blockNode) Bits() uint32 { return node.bits }

// Parent implements BlockNode.
func (node *blockNode) Parent() BlockNode {
	if node.parent == nil {
		return nil
	}
	return node.parent
}

// Ancestor implements BlockNode.
func (node *blockNode) Ancestor(height int64) BlockNode {
	ancestor := node.ancestor(height)
	if ancestor == nil {
		return nil
	}
	return ancestor
}

// blockIndex provides facilities for keeping track of an in-memory indexed
// view of the block chain, keyed by block hash. It is safe for concurrent
// access from multiple goroutines.
type blockIndex struct {
	sync.RWMutex
	index map[chainhash.Hash]*blockNode
}

// newBlockIndex returns a new, empty block index.
func newBlockIndex() *blockIndex {
	return &blockIndex{
		index: make(map[chainhash.Hash]*blockNode),
	}
}

// AddNode adds the provided node to the index.
//
// This function is safe for concurrent access.
func (bi *blockIndex) AddNode(node *blockNode) {
	bi.Lock()
	bi.index[node.hash] = node
	bi.Unlock()
}

// LookupNode returns the block node identified by the provided hash. It
// returns nil if there is no entry for the hash.
//
// This function is safe for concurrent access.
func (bi *blockIndex) LookupNode(hash *chainhash.Hash) *blockNode {
	bi.RLock()
	node := bi.index[*hash]
	bi.RUnlock()
	return node
}
