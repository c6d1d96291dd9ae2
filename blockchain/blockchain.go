// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain composes the standalone proof-of-work primitives
// (package standalone) with a network's chain parameters (package
// chaincfg) into the two consensus-critical operations a node actually
// needs: verifying a header's proof of work against its chain position,
// and computing the difficulty the next block must meet.
package blockchain

import (
	"math/big"
	"sync"

	"github.com/riecoin/riecoind/blockchain/standalone"
	"github.com/riecoin/riecoind/chaincfg"
	"github.com/riecoin/riecoind/chaincfg/chainhash"
)

// BlockChain provides functions for working with a chain of blocks,
// including retarget and proof-of-work verification, that depend on a
// particular network's chain parameters and an in-memory index of known
// block nodes.
//
// This is a deliberately small surface compared to a full node's
// BlockChain: there is no transaction index, UTXO set, or reorg logic
// here -- those concerns sit entirely outside this consensus core.
type BlockChain struct {
	chainParams *chaincfg.Params
	index       *blockIndex

	// chainLock protects concurrent access to the fields that retarget
	// calculations and proof-of-work verification read, mirroring the
	// locking discipline of the full node this core was extracted from.
	chainLock sync.Mutex
}

// New returns a BlockChain ready to track nodes for the given network
// parameters, seeded with the network's genesis node at height 0.
func New(params *chaincfg.Params) *BlockChain {
	b := &BlockChain{
		chainParams: params,
		index:       newBlockIndex(),
	}
	genesis := newBlockNode(params.GenesisHash, 0, params.PowLimitBits, 0, nil)
	b.index.AddNode(genesis)
	return b
}

// AddNode registers a new block node as a child of the node identified by
// parentHash. It returns false, adding nothing, when parentHash is not in
// the index, and true otherwise. It is the caller's
// responsibility to ensure the node's fields (height, bits, timestamp) are
// already known to be valid for its position in the chain; AddNode performs
// no validation of its own.
func (b *BlockChain) AddNode(hash chainhash.Hash, parentHash chainhash.Hash, bits uint32, timestamp int64) bool {
	parent := b.index.LookupNode(&parentHash)
	if parent == nil {
		return false
	}

	b.chainLock.Lock()
	node := newBlockNode(hash, parent.height+1, bits, timestamp, parent)
	b.chainLock.Unlock()

	b.index.AddNode(node)
	return true
}

// Params returns the network parameters the chain was constructed with.
func (b *BlockChain) Params() *chaincfg.Params {
	return b.chainParams
}

// CheckProofOfWork verifies the proof of work for the block identified by
// hash, whose constellation base is offset from its prime base by delta,
// against the difficulty recorded for that block in the index.
func (b *BlockChain) CheckProofOfWork(hash chainhash.Hash, delta *big.Int) error {
	node := b.index.LookupNode(&hash)
	if node == nil {
		return unknownBlockError(&hash)
	}
	return standalone.CheckProofOfWork(hash, node.bits, delta, b.chainParams.GenesisHashForPoW,
		b.chainParams.AllowMinDifficultyBlocks)
}
