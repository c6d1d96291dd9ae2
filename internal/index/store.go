// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index provides a reference, on-disk implementation of the
// ancestor-lookup dependency the retarget engine in package blockchain
// consumes as an abstract interface (spec.md §6, "BlockIndex"). Nothing in
// the consensus core requires persistence -- the core only ever sees the
// blockchain.BlockNode interface -- but a concrete, exercised backing store
// is more useful to callers (and to this repo's tests) than leaving the
// interface purely abstract.
//
// Records are keyed two ways so a caller can either walk the chain in
// height order (to rebuild an in-memory blockchain.BlockChain one AddNode
// call at a time) or look a single node up by its hash: a "by-height" key
// prefix sorts naturally under goleveldb's byte-order iteration, and a
// parallel "by-hash" prefix maps a hash to its height.
package index

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/riecoin/riecoind/chaincfg/chainhash"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Record is the persisted view of a single block node: the fields the
// retarget engine's BlockNode interface exposes, plus the parent hash
// needed to relink the chain on load.
type Record struct {
	Hash       chainhash.Hash
	ParentHash chainhash.Hash
	Height     int64
	Bits       uint32
	Timestamp  int64
}

const (
	// byHashPrefix keys map a node's hash to its height, so Get can
	// locate the height-ordered record without a linear scan.
	byHashPrefix = 0x01

	// byHeightPrefix keys map a node's height to its full record and
	// sort in ascending height order under goleveldb's default
	// byte-wise key comparator.
	byHeightPrefix = 0x02
)

// Store is an on-disk, height-ordered index of block records backed by
// goleveldb. It is safe for concurrent use; goleveldb's DB type already
// serializes concurrent access internally.
type Store struct {
	db *leveldb.DB
}

// Open opens (creating if necessary) a Store rooted at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("index: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func byHeightKey(height int64) []byte {
	key := make([]byte, 1+8)
	key[0] = byHeightPrefix
	binary.BigEndian.PutUint64(key[1:], uint64(height))
	return key
}

func byHashKey(hash chainhash.Hash) []byte {
	key := make([]byte, 1+chainhash.HashSize)
	key[0] = byHashPrefix
	copy(key[1:], hash[:])
	return key
}

func encodeRecord(rec Record) []byte {
	var buf bytes.Buffer
	buf.Write(rec.Hash[:])
	buf.Write(rec.ParentHash[:])
	binary.Write(&buf, binary.BigEndian, rec.Height)
	binary.Write(&buf, binary.BigEndian, rec.Bits)
	binary.Write(&buf, binary.BigEndian, rec.Timestamp)
	return buf.Bytes()
}

func decodeRecord(data []byte) (Record, error) {
	want := 2*chainhash.HashSize + 8 + 4 + 8
	if len(data) != want {
		return Record{}, fmt.Errorf("index: malformed record of %d bytes, want %d", len(data), want)
	}

	var rec Record
	copy(rec.Hash[:], data[:chainhash.HashSize])
	data = data[chainhash.HashSize:]
	copy(rec.ParentHash[:], data[:chainhash.HashSize])
	data = data[chainhash.HashSize:]

	r := bytes.NewReader(data)
	binary.Read(r, binary.BigEndian, &rec.Height)
	binary.Read(r, binary.BigEndian, &rec.Bits)
	binary.Read(r, binary.BigEndian, &rec.Timestamp)
	return rec, nil
}

// Put persists rec, indexed both by height and by hash.
func (s *Store) Put(rec Record) error {
	batch := new(leveldb.Batch)
	batch.Put(byHeightKey(rec.Height), encodeRecord(rec))
	heightBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(heightBytes, uint64(rec.Height))
	batch.Put(byHashKey(rec.Hash), heightBytes)
	return s.db.Write(batch, nil)
}

// Get returns the record for hash, and false if no such record exists.
func (s *Store) Get(hash chainhash.Hash) (Record, bool, error) {
	heightBytes, err := s.db.Get(byHashKey(hash), nil)
	if err == leveldb.ErrNotFound {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	height := int64(binary.BigEndian.Uint64(heightBytes))

	data, err := s.db.Get(byHeightKey(height), nil)
	if err != nil {
		return Record{}, false, err
	}
	rec, err := decodeRecord(data)
	if err != nil {
		return Record{}, false, err
	}
	return rec, true, nil
}

// All returns every persisted record in ascending height order, the order
// a caller must replay AddNode calls in so each record's parent is always
// already known to the in-memory chain being rebuilt.
func (s *Store) All() ([]Record, error) {
	var records []Record

	rng := util.BytesPrefix([]byte{byHeightPrefix})
	iter := s.db.NewIterator(rng, nil)
	defer iter.Release()

	for iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return records, nil
}
