// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"testing"

	"github.com/riecoin/riecoind/chaincfg/chainhash"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	})
	return s
}

func TestStorePutGet(t *testing.T) {
	s := openTestStore(t)

	var hash, parent chainhash.Hash
	hash[0] = 0x01
	parent[0] = 0x02

	want := Record{
		Hash:       hash,
		ParentHash: parent,
		Height:     7,
		Bits:       0x1d00ffff,
		Timestamp:  1700000000,
	}
	if err := s.Put(want); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get(hash)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get: record not found")
	}
	if got != want {
		t.Fatalf("Get: got %+v, want %+v", got, want)
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := openTestStore(t)

	var unknown chainhash.Hash
	unknown[0] = 0xff
	_, ok, err := s.Get(unknown)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("Get: expected no record for an unknown hash")
	}
}

func TestStoreAllOrdersByHeight(t *testing.T) {
	s := openTestStore(t)

	// Insert out of order; All() must still return them sorted by
	// ascending height so a caller can replay AddNode in parent-first
	// order.
	heights := []int64{5, 1, 3, 0, 2, 4}
	for _, h := range heights {
		var hash chainhash.Hash
		hash[0] = byte(h)
		if err := s.Put(Record{Hash: hash, Height: h, Bits: 0x1d00ffff, Timestamp: h * 100}); err != nil {
			t.Fatalf("Put(%d): %v", h, err)
		}
	}

	records, err := s.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(records) != len(heights) {
		t.Fatalf("All: got %d records, want %d", len(records), len(heights))
	}
	for i, rec := range records {
		if rec.Height != int64(i) {
			t.Fatalf("All[%d]: height %d, want %d", i, rec.Height, i)
		}
	}
}
