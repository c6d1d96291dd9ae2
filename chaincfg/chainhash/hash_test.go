// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// hashStr is the hash string used by several tests below. It isn't
// required to resolve to an actual network parameter -- it's just a
// recognizable, fixed 32-byte pattern.
var hashStr = "26d0466d5a0eab0ebf171eacb98146b26143d143463514f26b28d3cded81c1bb"

func TestHashString(t *testing.T) {
	// Hash{0x1b} stores 0x1b in byte 0; String() reverses byte order for
	// display, so 0x1b should render as the *last* two hex characters.
	hash := Hash{0x1b}
	want := "00000000000000000000000000000000000000000000000000000000000000" + "1b"
	want = want[len(want)-2*HashSize:]
	if hash.String() != want {
		t.Fatalf("String: got %s, want %s", hash.String(), want)
	}
}

func TestHashFromStrRoundTrip(t *testing.T) {
	want, err := hex.DecodeString(hashStr)
	if err != nil {
		t.Fatalf("unexpected error decoding test hex: %v", err)
	}

	h, err := NewHashFromStr(hashStr)
	if err != nil {
		t.Fatalf("NewHashFromStr: unexpected error: %v", err)
	}

	if h.String() != hashStr {
		t.Fatalf("String: got %v, want %v", h.String(), hashStr)
	}

	// The underlying byte order is reversed relative to the display string.
	reversed := make([]byte, len(want))
	for i, b := range want {
		reversed[len(want)-1-i] = b
	}
	if !bytes.Equal(h[:], reversed) {
		t.Fatalf("stored bytes don't match reversed hex: got %x, want %x", h[:], reversed)
	}
}

func TestHashBitOrder(t *testing.T) {
	// byte 0 == 0b00000010, so bit 0 is 0 and bit 1 is 1.
	h := Hash{0x02}
	if got := h.Bit(0); got != 0 {
		t.Fatalf("Bit(0): got %d, want 0", got)
	}
	if got := h.Bit(1); got != 1 {
		t.Fatalf("Bit(1): got %d, want 1", got)
	}

	// The last bit of the hash is the high bit of the final byte.
	h2 := Hash{}
	h2[HashSize-1] = 0x80
	if got := h2.Bit(255); got != 1 {
		t.Fatalf("Bit(255): got %d, want 1", got)
	}
}

func TestHashSetBytesErrors(t *testing.T) {
	var h Hash
	if err := h.SetBytes([]byte{1, 2, 3}); err == nil {
		t.Fatal("SetBytes: expected error for short input")
	}
	if err := h.SetBytes(make([]byte, HashSize)); err != nil {
		t.Fatalf("SetBytes: unexpected error: %v", err)
	}
}

func TestHashIsEqual(t *testing.T) {
	var h1, h2 Hash
	h1[0] = 0x01
	if h1.IsEqual(&h2) {
		t.Fatal("IsEqual: distinct hashes reported equal")
	}
	h2[0] = 0x01
	if !h1.IsEqual(&h2) {
		t.Fatal("IsEqual: identical hashes reported distinct")
	}
	if !(*Hash)(nil).IsEqual(nil) {
		t.Fatal("IsEqual: both nil should be equal")
	}
	if h1.IsEqual(nil) {
		t.Fatal("IsEqual: non-nil vs nil should be unequal")
	}
}

func TestDecodeTooLong(t *testing.T) {
	long := make([]byte, MaxHashStringSize+2)
	for i := range long {
		long[i] = '0'
	}
	var h Hash
	if err := Decode(&h, string(long)); err != ErrHashStrSize {
		t.Fatalf("Decode: got error %v, want %v", err, ErrHashStrSize)
	}
}
