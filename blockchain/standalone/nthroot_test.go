// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"math/big"
	"testing"
)

func TestIntegerNthRootSmallInitial(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		root int
		want int64
	}{
		// 2^9 = 512 exactly, so the greatest r with r^9 <= 512 is 2.
		{"exact ninth power", 512, 9, 2},
		// One below a perfect ninth power: still floors to 1, since
		// 2^9 = 512 > 511.
		{"just under exact power", 511, 9, 1},
		{"square root of nine", 9, 2, 3},
		{"cube root of eight", 8, 3, 2},
	}

	for _, test := range tests {
		got := IntegerNthRoot(big.NewInt(test.n), test.root, big.NewInt(1))
		want := big.NewInt(test.want)
		if got.Cmp(want) != 0 {
			t.Errorf("%s: IntegerNthRoot(%d, %d, 1) = %s, want %d",
				test.name, test.n, test.root, got, test.want)
		}
	}
}

func TestIntegerNthRootLargeInitialConverges(t *testing.T) {
	// Exercises the realistic retarget path: initial is already close to
	// the true root, and the search must still land exactly on it
	// regardless of which side of the true root initial starts on.
	diff := big.NewInt(1_000_000)
	work := new(big.Int).Set(diff)
	for i := 1; i < 9; i++ {
		work.Mul(work, diff)
	}

	got := IntegerNthRoot(work, 9, big.NewInt(900_000))
	if got.Cmp(diff) != 0 {
		t.Fatalf("IntegerNthRoot from below: got %s, want %s", got, diff)
	}

	got = IntegerNthRoot(work, 9, big.NewInt(1_100_000))
	if got.Cmp(diff) != 0 {
		t.Fatalf("IntegerNthRoot from above: got %s, want %s", got, diff)
	}
}

func TestIntegerNthRootResultSatisfiesBound(t *testing.T) {
	n := big.NewInt(123456789)
	root := 9
	got := IntegerNthRoot(n, root, big.NewInt(1))

	pow := func(base *big.Int) *big.Int {
		r := new(big.Int).Set(base)
		for i := 1; i < root; i++ {
			r.Mul(r, base)
		}
		return r
	}

	if pow(got).Cmp(n) > 0 {
		t.Fatalf("result %s to the %dth power exceeds n=%s", got, root, n)
	}
	next := new(big.Int).Add(got, big.NewInt(1))
	if pow(next).Cmp(n) <= 0 {
		t.Fatalf("result %s is not the greatest root: %s+1 also satisfies the bound", got, got)
	}
}
