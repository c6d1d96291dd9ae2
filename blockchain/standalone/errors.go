// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"fmt"
	"math/big"
)

// ErrorKind identifies a kind of proof-of-work verification error. It
// implements the error interface so it can be directly compared to
// determine the kind of failure via errors.Is without needing to resort to
// type assertions.
type ErrorKind string

// These constants are used to identify a specific ErrorKind. See spec.md §7
// for the full taxonomy; each one maps to exactly one verification failure
// mode and is never retryable.
const (
	// ErrOffsetOutOfRange indicates the candidate offset exceeds the
	// range permitted by the trailing zero count implied by the
	// difficulty, on a network that enforces the bound.
	ErrOffsetOutOfRange = ErrorKind("ErrOffsetOutOfRange")

	// ErrWrongResidue indicates the candidate base plus offset is not
	// congruent to 97 modulo 210, so it cannot possibly begin a valid
	// six-member constellation.
	ErrWrongResidue = ErrorKind("ErrWrongResidue")

	// ErrNotPrime indicates one member of the candidate constellation
	// failed a primality test.
	ErrNotPrime = ErrorKind("ErrNotPrime")

	// ErrMalformedCompact indicates a compact-encoded value set the sign
	// bit this core does not support.
	ErrMalformedCompact = ErrorKind("ErrMalformedCompact")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// PowError identifies an error related to proof-of-work verification. It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for failure by checking the underlying error kind.
type PowError struct {
	Err ErrorKind

	// Offset identifies which constellation member (as its offset from
	// the base: 0, 4, 6, 10, 12, or 16) failed primality. Only
	// meaningful when Err is ErrNotPrime.
	Offset uint8

	// Witnesses records the witness count (k) of the primality round
	// that failed. Only meaningful when Err is ErrNotPrime.
	Witnesses uint8

	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e PowError) Error() string {
	return e.Description
}

// Is implements the interface to work with the standard library's
// errors.Is.
func (e PowError) Is(target error) bool {
	var err ErrorKind
	if e, ok := target.(PowError); ok {
		err = e.Err
	} else if e, ok := target.(ErrorKind); ok {
		err = e
	} else {
		return false
	}
	return e.Err == err
}

// Unwrap returns the underlying wrapped error kind.
func (e PowError) Unwrap() error {
	return e.Err
}

// offsetOutOfRangeErr creates a PowError identifying that a candidate offset
// exceeded the bound implied by the trailing zero count.
func offsetOutOfRangeErr(delta, limit *big.Int) PowError {
	return PowError{
		Err:         ErrOffsetOutOfRange,
		Description: fmt.Sprintf("candidate offset %s is not less than the allowed bound %s", delta.String(), limit.String()),
	}
}

// wrongResidueErr creates a PowError identifying a failed residue-class
// check.
func wrongResidueErr(got int64) PowError {
	return PowError{
		Err:         ErrWrongResidue,
		Description: fmt.Sprintf("base+delta mod 210 = %d, want 97", got),
	}
}

// malformedCompactErr creates a PowError identifying a compact value with
// its sign bit set.
func malformedCompactErr(compact uint32) PowError {
	return PowError{
		Err:         ErrMalformedCompact,
		Description: fmt.Sprintf("compact value %08x has the sign bit set", compact),
	}
}

// notPrimeErr creates a PowError identifying which constellation member
// failed primality testing and at which witness pass.
func notPrimeErr(offset, witnesses uint8) PowError {
	return PowError{
		Err:         ErrNotPrime,
		Offset:      offset,
		Witnesses:   witnesses,
		Description: fmt.Sprintf("constellation member at offset %d is not prime (k=%d)", offset, witnesses),
	}
}
