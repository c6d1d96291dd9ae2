// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/riecoin/riecoind/chaincfg/chainhash"
)

// ErrorKind identifies a kind of error in a way that can be programmatically
// checked with errors.Is.
type ErrorKind string

// Error satisfies the error interface and prints the kind as a human
// readable string.
func (e ErrorKind) Error() string {
	return string(e)
}

const (
	// ErrUnknownBlock indicates a lookup was attempted for a block hash that
	// is not present in the block index.
	ErrUnknownBlock = ErrorKind("ErrUnknownBlock")
)

// RuleError identifies an error related to blockchain rule validation. It has
// full support for errors.Is and errors.As, so the caller can programmatically
// determine the specific failure by examining the underlying error kind.
type RuleError struct {
	Err         ErrorKind
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	return e.Description
}

// Is implements the interface to work with the standard library's
// errors.Is.
func (e RuleError) Is(target error) bool {
	var err ErrorKind
	if e, ok := target.(RuleError); ok {
		err = e.Err
	} else if e, ok := target.(ErrorKind); ok {
		err = e
	} else {
		return false
	}
	return e.Err == err
}

// Unwrap returns the underlying wrapped error kind.
func (e RuleError) Unwrap() error {
	return e.Err
}

// unknownBlockError creates a RuleError identifying a lookup for a hash with
// no corresponding node in the block index.
func unknownBlockError(hash *chainhash.Hash) RuleError {
	return RuleError{
		Err:         ErrUnknownBlock,
		Description: fmt.Sprintf("block %s is not known", hash),
	}
}
