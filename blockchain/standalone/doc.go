// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package standalone provides the consensus-critical, allocation-light
primitives the proof-of-work core is built from, independent of any
particular block or chain representation:

  - the compact-target codec (CompactToBig / BigToCompact)
  - the prime-base builder (GeneratePrimeBase)
  - the prime constellation verifier (CheckProofOfWork)
  - the default probabilistic primality oracle (DefaultPrimalityOracle)
  - the superblock predicates and work function the retarget engine in
    package blockchain composes into next_work_required
  - the generic doubling/halving integer Nth-root search the retarget
    engine needs to invert the 9th-power work function

Every exported function here is a pure function of its arguments: no
I/O, nothing that blocks, and the only package-level state is the
UseLogger hook every dcrd-lineage package exposes for wiring in a
caller-chosen slog.Logger. This mirrors how dcrd-lineage nodes keep their
lowest-level proof-of-work math in a module with no dependency on the
higher-level chain or database packages.
*/
package standalone
