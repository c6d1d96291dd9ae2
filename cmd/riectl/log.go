// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
	"github.com/riecoin/riecoind/blockchain"
	"github.com/riecoin/riecoind/blockchain/standalone"
)

// logRotator is one of the logging outputs. It should be closed before the
// application exits.
var logRotator *rotator.Rotator

// logWriter implements an io.Writer that outputs to both standard output
// and the log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// backendLog is the logging backend used to create all subsystem loggers.
// Subsystem loggers created from this backend always report the same
// version of the application and never need to agree on their output
// location separately.
var backendLog = slog.NewBackend(logWriter{})

// subsystemLoggers maps each subsystem identifier to its associated logger,
// so UseLogger hooks in library packages can be wired from a single place.
var subsystemLoggers = map[string]slog.Logger{
	"RIEC": log,
	"CHNG": chainLog,
	"STDA": standaloneLog,
}

// log is the logger used by the riectl application itself.
var log = backendLog.Logger("RIEC")

// chainLog is the logger registered with package blockchain.
var chainLog = backendLog.Logger("CHNG")

// standaloneLog is the logger registered with package
// blockchain/standalone.
var standaloneLog = backendLog.Logger("STDA")

func init() {
	blockchain.UseLogger(chainLog)
	standalone.UseLogger(standaloneLog)
}

// initLogRotator initializes the logging rotator to write logs to logFile
// and create roll files in the same directory. It must be called before
// the package-level log rotator variable is used.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logRotator = r
	return nil
}

// setLogLevel sets the logging level for provided subsystem. Invalid
// subsystems are ignored.
func setLogLevel(subsystemID string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}
	level, _ := slog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// setLogLevels sets the log level for all subsystems to the passed level.
func setLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		setLogLevel(subsystemID, logLevel)
	}
}
