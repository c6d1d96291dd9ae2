// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2014-2018 The riecoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import "github.com/decred/slog"

// log is the package-level logger used throughout standalone. It is set to
// slog.Disabled by default so importers of this package never see log
// output unless their caller explicitly wires one in via UseLogger.
var log = slog.Disabled

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger slog.Logger) {
	log = logger
}
