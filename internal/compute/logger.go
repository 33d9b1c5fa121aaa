// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compute

import (
	"log/slog"

	"github.com/gogpu/interop"
)

// slogger returns the shared logger. All logging in this package goes
// through this function.
func slogger() *slog.Logger { return interop.Logger() }
