// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/zx0

package zx0

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrTruncatedInput    = errors.New("compressed data stream ended prematurely")
	ErrReadFailure       = errors.New("failed to read compressed data")
	ErrInvalidLength     = errors.New("invalid copy length")
	ErrInvalidOffset     = errors.New("invalid back-reference offset")
	ErrNilReader         = errors.New("reader is nil")
	ErrNegativeMaxOutput = errors.New("max output size must be non-negative")
)
