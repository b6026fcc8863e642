// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz1x

package lz1x

import "errors"

// Package errors. Use errors.Is to match; returned errors may carry offsets via fmt.Errorf.
var (
	ErrTruncatedHeader      = errors.New("not enough data for header")
	ErrInvalidTag           = errors.New("invalid tag byte")
	ErrTruncatedStream      = errors.New("unexpected end of input before declared size")
	ErrInvalidBackReference = errors.New("back-reference points before start of output")
	ErrSizeMismatch         = errors.New("decompressed size mismatch")
	ErrNilReader            = errors.New("reader is nil")
)
