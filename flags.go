// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz1x

package lz1x

// flagState holds the flag byte currently being consumed and how many of its
// instructions are still pending.
type flagState struct {
	bits      byte
	remaining int
}

// empty reports whether a new flag byte must be loaded.
func (f *flagState) empty() bool {
	return f.remaining == 0
}

func (f *flagState) load(b byte) {
	f.bits = b
	f.remaining = FlagBits
}

// next pops the most significant pending instruction: true is a back-reference, false a literal.
func (f *flagState) next() bool {
	f.remaining--
	return (f.bits>>f.remaining)&1 == 1
}
