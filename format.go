// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz1x

package lz1x

// LZ10/LZ11 format constants.
const (
	TagLZ10         = 0x10           // Header tag of the fixed 2-byte back-reference variant.
	TagLZ11         = 0x11           // Header tag of the variable-width back-reference variant.
	HeaderSize      = 4              // Tag byte plus 24-bit little-endian decompressed size.
	MaxDeclaredSize = 1<<24 - 1      // Largest size the 24-bit header field can declare.
	WindowSize      = 4096           // Maximum back-reference distance (12 bits + 1).
	FlagBits        = 8              // Instructions per flag byte, consumed MSB first.
	MinMatch        = 3              // Shortest back-reference length in both variants.
	MaxMatchLZ10    = 0x0F + 3       // Longest LZ10 back-reference.
	MaxMatchLZ11    = 0xFFFF + 0x111 // Longest LZ11 back-reference (indicator 1 form).
)

// Variant identifies which back-reference encoding a stream uses.
type Variant uint8

// Supported variants; the value equals the header tag byte.
const (
	VariantLZ10 Variant = TagLZ10
	VariantLZ11 Variant = TagLZ11
)

// String returns "LZ10" or "LZ11".
func (v Variant) String() string {
	switch v {
	case VariantLZ10:
		return "LZ10"
	case VariantLZ11:
		return "LZ11"
	default:
		return "unknown"
	}
}
