// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz1x

package lz1x

// backref is a decoded back-reference instruction.
type backref struct {
	distance int // Bytes behind the write position, >= 1.
	length   int // Bytes to replicate.
}

// readBackref decodes one back-reference for the given variant.
func readBackref(r offsetByteReader, v Variant) (backref, error) {
	if v == VariantLZ11 {
		return readBackrefLZ11(r)
	}

	return readBackrefLZ10(r)
}

// readBackrefLZ10 decodes the fixed form: [length-3:4 | distance-1:12], big-endian.
func readBackrefLZ10(r offsetByteReader) (backref, error) {
	b1, err := readByte(r, ErrTruncatedStream)
	if err != nil {
		return backref{}, err
	}
	b2, err := readByte(r, ErrTruncatedStream)
	if err != nil {
		return backref{}, err
	}

	return backref{
		length:   int(b1>>4) + 3,
		distance: (int(b1&0x0F)<<8 | int(b2)) + 1,
	}, nil
}

// readBackrefLZ11 decodes the variable form selected by the top nibble of the first byte:
//
//	0:    [0:4 | length-0x11:8 | distance-1:12]            3 bytes, length 0x11..0x110
//	1:    [1:4 | length-0x111:16 | distance-1:12]          4 bytes, length 0x111..0x10110
//	2-15: [length-1:4 | distance-1:12]                     2 bytes, length 3..16
func readBackrefLZ11(r offsetByteReader) (backref, error) {
	b1, err := readByte(r, ErrTruncatedStream)
	if err != nil {
		return backref{}, err
	}

	var ref backref
	var low byte // byte carrying the distance low bits

	switch indicator := b1 >> 4; indicator {
	case 0:
		b2, err := readByte(r, ErrTruncatedStream)
		if err != nil {
			return backref{}, err
		}
		ref.length = (int(b1)<<4 | int(b2>>4)) + 0x11
		low = b2

	case 1:
		b2, err := readByte(r, ErrTruncatedStream)
		if err != nil {
			return backref{}, err
		}
		b3, err := readByte(r, ErrTruncatedStream)
		if err != nil {
			return backref{}, err
		}
		ref.length = (int(b1&0x0F)<<12 | int(b2)<<4 | int(b3>>4)) + 0x111
		low = b3

	default:
		ref.length = int(indicator) + 1
		low = b1
	}

	last, err := readByte(r, ErrTruncatedStream)
	if err != nil {
		return backref{}, err
	}
	ref.distance = (int(low&0x0F)<<8 | int(last)) + 1

	return ref, nil
}
