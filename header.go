// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz1x

package lz1x

import "fmt"

// Header is the 4-byte preamble of a compressed stream.
type Header struct {
	Variant Variant // Selected by the tag byte.
	Size    int     // Exact decompressed length (24-bit).
}

// ParseHeader reads the header from the beginning of src.
// An empty src or one shorter than HeaderSize yields ErrTruncatedHeader;
// a tag other than 0x10 or 0x11 yields ErrInvalidTag.
func ParseHeader(src []byte) (Header, error) {
	return readHeader(&sliceByteReader{data: src})
}

// Probe reports whether src starts with a well-formed header.
func Probe(src []byte) (Header, bool) {
	h, err := ParseHeader(src)
	if err != nil {
		return Header{}, false
	}

	return h, true
}

// readHeader consumes HeaderSize bytes from r.
func readHeader(r offsetByteReader) (Header, error) {
	tag, err := readByte(r, ErrTruncatedHeader)
	if err != nil {
		return Header{}, err
	}

	if tag != TagLZ10 && tag != TagLZ11 {
		return Header{}, fmt.Errorf("%w: 0x%02x", ErrInvalidTag, tag)
	}

	// Little-endian 24-bit size in bytes 1..3.
	size := 0
	for i := 0; i < HeaderSize-1; i++ {
		b, err := readByte(r, ErrTruncatedHeader)
		if err != nil {
			return Header{}, err
		}
		size |= int(b) << (8 * i)
	}

	return Header{Variant: Variant(tag), Size: size}, nil
}
