// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz1x

package lz1x

import (
	"errors"
	"fmt"
	"io"
)

// offsetByteReader is a byte reader that knows how many bytes it has handed out.
type offsetByteReader interface {
	io.ByteReader
	offset() int64
}

// sliceByteReader reads from a byte slice.
type sliceByteReader struct {
	data []byte // The byte slice to read from.
	pos  int    // The current position in the byte slice.
}

// countingByteReader reads from a byte reader and counts the number of bytes read.
type countingByteReader struct {
	base  io.ByteReader // The byte reader to read from.
	count int64         // The number of bytes read.
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

func (r *sliceByteReader) offset() int64 {
	return int64(r.pos)
}

// ReadByte reads a byte from the reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}

func (r *countingByteReader) offset() int64 {
	return r.count
}

// readByte reads one byte, translating io.EOF into eofErr annotated with the input offset.
// Other reader errors are returned as is.
func readByte(r offsetByteReader, eofErr error) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: offset=%d", eofErr, r.offset())
		}

		return 0, err
	}

	return b, nil
}
