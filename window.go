// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz1x

package lz1x

import "fmt"

// window is the decode destination and the source of back-reference copies.
// Its length never exceeds limit.
type window struct {
	buf   []byte
	limit int
}

func newWindow(limit int) *window {
	return &window{buf: make([]byte, 0, limit), limit: limit}
}

func (w *window) len() int {
	return len(w.buf)
}

func (w *window) full() bool {
	return len(w.buf) >= w.limit
}

// append adds one literal byte. Callers check full before appending.
func (w *window) append(b byte) {
	w.buf = append(w.buf, b)
}

// copyBack replicates length bytes starting distance bytes behind the write position.
// Bytes are copied one at a time so a copy may read what it has just written
// (distance < length expands runs). Copying stops early once the window is full.
// It returns the number of bytes appended.
func (w *window) copyBack(distance, length int) (int, error) {
	if distance < 1 || distance > len(w.buf) {
		return 0, fmt.Errorf("%w: distance=%d output=%d", ErrInvalidBackReference, distance, len(w.buf))
	}

	n := 0
	for ; n < length && len(w.buf) < w.limit; n++ {
		w.buf = append(w.buf, w.buf[len(w.buf)-distance])
	}

	return n, nil
}

func (w *window) bytes() []byte {
	return w.buf
}
