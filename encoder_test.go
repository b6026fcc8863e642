package lz1x

// compressForTest encodes src as an LZ10 or LZ11 stream using a greedy longest-match search.
// searchLimit bounds the backward distance examined; 0 emits literals only.
func compressForTest(v Variant, src []byte, searchLimit int) []byte {
	n := len(src)
	out := make([]byte, 0, HeaderSize+n+(n+7)/8)
	out = append(out, byte(v), byte(n), byte(n>>8), byte(n>>16))

	maxMatch := MaxMatchLZ10
	if v == VariantLZ11 {
		maxMatch = MaxMatchLZ11
	}

	limit := max(min(searchLimit, WindowSize), 0)

	bitCount := 0
	flagPos := 0

	i := 0
	for i < n {
		if bitCount == 0 {
			flagPos = len(out)
			out = append(out, 0)
		}

		// Find longest match within limit bytes back; the match may overlap position i.
		bestLen, bestOff := 0, 0
		for off := 1; off <= min(i, limit); off++ {
			length := 0
			for length < maxMatch && i+length < n && src[i+length-off] == src[i+length] {
				length++
			}

			if length > bestLen {
				bestLen, bestOff = length, off
				if bestLen == maxMatch {
					break
				}
			}
		}

		if bestLen >= MinMatch {
			out[flagPos] |= 0x80 >> bitCount
			out = appendBackrefForTest(out, v, bestOff, bestLen)
			i += bestLen
		} else {
			out = append(out, src[i])
			i++
		}

		bitCount = (bitCount + 1) % FlagBits
	}

	return out
}

// appendBackrefForTest emits the shortest encoding of (distance, length) for v.
func appendBackrefForTest(out []byte, v Variant, distance, length int) []byte {
	d := distance - 1
	if v == VariantLZ10 {
		return append(out, byte((length-3)<<4|d>>8), byte(d))
	}

	switch {
	case length <= 16:
		return append(out, byte((length-1)<<4|d>>8), byte(d))
	case length <= 0x110:
		m := length - 0x11
		return append(out, byte(m>>4), byte((m&0x0F)<<4|d>>8), byte(d))
	default:
		m := length - 0x111
		return append(out, byte(0x10|m>>12), byte(m>>4), byte((m&0x0F)<<4|d>>8), byte(d))
	}
}
