// Package conv formats integers without fmt or strconv so MCU builds stay small.
package conv

const hexDigits = "0123456789abcdef"

// AppendUint appends the base-10 form of n to dst.
func AppendUint(dst []byte, n uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}

// AppendInt appends the base-10 form of n to dst, with a leading '-' when negative.
func AppendInt(dst []byte, n int64) []byte {
	if n < 0 {
		dst = append(dst, '-')
		return AppendUint(dst, uint64(-n))
	}
	return AppendUint(dst, uint64(n))
}

// AppendHex8 appends b as "0x" followed by two lowercase hex digits.
func AppendHex8(dst []byte, b uint8) []byte {
	return append(dst, '0', 'x', hexDigits[b>>4], hexDigits[b&0xF])
}

// AppendMillis appends a duration given in nanoseconds as whole milliseconds plus "ms".
func AppendMillis(dst []byte, ns int64) []byte {
	return append(AppendInt(dst, ns/1_000_000), 'm', 's')
}
