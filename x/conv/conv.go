// Package conv appends numbers to byte slices without fmt or strconv,
// which keeps MCU binaries small.
package conv

const hexDigits = "0123456789ABCDEF"

// AppendUint appends the base-10 form of n.
func AppendUint(b []byte, n uint64) []byte {
	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(b, buf[i:]...)
}

// AppendInt appends the base-10 form of n.
func AppendInt(b []byte, n int64) []byte {
	if n < 0 {
		b = append(b, '-')
		return AppendUint(b, uint64(-n))
	}
	return AppendUint(b, uint64(n))
}

// AppendHex appends n as upper-case hex with a 0x prefix, padded to
// digits nibbles.
func AppendHex(b []byte, n uint32, digits int) []byte {
	if digits < 1 || digits > 8 {
		digits = 8
	}
	b = append(b, '0', 'x')
	for i := digits - 1; i >= 0; i-- {
		b = append(b, hexDigits[(n>>(4*uint(i)))&0xF])
	}
	return b
}

// Itoa is AppendInt into a fresh string.
func Itoa(n int) string {
	var buf [20]byte
	return string(AppendInt(buf[:0], int64(n)))
}
