package core

// utoa converts an unsigned integer to a string without the fmt package.
// Lightweight alternative for embedded builds.
func utoa(n uint32) string {
	return u64toa(uint64(n))
}

// u64toa converts a 64-bit unsigned integer to a string
func u64toa(n uint64) string {
	if n == 0 {
		return "0"
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	return string(buf)
}
