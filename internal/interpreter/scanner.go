package interpreter

import "strconv"

// The scan functions below never look past the string they are given and
// always report how many bytes they consumed, so the dispatch loop can skip
// exactly the argument text and nothing more.

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func skipSpace(s string) int {
	n := 0
	for n < len(s) && isSpace(s[n]) {
		n++
	}
	return n
}

// atoi converts a run of digits (with optional sign) and saturates at the
// int32 range on overflow.
func atoi(text string) int {
	v, _ := strconv.ParseInt(text, 10, 32)
	return int(v)
}

// scanUint reads a non-negative decimal integer that starts at s[0].
func scanUint(s string) (v, n int, ok bool) {
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n == 0 {
		return 0, 0, false
	}
	return atoi(s[:n]), n, true
}

// scanInt reads an optionally signed decimal integer after any leading
// whitespace.
func scanInt(s string) (v, n int, ok bool) {
	n = skipSpace(s)
	start := n
	if n < len(s) && (s[n] == '+' || s[n] == '-') {
		n++
	}
	d, dn, ok := scanUint(s[n:])
	if !ok {
		return 0, 0, false
	}
	n += dn
	if s[start] == '-' {
		d = atoi(s[start:n])
	}
	return d, n, true
}

// scanPair reads "<int>,<int>" followed by optional whitespace. The comma
// must follow the first integer directly.
func scanPair(s string) (x, y, n int, ok bool) {
	x, n, ok = scanInt(s)
	if !ok || n >= len(s) || s[n] != ',' {
		return 0, 0, 0, false
	}
	n++
	y, yn, ok := scanInt(s[n:])
	if !ok {
		return 0, 0, 0, false
	}
	n += yn
	n += skipSpace(s[n:])
	return x, y, n, true
}
