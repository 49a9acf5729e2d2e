package classify

import "unicode"

// ToLowerASCII maps A-Z to a-z and leaves every other code-point unchanged.
func ToLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

// ToUpperASCII maps a-z to A-Z and leaves every other code-point unchanged.
func ToUpperASCII(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// IsLowerASCII is true for a-z.
func IsLowerASCII(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// IsUpperASCII is true for A-Z.
func IsUpperASCII(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// ToLower maps r to lower case. ASCII is mapped exactly as ToLowerASCII does,
// other code-points use the simple case mapping of the Unicode character
// database.
func ToLower(r rune) rune {
	if r < 0x80 {
		return ToLowerASCII(r)
	}
	return unicode.ToLower(r)
}

// ToUpper maps r to upper case. ASCII is mapped exactly as ToUpperASCII does,
// other code-points use the simple case mapping of the Unicode character
// database.
func ToUpper(r rune) rune {
	if r < 0x80 {
		return ToUpperASCII(r)
	}
	return unicode.ToUpper(r)
}

// IsLower reports whether r is a lower case letter.
func IsLower(r rune) bool {
	if r < 0x80 {
		return IsLowerASCII(r)
	}
	return unicode.IsLower(r)
}

// IsUpper reports whether r is an upper case letter.
func IsUpper(r rune) bool {
	if r < 0x80 {
		return IsUpperASCII(r)
	}
	return unicode.IsUpper(r)
}
