package cache

import "strings"

// Key identifies one logical query, for example
// Key{"transcriptions", "page=1&status=error"} or Key{"table-config", "transcriptions"}.
// The first element names the key family.
type Key []string

func (k Key) String() string {
	return strings.Join(k, "\x1f")
}

// Family is the first element of the key
func (k Key) Family() string {
	if len(k) == 0 {
		return ""
	}
	return k[0]
}

// HasPrefix reports whether k starts with every element of prefix
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}
