package store

import "strconv"

// DefaultQuantity replaces quantity text that does not parse.
const DefaultQuantity = 1

// ParseQuantity turns raw quantity text into a quantity. Anything that is not
// a plain non-negative integer (letters, spaces, overflow, a minus sign)
// becomes DefaultQuantity. It never fails.
func ParseQuantity(text string) int {
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return DefaultQuantity
	}
	return n
}
