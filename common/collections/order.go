package collections

// Order is implemented by things that know their position in a collection.
type Order interface {
	// Ordinal is a zero-based ordinal that represents the order of an object
	// in a collection.
	Ordinal() int
}

// CompareOrdinals returns -1, 0 or 1 as the ordinal of a is less than,
// equal to or greater than the ordinal of b.
func CompareOrdinals(a, b Order) int {
	o1, o2 := a.Ordinal(), b.Ordinal()
	switch {
	case o1 < o2:
		return -1
	case o1 > o2:
		return 1
	}
	return 0
}
