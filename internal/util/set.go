package util

// StringSet tracks a set of seen names. It backs the Semantic Analyzer's
// forward-declaration-only visibility rule (spec §4.3): a node, property,
// reference, or inheritance target is checked against the names seen so far.
type StringSet map[string]bool

// NewStringSet returns an empty StringSet.
func NewStringSet() StringSet {
	return StringSet{}
}

// Add records value as seen. Adding an already-seen value has no effect.
func (s StringSet) Add(value string) {
	s[value] = true
}

// Has reports whether value has been recorded.
func (s StringSet) Has(value string) bool {
	_, has := s[value]
	return has
}
