package options

// Range describes data that has a lower and upper bound
type Range interface {
	// From returns the lower bound literal
	// The return value may be empty so From follows the "comma ok" idiom
	From() (string, bool)
	// To returns the upper bound literal
	// The return value may be empty so To follows the "comma ok" idiom
	To() (string, bool)
}
