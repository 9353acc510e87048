package ptr

// To returns a pointer to v. Used by catalog literals where nil means
// "derive the rate from the adult rate".
func To[T any](v T) *T {
	return &v
}

// Deref returns the pointed-to value or the fallback when p is nil.
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
