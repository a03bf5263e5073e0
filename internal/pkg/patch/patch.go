package patch

// Coalesce resolves an optional PATCH field: the pointed-to value when the
// field was provided, otherwise the current value.
func Coalesce[T any](ptr *T, current T) T {
	if ptr == nil {
		return current
	}
	return *ptr
}
