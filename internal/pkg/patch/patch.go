package patch

// Coalesce returns the value pointed to by ptr when set, otherwise fallback.
// Partial update handlers use it to fold optional fields onto stored rows.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
