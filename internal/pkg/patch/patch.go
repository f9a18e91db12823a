// Package patch holds helpers for partial updates where a nil pointer means "leave unchanged".
package patch

func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// AnySet reports whether at least one field of a group was supplied.
func AnySet[T any](ptrs ...*T) bool {
	for _, p := range ptrs {
		if p != nil {
			return true
		}
	}
	return false
}
