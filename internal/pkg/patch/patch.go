// Package patch holds helpers for partial updates, where a nil pointer means "leave as is".
package patch

// Coalesce returns *ptr, or fallback when ptr is nil.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Map converts a present value and keeps an absent one absent.
func Map[T, U any](ptr *T, f func(T) U) *U {
	if ptr == nil {
		return nil
	}
	v := f(*ptr)
	return &v
}
