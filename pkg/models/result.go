package models

// Result is either a value or an error message, never both.
type Result[T any] struct {
	value T
	err   string
	ok    bool
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Fail wraps a failure message.
func Fail[T any](message string) Result[T] {
	return Result[T]{err: message}
}

// IsOK reports whether r holds a value.
func (r Result[T]) IsOK() bool {
	return r.ok
}

// Unwrap returns the value and an empty message, or the zero value and the
// failure message.
func (r Result[T]) Unwrap() (T, string) {
	return r.value, r.err
}
