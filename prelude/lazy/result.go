package lazy

// Result is one element of a Stream: either a value or an error.
// Errors are not fatal to the stream; terminals decide what to do with them.
type Result[OUT any] struct {
	value OUT
	err   error
}

// Ok creates a successful Result containing the given value.
func Ok[OUT any](value OUT) Result[OUT] {
	return Result[OUT]{value: value}
}

// Err creates an error Result.
func Err[OUT any](err error) Result[OUT] {
	return Result[OUT]{err: err}
}

// IsValue reports whether the Result holds a value.
func (r Result[OUT]) IsValue() bool {
	return r.err == nil
}

// IsError reports whether the Result holds an error.
func (r Result[OUT]) IsError() bool {
	return r.err != nil
}

// Value returns the contained value, or the zero value for an error Result.
func (r Result[OUT]) Value() OUT {
	return r.value
}

// Error returns the contained error, or nil.
func (r Result[OUT]) Error() error {
	return r.err
}

// Unwrap returns the value and error together.
func (r Result[OUT]) Unwrap() (OUT, error) {
	return r.value, r.err
}

// retype carries an error Result across a change of element type.
func retype[IN, OUT any](r Result[IN]) Result[OUT] {
	return Err[OUT](r.err)
}
