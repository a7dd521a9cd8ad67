package carbon

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidInput is wrapped by every validation failure of the estimator.
// Callers test for it with errors.Is.
const ErrInvalidInput = constError("invalid input")
