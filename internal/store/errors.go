package store

type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidRecord is returned for records that cannot be stored.
const ErrInvalidRecord = constError("invalid record")
