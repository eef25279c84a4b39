package domain

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// ClonePtr returns a pointer to a copy of *p, or nil when p is nil.
func ClonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CoalescePtr returns the first non-nil pointer from ptrs.
func CoalescePtr[T any](ptrs ...*T) *T {
	for _, p := range ptrs {
		if p != nil {
			return p
		}
	}
	return nil
}

// ValueOr returns *p, or fallback when p is nil.
func ValueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
