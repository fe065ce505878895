package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// PadTo returns a copy of s extended to length n, filling new slots with fill().
// The copy is never shorter than s.
func PadTo[S ~[]E, E any](s S, n int, fill func() E) S {
	out := make(S, len(s), max(len(s), n))
	copy(out, s)

	for len(out) < n {
		out = append(out, fill())
	}

	return out
}

// Map applies fn to each element and returns the results, stopping at the first error.
func Map[S ~[]E, E, R any](s S, fn func(E) (R, error)) ([]R, error) {
	out := make([]R, 0, len(s))

	for _, e := range s {
		r, err := fn(e)
		if err != nil {
			return nil, err
		}

		out = append(out, r)
	}

	return out, nil
}
