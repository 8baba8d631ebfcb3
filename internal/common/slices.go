package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// Remove returns s without any element equal to v, preserving order.
// The second result reports whether anything was removed.
func Remove[S ~[]E, E comparable](s S, v E) (S, bool) {
	out := s[:0:0]
	removed := false

	for _, e := range s {
		if e == v {
			removed = true
			continue
		}

		out = append(out, e)
	}

	if !removed {
		return s, false
	}

	return out, true
}

// Replace returns s with every occurrence of old replaced by repl.
// If repl is already present, occurrences of old are dropped instead so the
// result holds no duplicates introduced by the replacement.
func Replace[S ~[]E, E comparable](s S, old, repl E) S {
	has := false

	for _, e := range s {
		if e == repl {
			has = true
			break
		}
	}

	out := make(S, 0, len(s))

	for _, e := range s {
		switch {
		case e != old:
			out = append(out, e)
		case !has:
			out = append(out, repl)
			has = true
		}
	}

	return out
}
