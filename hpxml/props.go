package hpxml

import "fmt"

// Props is a side table of transient runtime annotations attached to an
// entity. Props are never serialized and take no part in equality.
type Props map[string]any

// Get returns the property stored under key.
func (p Props) Get(key string) (any, error) {
	v, ok := p[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrPropertyNotSet)
	}

	return v, nil
}

// Has reports whether key is set.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// PropAs returns the property stored under key as a T.
func PropAs[T any](p Props, key string) (T, error) {
	var zero T

	v, err := p.Get(key)
	if err != nil {
		return zero, err
	}

	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%q holds %T, not %T: %w", key, v, zero, ErrInvalidValue)
	}

	return t, nil
}
