package querystring

import (
	"fmt"
	"net/url"
	"strings"
)

const queryPrefix = "?"

// Parse reads a query string, with or without its leading '?', into Values.
//
// A key without '=' is a flag, a key ending in "[]" collects every occurrence
// into a list, and any other repeated key keeps its last value. Parse never
// fails: a part with a malformed percent-escape is kept as written.
func Parse(qs string) *Values {
	v, _ := parse(qs, false)
	return v
}

// ParseStrict is Parse but reports the first malformed percent-escape.
func ParseStrict(qs string) (*Values, error) {
	return parse(qs, true)
}

func parse(qs string, strict bool) (*Values, error) {
	v := NewValues()

	qs = strings.TrimPrefix(qs, queryPrefix)
	for _, segment := range strings.Split(qs, pairSeparator) {
		if segment == "" {
			continue
		}

		rawKey, rawValue, hasValue := strings.Cut(segment, valueSeparator)

		key, err := decode(rawKey, strict)
		if err != nil {
			return nil, fmt.Errorf("invalid key in %q: %w", segment, err)
		}

		if key == "" {
			continue
		}

		value := Flag()
		if hasValue {
			s, err := decode(rawValue, strict)
			if err != nil {
				return nil, fmt.Errorf("invalid value in %q: %w", segment, err)
			}
			value = Scalar(s)
		}

		if base := strings.TrimSuffix(key, arraySuffix); base != key {
			v.Add(base, value.String())
			continue
		}

		v.Set(key, value)
	}

	return v, nil
}

func decode(s string, strict bool) (string, error) {
	d, err := url.QueryUnescape(s)
	if err != nil {
		if strict {
			return "", err
		}
		return s, nil
	}
	return d, nil
}
