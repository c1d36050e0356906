package querystring

import (
	"strings"

	"github.com/PuerkitoBio/urlesc"
)

const (
	pairSeparator  = "&"
	valueSeparator = "="
	arraySuffix    = "[]"
	flagText       = "true"

	escapedDollar = "%24"
	dollar        = "$"
)

// Build serializes params into a query string without the leading '?'.
// Keys with a null value are skipped, flags are written as key=true and each
// list item becomes its own key[]=item pair.
func Build(params *Values) string {
	var pairs []string

	params.Each(func(key string, value Value) {
		k := encodeKey(key)

		switch value.Kind {
		case ValueKindNone:
		case ValueKindFlag:
			pairs = append(pairs, k+valueSeparator+flagText)
		case ValueKindList:
			for _, item := range value.List {
				pairs = append(pairs, k+arraySuffix+valueSeparator+encodeValue(item))
			}
		default:
			pairs = append(pairs, k+valueSeparator+encodeValue(value.Scalar))
		}
	})

	return strings.Join(pairs, pairSeparator)
}

// encodeKey escapes like encodeValue but leaves '$' alone.
func encodeKey(k string) string {
	return strings.ReplaceAll(urlesc.QueryEscape(k), escapedDollar, dollar)
}

func encodeValue(v string) string {
	return urlesc.QueryEscape(v)
}
