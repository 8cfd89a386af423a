// Package query builds the query strings appended to navigation URLs.
//
// The host parses page query strings itself and expects values verbatim, so
// nothing here percent-encodes.
package query

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Stringify renders params as key=value pairs joined with '&', keys sorted.
// A nil value renders as the bare key. Slices repeat the key once per element.
func Stringify(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var pairs []string
	for _, k := range keys {
		v := params[k]
		if v == nil {
			pairs = append(pairs, k)
			continue
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			for i := 0; i < rv.Len(); i++ {
				elem := rv.Index(i).Interface()
				if elem == nil {
					pairs = append(pairs, k)
					continue
				}
				pairs = append(pairs, k+"="+fmt.Sprint(elem))
			}
			continue
		}
		pairs = append(pairs, k+"="+fmt.Sprint(v))
	}
	return strings.Join(pairs, "&")
}

// Append adds params to url, using '&' if url already carries a query.
func Append(url string, params map[string]any) string {
	qs := Stringify(params)
	if qs == "" {
		return url
	}
	if strings.Contains(url, "?") {
		return url + "&" + qs
	}
	return url + "?" + qs
}
