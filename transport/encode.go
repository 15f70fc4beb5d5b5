// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/browserkit/browserkit/request"
)

// flattenParams folds a (possibly nested) request.Values tree into a
// flat list of field-name/value pairs using the bracketed-name
// convention browser form encoding has used since the earliest PHP
// days: a nested map under key "user" with a "name" field becomes
// "user[name]", and a list under key "tags" becomes "tags[]" repeated
// once per element.
//
// The result is sorted by field name so that request bodies are
// deterministic, which matters for tests asserting on raw body bytes.
func flattenParams(values request.Values) url.Values {
	out := url.Values{}
	for k, v := range values {
		flattenInto(out, k, v)
	}
	return out
}

func flattenInto(out url.Values, prefix string, v interface{}) {
	switch x := v.(type) {
	case nil:
		out.Add(prefix, "")
	case string:
		out.Add(prefix, x)
	case fmt.Stringer:
		out.Add(prefix, x.String())
	case request.Values:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenInto(out, prefix+"["+k+"]", x[k])
		}
	case map[string]interface{}:
		flattenInto(out, prefix, request.Values(x))
	case []string:
		for _, item := range x {
			out.Add(prefix+"[]", item)
		}
	case []interface{}:
		for _, item := range x {
			flattenInto(out, prefix+"[]", item)
		}
	default:
		out.Add(prefix, fmt.Sprint(x))
	}
}

// sortedKeys returns the url.Values.Encode-equivalent ordering but as
// a plain key slice, used when building a multipart body field-by-
// field rather than letting url.Values.Encode do it for us.
func sortedKeys(v url.Values) []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
