package comment

import (
	"fmt"
	"sort"
	"strings"
)

// PropSuppressDate is the recognized property that turns off timestamps in
// merge tags.
const PropSuppressDate = "suppressDate"

// Properties is a flat string-keyed generator configuration.
type Properties map[string]string

// Merge copies other into p, overwriting keys present in both.
func (p Properties) Merge(other Properties) {
	for k, v := range other {
		p[k] = v
	}
}

// Bool reports whether key is set to "true", ignoring case.
func (p Properties) Bool(key string) bool {
	return isTrue(p[key])
}

// Keys returns the property names in sorted order.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseProperties builds Properties from "key=value" pairs.
func ParseProperties(pairs []string) (Properties, error) {
	props := Properties{}
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid property %q (expected key=value)", pair)
		}
		props[k] = strings.TrimSpace(v)
	}
	return props, nil
}

func isTrue(s string) bool {
	return strings.EqualFold(s, "true")
}
