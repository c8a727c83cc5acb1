package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Properties is the flat key/value view every configuration format is
// reduced to. Nested mappings become dotted keys and lists become indexed
// keys ("classpath.0", "classpath.1").
type Properties map[string]string

// String returns the value of key, or def when it is absent.
func (p Properties) String(key, def string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Bool reports whether key is set to exactly "true".
func (p Properties) Bool(key string) bool {
	return strings.TrimSpace(p[key]) == "true"
}

// Items returns the values of key.0, key.1, ... up to the first gap.
func (p Properties) Items(key string) []string {
	var out []string
	for i := 0; ; i++ {
		v, ok := p[key+"."+strconv.Itoa(i)]
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// WithPrefix returns the entries whose key starts with prefix, keyed by the
// remainder. Entries with an empty remainder are skipped.
func (p Properties) WithPrefix(prefix string) map[string]string {
	out := map[string]string{}
	for k, v := range p {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		name := strings.TrimPrefix(k, prefix)
		if name == "" {
			continue
		}
		out[name] = v
	}
	return out
}

// flatten reduces a decoded document to Properties.
func flatten(doc any) (Properties, error) {
	out := Properties{}
	switch doc.(type) {
	case nil:
		return out, nil
	case map[string]any, map[any]any:
	default:
		return nil, fmt.Errorf("invalid config: top level must be a mapping, got %T", doc)
	}
	flattenInto(out, "", doc)
	return out, nil
}

func flattenInto(out Properties, prefix string, v any) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	switch t := v.(type) {
	case nil:
	case map[string]any:
		for k, child := range t {
			flattenInto(out, join(k), child)
		}
	case map[any]any:
		for k, child := range t {
			flattenInto(out, join(fmt.Sprint(k)), child)
		}
	case []any:
		for i, child := range t {
			flattenInto(out, join(strconv.Itoa(i)), child)
		}
	case string:
		out[prefix] = t
	case bool:
		out[prefix] = strconv.FormatBool(t)
	case float64:
		out[prefix] = strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		out[prefix] = strconv.FormatFloat(float64(t), 'f', -1, 32)
	case time.Time:
		out[prefix] = t.Format(time.RFC3339Nano)
	default:
		out[prefix] = fmt.Sprint(t)
	}
}
