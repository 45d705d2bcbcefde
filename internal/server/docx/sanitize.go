// Package docx prepares JSON documents for the store: values a client left
// unset must never reach a write as explicit nulls.
package docx

import "encoding/json"

// Sanitize returns a copy of doc with nil values dropped at every depth:
// nil map entries are removed and nil slice elements are skipped. Nested
// maps and slices are cleaned the same way.
func Sanitize(doc map[string]any) map[string]any {
	if doc == nil {
		return nil
	}
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if v == nil {
			continue
		}
		out[k] = sanitizeValue(v)
	}
	return out
}

func sanitizeValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return Sanitize(value)
	case []any:
		out := make([]any, 0, len(value))
		for _, item := range value {
			if item == nil {
				continue
			}
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return v
	}
}

// ToMap converts a struct into a generic document through its JSON form.
func ToMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FromMap decodes a generic document into dst.
func FromMap(doc map[string]any, dst any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

// Merge overlays patch onto base at the top level: every key present in the
// sanitized patch replaces the base value. base is modified and returned.
func Merge(base, patch map[string]any) map[string]any {
	if base == nil {
		base = make(map[string]any, len(patch))
	}
	for k, v := range Sanitize(patch) {
		base[k] = v
	}
	return base
}

// Encode marshals v as a stored document with every null removed.
func Encode(v any) ([]byte, error) {
	doc, err := ToMap(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Sanitize(doc))
}
