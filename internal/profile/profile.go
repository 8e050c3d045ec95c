package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Profile is an immutable customer profile: one value per form field.
// Set returns a new Profile; the receiver is never modified.
type Profile struct {
	values map[string]any
}

// Default returns the profile the form is seeded with
func Default() Profile {
	values := make(map[string]any, len(schema))
	for _, f := range schema {
		values[f.Name] = f.Default
	}
	return Profile{values: values}
}

// Get returns the value held for name
func (p Profile) Get(name string) (any, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Set returns a copy of p with name set to value. All other fields keep
// their values. Values are not checked against the field's domain and names
// outside the schema are kept as well.
func (p Profile) Set(name string, value any) Profile {
	values := make(map[string]any, len(p.values)+1)
	for k, v := range p.values {
		values[k] = v
	}
	values[name] = value
	return Profile{values: values}
}

// Names returns the field names held by p: schema fields in wire order,
// then any extra names sorted.
func (p Profile) Names() []string {
	names := make([]string, 0, len(p.values))
	for _, f := range schema {
		if _, ok := p.values[f.Name]; ok {
			names = append(names, f.Name)
		}
	}
	var extra []string
	for k := range p.values {
		if _, known := schemaIndex[k]; !known {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Len returns the number of fields held
func (p Profile) Len() int {
	return len(p.values)
}

// MarshalJSON encodes the profile as a single JSON object with keys in
// Names() order.
func (p Profile) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(p.values[name])
		if err != nil {
			return nil, fmt.Errorf("failed to encode field %s: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseAssignment parses "name=value" into a field name and a value typed
// for that field. Names outside the schema keep the raw string.
func ParseAssignment(s string) (string, any, error) {
	name, raw, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("invalid assignment %q (want name=value)", s)
	}
	f, known := Lookup(name)
	if !known {
		return name, raw, nil
	}
	v, err := f.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", nil, err
	}
	return name, v, nil
}
