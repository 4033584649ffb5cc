// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
)

// TagField is the discriminator key of an internally tagged JSON object.
const TagField = "type"

var (
	// ErrUnknownField indicates a JSON object key that the target type does
	// not declare.
	ErrUnknownField = errors.New("unknown field")
	// ErrMissingField indicates that a required key is absent.
	ErrMissingField = errors.New("missing field")
	// ErrMissingTag indicates a tagged object without a "type" key.
	ErrMissingTag = errors.New("missing type discriminator")
	// ErrTrailingData indicates bytes after the first JSON value.
	ErrTrailingData = errors.New("trailing data after json value")
	// ErrDuplicateField indicates an object that repeats a key.
	ErrDuplicateField = errors.New("duplicate field")
	// ErrNullValue indicates null where a value is required.
	ErrNullValue = errors.New("null value")
)

// Fields holds the undecoded members of a JSON object, keyed by field name.
type Fields map[string]json.RawMessage

// DecodeStrict unmarshals data into v, rejecting unknown object keys at
// every level handled by encoding/json, repeated keys at any depth and any
// data after the first value. Unknown keys are reported as
// [ErrUnknownField].
//
// encoding/json matches keys case-insensitively; types that need exact
// key matching decode through [DecodeObject].
func DecodeStrict(data []byte, v any) error {
	if err := checkDuplicateKeys(data); err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return classify(err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}

	return nil
}

// DecodeObject decodes the JSON object data into the struct v points to.
// Every key must equal a declared json name byte for byte and occur once.
// null is accepted only for pointer fields; a null document is rejected.
// Fields absent from data keep the values v already holds.
func DecodeObject(data []byte, v any) error {
	fields, err := ObjectFields(data)
	if err != nil {
		return err
	}
	return fields.DecodeInto(v)
}

// ObjectFields splits a JSON object into its fields without decoding them.
// A null document and repeated keys are errors.
func ObjectFields(data []byte) (Fields, error) {
	if isNull(data) {
		return nil, fmt.Errorf("%w: expected an object", ErrNullValue)
	}
	if err := checkDuplicateKeys(data); err != nil {
		return nil, err
	}

	var fields Fields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// checkDuplicateKeys walks the first value in data and rejects any object
// that repeats a key.
func checkDuplicateKeys(data []byte) error {
	return scanValue(json.NewDecoder(bytes.NewReader(data)))
}

func scanValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}

	switch delim {
	case '{':
		seen := make(map[string]struct{})
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return err
			}
			key, _ := keyTok.(string)
			if _, dup := seen[key]; dup {
				return fmt.Errorf("%w %q", ErrDuplicateField, key)
			}
			seen[key] = struct{}{}

			if err := scanValue(dec); err != nil {
				return err
			}
		}
	case '[':
		for dec.More() {
			if err := scanValue(dec); err != nil {
				return err
			}
		}
	}

	// closing delimiter
	_, err = dec.Token()
	return err
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// objectSchema maps each json name declared by the struct type t to
// whether the field accepts null.
func objectSchema(t reflect.Type) map[string]bool {
	schema := make(map[string]bool, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}
		schema[name] = field.Type.Kind() == reflect.Pointer
	}
	return schema
}

// classify maps the unknown-field error of encoding/json, which has no
// exported type, onto [ErrUnknownField].
func classify(err error) error {
	const prefix = "json: unknown field "
	if msg := err.Error(); strings.HasPrefix(msg, prefix) {
		return fmt.Errorf("%w %s", ErrUnknownField, strings.TrimPrefix(msg, prefix))
	}
	return err
}

// SplitTagged decodes an internally tagged object and returns its
// discriminator together with the remaining fields.
func SplitTagged(data []byte) (string, Fields, error) {
	fields, err := ObjectFields(data)
	if err != nil {
		return "", nil, err
	}

	raw, ok := fields[TagField]
	if !ok {
		return "", nil, ErrMissingTag
	}
	if isNull(raw) {
		return "", nil, fmt.Errorf("%w for %q", ErrNullValue, TagField)
	}

	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil {
		return "", nil, fmt.Errorf("decode %q: %w", TagField, err)
	}
	delete(fields, TagField)

	return tag, fields, nil
}

// Require returns [ErrMissingField] for the first name absent from f.
func (f Fields) Require(names ...string) error {
	for _, name := range names {
		if _, ok := f[name]; !ok {
			return fmt.Errorf("%w %q", ErrMissingField, name)
		}
	}
	return nil
}

// RejectAll returns [ErrUnknownField] when f is not empty. Used by variants
// that carry no fields.
func (f Fields) RejectAll() error {
	if len(f) == 0 {
		return nil
	}

	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	slices.Sort(names)

	return fmt.Errorf("%w %q", ErrUnknownField, names[0])
}

// DecodeInto strictly decodes f into v. When v points to a struct, every
// key of f must be one of its declared json names, spelled exactly, and
// only pointer fields may be null. v keeps its current values for keys
// that f does not carry, so callers pre-populate defaults.
func (f Fields) DecodeInto(v any) error {
	if err := f.checkSchema(reflect.TypeOf(v)); err != nil {
		return err
	}
	if f == nil {
		f = Fields{}
	}

	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return DecodeStrict(data, v)
}

func (f Fields) checkSchema(t reflect.Type) error {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	slices.Sort(names)

	schema := objectSchema(t)
	for _, name := range names {
		nullable, ok := schema[name]
		if !ok {
			return fmt.Errorf("%w %q", ErrUnknownField, name)
		}
		if !nullable && isNull(f[name]) {
			return fmt.Errorf("%w for %q", ErrNullValue, name)
		}
	}
	return nil
}

// MarshalTagged encodes variant as a JSON object and adds the "type"
// discriminator. A nil variant yields an object holding only the tag.
func MarshalTagged(tag string, variant any) ([]byte, error) {
	fields := Fields{}

	if variant != nil {
		data, err := json.Marshal(variant)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &fields); err != nil {
			return nil, fmt.Errorf("tagged variant %q is not an object: %w", tag, err)
		}
	}

	if _, clash := fields[TagField]; clash {
		return nil, fmt.Errorf("tagged variant %q declares a %q field", tag, TagField)
	}

	rawTag, err := json.Marshal(tag)
	if err != nil {
		return nil, err
	}
	fields[TagField] = rawTag

	return json.Marshal(fields)
}
