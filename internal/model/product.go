// Package model holds the product record persisted by the storage backends.
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// FieldID is the primary key attribute of every stored product.
const FieldID = "productID"

// ErrNotAnObject is returned by Decode when the JSON value is valid but is
// not an object (e.g. an array, a string, or null).
var ErrNotAnObject = errors.New("product must be a JSON object")

// Product is an untyped record. Only name and price are validated; every
// other attribute is passed through and persisted as-is.
type Product map[string]any

// ID returns the product's primary key, or "" when unset.
func (p Product) ID() string {
	id, _ := p[FieldID].(string)
	return id
}

// WithID returns a shallow copy of p whose primary key is id.
// Any productID already present in p is replaced.
func (p Product) WithID(id string) Product {
	out := make(Product, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out[FieldID] = id
	return out
}

// Decode parses a JSON object into a Product.
//
// Numbers are kept as json.Number so they re-encode exactly as received.
func Decode(data []byte) (Product, error) {
	// Unmarshal first so syntax errors (empty input, trailing data) carry
	// the standard library's messages.
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}
	return Product(obj), nil
}

// Encode marshals p to JSON.
func (p Product) Encode() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode product %q: %w", p.ID(), err)
	}
	return data, nil
}
