/**
 * Copyright (c) 2026, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package engine

import (
	"context"
	"sync"
)

// TypePredicate decides whether a value belongs to the Object type that carries the predicate.
// Execution engines consult it when resolving values of abstract types into a concrete Object.
type TypePredicate interface {
	// Context carries deadlines and cancelation signals.
	//
	// Value is the value resolved for the position being examined.
	MatchesType(ctx context.Context, value interface{}) bool
}

// TypePredicateFunc is an adapter to allow the use of ordinary functions as TypePredicate.
type TypePredicateFunc func(ctx context.Context, value interface{}) bool

// MatchesType calls f(ctx, value).
func (f TypePredicateFunc) MatchesType(ctx context.Context, value interface{}) bool {
	return f(ctx, value)
}

// TypePredicateFunc implements TypePredicate.
var _ TypePredicate = TypePredicateFunc(nil)

// FieldsThunk supplies the field list of an Object. It is invoked lazily on the first access to
// the object's fields, never at construction time, so the fields may reference types that are
// still being defined when the object is created.
type FieldsThunk func() FieldList

// ObjectConfig provides specification to define an Object type.
type ObjectConfig struct {
	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// TypePredicate decides whether a value belongs to the defining Object (optional)
	TypePredicate TypePredicate

	// Fields supplies fields in the object; invoked lazily on first access
	Fields FieldsThunk
}

// object is our built-in implementation for Object. It is configured with and built from an
// ObjectConfig.
type object struct {
	ThisIsObjectType
	config ObjectConfig

	// once guards the one-time evaluation of config.Fields into fields.
	once   sync.Once
	fields FieldList
}

var _ Object = (*object)(nil)

// NewObject defines an Object type from an ObjectConfig. The field list remains unevaluated until
// the first call to Fields.
func NewObject(config ObjectConfig) (Object, error) {
	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.")
	}

	return &object{
		config: config,
	}, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead of
// returning an error.
func MustNewObject(config ObjectConfig) Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// String implements fmt.Stringer.
func (o *object) String() string {
	return o.config.Name
}

// Name implements TypeWithName.
func (o *object) Name() string {
	return o.config.Name
}

// Description implements TypeWithDescription.
func (o *object) Description() string {
	return o.config.Description
}

// TypePredicate implements Object.
func (o *object) TypePredicate() TypePredicate {
	return o.config.TypePredicate
}

// Fields implements Object. The field thunk given in the config is evaluated exactly once; every
// subsequent call returns the same field list.
func (o *object) Fields() FieldList {
	o.once.Do(func() {
		if o.config.Fields != nil {
			o.fields = o.config.Fields()
		}
	})
	return o.fields
}
