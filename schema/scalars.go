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

package schema

import (
	"github.com/selenegql/selene/engine"
)

// ScalarType presents an engine scalar as a builder type. Like every type in this package it is
// non-null by default; Nullable returns the sibling that permits an absent value. Both variants
// are allocated together by ScalarOf so Nullable never allocates and always returns the identical
// value for the identical receiver.
type ScalarType struct {
	engineType engine.Type
	nullable   *ScalarType
}

var (
	_ OutputType = (*ScalarType)(nil)
	_ InputType  = (*ScalarType)(nil)
)

// ScalarOf presents the given engine scalar as a non-null builder type.
func ScalarOf(scalar engine.Scalar) *ScalarType {
	nullable := &ScalarType{
		engineType: scalar,
	}
	// The nullable variant is its own nullable form.
	nullable.nullable = nullable

	return &ScalarType{
		engineType: engine.MustNewNonNullOfType(scalar),
		nullable:   nullable,
	}
}

// EngineType implements OutputType.
func (t *ScalarType) EngineType() engine.Type {
	return t.engineType
}

// EngineInputType implements InputType. Scalars are valid in both output and input positions.
func (t *ScalarType) EngineInputType() engine.Type {
	return t.engineType
}

// NullableType implements OutputType.
func (t *ScalarType) NullableType() OutputType {
	return t.nullable
}

// Nullable returns the variant of the scalar type that permits an absent value.
func (t *ScalarType) Nullable() *ScalarType {
	return t.nullable
}

// String returns the type notation, e.g. "String!".
func (t *ScalarType) String() string {
	return t.engineType.String()
}

var (
	intType     = ScalarOf(engine.Int())
	floatType   = ScalarOf(engine.Float())
	stringType  = ScalarOf(engine.String())
	booleanType = ScalarOf(engine.Boolean())
	idType      = ScalarOf(engine.ID())
)

// Int returns the non-null builder type for the Int scalar.
func Int() *ScalarType { return intType }

// Float returns the non-null builder type for the Float scalar.
func Float() *ScalarType { return floatType }

// String returns the non-null builder type for the String scalar.
func String() *ScalarType { return stringType }

// Boolean returns the non-null builder type for the Boolean scalar.
func Boolean() *ScalarType { return booleanType }

// ID returns the non-null builder type for the ID scalar.
func ID() *ScalarType { return idType }
