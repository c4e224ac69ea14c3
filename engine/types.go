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
	"fmt"
)

// Type interfaces provided by an engine type.
type Type interface {
	// String representation when printing the type
	fmt.Stringer

	// engineType is a special mark to indicate a Type. It makes sure that only a set of object can
	// be assigned to Type.
	engineType()
}

// TypeWithName is implemented by the type definition for named type.
type TypeWithName interface {
	// Name of the defining type
	Name() string
}

// TypeWithDescription is implemented by the types that provides description.
type TypeWithDescription interface {
	// Description provides documentation for the type.
	Description() string
}

// WrappingType is a type that wraps another type. There are two wrapping types: List and NonNull.
type WrappingType interface {
	Type

	// UnwrappedType returns the type that is wrapped by this type.
	UnwrappedType() Type

	engineWrappingType()
}

// Deprecation contains information about deprecation for a field.
type Deprecation struct {
	// Reason provides a description of why the subject is deprecated.
	Reason string
}

// Defined returns true if the deprecation is active.
func (d *Deprecation) Defined() bool {
	return d != nil
}

//===----------------------------------------------------------------------------------------====//
// Scalar
//===----------------------------------------------------------------------------------------====//

// Scalar Type Definition
//
// The leaf values of any request and input values to arguments are Scalars and are defined with a
// name and a series of functions used to coerce values flowing in and out of the type.
type Scalar interface {
	Type
	TypeWithName
	TypeWithDescription

	// CoerceResultValue coerces the given value to be returned as result of field with the type.
	CoerceResultValue(value interface{}) (interface{}, error)

	// CoerceInputValue coerces values given to arguments and variables into eligible Go values for
	// the scalar.
	CoerceInputValue(value interface{}) (interface{}, error)

	// engineScalarType puts a special mark for scalar type.
	engineScalarType()
}

// ThisIsScalarType is required to be embedded in struct that intends to be a Scalar.
type ThisIsScalarType struct{}

// engineType implements Type.
func (*ThisIsScalarType) engineType() {}

// engineScalarType implements Scalar.
func (*ThisIsScalarType) engineScalarType() {}

//===----------------------------------------------------------------------------------------====//
// Object
//===----------------------------------------------------------------------------------------====//

// Object Type Definition
//
// Queries are hierarchical and composed, describing a tree of information. While Scalar types
// describe the leaf values of these hierarchical queries, Objects describe the intermediate
// levels.
type Object interface {
	Type
	TypeWithName
	TypeWithDescription

	// Fields in the object; the field list is built lazily on the first access.
	Fields() FieldList

	// TypePredicate decides whether a value belongs to this Object type. It may be nil when the
	// defining object doesn't provide one.
	TypePredicate() TypePredicate

	// engineObjectType puts a special mark for an Object type.
	engineObjectType()
}

// ThisIsObjectType is required to be embedded in struct that intends to be an Object.
type ThisIsObjectType struct{}

// engineType implements Type.
func (*ThisIsObjectType) engineType() {}

// engineObjectType implements Object.
func (*ThisIsObjectType) engineObjectType() {}

//===----------------------------------------------------------------------------------------====//
// List
//===----------------------------------------------------------------------------------------====//

// List Type Modifier
//
// A list is a wrapping type which points to another type. Lists are often created within the
// context of defining the fields of an object type.
type List interface {
	WrappingType

	// ElementType indicates the the type of the elements in the list.
	ElementType() Type

	// engineListType puts a special mark for a List type.
	engineListType()
}

// ThisIsListType is required to be embedded in struct that intends to be a List.
type ThisIsListType struct{}

// engineType implements Type.
func (*ThisIsListType) engineType() {}

// engineWrappingType implements WrappingType.
func (*ThisIsListType) engineWrappingType() {}

// engineListType implements List.
func (*ThisIsListType) engineListType() {}

//===----------------------------------------------------------------------------------------====//
// NonNull
//===----------------------------------------------------------------------------------------====//

// NonNull Type Modifier
//
// A non-null is a wrapping type which points to another type. Non-null types enforce that their
// values are never null and can ensure an error is raised if this ever occurs during a request. It
// is useful for fields which you can make a strong guarantee on non-nullability, for example
// usually the id field of a database row will never be null.
//
// Note: the enforcement of non-nullability occurs within the executor.
type NonNull interface {
	WrappingType

	// InnerType indicates the type of the element wrapped in this non-null type.
	InnerType() Type

	// engineNonNullType puts a special mark for an NonNull type.
	engineNonNullType()
}

// ThisIsNonNullType is required to be embedded in struct that intends to be a NonNull.
type ThisIsNonNullType struct{}

// engineType implements Type.
func (*ThisIsNonNullType) engineType() {}

// engineWrappingType implements WrappingType.
func (*ThisIsNonNullType) engineWrappingType() {}

// engineNonNullType implements NonNull.
func (*ThisIsNonNullType) engineNonNullType() {}

//===------------------------------------------------------------------------------------------===//
// Type Predication
//===------------------------------------------------------------------------------------------===//

// NamedTypeOf returns the given type if it is a non-wrapping type. Otherwise, return the
// underlying type of a wrapping type.
func NamedTypeOf(t Type) Type {
	for {
		switch ttype := t.(type) {
		case List:
			if ttype == nil {
				return nil
			}
			t = ttype.ElementType()

		case NonNull:
			if ttype == nil {
				return nil
			}
			t = ttype.InnerType()

		default:
			return t
		}
	}
}

// NullableTypeOf return the given type if it is not a non-null type. Otherwise, return the inner
// type of the non-null type.
func NullableTypeOf(t Type) Type {
	if t, ok := t.(NonNull); ok && t != nil {
		return t.InnerType()
	}
	return t
}

// IsInputType returns true if the given type is valid for values in input arguments and variables.
func IsInputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case Scalar:
		return true
	default:
		return false
	}
}

// IsOutputType returns true if the given type is valid for values in field output.
func IsOutputType(t Type) bool {
	switch NamedTypeOf(t).(type) {
	case Scalar, Object:
		return true
	default:
		return false
	}
}

// IsNullableType returns true if the type accepts null value.
func IsNullableType(t Type) bool {
	_, ok := t.(NonNull)
	return !ok
}

// IsNamedType returns true if the type is a non-wrapping type.
func IsNamedType(t Type) bool {
	return !IsWrappingType(t)
}

// The following predications are simple wrappers of type assertions to corresponding class. This
// makes the use of predications in "if" easily.

// IsWrappingType returns true if the given type is a wrapping type.
func IsWrappingType(t Type) bool {
	_, ok := t.(WrappingType)
	return ok
}

// IsScalarType returns true if the given type is a Scalar type.
func IsScalarType(t Type) bool {
	_, ok := t.(Scalar)
	return ok
}

// IsObjectType returns true if the given type is an Object type.
func IsObjectType(t Type) bool {
	_, ok := t.(Object)
	return ok
}

// IsListType returns true if the given type is a List type.
func IsListType(t Type) bool {
	_, ok := t.(List)
	return ok
}

// IsNonNullType returns true if the given type is a NonNull type.
func IsNonNullType(t Type) bool {
	_, ok := t.(NonNull)
	return ok
}
