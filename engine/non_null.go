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

// nonNull is our built-in implementation for NonNull.
type nonNull struct {
	ThisIsNonNullType
	innerType Type
	// notation is cached value for returning from String() and is initialized in constructor.
	notation string
}

var _ NonNull = (*nonNull)(nil)

// NewNonNullOfType defines a NonNull type wrapping the given inner type. The inner type must be a
// nullable one; wrapping a non-null type in another non-null is rejected.
func NewNonNullOfType(innerType Type) (NonNull, error) {
	if innerType == nil {
		return nil, NewError("Must provide an non-nil inner type for NonNull.")
	}
	if !IsNullableType(innerType) {
		return nil, NewError(fmt.Sprintf("Expected a nullable type for NonNull but got an %s.", innerType.String()))
	}

	return &nonNull{
		innerType: innerType,
		notation:  fmt.Sprintf("%s!", innerType.String()),
	}, nil
}

// MustNewNonNullOfType is a panic-on-fail version of NewNonNullOfType.
func MustNewNonNullOfType(innerType Type) NonNull {
	n, err := NewNonNullOfType(innerType)
	if err != nil {
		panic(err)
	}
	return n
}

// String implements fmt.Stringer.
func (n *nonNull) String() string {
	return n.notation
}

// InnerType implements NonNull.
func (n *nonNull) InnerType() Type {
	return n.innerType
}

// UnwrappedType implements WrappingType.
func (n *nonNull) UnwrappedType() Type {
	return n.innerType
}
