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

// list is our built-in implementation for List.
type list struct {
	ThisIsListType
	elementType Type
	// notation is cached value for returning from String() and is initialized in constructor.
	notation string
}

var _ List = (*list)(nil)

// NewListOfType defines a List type from a given Type of element type.
func NewListOfType(elementType Type) (List, error) {
	if elementType == nil {
		return nil, NewError("Must provide an non-nil element type for List.")
	}

	return &list{
		elementType: elementType,
		notation:    fmt.Sprintf("[%s]", elementType.String()),
	}, nil
}

// MustNewListOfType is a panic-on-fail version of NewListOfType.
func MustNewListOfType(elementType Type) List {
	l, err := NewListOfType(elementType)
	if err != nil {
		panic(err)
	}
	return l
}

// String implements fmt.Stringer.
func (l *list) String() string {
	return l.notation
}

// ElementType implements List.
func (l *list) ElementType() Type {
	return l.elementType
}

// UnwrappedType implements WrappingType.
func (l *list) UnwrappedType() Type {
	return l.elementType
}
