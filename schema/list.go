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

// ListType is the non-null-by-default builder type for a list. The element type keeps whatever
// nullability it was built with; ListOf(String()) yields "[String!]!" while
// ListOf(String().Nullable()) yields "[String]!".
type ListType struct {
	engineType engine.Type
	nullable   *ListType
}

var _ OutputType = (*ListType)(nil)

// ListOf presents a list of the given element type as a non-null builder type.
func ListOf(elementType OutputType) *ListType {
	list := engine.MustNewListOfType(elementType.EngineType())

	nullable := &ListType{
		engineType: list,
	}
	nullable.nullable = nullable

	return &ListType{
		engineType: engine.MustNewNonNullOfType(list),
		nullable:   nullable,
	}
}

// EngineType implements OutputType.
func (t *ListType) EngineType() engine.Type {
	return t.engineType
}

// NullableType implements OutputType.
func (t *ListType) NullableType() OutputType {
	return t.nullable
}

// Nullable returns the variant of the list type that permits an absent value.
func (t *ListType) Nullable() *ListType {
	return t.nullable
}

// String returns the type notation, e.g. "[String!]!".
func (t *ListType) String() string {
	return t.engineType.String()
}
