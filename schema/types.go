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

// OutputType is the capability contract required from types appearing in a field's output
// position.
type OutputType interface {
	// EngineType returns the engine representation of the type.
	EngineType() engine.Type

	// NullableType returns the variant of this type that permits an absent value. Calling it on a
	// type that is already nullable returns the identical type.
	NullableType() OutputType
}

// InputType is the capability contract required from types given to field arguments.
type InputType interface {
	// EngineInputType returns the engine representation of the type in input positions.
	EngineInputType() engine.Type
}

// NullableOf returns the variant of t that permits an absent value.
func NullableOf(t OutputType) OutputType {
	return t.NullableType()
}

// OutputTypeDefinition specifies the output type of a field when registering it. A definition is
// created either from an OutputType value at hand (see T) or from a thunk producing one (see
// Thunk). Thunks defer the type reference until the owning object is materialized for the engine,
// which permits forward and cyclic references between types defined in terms of each other.
type OutputTypeDefinition interface {
	// resolveOutputType resolves the definition into the type it denotes. It is called during
	// field materialization, never at registration time.
	resolveOutputType() OutputType
}

// outputTypeDefinitionOf wraps an OutputType value and implements OutputTypeDefinition.
type outputTypeDefinitionOf struct {
	t OutputType
}

var _ OutputTypeDefinition = outputTypeDefinitionOf{}

// resolveOutputType implements OutputTypeDefinition.
func (def outputTypeDefinitionOf) resolveOutputType() OutputType {
	return def.t
}

// T converts an OutputType into an OutputTypeDefinition for specifying the type of a field.
func T(t OutputType) OutputTypeDefinition {
	return outputTypeDefinitionOf{t: t}
}

// outputTypeDefinitionThunk wraps a thunk producing an OutputType and implements
// OutputTypeDefinition.
type outputTypeDefinitionThunk struct {
	thunk func() OutputType
}

var _ OutputTypeDefinition = outputTypeDefinitionThunk{}

// resolveOutputType implements OutputTypeDefinition.
func (def outputTypeDefinitionThunk) resolveOutputType() OutputType {
	return def.thunk()
}

// Thunk creates an OutputTypeDefinition which defers the type reference to the time the owning
// object type is materialized. Use it when the referenced type is not fully defined at the time
// the field is registered.
func Thunk(thunk func() OutputType) OutputTypeDefinition {
	return outputTypeDefinitionThunk{thunk: thunk}
}

// nullableOfDefinition wraps an OutputTypeDefinition and applies the "make nullable" transform to
// the type it resolves to. The transform runs at materialization time so the wrapped definition
// may reference a type that is still under construction when the field is registered.
type nullableOfDefinition struct {
	def OutputTypeDefinition
}

var _ OutputTypeDefinition = nullableOfDefinition{}

// resolveOutputType implements OutputTypeDefinition.
func (def nullableOfDefinition) resolveOutputType() OutputType {
	return def.def.resolveOutputType().NullableType()
}
