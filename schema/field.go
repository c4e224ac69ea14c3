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
	"context"

	"github.com/selenegql/selene/engine"
)

// FieldResolver produces the value of a field from the source value of its enclosing object.
type FieldResolver interface {
	Resolve(ctx context.Context, source interface{}, args engine.ArgumentValues) (interface{}, error)
}

// FieldResolverFunc is an adapter to allow the use of ordinary functions as FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}, args engine.ArgumentValues) (interface{}, error)

// Resolve calls f(ctx, source, args).
func (f FieldResolverFunc) Resolve(ctx context.Context, source interface{}, args engine.ArgumentValues) (interface{}, error) {
	return f(ctx, source, args)
}

// ArgumentConfig provides definition of an argument accepted by a field.
type ArgumentConfig struct {
	// Description of the argument
	Description string

	// Type of the value that can be given to the argument
	Type InputType

	// DefaultValue specifies the value to be assigned when the argument is omitted. Use
	// engine.NilArgumentDefaultValue to set the default value to null.
	DefaultValue interface{}
}

// ArgumentConfigMap maps argument names to their definitions.
type ArgumentConfigMap map[string]ArgumentConfig

// FieldConfig provides the definition of a field for registration on an object type. The same
// config is accepted by both Field and FieldNonNull; the registration method, not the config,
// decides whether the field value may be absent.
type FieldConfig struct {
	// Name of the field. Each field on one object type must have a distinct name.
	Name string

	// Description of the field
	Description string

	// Type of the value yielded by the field, given eagerly with T or lazily with Thunk
	Type OutputTypeDefinition

	// Args is the definitions of the arguments accepted by the field.
	Args ArgumentConfigMap

	// Resolver computes the field value during execution.
	Resolver FieldResolver

	// Deprecation is non-nil when the field is deprecated.
	Deprecation *engine.Deprecation
}
