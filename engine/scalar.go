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

// ScalarResultCoercer coerces result value into a value represented in the Scalar type.
type ScalarResultCoercer interface {
	// CoerceResultValue coerces the given value for the field to return.
	CoerceResultValue(value interface{}) (interface{}, error)
}

// CoerceScalarResultFunc is an adapter to allow the use of ordinary functions as
// ScalarResultCoercer.
type CoerceScalarResultFunc func(value interface{}) (interface{}, error)

// CoerceResultValue calls f(value).
func (f CoerceScalarResultFunc) CoerceResultValue(value interface{}) (interface{}, error) {
	return f(value)
}

// CoerceScalarResultFunc implements ScalarResultCoercer.
var _ ScalarResultCoercer = (CoerceScalarResultFunc)(nil)

// ScalarInputCoercer coerces values given to arguments and variables into a value represented in
// the Scalar type.
type ScalarInputCoercer interface {
	// CoerceInputValue coerces a scalar value appearing in an input position.
	CoerceInputValue(value interface{}) (interface{}, error)
}

// CoerceScalarInputFunc is an adapter to allow the use of ordinary functions as
// ScalarInputCoercer.
type CoerceScalarInputFunc func(value interface{}) (interface{}, error)

// CoerceInputValue calls f(value).
func (f CoerceScalarInputFunc) CoerceInputValue(value interface{}) (interface{}, error) {
	return f(value)
}

// CoerceScalarInputFunc implements ScalarInputCoercer.
var _ ScalarInputCoercer = (CoerceScalarInputFunc)(nil)

// defaultScalarInputCoercer is used for scalar that doesn't provide coercer for processing input
// values. It accepts the value as is.
type defaultScalarInputCoercer struct{}

// CoerceInputValue implements ScalarInputCoercer.
func (defaultScalarInputCoercer) CoerceInputValue(value interface{}) (interface{}, error) {
	return value, nil
}

// ScalarConfig provides specification to define a scalar type.
type ScalarConfig struct {
	// Name of the scalar type
	Name string

	// Description of the scalar type
	Description string

	// ResultCoercer serializes value for return in execution result
	ResultCoercer ScalarResultCoercer

	// InputCoercer parses input value given to the scalar field (optional)
	InputCoercer ScalarInputCoercer
}

// scalar is our built-in implementation for Scalar. It is configured with and built from a
// ScalarConfig.
type scalar struct {
	ThisIsScalarType

	name          string
	description   string
	resultCoercer ScalarResultCoercer
	inputCoercer  ScalarInputCoercer
}

var _ Scalar = (*scalar)(nil)

// NewScalar defines a scalar type from a ScalarConfig.
func NewScalar(config ScalarConfig) (Scalar, error) {
	// Must provide a name.
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.")
	}

	if config.ResultCoercer == nil {
		return nil, NewError(fmt.Sprintf("%v must provide ResultCoercer.", config.Name))
	}

	inputCoercer := config.InputCoercer
	if inputCoercer == nil {
		inputCoercer = defaultScalarInputCoercer{}
	}

	return &scalar{
		name:          config.Name,
		description:   config.Description,
		resultCoercer: config.ResultCoercer,
		inputCoercer:  inputCoercer,
	}, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead
// of returning an error.
func MustNewScalar(config ScalarConfig) Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// String implements fmt.Stringer.
func (s *scalar) String() string {
	return s.name
}

// Name implements TypeWithName.
func (s *scalar) Name() string {
	return s.name
}

// Description implements TypeWithDescription.
func (s *scalar) Description() string {
	return s.description
}

// CoerceResultValue implements Scalar.
func (s *scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	return s.resultCoercer.CoerceResultValue(value)
}

// CoerceInputValue implements Scalar.
func (s *scalar) CoerceInputValue(value interface{}) (interface{}, error) {
	return s.inputCoercer.CoerceInputValue(value)
}
