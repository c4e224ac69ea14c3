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
	"sync"

	"github.com/selenegql/selene/engine"
)

//===----------------------------------------------------------------------------------------====//
// ObjectConfig
//===----------------------------------------------------------------------------------------====//

// ObjectConfig provides the base specification of an object type. Fields are not part of the
// config; they are registered on the returned type value one at a time.
type ObjectConfig struct {
	// Name of the object type
	Name string

	// Description of the object type
	Description string

	// TypePredicate determines whether a value belongs to this type during execution of abstract
	// types. It may be omitted.
	TypePredicate engine.TypePredicate
}

//===----------------------------------------------------------------------------------------====//
// NullableObject
//===----------------------------------------------------------------------------------------====//

// NullableObject is the nullable view of an object type under construction. It owns the field
// definitions; the non-null Object view delegates to it.
//
// A NullableObject is immutable. AddField and AddFieldNonNull return a new NullableObject carrying
// the extended field list and never modify the receiver, so any previously obtained view of the
// type keeps describing exactly the fields it had when it was obtained.
type NullableObject struct {
	config ObjectConfig

	// fields in registration order; shared between derived values and never mutated in place
	fields []FieldConfig

	once       sync.Once
	engineType engine.Object
}

var _ OutputType = (*NullableObject)(nil)

func newNullableObject(config ObjectConfig, fields []FieldConfig) *NullableObject {
	return &NullableObject{
		config: config,
		fields: fields,
	}
}

// Name returns the name of the object type.
func (o *NullableObject) Name() string {
	return o.config.Name
}

// Description returns the description of the object type.
func (o *NullableObject) Description() string {
	return o.config.Description
}

// HasField returns true if a field with the given name has been registered on the type.
func (o *NullableObject) HasField(name string) bool {
	for i := range o.fields {
		if o.fields[i].Name == name {
			return true
		}
	}
	return false
}

// NumFields returns the number of fields registered on the type.
func (o *NullableObject) NumFields() int {
	return len(o.fields)
}

// AddField registers a field whose value may be absent and returns the extended type. The
// receiver is left untouched. It fails with a DuplicateFieldError if the type already has a field
// with the given name.
func (o *NullableObject) AddField(config FieldConfig) (*NullableObject, error) {
	if config.Type != nil {
		config.Type = nullableOfDefinition{def: config.Type}
	}
	return o.withField(config)
}

// MustAddField is a panic-on-error version of AddField.
func (o *NullableObject) MustAddField(config FieldConfig) *NullableObject {
	object, err := o.AddField(config)
	if err != nil {
		panic(err)
	}
	return object
}

// AddFieldNonNull registers a field whose value is guaranteed to be present and returns the
// extended type. The receiver is left untouched. It fails with a DuplicateFieldError if the type
// already has a field with the given name.
func (o *NullableObject) AddFieldNonNull(config FieldConfig) (*NullableObject, error) {
	return o.withField(config)
}

// MustAddFieldNonNull is a panic-on-error version of AddFieldNonNull.
func (o *NullableObject) MustAddFieldNonNull(config FieldConfig) *NullableObject {
	object, err := o.AddFieldNonNull(config)
	if err != nil {
		panic(err)
	}
	return object
}

func (o *NullableObject) withField(config FieldConfig) (*NullableObject, error) {
	if o.HasField(config.Name) {
		return nil, &DuplicateFieldError{
			TypeName:  o.Name(),
			FieldName: config.Name,
		}
	}

	// Copy on append so types derived earlier from the same base never observe the new field.
	fields := make([]FieldConfig, len(o.fields), len(o.fields)+1)
	copy(fields, o.fields)
	fields = append(fields, config)

	return newNullableObject(o.config, fields), nil
}

// Nullable returns the receiver. A NullableObject is already the nullable view of the type.
func (o *NullableObject) Nullable() *NullableObject {
	return o
}

// NonNull returns the non-null view of the same type.
func (o *NullableObject) NonNull() *Object {
	return &Object{nullable: o}
}

// EngineType implements OutputType. The engine object is created at most once per builder value;
// its field list is materialized lazily by the engine on first use (see materializeFields).
func (o *NullableObject) EngineType() engine.Type {
	return o.engineObject()
}

// NullableType implements OutputType.
func (o *NullableObject) NullableType() OutputType {
	return o
}

// String returns the type notation.
func (o *NullableObject) String() string {
	return o.config.Name
}

func (o *NullableObject) engineObject() engine.Object {
	o.once.Do(func() {
		o.engineType = engine.MustNewObject(engine.ObjectConfig{
			Name:          o.config.Name,
			Description:   o.config.Description,
			TypePredicate: o.config.TypePredicate,
			Fields:        o.materializeFields,
		})
	})
	return o.engineType
}

// materializeFields converts the registered field configs, in registration order, into the
// engine's field list. This is where type thunks are resolved and where the nullable transform
// requested by AddField is applied.
func (o *NullableObject) materializeFields() engine.FieldList {
	if len(o.fields) == 0 {
		return nil
	}

	fields := make(engine.FieldList, 0, len(o.fields))
	for _, config := range o.fields {
		var fieldType engine.Type
		if config.Type != nil {
			fieldType = config.Type.resolveOutputType().EngineType()
		}

		fields = append(fields, engine.MustNewField(config.Name, engine.FieldConfig{
			Description: config.Description,
			Type:        fieldType,
			Args:        materializeArguments(config.Args),
			Resolver:    materializeResolver(config.Resolver),
			Deprecation: config.Deprecation,
		}))
	}
	return fields
}

func materializeArguments(args ArgumentConfigMap) engine.ArgumentConfigMap {
	if len(args) == 0 {
		return nil
	}

	engineArgs := make(engine.ArgumentConfigMap, len(args))
	for name, config := range args {
		var argType engine.Type
		if config.Type != nil {
			argType = config.Type.EngineInputType()
		}
		engineArgs[name] = engine.ArgumentConfig{
			Description:  config.Description,
			Type:         argType,
			DefaultValue: config.DefaultValue,
		}
	}
	return engineArgs
}

func materializeResolver(resolver FieldResolver) engine.FieldResolver {
	if resolver == nil {
		return nil
	}
	return engine.FieldResolverFunc(
		func(ctx context.Context, source interface{}, args engine.ArgumentValues) (interface{}, error) {
			return resolver.Resolve(ctx, source, args)
		})
}

//===----------------------------------------------------------------------------------------====//
// Object
//===----------------------------------------------------------------------------------------====//

// Object is the non-null view of an object type under construction. It is the view handed out by
// NewObject; use Nullable for the explicit opt-out.
//
// Both views describe the same field set. Registering a field through either view yields a new
// type value and leaves every previously obtained view untouched.
type Object struct {
	nullable *NullableObject
}

var _ OutputType = (*Object)(nil)

// NewObject creates an object type from the given config with no fields registered.
func NewObject(config ObjectConfig) (*Object, error) {
	if len(config.Name) == 0 {
		return nil, engine.NewError("Must provide name for Object.")
	}
	return &Object{
		nullable: newNullableObject(config, nil),
	}, nil
}

// MustNewObject is a panic-on-error version of NewObject.
func MustNewObject(config ObjectConfig) *Object {
	object, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return object
}

// Name returns the name of the object type.
func (o *Object) Name() string {
	return o.nullable.Name()
}

// Description returns the description of the object type.
func (o *Object) Description() string {
	return o.nullable.Description()
}

// HasField returns true if a field with the given name has been registered on the type.
func (o *Object) HasField(name string) bool {
	return o.nullable.HasField(name)
}

// NumFields returns the number of fields registered on the type.
func (o *Object) NumFields() int {
	return o.nullable.NumFields()
}

// Field registers a field whose value may be absent and returns the extended type. The receiver
// is left untouched. It fails with a DuplicateFieldError if the type already has a field with the
// given name.
func (o *Object) Field(config FieldConfig) (*Object, error) {
	nullable, err := o.nullable.AddField(config)
	if err != nil {
		return nil, err
	}
	return nullable.NonNull(), nil
}

// MustField is a panic-on-error version of Field.
func (o *Object) MustField(config FieldConfig) *Object {
	object, err := o.Field(config)
	if err != nil {
		panic(err)
	}
	return object
}

// FieldNonNull registers a field whose value is guaranteed to be present and returns the extended
// type. The receiver is left untouched. It fails with a DuplicateFieldError if the type already
// has a field with the given name.
func (o *Object) FieldNonNull(config FieldConfig) (*Object, error) {
	nullable, err := o.nullable.AddFieldNonNull(config)
	if err != nil {
		return nil, err
	}
	return nullable.NonNull(), nil
}

// MustFieldNonNull is a panic-on-error version of FieldNonNull.
func (o *Object) MustFieldNonNull(config FieldConfig) *Object {
	object, err := o.FieldNonNull(config)
	if err != nil {
		panic(err)
	}
	return object
}

// Nullable returns the nullable view of the same type.
func (o *Object) Nullable() *NullableObject {
	return o.nullable
}

// EngineType implements OutputType.
func (o *Object) EngineType() engine.Type {
	return engine.MustNewNonNullOfType(o.nullable.engineObject())
}

// NullableType implements OutputType.
func (o *Object) NullableType() OutputType {
	return o.nullable
}

// String returns the type notation.
func (o *Object) String() string {
	return o.nullable.Name() + "!"
}
