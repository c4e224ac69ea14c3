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

// Package schema provides a fluent builder for object types where both types and fields are
// non-null unless opted out.
//
// GraphQL-family type systems default fields and types to nullable. This package inverts the
// default so the common case requires no ceremony: NewObject returns an Object representing the
// non-null form of the type, Field registers a field whose value may be absent, FieldNonNull
// registers a field whose value is guaranteed present, and Nullable is the explicit opt-out that
// unwraps to the underlying NullableObject.
//
// Builder values are immutable. Every field registration returns a new type value and leaves the
// receiver untouched, so previously returned types are never retroactively altered and deriving
// two extensions from a shared base is safe:
//
//	user := schema.MustNewObject(schema.ObjectConfig{Name: "User"}).
//		MustFieldNonNull(schema.FieldConfig{
//			Name: "id",
//			Type: schema.T(schema.ID()),
//			Resolver: schema.FieldResolverFunc(resolveUserID),
//		}).
//		MustField(schema.FieldConfig{
//			Name: "nickname",
//			Type: schema.T(schema.String()),
//			Resolver: schema.FieldResolverFunc(resolveUserNickname),
//		})
//
// Field types may be supplied eagerly with T or lazily with Thunk; thunks are resolved exactly
// once, when the engine first asks for the object's fields, which permits mutually-recursive type
// graphs:
//
//	user = user.MustField(schema.FieldConfig{
//		Name: "bestFriend",
//		Type: schema.Thunk(func() schema.OutputType { return user }),
//		Resolver: schema.FieldResolverFunc(resolveBestFriend),
//	})
//
// Registering two fields with the same name on one type fails with DuplicateFieldError at the
// point of registration.
package schema
