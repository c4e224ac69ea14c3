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

package schema_test

import (
	"github.com/selenegql/selene/engine"
	"github.com/selenegql/selene/schema"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Built-in scalar types", func() {
	It("returns the same instance on every access", func() {
		Expect(schema.String()).Should(BeIdenticalTo(schema.String()))
		Expect(schema.Int()).Should(BeIdenticalTo(schema.Int()))
		Expect(schema.Float()).Should(BeIdenticalTo(schema.Float()))
		Expect(schema.Boolean()).Should(BeIdenticalTo(schema.Boolean()))
		Expect(schema.ID()).Should(BeIdenticalTo(schema.ID()))
	})

	It("is non-null by default", func() {
		Expect(schema.String().EngineType().String()).Should(Equal("String!"))
		Expect(engine.IsNonNullType(schema.String().EngineType())).Should(BeTrue())
	})

	It("unwraps to the nullable variant", func() {
		nullableString := schema.String().Nullable()
		Expect(nullableString.EngineType()).Should(BeIdenticalTo(engine.String()))
		Expect(nullableString.EngineType().String()).Should(Equal("String"))
	})

	It("returns the identical nullable variant on every call", func() {
		Expect(schema.String().Nullable()).Should(BeIdenticalTo(schema.String().Nullable()))
	})

	It("makes unwrapping idempotent", func() {
		nullableString := schema.String().Nullable()
		Expect(nullableString.Nullable()).Should(BeIdenticalTo(nullableString))
	})

	It("is accepted in input positions", func() {
		Expect(schema.Int().EngineInputType().String()).Should(Equal("Int!"))
		Expect(schema.Int().Nullable().EngineInputType()).Should(BeIdenticalTo(engine.Int()))
	})
})

var _ = Describe("ListType", func() {
	It("is non-null by default and keeps the element nullability", func() {
		Expect(schema.ListOf(schema.String()).EngineType().String()).Should(Equal("[String!]!"))
		Expect(schema.ListOf(schema.String().Nullable()).EngineType().String()).Should(Equal("[String]!"))
	})

	It("unwraps to the nullable variant", func() {
		listOfString := schema.ListOf(schema.String())
		Expect(listOfString.Nullable().EngineType().String()).Should(Equal("[String!]"))
		Expect(listOfString.Nullable()).Should(BeIdenticalTo(listOfString.Nullable()))
		Expect(listOfString.Nullable().Nullable()).Should(BeIdenticalTo(listOfString.Nullable()))
	})

	It("nests", func() {
		matrix := schema.ListOf(schema.ListOf(schema.Int()))
		Expect(matrix.EngineType().String()).Should(Equal("[[Int!]!]!"))
	})
})

var _ = Describe("NullableOf", func() {
	It("applies the nullable transform through the OutputType interface", func() {
		Expect(schema.NullableOf(schema.String())).Should(BeIdenticalTo(schema.String().Nullable()))

		objectType := schema.MustNewObject(schema.ObjectConfig{Name: "Account"})
		Expect(schema.NullableOf(objectType)).Should(BeIdenticalTo(objectType.Nullable()))
	})
})
