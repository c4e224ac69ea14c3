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

package engine_test

import (
	"context"

	"github.com/selenegql/selene/engine"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Object", func() {
	It("defines a type with name and description", func() {
		objectType, err := engine.NewObject(engine.ObjectConfig{
			Name:        "Address",
			Description: "A postal address",
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(objectType.Name()).Should(Equal("Address"))
		Expect(objectType.Description()).Should(Equal("A postal address"))
		Expect(objectType.String()).Should(Equal("Address"))
		Expect(engine.IsObjectType(objectType)).Should(BeTrue())
	})

	It("rejects creating type without name", func() {
		_, err := engine.NewObject(engine.ObjectConfig{})
		Expect(err).Should(MatchError("Must provide name for Object."))

		Expect(func() {
			engine.MustNewObject(engine.ObjectConfig{})
		}).Should(Panic())
	})

	It("accepts creating type without fields", func() {
		objectType := engine.MustNewObject(engine.ObjectConfig{
			Name: "Empty",
		})
		Expect(objectType.Fields()).Should(BeEmpty())
	})

	It("carries the type predicate given in the config", func() {
		type city struct{}

		objectType := engine.MustNewObject(engine.ObjectConfig{
			Name: "City",
			TypePredicate: engine.TypePredicateFunc(func(ctx context.Context, value interface{}) bool {
				_, ok := value.(*city)
				return ok
			}),
		})

		predicate := objectType.TypePredicate()
		Expect(predicate).ShouldNot(BeNil())
		Expect(predicate.MatchesType(context.Background(), &city{})).Should(BeTrue())
		Expect(predicate.MatchesType(context.Background(), "not a city")).Should(BeFalse())
	})

	Describe("field list", func() {
		It("does not evaluate the fields thunk at definition time", func() {
			numCalls := 0
			engine.MustNewObject(engine.ObjectConfig{
				Name: "LazyObject",
				Fields: func() engine.FieldList {
					numCalls++
					return nil
				},
			})
			Expect(numCalls).Should(Equal(0))
		})

		It("evaluates the fields thunk exactly once", func() {
			numCalls := 0
			objectType := engine.MustNewObject(engine.ObjectConfig{
				Name: "LazyObject",
				Fields: func() engine.FieldList {
					numCalls++
					return engine.FieldList{
						engine.MustNewField("id", engine.FieldConfig{
							Type: engine.MustNewNonNullOfType(engine.ID()),
						}),
					}
				},
			})

			Expect(objectType.Fields().Names()).Should(Equal([]string{"id"}))
			Expect(objectType.Fields().Names()).Should(Equal([]string{"id"}))
			Expect(numCalls).Should(Equal(1))
		})

		It("retains the order in which fields were supplied", func() {
			objectType := engine.MustNewObject(engine.ObjectConfig{
				Name: "Image",
				Fields: func() engine.FieldList {
					return engine.FieldList{
						engine.MustNewField("url", engine.FieldConfig{
							Type: engine.MustNewNonNullOfType(engine.String()),
						}),
						engine.MustNewField("width", engine.FieldConfig{
							Type: engine.Int(),
						}),
						engine.MustNewField("height", engine.FieldConfig{
							Type: engine.Int(),
						}),
					}
				},
			})

			fields := objectType.Fields()
			Expect(fields.Names()).Should(Equal([]string{"url", "width", "height"}))
			Expect(fields.Lookup("width").Type()).Should(BeIdenticalTo(engine.Int()))
			Expect(fields.Lookup("nosuchfield")).Should(BeNil())
		})
	})
})
