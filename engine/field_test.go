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

func findArgument(args []engine.Argument, name string) *engine.Argument {
	for i := range args {
		if args[i].Name() == name {
			return &args[i]
		}
	}
	return nil
}

var _ = Describe("Field", func() {
	It("rejects creating field without name", func() {
		_, err := engine.NewField("", engine.FieldConfig{
			Type: engine.String(),
		})
		Expect(err).Should(MatchError("Must provide name for field."))
	})

	It("rejects creating field without type", func() {
		_, err := engine.NewField("title", engine.FieldConfig{})
		Expect(err).Should(MatchError("Must provide type for field title."))

		Expect(func() {
			engine.MustNewField("title", engine.FieldConfig{})
		}).Should(Panic())
	})

	It("builds a field from a config", func() {
		deprecation := &engine.Deprecation{Reason: "Use title instead."}
		resolver := engine.FieldResolverFunc(
			func(ctx context.Context, source interface{}, args engine.ArgumentValues) (interface{}, error) {
				return "a headline", nil
			})

		field := engine.MustNewField("headline", engine.FieldConfig{
			Description: "Headline of the article",
			Type:        engine.MustNewNonNullOfType(engine.String()),
			Resolver:    resolver,
			Deprecation: deprecation,
		})

		Expect(field.Name()).Should(Equal("headline"))
		Expect(field.Description()).Should(Equal("Headline of the article"))
		Expect(field.Type().String()).Should(Equal("String!"))
		Expect(field.Deprecation()).Should(BeIdenticalTo(deprecation))
		Expect(field.Deprecation().Defined()).Should(BeTrue())

		value, err := field.Resolver().Resolve(context.Background(), nil, nil)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal("a headline"))
	})

	Describe("arguments", func() {
		It("rejects argument without type", func() {
			_, err := engine.NewField("node", engine.FieldConfig{
				Type: engine.ID(),
				Args: engine.ArgumentConfigMap{
					"id": {},
				},
			})
			Expect(err).Should(MatchError("Must provide type for argument id in field node."))
		})

		It("builds arguments from the config map", func() {
			field := engine.MustNewField("picture", engine.FieldConfig{
				Type: engine.String(),
				Args: engine.ArgumentConfigMap{
					"size": {
						Description:  "Size of the picture in pixels",
						Type:         engine.Int(),
						DefaultValue: 50,
					},
				},
			})

			Expect(field.Args()).Should(ConsistOf(
				engine.MockArgument("size", "Size of the picture in pixels", engine.Int(), 50),
			))

			arg := &field.Args()[0]
			Expect(arg.Name()).Should(Equal("size"))
			Expect(arg.Type()).Should(BeIdenticalTo(engine.Int()))
			Expect(arg.HasDefaultValue()).Should(BeTrue())
			Expect(arg.DefaultValue()).Should(Equal(50))
		})

		It("distinguishes a null default value from an absent one", func() {
			field := engine.MustNewField("search", engine.FieldConfig{
				Type: engine.String(),
				Args: engine.ArgumentConfigMap{
					"filter": {
						Type:         engine.String(),
						DefaultValue: engine.NilArgumentDefaultValue,
					},
					"cursor": {
						Type: engine.String(),
					},
				},
			})

			filter := findArgument(field.Args(), "filter")
			Expect(filter).ShouldNot(BeNil())
			Expect(filter.HasDefaultValue()).Should(BeTrue())
			Expect(filter.DefaultValue()).Should(BeNil())

			cursor := findArgument(field.Args(), "cursor")
			Expect(cursor).ShouldNot(BeNil())
			Expect(cursor.HasDefaultValue()).Should(BeFalse())
		})

		It("requires an argument with non-null type and no default value", func() {
			field := engine.MustNewField("node", engine.FieldConfig{
				Type: engine.ID(),
				Args: engine.ArgumentConfigMap{
					"id": {
						Type: engine.MustNewNonNullOfType(engine.ID()),
					},
					"depth": {
						Type:         engine.MustNewNonNullOfType(engine.Int()),
						DefaultValue: 1,
					},
					"hint": {
						Type: engine.String(),
					},
				},
			})

			Expect(engine.IsRequiredArgument(findArgument(field.Args(), "id"))).Should(BeTrue())
			Expect(engine.IsRequiredArgument(findArgument(field.Args(), "depth"))).Should(BeFalse())
			Expect(engine.IsRequiredArgument(findArgument(field.Args(), "hint"))).Should(BeFalse())
		})
	})

	Describe("ArgumentValues", func() {
		It("looks up supplied values by name", func() {
			values := engine.ArgumentValues{
				"first": 10,
			}

			value, ok := values.Get("first")
			Expect(ok).Should(BeTrue())
			Expect(value).Should(Equal(10))

			_, ok = values.Get("last")
			Expect(ok).Should(BeFalse())
		})
	})
})
