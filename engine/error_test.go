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
	"errors"

	"github.com/selenegql/selene/engine"
	"github.com/selenegql/selene/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error", func() {
	It("prints op, message and kind", func() {
		err := engine.NewError("name collision", engine.Op("schema.NewObject"), engine.ErrKindValidation)
		Expect(err).Should(MatchError("schema.NewObject: name collision: validation error"))
		Expect(err).Should(testutil.MatchEngineError(
			testutil.MessageContainSubstring("collision"),
			testutil.OpIs(engine.Op("schema.NewObject")),
		))
	})

	It("omits the kind when it is unclassified", func() {
		err := engine.NewError("something went wrong")
		Expect(err).Should(MatchError("something went wrong"))
	})

	It("wraps a plain error", func() {
		cause := errors.New("connection reset")
		err := engine.WrapError(cause, "failed to load source")
		Expect(err).Should(MatchError("failed to load source: connection reset"))

		err = engine.WrapErrorf(cause, "failed to load source for %s", "User")
		Expect(err).Should(MatchError("failed to load source for User: connection reset"))
	})

	It("propagates the kind from the wrapped error", func() {
		cause := engine.NewError("bad value", engine.ErrKindCoercion)
		err := engine.NewError("argument rejected", cause)

		Expect(err).Should(testutil.MatchEngineError(
			testutil.MessageEqual("argument rejected"),
			testutil.KindIs(engine.ErrKindCoercion),
		))

		// The shared kind is printed only once.
		Expect(err).Should(MatchError("argument rejected: coercion error:\n  bad value"))
	})

	It("propagates extensions from the wrapped error", func() {
		cause := engine.NewError("bad value", engine.ErrorExtensions{"code": "BAD_USER_INPUT"})
		err := engine.NewError("argument rejected", cause)

		Expect(err).Should(testutil.MatchEngineError(
			testutil.ExtensionsEqual(engine.ErrorExtensions{"code": "BAD_USER_INPUT"}),
		))
	})

	It("rejects unexpected argument types", func() {
		err := engine.NewError("boom", 42)
		Expect(err.Error()).Should(ContainSubstring("unknown type int"))
	})

	It("classifies coercion errors", func() {
		err := engine.NewCoercionError("Int cannot represent %v: %s", 1.5, "not an integer")

		Expect(err).Should(testutil.MatchEngineError(
			testutil.MessageEqual("Int cannot represent 1.5: not an integer"),
			testutil.KindIs(engine.ErrKindCoercion),
		))
	})

	Describe("serialization", func() {
		It("includes only the message by default", func() {
			err := engine.NewError("name collision", engine.Op("schema.NewObject"), engine.ErrKindValidation)
			Expect(err).Should(testutil.SerializeToJSONAs(map[string]interface{}{
				"message": "name collision",
			}))
		})

		It("includes extensions when present", func() {
			err := engine.NewError("bad value", engine.ErrorExtensions{"code": "BAD_USER_INPUT"})
			Expect(err).Should(testutil.SerializeToJSONAs(map[string]interface{}{
				"message": "bad value",
				"extensions": map[string]interface{}{
					"code": "BAD_USER_INPUT",
				},
			}))
		})
	})
})
