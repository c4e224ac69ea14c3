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

// Package engine provides the type representation consumed by a GraphQL execution engine.
//
// The package intentionally contains no execution machinery. It models named types (Object and
// Scalar), the two wrapping type modifiers (NonNull and List), field and argument definitions, and
// the error values raised while working with them. Object fields are supplied through a thunk that
// is invoked lazily, on the first access, which lets cyclic and forward type references resolve
// without special ordering requirements at construction time.
//
// Higher-level construction conveniences, such as the fluent non-null-by-default builder, live in
// the schema package.
package engine
