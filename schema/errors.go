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
	"fmt"
)

// DuplicateFieldError describes a rejected attempt to register a field under a name that the
// object type already defines. The registration fails synchronously and the receiving type value
// is left untouched.
type DuplicateFieldError struct {
	// TypeName is the name of the object type being extended.
	TypeName string

	// FieldName is the name that was registered more than once.
	FieldName string
}

var _ error = (*DuplicateFieldError)(nil)

// Error implements Go error interface.
func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("Cannot add field to %s: field %s has already been defined.", e.TypeName, e.FieldName)
}

// IsDuplicateFieldError returns true if the given err is a DuplicateFieldError.
func IsDuplicateFieldError(err error) bool {
	_, ok := err.(*DuplicateFieldError)
	return ok
}
