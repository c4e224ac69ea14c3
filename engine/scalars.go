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
	"math"
	"strconv"
	"sync"
)

// The "type of internal value" for each built-in scalar are listed as follows,
//
// +-------------+---------------------------------+
// | Scalar Type | Go Type ("internal value type") |
// +-------------+---------------------------------+
// | Int         | int                             |
// | Float       | float64                         |
// | String      | string                          |
// | Boolean     | bool                            |
// | ID          | string                          |
// +-------------+---------------------------------+
//
// That is, the type of underlying value behind the interface{} returned by CoerceInputValue is
// fixed to the one given in the table for each type. Therefore, for example, when you receive an
// Int argument, you can expect you got an "int" not int32 or others.

// Reasons for the error when coercing built-in scalar types
const (
	coercionErrorNonInteger      string = "not an integer"
	coercionErrorIntegerTooLarge        = "value too large for 32-bit signed integer"
	coercionErrorIntegerTooSmall        = "value too small for 32-bit signed integer"
	coercionErrorNonNumeric             = "not a numeric value"
	coercionErrorNonFinite              = "not a finite numeric value"
	coercionErrorNonString              = "not a string value"
	coercionErrorNonBoolean             = "not a boolean value"
	coercionErrorNonID                  = "not a valid ID value"
)

// newScalarCoercionError reports a value that cannot be represented in the named scalar type.
// Strings are quoted for pretty printing.
func newScalarCoercionError(typeName string, value interface{}, reason string) error {
	if v, ok := value.(string); ok {
		value = strconv.Quote(v)
	}
	return NewCoercionError("%s cannot represent %v: %s", typeName, value, reason)
}

//===-----------------------------------------------------------------------------------------===//
// Int
//===-----------------------------------------------------------------------------------------===//
// The Int scalar type represents a signed 32-bit numeric non-fractional value.

func coerceIntResult(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case bool:
		if value {
			return 1, nil
		}
		return 0, nil

	case int:
		return checkIntRange(int64(value))
	case int8:
		return int(value), nil
	case int16:
		return int(value), nil
	case int32:
		return int(value), nil
	case int64:
		return checkIntRange(value)

	case uint:
		return checkUintRange(uint64(value))
	case uint8:
		return int(value), nil
	case uint16:
		return int(value), nil
	case uint32:
		return checkUintRange(uint64(value))
	case uint64:
		return checkUintRange(value)

	case float32:
		return coerceFloatValueToInt(float64(value))
	case float64:
		return coerceFloatValueToInt(value)

	case string:
		i, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, newScalarCoercionError("Int", value, coercionErrorNonInteger)
		}
		return int(i), nil
	}

	return nil, newScalarCoercionError("Int", value, coercionErrorNonInteger)
}

func checkIntRange(value int64) (interface{}, error) {
	if value > int64(math.MaxInt32) {
		return nil, newScalarCoercionError("Int", value, coercionErrorIntegerTooLarge)
	} else if value < int64(math.MinInt32) {
		return nil, newScalarCoercionError("Int", value, coercionErrorIntegerTooSmall)
	}
	return int(value), nil
}

func checkUintRange(value uint64) (interface{}, error) {
	if value > uint64(math.MaxInt32) {
		return nil, newScalarCoercionError("Int", value, coercionErrorIntegerTooLarge)
	}
	return int(value), nil
}

func coerceFloatValueToInt(value float64) (interface{}, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || math.Trunc(value) != value {
		return nil, newScalarCoercionError("Int", value, coercionErrorNonInteger)
	}
	return checkIntRange(int64(value))
}

func coerceIntInput(value interface{}) (interface{}, error) {
	// Input mode only accepts integer values.
	switch value := value.(type) {
	case int:
		return checkIntRange(int64(value))
	case int8:
		return int(value), nil
	case int16:
		return int(value), nil
	case int32:
		return int(value), nil
	case int64:
		return checkIntRange(value)
	case uint:
		return checkUintRange(uint64(value))
	case uint8:
		return int(value), nil
	case uint16:
		return int(value), nil
	case uint32:
		return checkUintRange(uint64(value))
	case uint64:
		return checkUintRange(value)
	}
	return nil, newScalarCoercionError("Int", value, coercionErrorNonInteger)
}

//===-----------------------------------------------------------------------------------------===//
// Float
//===-----------------------------------------------------------------------------------------===//
// The Float scalar type represents signed double-precision fractional values.

func coerceFloatResult(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case bool:
		if value {
			return float64(1), nil
		}
		return float64(0), nil

	case int:
		return float64(value), nil
	case int8:
		return float64(value), nil
	case int16:
		return float64(value), nil
	case int32:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case uint:
		return float64(value), nil
	case uint8:
		return float64(value), nil
	case uint16:
		return float64(value), nil
	case uint32:
		return float64(value), nil
	case uint64:
		return float64(value), nil

	case float32:
		return checkFloatFinite(float64(value))
	case float64:
		return checkFloatFinite(value)

	case string:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, newScalarCoercionError("Float", value, coercionErrorNonNumeric)
		}
		return checkFloatFinite(f)
	}

	return nil, newScalarCoercionError("Float", value, coercionErrorNonNumeric)
}

func checkFloatFinite(value float64) (interface{}, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, newScalarCoercionError("Float", value, coercionErrorNonFinite)
	}
	return value, nil
}

func coerceFloatInput(value interface{}) (interface{}, error) {
	// Input mode only accepts numeric values.
	switch value := value.(type) {
	case int:
		return float64(value), nil
	case int8:
		return float64(value), nil
	case int16:
		return float64(value), nil
	case int32:
		return float64(value), nil
	case int64:
		return float64(value), nil
	case uint:
		return float64(value), nil
	case uint8:
		return float64(value), nil
	case uint16:
		return float64(value), nil
	case uint32:
		return float64(value), nil
	case uint64:
		return float64(value), nil
	case float32:
		return checkFloatFinite(float64(value))
	case float64:
		return checkFloatFinite(value)
	}
	return nil, newScalarCoercionError("Float", value, coercionErrorNonNumeric)
}

//===-----------------------------------------------------------------------------------------===//
// String
//===-----------------------------------------------------------------------------------------===//
// The String scalar type represents textual data, represented as UTF-8 character sequences.

func coerceStringResult(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil

	case bool:
		if value {
			return "true", nil
		}
		return "false", nil

	case int:
		return strconv.FormatInt(int64(value), 10), nil
	case int8:
		return strconv.FormatInt(int64(value), 10), nil
	case int16:
		return strconv.FormatInt(int64(value), 10), nil
	case int32:
		return strconv.FormatInt(int64(value), 10), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case uint:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint64:
		return strconv.FormatUint(value, 10), nil

	case float32:
		return strconv.FormatFloat(float64(value), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64), nil

	case fmt.Stringer:
		return value.String(), nil
	}

	return nil, newScalarCoercionError("String", value, coercionErrorNonString)
}

func coerceStringInput(value interface{}) (interface{}, error) {
	// Input mode only accepts string values.
	if value, ok := value.(string); ok {
		return value, nil
	}
	return nil, newScalarCoercionError("String", value, coercionErrorNonString)
}

//===-----------------------------------------------------------------------------------------===//
// Boolean
//===-----------------------------------------------------------------------------------------===//
// The Boolean scalar type represents true or false.

func coerceBooleanResult(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case bool:
		return value, nil

	case int:
		return value != 0, nil
	case int8:
		return value != 0, nil
	case int16:
		return value != 0, nil
	case int32:
		return value != 0, nil
	case int64:
		return value != 0, nil
	case uint:
		return value != 0, nil
	case uint8:
		return value != 0, nil
	case uint16:
		return value != 0, nil
	case uint32:
		return value != 0, nil
	case uint64:
		return value != 0, nil
	}

	return nil, newScalarCoercionError("Boolean", value, coercionErrorNonBoolean)
}

func coerceBooleanInput(value interface{}) (interface{}, error) {
	// Input mode only accepts boolean values.
	if value, ok := value.(bool); ok {
		return value, nil
	}
	return nil, newScalarCoercionError("Boolean", value, coercionErrorNonBoolean)
}

//===-----------------------------------------------------------------------------------------===//
// ID
//===-----------------------------------------------------------------------------------------===//
// The ID scalar type represents a unique identifier. It is serialized in the same way as a
// String; however, it is not intended to be human-readable.

func coerceIDResult(value interface{}) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil

	case int:
		return strconv.FormatInt(int64(value), 10), nil
	case int8:
		return strconv.FormatInt(int64(value), 10), nil
	case int16:
		return strconv.FormatInt(int64(value), 10), nil
	case int32:
		return strconv.FormatInt(int64(value), 10), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case uint:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint64:
		return strconv.FormatUint(value, 10), nil

	case fmt.Stringer:
		return value.String(), nil
	}

	return nil, newScalarCoercionError("ID", value, coercionErrorNonID)
}

func coerceIDInput(value interface{}) (interface{}, error) {
	// Input mode accepts strings and integers.
	switch value := value.(type) {
	case string:
		return value, nil
	case int:
		return strconv.FormatInt(int64(value), 10), nil
	case int32:
		return strconv.FormatInt(int64(value), 10), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	}
	return nil, newScalarCoercionError("ID", value, coercionErrorNonID)
}

//===-----------------------------------------------------------------------------------------===//
// Accessors to the built-in scalar types
//===-----------------------------------------------------------------------------------------===//

var (
	intScalarOnce sync.Once
	intScalar     Scalar

	floatScalarOnce sync.Once
	floatScalar     Scalar

	stringScalarOnce sync.Once
	stringScalar     Scalar

	booleanScalarOnce sync.Once
	booleanScalar     Scalar

	idScalarOnce sync.Once
	idScalar     Scalar
)

// Int returns the built-in Int scalar type.
func Int() Scalar {
	intScalarOnce.Do(func() {
		intScalar = MustNewScalar(ScalarConfig{
			Name:          "Int",
			Description:   "The `Int` scalar type represents non-fractional signed whole numeric values. Int can represent values between -(2^31) and 2^31 - 1.",
			ResultCoercer: CoerceScalarResultFunc(coerceIntResult),
			InputCoercer:  CoerceScalarInputFunc(coerceIntInput),
		})
	})
	return intScalar
}

// Float returns the built-in Float scalar type.
func Float() Scalar {
	floatScalarOnce.Do(func() {
		floatScalar = MustNewScalar(ScalarConfig{
			Name:          "Float",
			Description:   "The `Float` scalar type represents signed double-precision fractional values as specified by IEEE 754.",
			ResultCoercer: CoerceScalarResultFunc(coerceFloatResult),
			InputCoercer:  CoerceScalarInputFunc(coerceFloatInput),
		})
	})
	return floatScalar
}

// String returns the built-in String scalar type.
func String() Scalar {
	stringScalarOnce.Do(func() {
		stringScalar = MustNewScalar(ScalarConfig{
			Name:          "String",
			Description:   "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
			ResultCoercer: CoerceScalarResultFunc(coerceStringResult),
			InputCoercer:  CoerceScalarInputFunc(coerceStringInput),
		})
	})
	return stringScalar
}

// Boolean returns the built-in Boolean scalar type.
func Boolean() Scalar {
	booleanScalarOnce.Do(func() {
		booleanScalar = MustNewScalar(ScalarConfig{
			Name:          "Boolean",
			Description:   "The `Boolean` scalar type represents `true` or `false`.",
			ResultCoercer: CoerceScalarResultFunc(coerceBooleanResult),
			InputCoercer:  CoerceScalarInputFunc(coerceBooleanInput),
		})
	})
	return booleanScalar
}

// ID returns the built-in ID scalar type.
func ID() Scalar {
	idScalarOnce.Do(func() {
		idScalar = MustNewScalar(ScalarConfig{
			Name:          "ID",
			Description:   "The `ID` scalar type represents a unique identifier. It is serialized in the same way as a String; however, it is not intended to be human-readable.",
			ResultCoercer: CoerceScalarResultFunc(coerceIDResult),
			InputCoercer:  CoerceScalarInputFunc(coerceIDInput),
		})
	})
	return idScalar
}
