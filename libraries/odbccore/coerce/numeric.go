// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package coerce

import (
	"errors"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
)

// decimal128Unsupported is returned alongside a zero value: numeric conversion of decimal128 values is
// not implemented.
func decimal128Unsupported(target cdata.CDataType) error {
	return precisionLoss("decimal128 conversion to %s is not implemented, value reported as 0", target)
}

func isRangeErr(err error) bool {
	var numErr *strconv.NumError
	return errors.As(err, &numErr) && numErr.Err == strconv.ErrRange
}

func ToInt64(v bson.RawValue) (int64, error) {
	return toSigned(v, cdata.SBigInt, 64)
}

func ToInt32(v bson.RawValue) (int32, error) {
	i, err := toSigned(v, cdata.SLong, 32)
	return int32(i), err
}

func ToInt16(v bson.RawValue) (int16, error) {
	i, err := toSigned(v, cdata.SShort, 16)
	return int16(i), err
}

func ToInt8(v bson.RawValue) (int8, error) {
	i, err := toSigned(v, cdata.STinyInt, 8)
	return int8(i), err
}

func ToUint64(v bson.RawValue) (uint64, error) {
	return toUnsigned(v, cdata.UBigInt, 64)
}

func ToUint32(v bson.RawValue) (uint32, error) {
	u, err := toUnsigned(v, cdata.ULong, 32)
	return uint32(u), err
}

func ToUint16(v bson.RawValue) (uint16, error) {
	u, err := toUnsigned(v, cdata.UShort, 16)
	return uint16(u), err
}

func ToUint8(v bson.RawValue) (uint8, error) {
	u, err := toUnsigned(v, cdata.UTinyInt, 8)
	return uint8(u), err
}

// toSigned converts |v| to a signed integer of |bits| width. Doubles are truncated toward zero,
// strings are parsed, and values outside the width fail rather than wrap.
func toSigned(v bson.RawValue, target cdata.CDataType, bits uint) (int64, error) {
	minVal := int64(-1) << (bits - 1)
	maxVal := -(minVal + 1)
	checked := func(i int64) (int64, error) {
		if i < minVal || i > maxVal {
			return 0, ErrIntegralOverflow.New(i, target)
		}
		return i, nil
	}

	switch v.Type {
	case bsontype.Boolean:
		if v.Boolean() {
			return 1, nil
		}
		return 0, nil
	case bsontype.Int32:
		return checked(int64(v.Int32()))
	case bsontype.Int64:
		return checked(v.Int64())
	case bsontype.DateTime:
		return checked(v.DateTime())
	case bsontype.Double:
		return floatToSigned(v.Double(), target, bits)
	case bsontype.String:
		s := v.StringValue()
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return checked(i)
		} else if isRangeErr(err) {
			return 0, ErrIntegralOverflow.New(s, target)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, ErrInvalidNumericString.New(s)
		}
		return floatToSigned(f, target, bits)
	case bsontype.Decimal128:
		return 0, decimal128Unsupported(target)
	}
	return 0, unsupported(v, target)
}

func floatToSigned(f float64, target cdata.CDataType, bits uint) (int64, error) {
	limit := math.Ldexp(1, int(bits-1))
	t := math.Trunc(f)
	if math.IsNaN(f) || t < -limit || t >= limit {
		return 0, ErrIntegralOverflow.New(f, target)
	}
	i := int64(t)
	if t != f {
		return i, precisionLoss("%v truncated to %d", f, i)
	}
	return i, nil
}

// toUnsigned is toSigned for unsigned widths. Negative sources are an overflow.
func toUnsigned(v bson.RawValue, target cdata.CDataType, bits uint) (uint64, error) {
	maxVal := uint64(math.MaxUint64) >> (64 - bits)
	checked := func(i int64) (uint64, error) {
		if i < 0 || uint64(i) > maxVal {
			return 0, ErrIntegralOverflow.New(i, target)
		}
		return uint64(i), nil
	}

	switch v.Type {
	case bsontype.Boolean:
		if v.Boolean() {
			return 1, nil
		}
		return 0, nil
	case bsontype.Int32:
		return checked(int64(v.Int32()))
	case bsontype.Int64:
		return checked(v.Int64())
	case bsontype.DateTime:
		return checked(v.DateTime())
	case bsontype.Double:
		return floatToUnsigned(v.Double(), target, bits)
	case bsontype.String:
		s := v.StringValue()
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return checked(i)
		}
		u, err := strconv.ParseUint(s, 10, 64)
		if err == nil {
			if u > maxVal {
				return 0, ErrIntegralOverflow.New(s, target)
			}
			return u, nil
		} else if isRangeErr(err) {
			return 0, ErrIntegralOverflow.New(s, target)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, ErrInvalidNumericString.New(s)
		}
		return floatToUnsigned(f, target, bits)
	case bsontype.Decimal128:
		return 0, decimal128Unsupported(target)
	}
	return 0, unsupported(v, target)
}

func floatToUnsigned(f float64, target cdata.CDataType, bits uint) (uint64, error) {
	limit := math.Ldexp(1, int(bits))
	t := math.Trunc(f)
	if math.IsNaN(f) || t < 0 || t >= limit {
		return 0, ErrIntegralOverflow.New(f, target)
	}
	u := uint64(t)
	if t != f {
		return u, precisionLoss("%v truncated to %d", f, u)
	}
	return u, nil
}

func ToFloat64(v bson.RawValue) (float64, error) {
	return toFloat(v, cdata.Double)
}

// ToFloat32 narrows to single precision. Magnitudes beyond float32 range are an overflow; rounding
// to the nearest float32 is not reported.
func ToFloat32(v bson.RawValue) (float32, error) {
	f, err := toFloat(v, cdata.Float)
	if err != nil && !IsWarning(err) {
		return 0, err
	}
	if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, ErrIntegralOverflow.New(f, cdata.Float)
	}
	return float32(f), err
}

func toFloat(v bson.RawValue, target cdata.CDataType) (float64, error) {
	switch v.Type {
	case bsontype.Boolean:
		if v.Boolean() {
			return 1, nil
		}
		return 0, nil
	case bsontype.Int32:
		return float64(v.Int32()), nil
	case bsontype.Int64:
		return float64(v.Int64()), nil
	case bsontype.DateTime:
		return float64(v.DateTime()), nil
	case bsontype.Double:
		return v.Double(), nil
	case bsontype.String:
		s := v.StringValue()
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return f, nil
		} else if isRangeErr(err) {
			return 0, ErrIntegralOverflow.New(s, target)
		}
		return 0, ErrInvalidNumericString.New(s)
	case bsontype.Decimal128:
		return 0, decimal128Unsupported(target)
	}
	return 0, unsupported(v, target)
}

// ToBool follows C truthiness for numbers. Strings are true only for exactly "1" or "true".
func ToBool(v bson.RawValue) (bool, error) {
	switch v.Type {
	case bsontype.Boolean:
		return v.Boolean(), nil
	case bsontype.Int32:
		return v.Int32() != 0, nil
	case bsontype.Int64:
		return v.Int64() != 0, nil
	case bsontype.Double:
		return v.Double() != 0, nil
	case bsontype.String:
		s := v.StringValue()
		return s == "1" || s == "true", nil
	}
	return false, unsupported(v, cdata.Bit)
}
