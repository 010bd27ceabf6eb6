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
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
)

// ToTimestamp converts a BSON datetime. No other source converts; in particular strings are not parsed.
func ToTimestamp(v bson.RawValue) (cdata.TimestampStruct, error) {
	if v.Type != bsontype.DateTime {
		return cdata.TimestampStruct{}, unsupported(v, cdata.TypeTimestamp)
	}

	ms := v.DateTime()
	t := time.UnixMilli(ms).UTC()
	if t.Year() < math.MinInt16 || t.Year() > math.MaxInt16 {
		return cdata.TimestampStruct{}, ErrInvalidDateTimeFormat.New(ms)
	}

	return cdata.TimestampStruct{
		Year:     int16(t.Year()),
		Month:    uint16(t.Month()),
		Day:      uint16(t.Day()),
		Hour:     uint16(t.Hour()),
		Minute:   uint16(t.Minute()),
		Second:   uint16(t.Second()),
		Fraction: uint32(t.Nanosecond()),
	}, nil
}

// ToDate drops the time of day, warning when it was not midnight.
func ToDate(v bson.RawValue) (cdata.DateStruct, error) {
	if v.Type != bsontype.DateTime {
		return cdata.DateStruct{}, unsupported(v, cdata.TypeDate)
	}
	ts, err := ToTimestamp(v)
	if err != nil {
		return cdata.DateStruct{}, err
	}

	d := cdata.DateStruct{Year: ts.Year, Month: ts.Month, Day: ts.Day}
	if ts.Hour != 0 || ts.Minute != 0 || ts.Second != 0 || ts.Fraction != 0 {
		return d, precisionLoss("time of day dropped converting to %s", cdata.TypeDate)
	}
	return d, nil
}

// ToTime drops the date and the fractional seconds, warning when the fraction was not zero.
func ToTime(v bson.RawValue) (cdata.TimeStruct, error) {
	if v.Type != bsontype.DateTime {
		return cdata.TimeStruct{}, unsupported(v, cdata.TypeTime)
	}
	ts, err := ToTimestamp(v)
	if err != nil {
		return cdata.TimeStruct{}, err
	}

	t := cdata.TimeStruct{Hour: ts.Hour, Minute: ts.Minute, Second: ts.Second}
	if ts.Fraction != 0 {
		return t, precisionLoss("fractional seconds dropped converting to %s", cdata.TypeTime)
	}
	return t, nil
}
