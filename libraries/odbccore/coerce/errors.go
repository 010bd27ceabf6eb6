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

// Package coerce converts document values into the primitive representations behind each ODBC C
// type. Every function here is pure: it reads a bson.RawValue and returns a value or an error of one
// of the kinds below.
package coerce

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/docodbc/libraries/odbccore/cdata"
)

var (
	ErrUnsupportedConversion = errors.NewKind("unsupported conversion from %s to %s")
	ErrIntegralOverflow      = errors.NewKind("numeric value %v out of range for %s")
	ErrInvalidNumericString  = errors.NewKind("invalid character value for cast: %q is not numeric")
	ErrInvalidDateTimeFormat = errors.NewKind("invalid datetime value: %v")

	// ErrPrecisionLoss is a warning. Functions returning it also return a usable value.
	ErrPrecisionLoss = errors.NewKind("fractional truncation: %s")
)

// IsWarning returns whether |err| leaves the converted value usable.
func IsWarning(err error) bool {
	return err != nil && ErrPrecisionLoss.Is(err)
}

func unsupported(v bson.RawValue, target cdata.CDataType) error {
	return ErrUnsupportedConversion.New(v.Type.String(), target.String())
}

func precisionLoss(format string, args ...interface{}) error {
	return ErrPrecisionLoss.New(fmt.Sprintf(format, args...))
}
