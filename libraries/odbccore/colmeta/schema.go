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

package colmeta

import (
	"sort"
	"strings"
)

type SchemaKind uint8

const (
	UnsatKind SchemaKind = iota
	AnyKind
	ScalarKind
	ArrayKind
	ObjectKind
	AnyOfKind
)

// Schema is the simplified form of a column's $jsonSchema: a scalar, an array, an object, a
// union of those, anything at all, or nothing (unsatisfiable).
type Schema struct {
	Kind   SchemaKind
	Scalar BsonTypeName
	Items  *Schema
	AnyOf  []Schema
}

var (
	AnySchema    = Schema{Kind: AnyKind}
	UnsatSchema  = Schema{Kind: UnsatKind}
	ObjectSchema = Schema{Kind: ObjectKind}
)

func Scalar(name BsonTypeName) Schema {
	return Schema{Kind: ScalarKind, Scalar: name}
}

func ArrayOf(items Schema) Schema {
	return Schema{Kind: ArrayKind, Items: &items}
}

// AnyOf builds a union, flattening nested unions. A union of one member is that member.
func AnyOf(members ...Schema) Schema {
	var flat []Schema
	for _, m := range members {
		if m.Kind == AnyOfKind {
			flat = append(flat, m.AnyOf...)
		} else if m.Kind != UnsatKind {
			flat = append(flat, m)
		}
	}
	switch len(flat) {
	case 0:
		return UnsatSchema
	case 1:
		return flat[0]
	}
	return Schema{Kind: AnyOfKind, AnyOf: flat}
}

// ContainsNull returns whether a value matching the schema may be null or undefined.
func (s Schema) ContainsNull() bool {
	switch s.Kind {
	case AnyKind:
		return true
	case ScalarKind:
		return s.Scalar.isNullish()
	case AnyOfKind:
		for _, m := range s.AnyOf {
			if m.ContainsNull() {
				return true
			}
		}
	}
	return false
}

// WithoutNull removes the null and undefined members of a union.
func (s Schema) WithoutNull() Schema {
	switch s.Kind {
	case ScalarKind:
		if s.Scalar.isNullish() {
			return UnsatSchema
		}
	case AnyOfKind:
		var rest []Schema
		for _, m := range s.AnyOf {
			if !m.ContainsNull() || m.Kind == AnyKind {
				rest = append(rest, m)
			}
		}
		return AnyOf(rest...)
	}
	return s
}

func (s Schema) String() string {
	switch s.Kind {
	case AnyKind:
		return "any"
	case ScalarKind:
		return string(s.Scalar)
	case ArrayKind:
		return "array<" + s.Items.String() + ">"
	case ObjectKind:
		return "object"
	case AnyOfKind:
		names := make([]string, len(s.AnyOf))
		for i, m := range s.AnyOf {
			names[i] = m.String()
		}
		sort.Strings(names)
		return "anyOf(" + strings.Join(names, "|") + ")"
	}
	return "unsat"
}
