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

package config

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseConnectionString parses an ODBC connection string of the form "KEY=value;KEY2={v;a;l}".
// Values containing ';' must be braced, and a '}' inside braces is written "}}". Keys are case
// insensitive; a later occurrence of a key replaces an earlier one.
func ParseConnectionString(s string) (*MapConfig, error) {
	props := make(map[string]string)
	for i := 0; i < len(s); {
		if s[i] == ';' || s[i] == ' ' {
			i++
			continue
		}

		eq := strings.IndexByte(s[i:], '=')
		if eq < 0 {
			return nil, errors.Errorf("connection string attribute %q has no value", s[i:])
		}
		key := strings.TrimSpace(s[i : i+eq])
		if key == "" {
			return nil, errors.Errorf("connection string has an empty attribute name at offset %d", i)
		}
		i += eq + 1

		var val string
		if i < len(s) && s[i] == '{' {
			var sb strings.Builder
			closed := false
			for i++; i < len(s); i++ {
				if s[i] == '}' {
					if i+1 < len(s) && s[i+1] == '}' {
						sb.WriteByte('}')
						i++
						continue
					}
					closed = true
					i++
					break
				}
				sb.WriteByte(s[i])
			}
			if !closed {
				return nil, errors.Errorf("connection string value for %s is missing a closing brace", key)
			}
			for i < len(s) && s[i] == ' ' {
				i++
			}
			if i < len(s) && s[i] != ';' {
				return nil, errors.Errorf("connection string value for %s has text after its closing brace", key)
			}
			val = sb.String()
		} else {
			end := strings.IndexByte(s[i:], ';')
			if end < 0 {
				end = len(s) - i
			}
			val = strings.TrimSpace(s[i : i+end])
			i += end
		}
		props[strings.ToLower(key)] = val
	}

	return NewMapConfig(props), nil
}
