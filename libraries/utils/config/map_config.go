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
	"errors"
	"strings"
)

// ErrConfigParamNotFound is returned when a key is not present in a config.
var ErrConfigParamNotFound = errors.New("param not found")

// MapConfig is an in memory config with case insensitive keys, as ODBC connection string attributes
// are. Keys are stored lower cased.
type MapConfig struct {
	properties map[string]string
}

// NewMapConfig creates a config from a map.
func NewMapConfig(properties map[string]string) *MapConfig {
	mc := &MapConfig{make(map[string]string, len(properties))}
	_ = mc.SetStrings(properties)
	return mc
}

// GetString retrieves a value for a given key.
func (mc *MapConfig) GetString(k string) (string, error) {
	if val, ok := mc.properties[strings.ToLower(k)]; ok {
		return val, nil
	}

	return "", ErrConfigParamNotFound
}

// GetStringOrDefault retrieves a value for a given key, or |def| when it is absent.
func (mc *MapConfig) GetStringOrDefault(k, def string) string {
	if val, err := mc.GetString(k); err == nil {
		return val
	}
	return def
}

// SetStrings sets the values for a map of updates.
func (mc *MapConfig) SetStrings(updates map[string]string) error {
	for k, v := range updates {
		mc.properties[strings.ToLower(k)] = v
	}

	return nil
}

// Iter will perform a callback for each value in a config until all values have been exhausted or until the
// callback returns true indicating that it should stop.
func (mc *MapConfig) Iter(cb func(string, string) (stop bool)) {
	for k, v := range mc.properties {
		if cb(k, v) {
			break
		}
	}
}

// Unset removes configuration parameters from the config
func (mc *MapConfig) Unset(params []string) error {
	for _, param := range params {
		delete(mc.properties, strings.ToLower(param))
	}

	return nil
}

// Size returns the number of properties contained within the config
func (mc *MapConfig) Size() int {
	return len(mc.properties)
}
