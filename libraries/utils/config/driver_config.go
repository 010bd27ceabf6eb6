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
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/dolthub/docodbc/libraries/odbccore/colmeta"
)

const (
	URIKey          = "uri"
	DatabaseKey     = "database"
	QueryTimeoutKey = "query_timeout"
	TypeModeKey     = "type_mode"
	LogLevelKey     = "log_level"
	LogFormatKey    = "log_format"

	LogFormatText = "text"
	LogFormatJSON = "json"

	DefaultURI = "mongodb://localhost:27017"
)

// DriverYAMLConfig is the driver configuration as read from a yaml file. Unset fields take the
// defaults reported by the accessors.
type DriverYAMLConfig struct {
	URIStr          *string `yaml:"uri,omitempty"`
	DatabaseStr     *string `yaml:"database,omitempty"`
	QueryTimeoutSec *uint32 `yaml:"query_timeout,omitempty"`
	TypeModeStr     *string `yaml:"type_mode,omitempty"`
	LogLevelStr     *string `yaml:"log_level,omitempty"`
	LogFormatStr    *string `yaml:"log_format,omitempty"`
}

func nillableStrPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NewYamlConfig parses |data|. Unknown keys are an error.
func NewYamlConfig(data []byte) (*DriverYAMLConfig, error) {
	var cfg DriverYAMLConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return nil, err
	}
	return &cfg, nil
}

// YamlConfigFromFile reads the driver config at |path|.
func YamlConfigFromFile(path string) (*DriverYAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file '%s'", path)
	}

	cfg, err := NewYamlConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file '%s'", path)
	}
	return cfg, nil
}

// ApplyAttributes overrides values with connection string attributes present in |mc|.
func (cfg *DriverYAMLConfig) ApplyAttributes(mc *MapConfig) error {
	strs := map[string]**string{
		URIKey:       &cfg.URIStr,
		DatabaseKey:  &cfg.DatabaseStr,
		TypeModeKey:  &cfg.TypeModeStr,
		LogLevelKey:  &cfg.LogLevelStr,
		LogFormatKey: &cfg.LogFormatStr,
	}
	for k, dst := range strs {
		if v, err := mc.GetString(k); err == nil {
			*dst = nillableStrPtr(v)
		}
	}

	if v, err := mc.GetString(QueryTimeoutKey); err == nil {
		secs, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return errors.Wrapf(err, "invalid %s '%s'", QueryTimeoutKey, v)
		}
		t := uint32(secs)
		cfg.QueryTimeoutSec = &t
	}
	return nil
}

func (cfg *DriverYAMLConfig) URI() string {
	if cfg.URIStr == nil {
		return DefaultURI
	}
	return *cfg.URIStr
}

func (cfg *DriverYAMLConfig) Database() string {
	if cfg.DatabaseStr == nil {
		return ""
	}
	return *cfg.DatabaseStr
}

// QueryTimeout is zero when queries should run without a time limit.
func (cfg *DriverYAMLConfig) QueryTimeout() time.Duration {
	if cfg.QueryTimeoutSec == nil {
		return 0
	}
	return time.Duration(*cfg.QueryTimeoutSec) * time.Second
}

func (cfg *DriverYAMLConfig) TypeMode() (colmeta.TypeMode, error) {
	if cfg.TypeModeStr == nil {
		return colmeta.StandardTypeMode, nil
	}
	mode, ok := colmeta.ParseTypeMode(*cfg.TypeModeStr)
	if !ok {
		return mode, errors.Errorf("invalid %s '%s', expected standard or simple", TypeModeKey, *cfg.TypeModeStr)
	}
	return mode, nil
}

func (cfg *DriverYAMLConfig) LogLevel() (logrus.Level, error) {
	if cfg.LogLevelStr == nil {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(*cfg.LogLevelStr))
	if err != nil {
		return lvl, errors.Wrapf(err, "invalid %s", LogLevelKey)
	}
	return lvl, nil
}

func (cfg *DriverYAMLConfig) LogFormat() (string, error) {
	if cfg.LogFormatStr == nil {
		return LogFormatText, nil
	}
	switch f := strings.ToLower(*cfg.LogFormatStr); f {
	case LogFormatText, LogFormatJSON:
		return f, nil
	}
	return "", errors.Errorf("invalid %s '%s', expected text or json", LogFormatKey, *cfg.LogFormatStr)
}

// Validate checks every field that has a constrained set of values.
func (cfg *DriverYAMLConfig) Validate() error {
	if _, err := cfg.TypeMode(); err != nil {
		return err
	}
	if _, err := cfg.LogLevel(); err != nil {
		return err
	}
	_, err := cfg.LogFormat()
	return err
}

// NewLogger returns a logger writing to |w| at the configured level and format.
func (cfg *DriverYAMLConfig) NewLogger(w io.Writer) (*logrus.Logger, error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	format, err := cfg.LogFormat()
	if err != nil {
		return nil, err
	}

	lgr := logrus.New()
	lgr.SetOutput(w)
	lgr.SetLevel(lvl)
	if format == LogFormatJSON {
		lgr.SetFormatter(&logrus.JSONFormatter{})
	} else {
		lgr.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}
	return lgr, nil
}
