// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"

	"github.com/gorse-io/dynarray/base"
	"github.com/juju/errors"
	"github.com/spf13/viper"
)

const (
	DisplayModeTable = "table"
	DisplayModeLine  = "line"
)

// Config is the configuration for dynarray.
type Config struct {
	Array   ArrayConfig   `mapstructure:"array"`
	Console ConsoleConfig `mapstructure:"console"`
}

// ArrayConfig is the configuration for the dynamic array.
type ArrayConfig struct {
	InitialCapacity int `mapstructure:"initial_capacity" validate:"gt=0"`
}

// ConsoleConfig is the configuration for the interactive console.
type ConsoleConfig struct {
	DisplayMode string `mapstructure:"display_mode" validate:"display_mode"`
}

func GetDefaultConfig() *Config {
	return &Config{
		Array: ArrayConfig{
			InitialCapacity: base.DefaultCapacity,
		},
		Console: ConsoleConfig{
			DisplayMode: DisplayModeTable,
		},
	}
}

func setDefault(v *viper.Viper) {
	defaultConfig := GetDefaultConfig()
	// [array]
	v.SetDefault("array.initial_capacity", defaultConfig.Array.InitialCapacity)
	// [console]
	v.SetDefault("console.display_mode", defaultConfig.Console.DisplayMode)
}

type configBinding struct {
	key string
	env string
}

// LoadConfig loads configuration from a TOML file and environment variables.
// An empty path loads defaults and environment variables only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefault(v)

	// bind environment bindings
	bindings := []configBinding{
		{"array.initial_capacity", "DYNARRAY_INITIAL_CAPACITY"},
		{"console.display_mode", "DYNARRAY_DISPLAY_MODE"},
	}
	for _, binding := range bindings {
		if err := v.BindEnv(binding.key, binding.env); err != nil {
			return nil, errors.Trace(err)
		}
	}

	if path != "" {
		// check if file exist
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Trace(err)
		}
		v.SetConfigType("toml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Trace(err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}
