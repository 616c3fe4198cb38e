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
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

var displayModes = []string{DisplayModeTable, DisplayModeLine}

func newValidator() *validator.Validate {
	validate := validator.New()
	if err := validate.RegisterValidation("display_mode", func(fl validator.FieldLevel) bool {
		return lo.Contains(displayModes, fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return validate
}

// Validate checks every field of the configuration.
func (config *Config) Validate() error {
	err := newValidator().Struct(config)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return errors.Trace(err)
	}
	messages := lo.Map([]validator.FieldError(fieldErrors), func(fieldError validator.FieldError, _ int) string {
		return describe(fieldError)
	})
	return errors.NotValidf("config (%s)", strings.Join(messages, "; "))
}

func describe(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "gt":
		return fmt.Sprintf("value of `%s` must be greater than %s, but the current value is %v",
			fieldError.Namespace(), fieldError.Param(), fieldError.Value())
	case "display_mode":
		return fmt.Sprintf("value of `%s` must be one of [%s], but the current value is %v",
			fieldError.Namespace(), strings.Join(displayModes, ","), fieldError.Value())
	default:
		return fieldError.Error()
	}
}
