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

package base

import (
	"github.com/gorse-io/dynarray/base/log"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

const (
	// ErrIndexOutOfRange is returned when an index falls outside the valid range of an operation.
	ErrIndexOutOfRange = errors.ConstError("index out of range")
	// ErrInvalidCapacity is returned when an array is created with a non-positive capacity.
	ErrInvalidCapacity = errors.ConstError("invalid capacity")
)

// Must exits when err is not nil.
func Must(err error) {
	if err != nil {
		log.Logger().Fatal("unexpected error", zap.Error(err))
	}
}

// MustDynamicArray returns the array or exits when err is not nil.
func MustDynamicArray(array *DynamicArray, err error) *DynamicArray {
	Must(err)
	return array
}
