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
	"strconv"
	"strings"

	"github.com/gorse-io/dynarray/base/log"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

// DefaultCapacity is the number of slots allocated when no capacity is given.
const DefaultCapacity = 10

// DynamicArray is a growable array of integers. Only slots in [0, size) hold
// meaningful values; storage is doubled when an insertion finds it full.
type DynamicArray struct {
	size    int
	storage []int
}

// NewDynamicArray creates an empty array with the given number of slots.
func NewDynamicArray(capacity int) (*DynamicArray, error) {
	if capacity <= 0 {
		return nil, errors.Annotatef(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &DynamicArray{storage: make([]int, capacity)}, nil
}

// Size returns the number of elements.
func (a *DynamicArray) Size() int {
	return a.size
}

// Capacity returns the number of allocated slots.
func (a *DynamicArray) Capacity() int {
	return len(a.storage)
}

// Get returns the element at index.
func (a *DynamicArray) Get(index int) (int, error) {
	if index < 0 || index >= a.size {
		return 0, a.outOfRange("get", index)
	}
	return a.storage[index], nil
}

// Set overwrites the element at index.
func (a *DynamicArray) Set(index, value int) error {
	if index < 0 || index >= a.size {
		return a.outOfRange("set", index)
	}
	a.storage[index] = value
	return nil
}

// Insert puts value at index and shifts the elements behind it one slot
// towards the end. Inserting at Size() appends. The index is validated before
// any growth, so a rejected insert leaves capacity untouched.
func (a *DynamicArray) Insert(index, value int) error {
	if index < 0 || index > a.size {
		return a.outOfRange("insert", index)
	}
	if a.size == len(a.storage) {
		a.grow()
	}
	for i := a.size; i > index; i-- {
		a.storage[i] = a.storage[i-1]
	}
	a.storage[index] = value
	a.size++
	return nil
}

// Append inserts value at the end.
func (a *DynamicArray) Append(value int) {
	// index == size is always valid
	_ = a.Insert(a.size, value)
}

// Delete removes the element at index and shifts the elements behind it one
// slot towards the front.
func (a *DynamicArray) Delete(index int) error {
	if index < 0 || index >= a.size {
		return a.outOfRange("delete", index)
	}
	for i := index; i < a.size-1; i++ {
		a.storage[i] = a.storage[i+1]
	}
	a.storage[a.size-1] = 0
	a.size--
	return nil
}

// Values returns a copy of the elements.
func (a *DynamicArray) Values() []int {
	values := make([]int, a.size)
	copy(values, a.storage[:a.size])
	return values
}

func (a *DynamicArray) String() string {
	var builder strings.Builder
	for i := 0; i < a.size; i++ {
		if i > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(strconv.Itoa(a.storage[i]))
	}
	return builder.String()
}

func (a *DynamicArray) grow() {
	storage := make([]int, 2*len(a.storage))
	copy(storage, a.storage[:a.size])
	log.Logger().Debug("grow dynamic array",
		zap.Int("size", a.size),
		zap.Int("old_capacity", len(a.storage)),
		zap.Int("new_capacity", len(storage)))
	a.storage = storage
}

func (a *DynamicArray) outOfRange(op string, index int) error {
	return errors.Annotatef(ErrIndexOutOfRange, "%s at %d with size %d", op, index, a.size)
}
