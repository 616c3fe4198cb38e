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

package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gorse-io/dynarray/base"
	"github.com/gorse-io/dynarray/config"
	"github.com/juju/errors"
	"github.com/stretchr/testify/suite"
)

type ConsoleTestSuite struct {
	suite.Suite
	array *base.DynamicArray
	out   bytes.Buffer
}

func (suite *ConsoleTestSuite) SetupTest() {
	var err error
	suite.array, err = base.NewDynamicArray(base.DefaultCapacity)
	suite.NoError(err)
	suite.out.Reset()
}

func (suite *ConsoleTestSuite) run(mode string, lines ...string) {
	input := strings.Join(lines, "\n") + "\n"
	console := NewConsole(suite.array, config.ConsoleConfig{DisplayMode: mode}, strings.NewReader(input), &suite.out)
	suite.NoError(console.Run())
}

func (suite *ConsoleTestSuite) TestInsertAndGet() {
	suite.run(config.DisplayModeLine,
		"1", "0", "10",
		"1", "0", "20",
		"1", "0", "30",
		"3", "1",
		"7")
	suite.Equal([]int{30, 20, 10}, suite.array.Values())
	suite.Contains(suite.out.String(), "Element at index 1: 20")
	suite.Contains(suite.out.String(), "Exiting the program...")
}

func (suite *ConsoleTestSuite) TestSetAndDelete() {
	suite.array.Append(30)
	suite.array.Append(20)
	suite.array.Append(10)
	suite.run(config.DisplayModeLine,
		"5", "1",
		"4", "0", "35",
		"6",
		"7")
	suite.Equal([]int{35, 10}, suite.array.Values())
	suite.Contains(suite.out.String(), "Current size of the array: 2")
}

func (suite *ConsoleTestSuite) TestDisplayLine() {
	suite.array.Append(1)
	suite.array.Append(2)
	suite.array.Append(3)
	suite.run(config.DisplayModeLine, "2", "7")
	suite.Contains(suite.out.String(), "Current elements of the array:\n1 2 3\n")
}

func (suite *ConsoleTestSuite) TestDisplayTable() {
	suite.array.Append(42)
	suite.array.Append(17)
	suite.run(config.DisplayModeTable, "2", "7")
	output := strings.ToLower(suite.out.String())
	suite.Contains(output, "index")
	suite.Contains(output, "value")
	suite.Contains(output, "42")
	suite.Contains(output, "17")
}

func (suite *ConsoleTestSuite) TestEmptyArray() {
	suite.run(config.DisplayModeTable, "2", "3", "4", "5", "7")
	suite.Equal(4, strings.Count(suite.out.String(), messageEmpty))
	suite.NotContains(suite.out.String(), "Enter the index")
}

func (suite *ConsoleTestSuite) TestOutOfRange() {
	suite.array.Append(1)
	suite.run(config.DisplayModeLine,
		"1", "5", "2",
		"3", "1",
		"4", "-1", "0",
		"5", "1",
		"7")
	suite.Equal(4, strings.Count(suite.out.String(), base.ErrIndexOutOfRange.Error()))
	suite.Equal([]int{1}, suite.array.Values())
}

func (suite *ConsoleTestSuite) TestInvalidChoice() {
	suite.run(config.DisplayModeLine, "8", "insert", "6", "7")
	suite.Equal(2, strings.Count(suite.out.String(), messageInvalidChoice))
	suite.Contains(suite.out.String(), "Current size of the array: 0")
}

func (suite *ConsoleTestSuite) TestInvalidInteger() {
	suite.run(config.DisplayModeLine, "1", "one", "1", "0", "two", "6", "7")
	suite.Equal(2, strings.Count(suite.out.String(), "not valid"))
	suite.Zero(suite.array.Size())
}

func (suite *ConsoleTestSuite) TestEndOfInput() {
	// no exit choice
	suite.run(config.DisplayModeLine, "1", "0", "5")
	suite.Equal([]int{5}, suite.array.Values())

	// input ends inside an operation
	console := NewConsole(suite.array, config.ConsoleConfig{DisplayMode: config.DisplayModeLine},
		strings.NewReader("1\n0"), &suite.out)
	suite.NoError(console.Run())
	suite.Equal([]int{5}, suite.array.Values())
}

func (suite *ConsoleTestSuite) TestExitStopsReading() {
	suite.run(config.DisplayModeLine, "7", "1", "0", "5")
	suite.Zero(suite.array.Size())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func (suite *ConsoleTestSuite) TestReadError() {
	console := NewConsole(suite.array, config.ConsoleConfig{DisplayMode: config.DisplayModeLine},
		failingReader{}, &suite.out)
	suite.Error(console.Run())
}

func TestConsole(t *testing.T) {
	suite.Run(t, new(ConsoleTestSuite))
}
