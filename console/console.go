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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gorse-io/dynarray/base"
	"github.com/gorse-io/dynarray/base/log"
	"github.com/gorse-io/dynarray/config"
	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	messageEmpty         = "No elements have been added to the array yet!"
	messageInvalidChoice = "Invalid choice. Please enter a valid choice."
	messageExit          = "Exiting the program..."
)

type option struct {
	choice string
	title  string
	action func(c *Console) error
}

var options = []option{
	{"1", "Insert an element", (*Console).insertElement},
	{"2", "Display elements", (*Console).displayElements},
	{"3", "Get an element by index", (*Console).getElement},
	{"4", "Set an element by index", (*Console).setElement},
	{"5", "Delete an element", (*Console).deleteElement},
	{"6", "Get the current size", (*Console).getSize},
	{"7", "Exit", (*Console).exit},
}

// errExit stops the menu loop.
var errExit = errors.New("exit")

// Console is an interactive menu over a dynamic array.
type Console struct {
	array  *base.DynamicArray
	config config.ConsoleConfig
	reader *bufio.Reader
	out    io.Writer
}

func NewConsole(array *base.DynamicArray, conf config.ConsoleConfig, in io.Reader, out io.Writer) *Console {
	return &Console{
		array:  array,
		config: conf,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run shows the menu until the exit choice is made or the input ends.
func (c *Console) Run() error {
	for {
		c.printMenu()
		choice, err := c.readLine("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return errors.Trace(err)
		}
		opt, found := lo.Find(options, func(opt option) bool {
			return opt.choice == choice
		})
		if !found {
			log.Logger().Debug("invalid choice", zap.String("choice", choice))
			c.println(messageInvalidChoice)
			continue
		}
		err = opt.action(c)
		if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return errors.Trace(err)
		}
	}
}

func (c *Console) printMenu() {
	c.println("Dynamic array menu")
	for _, opt := range options {
		c.printf("%s. %s\n", opt.choice, opt.title)
	}
}

func (c *Console) insertElement() error {
	c.println()
	index, value, ok, err := c.readIndexAndValue("Enter the index to insert at: ")
	if err != nil || !ok {
		return err
	}
	if err = c.array.Insert(index, value); err != nil {
		c.reportError(err)
	} else {
		log.Logger().Debug("insert element", zap.Int("index", index), zap.Int("value", value))
	}
	c.println()
	return nil
}

func (c *Console) displayElements() error {
	if c.array.Size() == 0 {
		c.printEmpty()
		return nil
	}
	c.println()
	c.println("Current elements of the array:")
	if c.config.DisplayMode == config.DisplayModeLine {
		c.println(strings.Join(lo.Map(c.array.Values(), func(value, _ int) string {
			return strconv.Itoa(value)
		}), " "))
	} else if err := c.renderTable(); err != nil {
		return errors.Trace(err)
	}
	c.println()
	return nil
}

func (c *Console) renderTable() error {
	table := tablewriter.NewWriter(c.out)
	table.Header("index", "value")
	rows := lo.Map(c.array.Values(), func(value, index int) []string {
		return []string{strconv.Itoa(index), strconv.Itoa(value)}
	})
	if err := table.Bulk(rows); err != nil {
		return errors.Trace(err)
	}
	return table.Render()
}

func (c *Console) getElement() error {
	if c.array.Size() == 0 {
		c.printEmpty()
		return nil
	}
	c.println()
	index, ok, err := c.readInt("Enter the index of the element: ")
	if err != nil || !ok {
		return err
	}
	if value, err := c.array.Get(index); err != nil {
		c.reportError(err)
	} else {
		c.printf("Element at index %d: %d\n", index, value)
	}
	c.println()
	return nil
}

func (c *Console) setElement() error {
	if c.array.Size() == 0 {
		c.printEmpty()
		return nil
	}
	c.println()
	index, value, ok, err := c.readIndexAndValue("Enter the index of the element to set: ")
	if err != nil || !ok {
		return err
	}
	if err = c.array.Set(index, value); err != nil {
		c.reportError(err)
	} else {
		log.Logger().Debug("set element", zap.Int("index", index), zap.Int("value", value))
	}
	c.println()
	return nil
}

func (c *Console) deleteElement() error {
	if c.array.Size() == 0 {
		c.printEmpty()
		return nil
	}
	c.println()
	index, ok, err := c.readInt("Enter the index of the element to delete: ")
	if err != nil || !ok {
		return err
	}
	if err = c.array.Delete(index); err != nil {
		c.reportError(err)
	} else {
		log.Logger().Debug("delete element", zap.Int("index", index))
	}
	c.println()
	return nil
}

func (c *Console) getSize() error {
	c.printf("\nCurrent size of the array: %d\n\n", c.array.Size())
	return nil
}

func (c *Console) exit() error {
	c.printf("\n%s\n\n", messageExit)
	return errExit
}

// readIndexAndValue reads an index followed by a value. ok is false when
// either is not an integer.
func (c *Console) readIndexAndValue(prompt string) (index, value int, ok bool, err error) {
	if index, ok, err = c.readInt(prompt); err != nil || !ok {
		return
	}
	value, ok, err = c.readInt("Enter the value: ")
	return
}

// readInt reads an integer. A malformed integer is reported to the user and
// ok is false; err is only set when reading fails.
func (c *Console) readInt(prompt string) (int, bool, error) {
	line, err := c.readLine(prompt)
	if err != nil {
		return 0, false, err
	}
	value, err := strconv.Atoi(line)
	if err != nil {
		c.reportError(errors.NotValidf("integer %q", line))
		c.println()
		return 0, false, nil
	}
	return value, true, nil
}

func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	line, err := c.reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) reportError(err error) {
	log.Logger().Debug("operation failed", zap.Error(err))
	c.println(err.Error())
}

func (c *Console) printEmpty() {
	c.printf("\n%s\n\n", messageEmpty)
}

func (c *Console) println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}
