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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gorse-io/dynarray/base"
	"github.com/gorse-io/dynarray/base/log"
	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var benchCommand = &cobra.Command{
	Use:   "bench",
	Short: "Insert elements in bulk and report every growth of the array.",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig(cmd)
		if err != nil {
			return errors.Trace(err)
		}
		count, _ := cmd.Flags().GetInt("count")
		head, _ := cmd.Flags().GetBool("head")
		if count < 0 {
			return errors.NotValidf("count %d", count)
		}
		array, err := base.NewDynamicArray(conf.Array.InitialCapacity)
		if err != nil {
			return errors.Trace(err)
		}

		bar := progressbar.Default(int64(count), "inserting")
		start := time.Now()
		events, err := benchmark(array, count, head, bar)
		if err != nil {
			return errors.Trace(err)
		}
		elapsed := time.Since(start)
		log.Logger().Info("complete benchmark",
			zap.Int("count", count),
			zap.Bool("head", head),
			zap.Duration("elapsed", elapsed))
		return printGrowthEvents(os.Stdout, array, events, elapsed)
	},
}

func init() {
	benchCommand.Flags().IntP("count", "n", 1000000, "number of elements to insert")
	benchCommand.Flags().Bool("head", false, "insert at the front instead of appending")
}

type growthEvent struct {
	Size        int
	OldCapacity int
	NewCapacity int
}

// benchmark inserts count elements and records every capacity change.
func benchmark(array *base.DynamicArray, count int, head bool, bar *progressbar.ProgressBar) ([]growthEvent, error) {
	var events []growthEvent
	for i := 0; i < count; i++ {
		index := array.Size()
		if head {
			index = 0
		}
		capacity := array.Capacity()
		if err := array.Insert(index, i); err != nil {
			return nil, errors.Trace(err)
		}
		if array.Capacity() != capacity {
			events = append(events, growthEvent{
				Size:        array.Size() - 1,
				OldCapacity: capacity,
				NewCapacity: array.Capacity(),
			})
		}
		if err := bar.Add(1); err != nil {
			return nil, errors.Trace(err)
		}
	}
	if err := bar.Finish(); err != nil {
		return nil, errors.Trace(err)
	}
	return events, nil
}

func printGrowthEvents(w io.Writer, array *base.DynamicArray, events []growthEvent, elapsed time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header("#", "size", "old capacity", "new capacity")
	rows := lo.Map(events, func(event growthEvent, i int) []string {
		return []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(event.Size),
			strconv.Itoa(event.OldCapacity),
			strconv.Itoa(event.NewCapacity),
		}
	})
	if err := table.Bulk(rows); err != nil {
		return errors.Trace(err)
	}
	if err := table.Render(); err != nil {
		return errors.Trace(err)
	}
	_, err := fmt.Fprintf(w, "size: %d, capacity: %d, growths: %d, elapsed: %v\n",
		array.Size(), array.Capacity(), len(events), elapsed)
	return errors.Trace(err)
}
