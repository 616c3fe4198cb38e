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
	"os"

	"github.com/gorse-io/dynarray/base"
	"github.com/gorse-io/dynarray/base/log"
	"github.com/gorse-io/dynarray/cmd/version"
	"github.com/gorse-io/dynarray/config"
	"github.com/gorse-io/dynarray/console"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCommand = &cobra.Command{
	Use:   "dynarray",
	Short: "Interactive menu over a dynamic array of integers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Show version
		if showVersion, _ := cmd.PersistentFlags().GetBool("version"); showVersion {
			fmt.Println(version.BuildInfo())
			return nil
		}

		conf, err := loadConfig(cmd)
		if err != nil {
			return errors.Trace(err)
		}
		array, err := base.NewDynamicArray(conf.Array.InitialCapacity)
		if err != nil {
			return errors.Trace(err)
		}
		log.Logger().Info("start console",
			zap.Int("initial_capacity", conf.Array.InitialCapacity),
			zap.String("display_mode", conf.Console.DisplayMode))
		return console.NewConsole(array, conf.Console, os.Stdin, os.Stdout).Run()
	},
}

// loadConfig sets up the logger and loads the configuration, applying the
// capacity flag on top of the file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	// setup logger
	debug, _ := cmd.Flags().GetBool("debug")
	log.SetLogger(cmd.Flags(), debug)

	// load config
	configPath, _ := cmd.Flags().GetString("config")
	log.Logger().Info("load config", zap.String("config", configPath))
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if cmd.Flags().Changed("capacity") {
		conf.Array.InitialCapacity, _ = cmd.Flags().GetInt("capacity")
		if err = conf.Validate(); err != nil {
			return nil, errors.Trace(err)
		}
	}
	return conf, nil
}

func init() {
	log.AddFlags(rootCommand.PersistentFlags())
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCommand.PersistentFlags().BoolP("version", "v", false, "dynarray version")
	rootCommand.PersistentFlags().StringP("config", "c", "", "configuration file path")
	rootCommand.PersistentFlags().Int("capacity", base.DefaultCapacity, "initial capacity of the array")
	rootCommand.AddCommand(benchCommand)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
