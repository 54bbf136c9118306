// Copyright (C) 2019-2025 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/algorand/go-deadlock"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/algorand/go-ed25519/config"
	"github.com/algorand/go-ed25519/logging"
)

var versionCheck bool
var configFile string

// cfg holds the settings in effect for the running command.
var cfg = config.GetDefaultLocal()

var log = logging.Base()

// logWriter is the rotating log file, when one is configured.
var logWriter *logging.CyclicFileWriter

var rootCmd = &cobra.Command{
	Use:   "edkey",
	Short: "CLI for Ed25519 keys and signatures",
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if err := loadSettings(configFile, cmd.Flags().Changed("config")); err != nil {
			exitf("%v", err)
		}
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		closeLog()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionCheck {
			fmt.Println(config.FormatVersionAndLicense())
			return
		}
		// If no arguments passed, we should fallback to help
		cmd.HelpFunc()(cmd, args)
	},
}

func init() {
	deadlock.Opts.Disable = config.DefaultDeadlock != "enable"

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(pubkeyCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.Flags().BoolVarP(&versionCheck, "version", "v", false, "Display and write current build version and exit")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.ConfigFilename, "Settings file")
}

// loadSettings reads the config file and applies its logging settings. A
// missing file is only an error when the user named it explicitly.
func loadSettings(path string, explicit bool) error {
	loaded, migrations, err := config.LoadConfigFromFile(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		loaded = config.GetDefaultLocal()
	default:
		return fmt.Errorf("cannot load settings from %s: %w", path, err)
	}
	cfg = loaded

	if err := setupLogging(cfg); err != nil {
		return err
	}
	for _, m := range migrations {
		log.Infof("config %s migrated from %v (v%d) to %v (v%d)", m.FieldName, m.OldValue, m.OldVersion, m.NewValue, m.NewVersion)
	}
	return nil
}

func setupLogging(c config.Local) error {
	lvl, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	if c.JSONLogs {
		log.SetJSONFormatter()
	}
	if c.LogFile == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	w, err := logging.NewCyclicFileWriter(c.LogFile, c.LogArchiveName(), c.LogSizeLimit)
	if err != nil {
		return fmt.Errorf("cannot open log file %s: %w", c.LogFile, err)
	}
	closeLog()
	logWriter = w
	log.SetOutput(w)
	return nil
}

func closeLog() {
	if logWriter == nil {
		return
	}
	log.SetOutput(os.Stderr)
	logWriter.Close()
	logWriter = nil
}

func main() {
	// Hidden command to generate docs in a given directory
	// edkey generate-docs [path]
	if len(os.Args) == 3 && os.Args[1] == "generate-docs" {
		err := doc.GenMarkdownTree(rootCmd, os.Args[2])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
