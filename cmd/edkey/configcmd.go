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
	"os"

	"github.com/spf13/cobra"

	"github.com/algorand/go-ed25519/util/codecs"
)

var configOutfile string

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSaveCmd)
	configSaveCmd.Flags().StringVarP(&configOutfile, "outfile", "o", "", "Settings output filename")
	configSaveCmd.MarkFlagRequired("outfile")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and write edkey settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings in effect",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := codecs.NewFormattedJSONEncoder(os.Stdout).Encode(cfg); err != nil {
			exitf("Cannot print settings: %v", err)
		}
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the settings in effect, omitting defaults",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := cfg.SaveToFile(configOutfile); err != nil {
			exitf("Cannot write settings to %s: %v", configOutfile, err)
		}
		log.Infof("settings written to %s", configOutfile)
	},
}
