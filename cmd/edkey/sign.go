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
	"github.com/spf13/cobra"

	"github.com/algorand/go-ed25519/crypto"
)

var signKeyfile string
var signMsgfile string
var signOutfile string

func init() {
	signCmd.Flags().StringVarP(&signKeyfile, "keyfile", "f", "", "Private key filename")
	signCmd.Flags().StringVarP(&signMsgfile, "message", "m", stdinFileNameValue, "Message filename")
	signCmd.Flags().StringVarP(&signOutfile, "outfile", "o", stdoutFilenameValue, "Signature output filename")
	signCmd.MarkFlagRequired("keyfile")
}

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a message with a key seed",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		seed := loadKeyfile(signKeyfile)
		msg, err := readFile(signMsgfile)
		if err != nil {
			exitf("Cannot read message from %s: %v", signMsgfile, err)
		}

		sig := crypto.Sign(seed, msg)
		log.Debugf("signed %d byte message from %s", len(msg), signMsgfile)
		writeEncoded(signOutfile, sig[:], 0644)
	},
}
