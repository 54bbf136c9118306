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

var pubkeyKeyfile string
var pubkeyOutfile string

func init() {
	pubkeyCmd.Flags().StringVarP(&pubkeyKeyfile, "keyfile", "f", "", "Private key filename")
	pubkeyCmd.Flags().StringVarP(&pubkeyOutfile, "outfile", "o", stdoutFilenameValue, "Public key output filename")
	pubkeyCmd.MarkFlagRequired("keyfile")
}

var pubkeyCmd = &cobra.Command{
	Use:   "pubkey",
	Short: "Derive the public key of a key seed",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		seed := loadKeyfile(pubkeyKeyfile)
		km := crypto.DeriveKeys(seed)
		defer km.Wipe()
		writeEncoded(pubkeyOutfile, km.PublicKey[:], 0644)
	},
}
