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

	"github.com/algorand/go-ed25519/crypto"
)

var generateKeyfile string
var generatePubkeyfile string

func init() {
	generateCmd.Flags().StringVarP(&generateKeyfile, "keyfile", "f", "", "Private key filename")
	generateCmd.Flags().StringVarP(&generatePubkeyfile, "pubkeyfile", "p", "", "Public key filename")
	generateCmd.MarkFlagRequired("keyfile")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new key seed and print its public key",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		seed := crypto.GenerateSeed()
		key := crypto.GenerateSignatureSecrets(seed)

		writeEncoded(generateKeyfile, seed[:], os.FileMode(cfg.KeyFilePerm))
		log.Infof("new key seed written to %s", generateKeyfile)

		if generatePubkeyfile != "" {
			writeEncoded(generatePubkeyfile, key.SignatureVerifier[:], 0644)
		}
		if generateKeyfile != stdoutFilenameValue && generatePubkeyfile != stdoutFilenameValue {
			writeEncoded(stdoutFilenameValue, key.SignatureVerifier[:], 0)
		}
	},
}
