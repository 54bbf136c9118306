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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/algorand/go-ed25519/crypto"
)

var verifyPubkeyfile string
var verifyMsgfile string
var verifySigfile string
var verifyStrict bool

func init() {
	verifyCmd.Flags().StringVarP(&verifyPubkeyfile, "pubkeyfile", "p", "", "Public key filename")
	verifyCmd.Flags().StringVarP(&verifyMsgfile, "message", "m", stdinFileNameValue, "Message filename")
	verifyCmd.Flags().StringVarP(&verifySigfile, "sigfile", "s", "", "Signature filename")
	verifyCmd.Flags().BoolVar(&verifyStrict, "strict", false, "Also reject small-order and non-canonical points")
	verifyCmd.MarkFlagRequired("pubkeyfile")
	verifyCmd.MarkFlagRequired("sigfile")
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check a signature against a public key and message",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		pk := readPublicKey(verifyPubkeyfile)
		sig := readSignature(verifySigfile)
		msg, err := readFile(verifyMsgfile)
		if err != nil {
			exitf("Cannot read message from %s: %v", verifyMsgfile, err)
		}

		strict := verifyStrict || cfg.StrictVerify
		if err := checkSignature(pk, msg, sig, strict); err != nil {
			log.Warnf("signature rejected for key %s: %v", pk, err)
			exitf("Signature invalid: %v", err)
		}
		fmt.Println("Signature valid")
	},
}

func checkSignature(pk crypto.PublicKey, msg []byte, sig crypto.Signature, strict bool) error {
	if strict {
		return crypto.VerifyStrict(pk, msg, sig)
	}
	return crypto.Verify(pk, msg, sig)
}

func readPublicKey(filename string) crypto.PublicKey {
	data, err := readFile(filename)
	if err != nil {
		exitf("Cannot read public key from %s: %v", filename, err)
	}
	pk, err := decodePublicKey(cfg.Encoding, data)
	if err != nil {
		exitf("Cannot decode public key from %s: %v", filename, err)
	}
	return pk
}

func readSignature(filename string) crypto.Signature {
	data, err := readFile(filename)
	if err != nil {
		exitf("Cannot read signature from %s: %v", filename, err)
	}
	sig, err := decodeSignature(cfg.Encoding, data)
	if err != nil {
		exitf("Cannot decode signature from %s: %v", filename, err)
	}
	return sig
}
