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
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/algorand/go-ed25519/config"
	"github.com/algorand/go-ed25519/crypto"
)

const (
	stdoutFilenameValue = "-"
	stdinFileNameValue  = "-"
)

// exitf reports a failure on stderr and exits with status 1.
func exitf(format string, args ...interface{}) {
	closeLog()
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// encodeBytes renders b in the configured encoding. Text encodings get a
// trailing newline.
func encodeBytes(encoding string, b []byte) ([]byte, error) {
	switch encoding {
	case config.EncodingHex:
		return []byte(hex.EncodeToString(b) + "\n"), nil
	case config.EncodingBase64:
		return []byte(base64.StdEncoding.EncodeToString(b) + "\n"), nil
	case config.EncodingRaw:
		return append([]byte(nil), b...), nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", encoding)
	}
}

// decodeBytes is the inverse of encodeBytes. The decoded value must be
// exactly size bytes.
func decodeBytes(encoding string, data []byte, size int) ([]byte, error) {
	var out []byte
	var err error
	switch encoding {
	case config.EncodingHex:
		out, err = hex.DecodeString(string(bytes.TrimSpace(data)))
	case config.EncodingBase64:
		out, err = base64.StdEncoding.DecodeString(string(bytes.TrimSpace(data)))
	case config.EncodingRaw:
		out = data
	default:
		err = fmt.Errorf("unknown encoding %q", encoding)
	}
	if err != nil {
		return nil, err
	}
	if len(out) != size {
		return nil, fmt.Errorf("decoded %d bytes, expected %d", len(out), size)
	}
	return out, nil
}

func decodeSeed(encoding string, data []byte) (seed crypto.Seed, err error) {
	b, err := decodeBytes(encoding, data, crypto.SeedSize)
	if err != nil {
		return
	}
	copy(seed[:], b)
	return
}

func decodePublicKey(encoding string, data []byte) (pk crypto.PublicKey, err error) {
	b, err := decodeBytes(encoding, data, crypto.PublicKeySize)
	if err != nil {
		return
	}
	copy(pk[:], b)
	return
}

func decodeSignature(encoding string, data []byte) (sig crypto.Signature, err error) {
	b, err := decodeBytes(encoding, data, crypto.SignatureSize)
	if err != nil {
		return
	}
	copy(sig[:], b)
	return
}

func loadKeyfile(keyfile string) crypto.Seed {
	data, err := readFile(keyfile)
	if err != nil {
		exitf("Cannot read key seed from %s: %v", keyfile, err)
	}
	seed, err := decodeSeed(cfg.Encoding, data)
	if err != nil {
		exitf("Cannot decode key seed from %s: %v", keyfile, err)
	}
	return seed
}

func writeEncoded(filename string, b []byte, perm os.FileMode) {
	data, err := encodeBytes(cfg.Encoding, b)
	if err != nil {
		exitf("Cannot encode output: %v", err)
	}
	if err := writeFile(filename, data, perm); err != nil {
		exitf("Cannot write to %s: %v", filename, err)
	}
	log.Debugf("wrote %d bytes to %s", len(data), filename)
}

// writeFile is a wrapper of os.WriteFile which considers the special
// case of stdout filename
func writeFile(filename string, data []byte, perm os.FileMode) error {
	if filename == stdoutFilenameValue {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(filename, data, perm)
}

// readFile is a wrapper of os.ReadFile which considers the
// special case of stdin filename
func readFile(filename string) ([]byte, error) {
	if filename == stdinFileNameValue {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}
