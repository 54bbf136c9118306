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

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/algorand/go-ed25519/logging"
	"github.com/algorand/go-ed25519/util/codecs"
)

// ConfigFilename is the name of the config file looked up next to the binary
// or in the working directory.
const ConfigFilename = "edkey.json"

// Supported values of Local.Encoding.
const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
	EncodingRaw    = "raw"
)

var defaultLocal = GetVersionedDefaultLocalConfig(getLatestConfigVersion())

// GetDefaultLocal returns a copy of the current defaultLocal config
func GetDefaultLocal() Local {
	return defaultLocal
}

// LoadConfigFromFile reads configFile over the defaults and migrates it to
// the latest version. When the file cannot be opened the defaults are
// returned together with the error, so callers can treat os.ErrNotExist as
// "use defaults".
func LoadConfigFromFile(configFile string) (c Local, migrations []MigrationResult, err error) {
	c = defaultLocal
	c.Version = 0 // Reset to 0 so we get the version from the loaded file.
	c, err = mergeConfigFromFile(configFile, c)
	if err != nil {
		return defaultLocal, nil, err
	}

	// If a config file does not have version, it is assumed to be zero.
	c, migrations, err = migrate(c)
	if err != nil {
		return defaultLocal, nil, err
	}
	err = c.Validate()
	return
}

func mergeConfigFromFile(configpath string, source Local) (Local, error) {
	f, err := os.Open(configpath)
	if err != nil {
		return source, err
	}
	defer f.Close()

	err = loadConfig(f, &source)
	return source, err
}

func loadConfig(reader io.Reader, config *Local) error {
	dec := json.NewDecoder(reader)
	dec.DisallowUnknownFields()
	return dec.Decode(config)
}

// SaveToFile saves the config to a specific filename, leaving out every
// setting that still holds its default.
func (cfg Local) SaveToFile(filename string) error {
	var alwaysInclude []string
	alwaysInclude = append(alwaysInclude, "Version")
	return codecs.SaveNonDefaultValuesToFile(filename, cfg, defaultLocal, alwaysInclude)
}

// Validate reports the first setting that cannot be used.
func (cfg Local) Validate() error {
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	switch cfg.Encoding {
	case EncodingHex, EncodingBase64, EncodingRaw:
	default:
		return fmt.Errorf("config: unknown encoding %q", cfg.Encoding)
	}
	if cfg.KeyFilePerm&^0777 != 0 {
		return fmt.Errorf("config: key file mode %o has bits outside 0777", cfg.KeyFilePerm)
	}
	if cfg.KeyFilePerm&0400 == 0 {
		return errors.New("config: key file mode must be readable by its owner")
	}
	if cfg.LogFile != "" && cfg.LogSizeLimit == 0 {
		return errors.New("config: LogSizeLimit must be positive when LogFile is set")
	}
	return nil
}

// LogArchiveName returns the rotation target for LogFile.
func (cfg Local) LogArchiveName() string {
	if cfg.LogArchive != "" {
		return cfg.LogArchive
	}
	return cfg.LogFile + ".archive"
}
