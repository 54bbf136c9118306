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

// Local holds the per-installation settings of the edkey tool. They are
// loaded from ConfigFilename and never exchanged with anyone else.
//
// Each field carries its default per config version in a version[N] tag.
// A field whose value on load equals the default of an older version is
// moved to the newest default by migrate.
type Local struct {
	// Version tracks the current version of the defaults so we can migrate old -> new
	// This is specifically important whenever we decide to change the default value
	// for an existing parameter. This field tag must be updated any time we add a new version.
	Version uint32 `version[0]:"0" version[1]:"1"`

	// LogLevel is the minimum level written to the log, one of the names
	// accepted by logging.ParseLevel.
	LogLevel string `version[0]:"warn"`

	// JSONLogs switches the log output from text to json.
	JSONLogs bool `version[0]:"false"`

	// LogFile, when set, sends logs to a size-capped file instead of stderr.
	LogFile string `version[1]:""`

	// LogArchive is the name a full LogFile is rotated to.
	LogArchive string `version[1]:""`

	// LogSizeLimit is the size in bytes at which LogFile is rotated.
	LogSizeLimit uint64 `version[1]:"1073741824"`

	// Encoding controls how keys and signatures are written and read:
	// hex, base64 or raw.
	Encoding string `version[0]:"hex"`

	// KeyFilePerm is the file mode used for seed files.
	KeyFilePerm uint32 `version[0]:"420" version[1]:"384"`

	// StrictVerify makes verify reject small-order and non-canonical
	// public keys and R values.
	StrictVerify bool `version[1]:"false"`
}
