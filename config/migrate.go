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
	"fmt"
	"reflect"
	"strconv"
)

// MigrationResult represents a single field migration from one version to another
type MigrationResult struct {
	FieldName              string
	OldVersion, NewVersion uint32
	OldValue, NewValue     any
}

func migrate(cfg Local) (newCfg Local, migrations []MigrationResult, err error) {
	newCfg = cfg
	originalVersion := cfg.Version
	latestConfigVersion := getLatestConfigVersion()

	if cfg.Version > latestConfigVersion {
		err = fmt.Errorf("unexpected config version: %d", cfg.Version)
		return
	}

	migrationResults := make(map[string]MigrationResult)
	localType := reflect.TypeFor[Local]()

	for newCfg.Version < latestConfigVersion {
		defaultCurrentConfig := GetVersionedDefaultLocalConfig(newCfg.Version)
		nextVersion := newCfg.Version + 1
		current := reflect.ValueOf(&newCfg).Elem()
		defaults := reflect.ValueOf(&defaultCurrentConfig).Elem()

		for fieldNum := 0; fieldNum < localType.NumField(); fieldNum++ {
			field := localType.Field(fieldNum)
			nextVersionDefaultValue, hasTag := field.Tag.Lookup(fmt.Sprintf("version[%d]", nextVersion))
			if !hasTag {
				continue
			}
			cur := current.Field(fieldNum)
			def := defaults.Field(fieldNum)
			// a value the user changed away from the previous default is kept
			if !reflect.DeepEqual(cur.Interface(), def.Interface()) {
				continue
			}
			next, perr := parseTagValue(field, nextVersionDefaultValue)
			if perr != nil {
				// the tags are checked by the unit tests
				panic(perr)
			}
			cur.Set(next)

			if m, exists := migrationResults[field.Name]; exists {
				m.NewValue = next.Interface()
				m.NewVersion = nextVersion
				migrationResults[field.Name] = m
			} else {
				migrationResults[field.Name] = MigrationResult{
					FieldName:  field.Name,
					OldVersion: originalVersion,
					NewVersion: nextVersion,
					OldValue:   def.Interface(),
					NewValue:   next.Interface(),
				}
			}
		}
	}

	// Only return migrations where the value actually changed
	for fieldNum := 0; fieldNum < localType.NumField(); fieldNum++ {
		m, ok := migrationResults[localType.Field(fieldNum).Name]
		if ok && m.FieldName != "Version" && m.OldValue != m.NewValue {
			migrations = append(migrations, m)
		}
	}
	return
}

func getLatestConfigVersion() uint32 {
	versionField, found := reflect.TypeFor[Local]().FieldByName("Version")
	if !found {
		return 0
	}
	version := uint32(0)
	for {
		_, hasTag := versionField.Tag.Lookup(fmt.Sprintf("version[%d]", version+1))
		if !hasTag {
			return version
		}
		version++
	}
}

// GetVersionedDefaultLocalConfig returns the default config for the given version.
func GetVersionedDefaultLocalConfig(version uint32) (local Local) {
	if version > 0 {
		local = GetVersionedDefaultLocalConfig(version - 1)
	}
	localType := reflect.TypeFor[Local]()
	value := reflect.ValueOf(&local).Elem()
	for fieldNum := 0; fieldNum < localType.NumField(); fieldNum++ {
		field := localType.Field(fieldNum)
		versionDefaultValue, hasTag := field.Tag.Lookup(fmt.Sprintf("version[%d]", version))
		if !hasTag {
			continue
		}
		v, err := parseTagValue(field, versionDefaultValue)
		if err != nil {
			panic(err)
		}
		value.Field(fieldNum).Set(v)
	}
	return
}

// parseTagValue converts the text of a version[N] tag to a value of the
// field's type.
func parseTagValue(field reflect.StructField, text string) (reflect.Value, error) {
	v := reflect.New(field.Type).Elem()
	switch field.Type.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return v, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(text, 10, field.Type.Bits())
		if err != nil {
			return v, err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(text, 10, field.Type.Bits())
		if err != nil {
			return v, err
		}
		v.SetUint(u)
	case reflect.String:
		v.SetString(text)
	default:
		return v, fmt.Errorf("unsupported data type (%s) encountered when reflecting on config.Local datatype %s", field.Type.Kind(), field.Name)
	}
	return v, nil
}
