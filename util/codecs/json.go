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

package codecs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
)

// NewFormattedJSONEncoder returns a json encoder configured for
// pretty-printed output (human-readable)
func NewFormattedJSONEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	enc.SetEscapeHTML(false)
	return enc
}

// LoadObjectFromFile implements the common pattern for loading an instance
// of an object from a json file.
func LoadObjectFromFile(filename string, object interface{}) (err error) {
	f, err := os.Open(filename)
	if err != nil {
		return
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	err = dec.Decode(object)
	return
}

// SaveObjectToFile implements the common pattern for saving an object to a file as json
func SaveObjectToFile(filename string, object interface{}, prettyFormat bool) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	var enc *json.Encoder
	if prettyFormat {
		enc = NewFormattedJSONEncoder(f)
	} else {
		enc = json.NewEncoder(f)
	}
	return enc.Encode(object)
}

// SaveNonDefaultValuesToFile saves a flat struct to a file as json, keeping
// only the fields whose value differs from defaultObject, plus the fields
// named in alwaysInclude.
func SaveNonDefaultValuesToFile(filename string, object, defaultObject interface{}, alwaysInclude []string) error {
	var buf bytes.Buffer
	if err := NewFormattedJSONEncoder(&buf).Encode(object); err != nil {
		return err
	}

	out, err := filterDefaultLines(buf.String(), createValueMap(object), createValueMap(defaultObject), alwaysInclude)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(out), 0600)
}

// filterDefaultLines drops "name": value lines of a pretty-printed flat
// object whose value matches the default.
func filterDefaultLines(content string, objectValues, defaultValues map[string]interface{}, alwaysInclude []string) (string, error) {
	valueLines := strings.Split(content, "\n")
	kept := make([]string, 0, len(valueLines))
	inContent := false

	for _, line := range valueLines {
		if line == "" {
			continue
		}
		valName := extractValueName(line)
		if valName == "" {
			if !inContent {
				if !strings.Contains(line, "{") {
					return "", fmt.Errorf("error processing serialized object - we don't support nested types: %s", line)
				}
				inContent = true
			} else {
				if !strings.Contains(line, "}") {
					return "", fmt.Errorf("error processing serialized object - we don't support nested types: %s", line)
				}
				inContent = false
			}
			kept = append(kept, line)
			continue
		}

		if !inContent {
			return "", fmt.Errorf("error processing serialized object - should be at EOF: %s", line)
		}
		if !inStringArray(valName, alwaysInclude) && isDefaultValue(valName, objectValues, defaultValues) {
			continue
		}
		kept = append(kept, line)
	}

	// the last value line must not end in a comma
	if n := len(kept); n > 2 {
		last := kept[n-2]
		kept[n-2] = strings.TrimSuffix(last, ",")
	}
	return strings.Join(kept, "\n") + "\n", nil
}

func extractValueName(line string) (name string) {
	start := strings.Index(line, "\"")
	if start < 0 {
		return
	}
	end := strings.Index(line, "\":")
	if end < 0 || end <= start {
		return
	}
	return line[start+1 : end]
}

func inStringArray(item string, set []string) bool {
	for _, s := range set {
		if item == s {
			return true
		}
	}
	return false
}

func createValueMap(object interface{}) map[string]interface{} {
	valueMap := make(map[string]interface{})

	val := reflect.Indirect(reflect.ValueOf(object))
	for i := 0; i < val.NumField(); i++ {
		valueMap[val.Type().Field(i).Name] = val.Field(i).Interface()
	}
	return valueMap
}

func isDefaultValue(name string, values, defaults map[string]interface{}) bool {
	val, hasVal := values[name]
	def, hasDef := defaults[name]
	if hasVal != hasDef {
		return false
	}

	return reflect.DeepEqual(val, def)
}
