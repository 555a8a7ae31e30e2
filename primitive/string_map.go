// Copyright 2020 DataStax
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package primitive

import (
	"fmt"
	"io"
)

// [string map]: a [short] n, followed by n pairs of [string].

func ReadStringMap(source io.Reader) (decoded map[string]string, err error) {
	length, err := ReadShort(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read [string map] length: %w", err)
	}
	m := make(map[string]string, length)
	for i := 0; i < int(length); i++ {
		key, err := ReadString(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read [string map] key %d: %w", i, err)
		}
		value, err := ReadString(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read [string map] value %d: %w", i, err)
		}
		m[key] = value
	}
	return m, nil
}

func WriteStringMap(m map[string]string, dest io.Writer) error {
	if len(m) > 0xFFFF {
		return fmt.Errorf("cannot write [string map]: length %d exceeds [short] range", len(m))
	}
	if err := WriteShort(uint16(len(m)), dest); err != nil {
		return fmt.Errorf("cannot write [string map] length: %w", err)
	}
	for key, value := range m {
		if err := WriteString(key, dest); err != nil {
			return fmt.Errorf("cannot write [string map] key %q: %w", key, err)
		}
		if err := WriteString(value, dest); err != nil {
			return fmt.Errorf("cannot write [string map] value for key %q: %w", key, err)
		}
	}
	return nil
}

func LengthOfStringMap(m map[string]string) int {
	length := LengthOfShort
	for key, value := range m {
		length += LengthOfString(key) + LengthOfString(value)
	}
	return length
}
