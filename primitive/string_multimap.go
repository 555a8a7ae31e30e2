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

// [string multimap]: a [short] n, followed by n pairs of <[string], [string list]>.
// Used by SUPPORTED to advertise the set of values accepted for each startup
// option.

func ReadStringMultimap(source io.Reader) (decoded map[string][]string, err error) {
	length, err := ReadShort(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read [string multimap] length: %w", err)
	}
	m := make(map[string][]string, length)
	for i := 0; i < int(length); i++ {
		key, err := ReadString(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read [string multimap] key %d: %w", i, err)
		}
		values, err := ReadStringList(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read [string multimap] values %d: %w", i, err)
		}
		m[key] = values
	}
	return m, nil
}

func WriteStringMultimap(m map[string][]string, dest io.Writer) error {
	if len(m) > 0xFFFF {
		return fmt.Errorf("cannot write [string multimap]: length %d exceeds [short] range", len(m))
	}
	if err := WriteShort(uint16(len(m)), dest); err != nil {
		return fmt.Errorf("cannot write [string multimap] length: %w", err)
	}
	for key, values := range m {
		if err := WriteString(key, dest); err != nil {
			return fmt.Errorf("cannot write [string multimap] key %q: %w", key, err)
		}
		if err := WriteStringList(values, dest); err != nil {
			return fmt.Errorf("cannot write [string multimap] values for key %q: %w", key, err)
		}
	}
	return nil
}

func LengthOfStringMultimap(m map[string][]string) int {
	length := LengthOfShort
	for key, values := range m {
		length += LengthOfString(key) + LengthOfStringList(values)
	}
	return length
}
