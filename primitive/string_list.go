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

// [string list]: a [short] n, followed by n [string]s.

func ReadStringList(source io.Reader) (decoded []string, err error) {
	length, err := ReadShort(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read [string list] length: %w", err)
	}
	list := make([]string, length)
	for i := 0; i < int(length); i++ {
		if list[i], err = ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read [string list] element %d: %w", i, err)
		}
	}
	return list, nil
}

func WriteStringList(list []string, dest io.Writer) error {
	if len(list) > 0xFFFF {
		return fmt.Errorf("cannot write [string list]: length %d exceeds [short] range", len(list))
	}
	if err := WriteShort(uint16(len(list)), dest); err != nil {
		return fmt.Errorf("cannot write [string list] length: %w", err)
	}
	for i, s := range list {
		if err := WriteString(s, dest); err != nil {
			return fmt.Errorf("cannot write [string list] element %d: %w", i, err)
		}
	}
	return nil
}

func LengthOfStringList(list []string) int {
	length := LengthOfShort
	for _, s := range list {
		length += LengthOfString(s)
	}
	return length
}
