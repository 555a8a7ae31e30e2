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

// [short bytes]: a [short] length followed by that many bytes. Unlike
// [bytes], there is no null sentinel.

func ReadShortBytes(source io.Reader) (decoded []byte, err error) {
	length, err := ReadShort(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read [short bytes] length: %w", err)
	}
	buf := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(source, buf); err != nil {
			return nil, fmt.Errorf("cannot read [short bytes] content: %w", err)
		}
	}
	return buf, nil
}

func WriteShortBytes(b []byte, dest io.Writer) error {
	length := len(b)
	if length > 0xFFFF {
		return fmt.Errorf("cannot write [short bytes]: length %d exceeds [short] range", length)
	}
	if err := WriteShort(uint16(length), dest); err != nil {
		return fmt.Errorf("cannot write [short bytes] length: %w", err)
	}
	if length > 0 {
		if _, err := dest.Write(b); err != nil {
			return fmt.Errorf("cannot write [short bytes] content: %w", err)
		}
	}
	return nil
}

func LengthOfShortBytes(b []byte) int {
	return LengthOfShort + len(b)
}
