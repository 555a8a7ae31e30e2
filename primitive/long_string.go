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
	"unicode/utf8"
)

// [long string]

func ReadLongString(source io.Reader) (decoded string, err error) {
	length, err := ReadInt(source)
	if err != nil {
		return "", fmt.Errorf("cannot read [long string] length: %w", err)
	}
	if length < 0 {
		return "", fmt.Errorf("cannot read [long string]: invalid negative length %d", length)
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(source, buf); err != nil {
		return "", fmt.Errorf("cannot read [long string] content: %w", err)
	}
	if !utf8.Valid(buf) {
		return "", fmt.Errorf("cannot read [long string] content: invalid UTF-8")
	}
	return string(buf), nil
}

func WriteLongString(s string, dest io.Writer) error {
	length := len(s)
	if err := WriteInt(int32(length), dest); err != nil {
		return fmt.Errorf("cannot write [long string] length: %w", err)
	}
	if _, err := dest.Write([]byte(s)); err != nil {
		return fmt.Errorf("cannot write [long string] content: %w", err)
	}
	return nil
}

func LengthOfLongString(s string) int {
	return LengthOfInt + len(s)
}
