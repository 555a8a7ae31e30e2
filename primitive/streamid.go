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
	"encoding/binary"
	"fmt"
	"io"
)

// StreamID identifies, on the wire, which request a response belongs to. In
// v1/v2 it is a single signed byte: DefaultStreamID is used for the one
// in-flight request a connection permits, and EventStreamID marks
// unsolicited EVENT frames that must never be matched against a pending
// request.
const (
	DefaultStreamID int8 = 0
	EventStreamID   int8 = -1
)

func ReadStreamID(source io.Reader) (decoded int8, err error) {
	if err = binary.Read(source, binary.BigEndian, &decoded); err != nil {
		return 0, fmt.Errorf("cannot read stream id: %w", err)
	}
	return decoded, nil
}

func WriteStreamID(id int8, dest io.Writer) error {
	if err := binary.Write(dest, binary.BigEndian, id); err != nil {
		return fmt.Errorf("cannot write stream id: %w", err)
	}
	return nil
}
