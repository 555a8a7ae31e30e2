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

package message

import (
	"errors"
	"fmt"
	"io"

	"github.com/nativecql/protocol/primitive"
)

// Prepare asks the server to parse and cache a CQL statement for later
// EXECUTE requests. The body is just the CQL text; v1/v2 carries no
// per-keyspace flag.
type Prepare struct {
	Query string
}

func (m *Prepare) IsResponse() bool {
	return false
}

func (m *Prepare) GetOpCode() primitive.OpCode {
	return primitive.OpCodePrepare
}

func (m *Prepare) String() string {
	return fmt.Sprintf("PREPARE %s", m.Query)
}

type prepareCodec struct{}

func (c *prepareCodec) Encode(msg Message, dest io.Writer, _ primitive.ProtocolVersion) error {
	prepare, ok := msg.(*Prepare)
	if !ok {
		return fmt.Errorf("expected *message.Prepare, got %T", msg)
	}
	if prepare.Query == "" {
		return errors.New("cannot write PREPARE empty query string")
	}
	if err := primitive.WriteLongString(prepare.Query, dest); err != nil {
		return fmt.Errorf("cannot write PREPARE query string: %w", err)
	}
	return nil
}

func (c *prepareCodec) EncodedLength(msg Message, _ primitive.ProtocolVersion) (int, error) {
	prepare, ok := msg.(*Prepare)
	if !ok {
		return -1, fmt.Errorf("expected *message.Prepare, got %T", msg)
	}
	return primitive.LengthOfLongString(prepare.Query), nil
}

func (c *prepareCodec) Decode(source io.Reader, _ primitive.ProtocolVersion) (Message, error) {
	query, err := primitive.ReadLongString(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read PREPARE query: %w", err)
	}
	return &Prepare{Query: query}, nil
}

func (c *prepareCodec) GetOpCode() primitive.OpCode {
	return primitive.OpCodePrepare
}
