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
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/nativecql/protocol/primitive"
)

// Execute runs a previously prepared statement identified by QueryID.
// Values holds the bound parameters in their already-encoded wire form
// (nil for a SQL NULL); len(Values) must match the statement's bound
// variable count and fit in a [short].
type Execute struct {
	QueryID     []byte
	Values      [][]byte
	Consistency primitive.ConsistencyLevel
}

func (m *Execute) IsResponse() bool {
	return false
}

func (m *Execute) GetOpCode() primitive.OpCode {
	return primitive.OpCodeExecute
}

func (m *Execute) String() string {
	return fmt.Sprintf("EXECUTE %s (%d values)", hex.EncodeToString(m.QueryID), len(m.Values))
}

type executeCodec struct{}

func (c *executeCodec) Encode(msg Message, dest io.Writer, _ primitive.ProtocolVersion) error {
	execute, ok := msg.(*Execute)
	if !ok {
		return fmt.Errorf("expected *message.Execute, got %T", msg)
	}
	if len(execute.QueryID) == 0 {
		return errors.New("EXECUTE missing query id")
	}
	if err := primitive.WriteShortBytes(execute.QueryID, dest); err != nil {
		return fmt.Errorf("cannot write EXECUTE query id: %w", err)
	}
	if len(execute.Values) > 0x7FFF {
		return fmt.Errorf("EXECUTE value count %d exceeds [short] range", len(execute.Values))
	}
	if err := primitive.WriteShort(uint16(len(execute.Values)), dest); err != nil {
		return fmt.Errorf("cannot write EXECUTE value count: %w", err)
	}
	for i, value := range execute.Values {
		if err := primitive.WriteBytes(value, dest); err != nil {
			return fmt.Errorf("cannot write EXECUTE value %d: %w", i, err)
		}
	}
	if err := primitive.WriteConsistencyLevel(execute.Consistency, dest); err != nil {
		return fmt.Errorf("cannot write EXECUTE consistency: %w", err)
	}
	return nil
}

func (c *executeCodec) EncodedLength(msg Message, _ primitive.ProtocolVersion) (int, error) {
	execute, ok := msg.(*Execute)
	if !ok {
		return -1, fmt.Errorf("expected *message.Execute, got %T", msg)
	}
	size := primitive.LengthOfShortBytes(execute.QueryID) + primitive.LengthOfShort
	for _, value := range execute.Values {
		size += primitive.LengthOfBytes(value)
	}
	size += primitive.LengthOfConsistencyLevel()
	return size, nil
}

func (c *executeCodec) Decode(source io.Reader, _ primitive.ProtocolVersion) (Message, error) {
	queryID, err := primitive.ReadShortBytes(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read EXECUTE query id: %w", err)
	}
	if len(queryID) == 0 {
		return nil, errors.New("EXECUTE missing query id")
	}
	count, err := primitive.ReadShort(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read EXECUTE value count: %w", err)
	}
	values := make([][]byte, count)
	for i := 0; i < int(count); i++ {
		if values[i], err = primitive.ReadBytes(source); err != nil {
			return nil, fmt.Errorf("cannot read EXECUTE value %d: %w", i, err)
		}
	}
	consistency, err := primitive.ReadConsistencyLevel(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read EXECUTE consistency: %w", err)
	}
	return &Execute{QueryID: queryID, Values: values, Consistency: consistency}, nil
}

func (c *executeCodec) GetOpCode() primitive.OpCode {
	return primitive.OpCodeExecute
}
