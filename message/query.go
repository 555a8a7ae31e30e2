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
	"fmt"
	"io"

	"github.com/nativecql/protocol/primitive"
)

// Query executes a CQL statement directly. The body is just the CQL text
// and the desired consistency level; v1/v2 carries no paging or bind
// variable flags on QUERY.
type Query struct {
	Query       string
	Consistency primitive.ConsistencyLevel
}

func (q *Query) String() string {
	return fmt.Sprintf("QUERY %s", q.Query)
}

func (q *Query) IsResponse() bool {
	return false
}

func (q *Query) GetOpCode() primitive.OpCode {
	return primitive.OpCodeQuery
}

type queryCodec struct{}

func (c *queryCodec) Encode(msg Message, dest io.Writer, _ primitive.ProtocolVersion) error {
	query, ok := msg.(*Query)
	if !ok {
		return fmt.Errorf("expected *message.Query, got %T", msg)
	}
	if err := primitive.WriteLongString(query.Query, dest); err != nil {
		return fmt.Errorf("cannot write QUERY query string: %w", err)
	}
	if err := primitive.WriteConsistencyLevel(query.Consistency, dest); err != nil {
		return fmt.Errorf("cannot write QUERY consistency: %w", err)
	}
	return nil
}

func (c *queryCodec) EncodedLength(msg Message, _ primitive.ProtocolVersion) (int, error) {
	query, ok := msg.(*Query)
	if !ok {
		return -1, fmt.Errorf("expected *message.Query, got %T", msg)
	}
	return primitive.LengthOfLongString(query.Query) + primitive.LengthOfConsistencyLevel(), nil
}

func (c *queryCodec) Decode(source io.Reader, _ primitive.ProtocolVersion) (Message, error) {
	cql, err := primitive.ReadLongString(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read QUERY query string: %w", err)
	}
	consistency, err := primitive.ReadConsistencyLevel(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read QUERY consistency: %w", err)
	}
	return &Query{Query: cql, Consistency: consistency}, nil
}

func (c *queryCodec) GetOpCode() primitive.OpCode {
	return primitive.OpCodeQuery
}
