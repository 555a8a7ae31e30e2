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
	"bytes"
	"fmt"
	"io"

	"github.com/nativecql/protocol/cqlerror"
	"github.com/nativecql/protocol/primitive"
)

// Error wraps a decoded ERROR response. Cause carries the specific kind
// (ServerError, Unavailable, WriteTimeout, and so on); callers that need to
// branch on the kind should type-switch on Cause, not on Error itself.
type Error struct {
	Cause cqlerror.ServerSideError
}

func (m *Error) IsResponse() bool {
	return true
}

func (m *Error) GetOpCode() primitive.OpCode {
	return primitive.OpCodeError
}

func (m *Error) String() string {
	return fmt.Sprintf("ERROR %v", m.Cause)
}

// Unwrap lets errors.As/errors.Is reach the underlying cqlerror kind.
func (m *Error) Unwrap() error {
	return m.Cause
}

type errorCodec struct{}

func (c *errorCodec) Encode(msg Message, dest io.Writer, _ primitive.ProtocolVersion) error {
	errMsg, ok := msg.(*Error)
	if !ok {
		return fmt.Errorf("expected *message.Error, got %T", msg)
	}
	if err := cqlerror.Encode(errMsg.Cause, dest); err != nil {
		return fmt.Errorf("cannot write ERROR body: %w", err)
	}
	return nil
}

func (c *errorCodec) EncodedLength(msg Message, _ primitive.ProtocolVersion) (int, error) {
	errMsg, ok := msg.(*Error)
	if !ok {
		return -1, fmt.Errorf("expected *message.Error, got %T", msg)
	}
	var buf bytes.Buffer
	if err := cqlerror.Encode(errMsg.Cause, &buf); err != nil {
		return -1, fmt.Errorf("cannot compute ERROR body length: %w", err)
	}
	return buf.Len(), nil
}

func (c *errorCodec) Decode(source io.Reader, _ primitive.ProtocolVersion) (Message, error) {
	cause, err := cqlerror.Decode(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read ERROR body: %w", err)
	}
	return &Error{Cause: cause}, nil
}

func (c *errorCodec) GetOpCode() primitive.OpCode {
	return primitive.OpCodeError
}
