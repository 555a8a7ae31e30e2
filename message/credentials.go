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

// Credentials answers an AUTHENTICATE challenge. It predates SASL-based
// authentication: the body is simply a [string map] of credential keys to
// values (typically "username" and "password"), superseded by AUTH_RESPONSE
// in later protocol versions.
type Credentials struct {
	Values map[string]string
}

func (m *Credentials) IsResponse() bool {
	return false
}

func (m *Credentials) GetOpCode() primitive.OpCode {
	return primitive.OpCodeCredentials
}

func (m *Credentials) String() string {
	return "CREDENTIALS"
}

type credentialsCodec struct{}

func (c *credentialsCodec) Encode(msg Message, dest io.Writer, _ primitive.ProtocolVersion) error {
	credentials, ok := msg.(*Credentials)
	if !ok {
		return fmt.Errorf("expected *message.Credentials, got %T", msg)
	}
	if err := primitive.WriteStringMap(credentials.Values, dest); err != nil {
		return fmt.Errorf("cannot write CREDENTIALS values: %w", err)
	}
	return nil
}

func (c *credentialsCodec) EncodedLength(msg Message, _ primitive.ProtocolVersion) (int, error) {
	credentials, ok := msg.(*Credentials)
	if !ok {
		return -1, fmt.Errorf("expected *message.Credentials, got %T", msg)
	}
	return primitive.LengthOfStringMap(credentials.Values), nil
}

func (c *credentialsCodec) Decode(source io.Reader, _ primitive.ProtocolVersion) (Message, error) {
	values, err := primitive.ReadStringMap(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read CREDENTIALS values: %w", err)
	}
	return &Credentials{Values: values}, nil
}

func (c *credentialsCodec) GetOpCode() primitive.OpCode {
	return primitive.OpCodeCredentials
}
