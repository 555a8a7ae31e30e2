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

const (
	StartupOptionCQLVersion = "CQL_VERSION"
	StartupOptionCompression = "COMPRESSION"

	DefaultCQLVersion = "3.0.0"
)

// Startup is the first message a client sends on a new connection. Options
// is a [string map]; CQL_VERSION is mandatory, COMPRESSION is negotiated
// only when the client wants a compressed connection.
type Startup struct {
	Options map[string]string
}

// NewStartup builds a Startup with CQL_VERSION defaulted to "3.0.0" unless
// overridden by an explicit option pair.
func NewStartup(options ...string) *Startup {
	opts := map[string]string{StartupOptionCQLVersion: DefaultCQLVersion}
	for i := 0; i+1 < len(options); i += 2 {
		opts[options[i]] = options[i+1]
	}
	return &Startup{Options: opts}
}

func (m *Startup) IsResponse() bool {
	return false
}

func (m *Startup) GetOpCode() primitive.OpCode {
	return primitive.OpCodeStartup
}

func (m *Startup) String() string {
	return fmt.Sprintf("STARTUP %v", m.Options)
}

type startupCodec struct{}

func (c *startupCodec) Encode(msg Message, dest io.Writer, _ primitive.ProtocolVersion) error {
	startup, ok := msg.(*Startup)
	if !ok {
		return fmt.Errorf("expected *message.Startup, got %T", msg)
	}
	if err := primitive.WriteStringMap(startup.Options, dest); err != nil {
		return fmt.Errorf("cannot write STARTUP options: %w", err)
	}
	return nil
}

func (c *startupCodec) EncodedLength(msg Message, _ primitive.ProtocolVersion) (int, error) {
	startup, ok := msg.(*Startup)
	if !ok {
		return -1, fmt.Errorf("expected *message.Startup, got %T", msg)
	}
	return primitive.LengthOfStringMap(startup.Options), nil
}

func (c *startupCodec) Decode(source io.Reader, _ primitive.ProtocolVersion) (Message, error) {
	options, err := primitive.ReadStringMap(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read STARTUP options: %w", err)
	}
	return &Startup{Options: options}, nil
}

func (c *startupCodec) GetOpCode() primitive.OpCode {
	return primitive.OpCodeStartup
}
