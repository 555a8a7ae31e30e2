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

// Register subscribes the connection to server-pushed EVENT frames of the
// given types. The response is Ready; subsequent EVENT frames arrive with
// stream id -1.
type Register struct {
	EventTypes []primitive.EventType
}

func (m *Register) IsResponse() bool {
	return false
}

func (m *Register) GetOpCode() primitive.OpCode {
	return primitive.OpCodeRegister
}

func (m *Register) String() string {
	return fmt.Sprint("REGISTER ", m.EventTypes)
}

type registerCodec struct{}

func (c *registerCodec) Encode(msg Message, dest io.Writer, _ primitive.ProtocolVersion) error {
	register, ok := msg.(*Register)
	if !ok {
		return fmt.Errorf("expected *message.Register, got %T", msg)
	}
	if len(register.EventTypes) == 0 {
		return errors.New("REGISTER messages must have at least one event type")
	}
	for _, eventType := range register.EventTypes {
		if err := checkValidEventType(eventType); err != nil {
			return err
		}
	}
	if err := primitive.WriteStringList(register.EventTypes, dest); err != nil {
		return fmt.Errorf("cannot write REGISTER event types: %w", err)
	}
	return nil
}

func (c *registerCodec) EncodedLength(msg Message, _ primitive.ProtocolVersion) (int, error) {
	register, ok := msg.(*Register)
	if !ok {
		return -1, fmt.Errorf("expected *message.Register, got %T", msg)
	}
	return primitive.LengthOfStringList(register.EventTypes), nil
}

func (c *registerCodec) Decode(source io.Reader, _ primitive.ProtocolVersion) (Message, error) {
	eventTypes, err := primitive.ReadStringList(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read REGISTER event types: %w", err)
	}
	for _, eventType := range eventTypes {
		if err := checkValidEventType(eventType); err != nil {
			return nil, err
		}
	}
	return &Register{EventTypes: eventTypes}, nil
}

func (c *registerCodec) GetOpCode() primitive.OpCode {
	return primitive.OpCodeRegister
}

func checkValidEventType(eventType primitive.EventType) error {
	switch eventType {
	case primitive.EventTypeTopologyChange, primitive.EventTypeStatusChange, primitive.EventTypeSchemaChange:
		return nil
	default:
		return fmt.Errorf("invalid event type: %v", eventType)
	}
}
