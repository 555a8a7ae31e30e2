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

// Event is a server-pushed notification delivered on stream id -1 after a
// successful REGISTER. There is exactly one concrete implementation per
// primitive.EventType.
type Event interface {
	Message
	GetEventType() primitive.EventType
}

// SchemaChangeEvent notifies of a keyspace or table creation, update or
// drop. Object is empty when the change applies to the keyspace itself.
type SchemaChangeEvent struct {
	ChangeType primitive.SchemaChangeType
	Keyspace   string
	Object     string
}

func (m *SchemaChangeEvent) IsResponse() bool {
	return true
}

func (m *SchemaChangeEvent) GetOpCode() primitive.OpCode {
	return primitive.OpCodeEvent
}

func (m *SchemaChangeEvent) GetEventType() primitive.EventType {
	return primitive.EventTypeSchemaChange
}

func (m *SchemaChangeEvent) String() string {
	return fmt.Sprintf("EVENT SCHEMA_CHANGE %s %s.%s", m.ChangeType, m.Keyspace, m.Object)
}

// StatusChangeEvent notifies that a node went up or down.
type StatusChangeEvent struct {
	ChangeType primitive.StatusChangeType
	Address    primitive.Inet
}

func (m *StatusChangeEvent) IsResponse() bool {
	return true
}

func (m *StatusChangeEvent) GetOpCode() primitive.OpCode {
	return primitive.OpCodeEvent
}

func (m *StatusChangeEvent) GetEventType() primitive.EventType {
	return primitive.EventTypeStatusChange
}

func (m *StatusChangeEvent) String() string {
	return fmt.Sprintf("EVENT STATUS_CHANGE %s %s", m.ChangeType, m.Address)
}

// TopologyChangeEvent notifies that a node joined or left the ring.
type TopologyChangeEvent struct {
	ChangeType primitive.TopologyChangeType
	Address    primitive.Inet
}

func (m *TopologyChangeEvent) IsResponse() bool {
	return true
}

func (m *TopologyChangeEvent) GetOpCode() primitive.OpCode {
	return primitive.OpCodeEvent
}

func (m *TopologyChangeEvent) GetEventType() primitive.EventType {
	return primitive.EventTypeTopologyChange
}

func (m *TopologyChangeEvent) String() string {
	return fmt.Sprintf("EVENT TOPOLOGY_CHANGE %s %s", m.ChangeType, m.Address)
}

type eventCodec struct{}

func (c *eventCodec) Encode(msg Message, dest io.Writer, _ primitive.ProtocolVersion) error {
	switch event := msg.(type) {
	case *SchemaChangeEvent:
		if err := primitive.WriteString(string(primitive.EventTypeSchemaChange), dest); err != nil {
			return fmt.Errorf("cannot write EVENT type: %w", err)
		}
		if err := primitive.CheckValidSchemaChangeType(event.ChangeType); err != nil {
			return err
		}
		if err := primitive.WriteString(string(event.ChangeType), dest); err != nil {
			return fmt.Errorf("cannot write SCHEMA_CHANGE change type: %w", err)
		}
		if err := primitive.WriteString(event.Keyspace, dest); err != nil {
			return fmt.Errorf("cannot write SCHEMA_CHANGE keyspace: %w", err)
		}
		if err := primitive.WriteString(event.Object, dest); err != nil {
			return fmt.Errorf("cannot write SCHEMA_CHANGE object: %w", err)
		}
		return nil
	case *StatusChangeEvent:
		if err := primitive.WriteString(string(primitive.EventTypeStatusChange), dest); err != nil {
			return fmt.Errorf("cannot write EVENT type: %w", err)
		}
		if err := primitive.CheckValidStatusChangeType(event.ChangeType); err != nil {
			return err
		}
		if err := primitive.WriteString(string(event.ChangeType), dest); err != nil {
			return fmt.Errorf("cannot write STATUS_CHANGE change type: %w", err)
		}
		if err := primitive.WriteInet(event.Address, dest); err != nil {
			return fmt.Errorf("cannot write STATUS_CHANGE address: %w", err)
		}
		return nil
	case *TopologyChangeEvent:
		if err := primitive.WriteString(string(primitive.EventTypeTopologyChange), dest); err != nil {
			return fmt.Errorf("cannot write EVENT type: %w", err)
		}
		if err := primitive.CheckValidTopologyChangeType(event.ChangeType); err != nil {
			return err
		}
		if err := primitive.WriteString(string(event.ChangeType), dest); err != nil {
			return fmt.Errorf("cannot write TOPOLOGY_CHANGE change type: %w", err)
		}
		if err := primitive.WriteInet(event.Address, dest); err != nil {
			return fmt.Errorf("cannot write TOPOLOGY_CHANGE address: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("expected message.Event, got %T", msg)
	}
}

func (c *eventCodec) EncodedLength(msg Message, _ primitive.ProtocolVersion) (int, error) {
	switch event := msg.(type) {
	case *SchemaChangeEvent:
		size := primitive.LengthOfString(string(primitive.EventTypeSchemaChange))
		size += primitive.LengthOfString(string(event.ChangeType))
		size += primitive.LengthOfString(event.Keyspace)
		size += primitive.LengthOfString(event.Object)
		return size, nil
	case *StatusChangeEvent:
		size := primitive.LengthOfString(string(primitive.EventTypeStatusChange))
		size += primitive.LengthOfString(string(event.ChangeType))
		size += primitive.LengthOfInet(event.Address)
		return size, nil
	case *TopologyChangeEvent:
		size := primitive.LengthOfString(string(primitive.EventTypeTopologyChange))
		size += primitive.LengthOfString(string(event.ChangeType))
		size += primitive.LengthOfInet(event.Address)
		return size, nil
	default:
		return -1, fmt.Errorf("expected message.Event, got %T", msg)
	}
}

func (c *eventCodec) Decode(source io.Reader, _ primitive.ProtocolVersion) (Message, error) {
	eventType, err := primitive.ReadString(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read EVENT type: %w", err)
	}
	switch primitive.EventType(eventType) {
	case primitive.EventTypeSchemaChange:
		changeType, err := primitive.ReadString(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read SCHEMA_CHANGE change type: %w", err)
		}
		if err := primitive.CheckValidSchemaChangeType(primitive.SchemaChangeType(changeType)); err != nil {
			return nil, err
		}
		keyspace, err := primitive.ReadString(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read SCHEMA_CHANGE keyspace: %w", err)
		}
		object, err := primitive.ReadString(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read SCHEMA_CHANGE object: %w", err)
		}
		return &SchemaChangeEvent{
			ChangeType: primitive.SchemaChangeType(changeType),
			Keyspace:   keyspace,
			Object:     object,
		}, nil
	case primitive.EventTypeStatusChange:
		changeType, err := primitive.ReadString(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read STATUS_CHANGE change type: %w", err)
		}
		if err := primitive.CheckValidStatusChangeType(primitive.StatusChangeType(changeType)); err != nil {
			return nil, err
		}
		address, err := primitive.ReadInet(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read STATUS_CHANGE address: %w", err)
		}
		return &StatusChangeEvent{ChangeType: primitive.StatusChangeType(changeType), Address: address}, nil
	case primitive.EventTypeTopologyChange:
		changeType, err := primitive.ReadString(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read TOPOLOGY_CHANGE change type: %w", err)
		}
		if err := primitive.CheckValidTopologyChangeType(primitive.TopologyChangeType(changeType)); err != nil {
			return nil, err
		}
		address, err := primitive.ReadInet(source)
		if err != nil {
			return nil, fmt.Errorf("cannot read TOPOLOGY_CHANGE address: %w", err)
		}
		return &TopologyChangeEvent{ChangeType: primitive.TopologyChangeType(changeType), Address: address}, nil
	default:
		return nil, fmt.Errorf("invalid event type: %v", eventType)
	}
}

func (c *eventCodec) GetOpCode() primitive.OpCode {
	return primitive.OpCodeEvent
}
