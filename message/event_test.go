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
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nativecql/protocol/primitive"
)

func TestEventCodec_EncodeDecode(t *testing.T) {
	codec := &eventCodec{}
	for _, version := range allProtocolVersions {
		t.Run(version.String(), func(t *testing.T) {
			events := []Event{
				&SchemaChangeEvent{
					ChangeType: primitive.SchemaChangeTypeCreated,
					Keyspace:   "ks1",
					Object:     "t1",
				},
				&StatusChangeEvent{
					ChangeType: primitive.StatusChangeTypeUp,
					Address:    primitive.Inet{Addr: net.ParseIP("127.0.0.1"), Port: 9042},
				},
				&TopologyChangeEvent{
					ChangeType: primitive.TopologyChangeTypeNewNode,
					Address:    primitive.Inet{Addr: net.ParseIP("127.0.0.1"), Port: 9042},
				},
			}
			for _, evt := range events {
				t.Run(evt.GetEventType(), func(t *testing.T) {
					dest := &bytes.Buffer{}
					err := codec.Encode(evt, dest, version)
					assert.NoError(t, err)

					length, lenErr := codec.EncodedLength(evt, version)
					assert.NoError(t, lenErr)
					assert.Equal(t, dest.Len(), length)

					decoded, decodeErr := codec.Decode(bytes.NewReader(dest.Bytes()), version)
					assert.NoError(t, decodeErr)
					assert.Equal(t, evt, decoded)
				})
			}
		})
	}
}

func TestEventCodec_Encode_wrongType(t *testing.T) {
	codec := &eventCodec{}
	for _, version := range allProtocolVersions {
		t.Run(version.String(), func(t *testing.T) {
			dest := &bytes.Buffer{}
			err := codec.Encode(&Ready{}, dest, version)
			assert.Equal(t, errors.New("expected message.Event, got *message.Ready"), err)
		})
	}
}

func TestEventCodec_Decode_invalidType(t *testing.T) {
	codec := &eventCodec{}
	for _, version := range allProtocolVersions {
		t.Run(version.String(), func(t *testing.T) {
			source := &bytes.Buffer{}
			assert.NoError(t, primitive.WriteString("NOT_AN_EVENT", source))
			_, err := codec.Decode(source, version)
			assert.Equal(t, errors.New("invalid event type: NOT_AN_EVENT"), err)
		})
	}
}
