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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nativecql/protocol/primitive"
)

func TestResultCodec_EncodeDecode_voidAndSetKeyspaceAndSchemaChange(t *testing.T) {
	codec := &resultCodec{}
	for _, version := range allProtocolVersions {
		t.Run(version.String(), func(t *testing.T) {
			results := []struct {
				name   string
				result Result
			}{
				{"void", &VoidResult{}},
				{"set keyspace", &SetKeyspaceResult{Keyspace: "ks1"}},
				{"schema change", &SchemaChangeResult{
					ChangeType: primitive.SchemaChangeTypeCreated,
					Keyspace:   "ks1",
					Object:     "t1",
				}},
			}
			for _, tt := range results {
				result := tt.result
				t.Run(tt.name, func(t *testing.T) {
					dest := &bytes.Buffer{}
					err := codec.Encode(result, dest, version)
					assert.NoError(t, err)

					length, lenErr := codec.EncodedLength(result, version)
					assert.NoError(t, lenErr)
					assert.Equal(t, dest.Len(), length)

					decoded, decodeErr := codec.Decode(bytes.NewReader(dest.Bytes()), version)
					assert.NoError(t, decodeErr)
					assert.Equal(t, result, decoded)
				})
			}
		})
	}
}

func TestResultCodec_Encode_setKeyspaceEmpty(t *testing.T) {
	codec := &resultCodec{}
	for _, version := range allProtocolVersions {
		t.Run(version.String(), func(t *testing.T) {
			dest := &bytes.Buffer{}
			err := codec.Encode(&SetKeyspaceResult{}, dest, version)
			assert.Equal(t, errors.New("RESULT SetKeyspace: cannot write empty keyspace"), err)
		})
	}
}

func TestResultCodec_Encode_schemaChangeEmptyKeyspace(t *testing.T) {
	codec := &resultCodec{}
	for _, version := range allProtocolVersions {
		t.Run(version.String(), func(t *testing.T) {
			dest := &bytes.Buffer{}
			err := codec.Encode(&SchemaChangeResult{ChangeType: primitive.SchemaChangeTypeCreated}, dest, version)
			assert.Equal(t, errors.New("RESULT SchemaChange: cannot write empty keyspace"), err)
		})
	}
}

func TestResultCodec_Encode_wrongType(t *testing.T) {
	codec := &resultCodec{}
	for _, version := range allProtocolVersions {
		t.Run(version.String(), func(t *testing.T) {
			dest := &bytes.Buffer{}
			err := codec.Encode(&Ready{}, dest, version)
			assert.Equal(t, errors.New("expected message.Result, got *message.Ready"), err)
		})
	}
}
