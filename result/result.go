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

// Package result turns the RESULT messages the protocol engine decodes
// into the shapes a caller actually wants: a keyspace name, a schema
// change description, a prepared statement handle, or a row cursor.
package result

import (
	"fmt"

	"github.com/nativecql/protocol/message"
	"github.com/nativecql/protocol/primitive"
)

// FromMessage converts a decoded message.Result into the value its kind
// implies: nil for Void, a string for SetKeyspace, *SchemaChange for
// SchemaChange, *Prepared for Prepared, and *Rows for Rows. version is
// threaded through to Rows so its Scan can decode typed values.
func FromMessage(msg message.Result, version primitive.ProtocolVersion) (interface{}, error) {
	switch r := msg.(type) {
	case *message.VoidResult:
		return nil, nil
	case *message.SetKeyspaceResult:
		return r.Keyspace, nil
	case *message.SchemaChangeResult:
		return &SchemaChange{
			ChangeType: r.ChangeType,
			Keyspace:   r.Keyspace,
			Object:     r.Object,
		}, nil
	case *message.PreparedResult:
		return &Prepared{
			QueryID:           r.PreparedQueryId,
			VariablesMetadata: r.VariablesMetadata,
			ResultMetadata:    r.ResultMetadata,
		}, nil
	case *message.RowsResult:
		return NewRows(r, version), nil
	default:
		return nil, fmt.Errorf("unsupported result kind %v (%T)", msg.GetResultKind(), msg)
	}
}

// SchemaChange describes a DDL statement's effect, as reported directly
// in a RESULT frame (as opposed to a pushed SCHEMA_CHANGE event).
type SchemaChange struct {
	ChangeType primitive.SchemaChangeType
	Keyspace   string
	Object     string
}

// Prepared is the handle returned by a successful PREPARE: the opaque id
// to pass back in subsequent EXECUTE messages, plus the metadata needed
// to bind variables and interpret the eventual result set.
type Prepared struct {
	QueryID           []byte
	VariablesMetadata *message.ResultMetadata
	ResultMetadata    *message.ResultMetadata
}
