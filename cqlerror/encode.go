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

package cqlerror

import (
	"fmt"
	"io"

	"github.com/nativecql/protocol/primitive"
)

// Encode writes an ERROR response body for err. It is primarily used by
// tests to produce wire fixtures; a production server is the only other
// writer of this shape.
func Encode(err ServerSideError, dest io.Writer) error {
	if writeErr := primitive.WriteInt(int32(err.Code()), dest); writeErr != nil {
		return fmt.Errorf("cannot write error code: %w", writeErr)
	}
	switch e := err.(type) {
	case *ServerError:
		return primitive.WriteString(e.Message, dest)
	case *ProtocolError:
		return primitive.WriteString(e.Message, dest)
	case *BadCredentials:
		return primitive.WriteString(e.Message, dest)
	case *Overloaded:
		return primitive.WriteString(e.Message, dest)
	case *IsBootstrapping:
		return primitive.WriteString(e.Message, dest)
	case *TruncateError:
		return primitive.WriteString(e.Message, dest)
	case *SyntaxError:
		return primitive.WriteString(e.Message, dest)
	case *Unauthorized:
		return primitive.WriteString(e.Message, dest)
	case *Invalid:
		return primitive.WriteString(e.Message, dest)
	case *ConfigError:
		return primitive.WriteString(e.Message, dest)
	case *Unavailable:
		if writeErr := primitive.WriteString(e.Message, dest); writeErr != nil {
			return writeErr
		}
		if writeErr := primitive.WriteConsistencyLevel(e.Consistency, dest); writeErr != nil {
			return fmt.Errorf("cannot write UNAVAILABLE consistency: %w", writeErr)
		}
		if writeErr := primitive.WriteInt(e.Required, dest); writeErr != nil {
			return fmt.Errorf("cannot write UNAVAILABLE required: %w", writeErr)
		}
		return primitive.WriteInt(e.Alive, dest)
	case *WriteTimeout:
		if writeErr := primitive.WriteString(e.Message, dest); writeErr != nil {
			return writeErr
		}
		if writeErr := primitive.WriteConsistencyLevel(e.Consistency, dest); writeErr != nil {
			return fmt.Errorf("cannot write WRITE_TIMEOUT consistency: %w", writeErr)
		}
		if writeErr := primitive.WriteInt(e.Received, dest); writeErr != nil {
			return fmt.Errorf("cannot write WRITE_TIMEOUT received: %w", writeErr)
		}
		if writeErr := primitive.WriteInt(e.BlockFor, dest); writeErr != nil {
			return fmt.Errorf("cannot write WRITE_TIMEOUT blockfor: %w", writeErr)
		}
		return primitive.WriteString(string(e.WriteType), dest)
	case *ReadTimeout:
		if writeErr := primitive.WriteString(e.Message, dest); writeErr != nil {
			return writeErr
		}
		if writeErr := primitive.WriteConsistencyLevel(e.Consistency, dest); writeErr != nil {
			return fmt.Errorf("cannot write READ_TIMEOUT consistency: %w", writeErr)
		}
		if writeErr := primitive.WriteInt(e.Received, dest); writeErr != nil {
			return fmt.Errorf("cannot write READ_TIMEOUT received: %w", writeErr)
		}
		if writeErr := primitive.WriteInt(e.BlockFor, dest); writeErr != nil {
			return fmt.Errorf("cannot write READ_TIMEOUT blockfor: %w", writeErr)
		}
		var dataPresent uint8
		if e.DataPresent {
			dataPresent = 1
		}
		return primitive.WriteByte(dataPresent, dest)
	case *AlreadyExists:
		if writeErr := primitive.WriteString(e.Message, dest); writeErr != nil {
			return writeErr
		}
		if writeErr := primitive.WriteString(e.Keyspace, dest); writeErr != nil {
			return fmt.Errorf("cannot write ALREADY_EXISTS keyspace: %w", writeErr)
		}
		return primitive.WriteString(e.Table, dest)
	case *Unprepared:
		if writeErr := primitive.WriteString(e.Message, dest); writeErr != nil {
			return writeErr
		}
		return primitive.WriteShortBytes(e.UnknownID, dest)
	default:
		return fmt.Errorf("cannot encode unknown error type %T", err)
	}
}
