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

// Decode reads an ERROR response body: [int] code, [string] message,
// followed by a code-specific tail. The returned error is one of the
// ServerSideError implementations in this package.
func Decode(source io.Reader) (ServerSideError, error) {
	rawCode, err := primitive.ReadInt(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read error code: %w", err)
	}
	code := primitive.ErrorCode(rawCode)
	message, err := primitive.ReadString(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read error message: %w", err)
	}
	switch code {
	case primitive.ErrorCodeServerError:
		return &ServerError{Message: message}, nil
	case primitive.ErrorCodeProtocolError:
		return &ProtocolError{Message: message}, nil
	case primitive.ErrorCodeBadCredentials:
		return &BadCredentials{Message: message}, nil
	case primitive.ErrorCodeOverloaded:
		return &Overloaded{Message: message}, nil
	case primitive.ErrorCodeIsBootstrapping:
		return &IsBootstrapping{Message: message}, nil
	case primitive.ErrorCodeTruncateError:
		return &TruncateError{Message: message}, nil
	case primitive.ErrorCodeSyntaxError:
		return &SyntaxError{Message: message}, nil
	case primitive.ErrorCodeUnauthorized:
		return &Unauthorized{Message: message}, nil
	case primitive.ErrorCodeInvalid:
		return &Invalid{Message: message}, nil
	case primitive.ErrorCodeConfigError:
		return &ConfigError{Message: message}, nil
	case primitive.ErrorCodeUnavailable:
		return decodeUnavailable(message, source)
	case primitive.ErrorCodeWriteTimeout:
		return decodeWriteTimeout(message, source)
	case primitive.ErrorCodeReadTimeout:
		return decodeReadTimeout(message, source)
	case primitive.ErrorCodeAlreadyExists:
		return decodeAlreadyExists(message, source)
	case primitive.ErrorCodeUnprepared:
		return decodeUnprepared(message, source)
	default:
		return nil, fmt.Errorf("unknown error code: 0x%04x", rawCode)
	}
}

func decodeUnavailable(message string, source io.Reader) (ServerSideError, error) {
	consistency, err := primitive.ReadConsistencyLevel(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read UNAVAILABLE consistency: %w", err)
	}
	required, err := primitive.ReadInt(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read UNAVAILABLE required: %w", err)
	}
	alive, err := primitive.ReadInt(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read UNAVAILABLE alive: %w", err)
	}
	return &Unavailable{Message: message, Consistency: consistency, Required: required, Alive: alive}, nil
}

func decodeWriteTimeout(message string, source io.Reader) (ServerSideError, error) {
	consistency, err := primitive.ReadConsistencyLevel(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read WRITE_TIMEOUT consistency: %w", err)
	}
	received, err := primitive.ReadInt(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read WRITE_TIMEOUT received: %w", err)
	}
	blockFor, err := primitive.ReadInt(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read WRITE_TIMEOUT blockfor: %w", err)
	}
	writeTypeName, err := primitive.ReadString(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read WRITE_TIMEOUT write type: %w", err)
	}
	return &WriteTimeout{
		Message:     message,
		Consistency: consistency,
		Received:    received,
		BlockFor:    blockFor,
		WriteType:   primitive.WriteType(writeTypeName),
	}, nil
}

func decodeReadTimeout(message string, source io.Reader) (ServerSideError, error) {
	consistency, err := primitive.ReadConsistencyLevel(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read READ_TIMEOUT consistency: %w", err)
	}
	received, err := primitive.ReadInt(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read READ_TIMEOUT received: %w", err)
	}
	blockFor, err := primitive.ReadInt(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read READ_TIMEOUT blockfor: %w", err)
	}
	dataPresent, err := primitive.ReadByte(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read READ_TIMEOUT data present flag: %w", err)
	}
	return &ReadTimeout{
		Message:     message,
		Consistency: consistency,
		Received:    received,
		BlockFor:    blockFor,
		DataPresent: dataPresent != 0,
	}, nil
}

func decodeAlreadyExists(message string, source io.Reader) (ServerSideError, error) {
	keyspace, err := primitive.ReadString(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read ALREADY_EXISTS keyspace: %w", err)
	}
	table, err := primitive.ReadString(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read ALREADY_EXISTS table: %w", err)
	}
	return &AlreadyExists{Message: message, Keyspace: keyspace, Table: table}, nil
}

func decodeUnprepared(message string, source io.Reader) (ServerSideError, error) {
	id, err := primitive.ReadShortBytes(source)
	if err != nil {
		return nil, fmt.Errorf("cannot read UNPREPARED id: %w", err)
	}
	return &Unprepared{Message: message, UnknownID: id}, nil
}
