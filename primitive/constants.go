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

// Package primitive implements the primitive wire types of the CQL v1/v2
// native protocol: fixed-width integers, length-prefixed strings, bytes
// with a null sentinel, string maps/multimaps, inet addresses and
// consistency levels. All multi-byte integers are big-endian.
package primitive

import "fmt"

// ProtocolVersion is the CQL native protocol version in use on a connection.
// This module supports versions 1 and 2 only.
type ProtocolVersion uint8

const (
	ProtocolVersion1 = ProtocolVersion(0x01)
	ProtocolVersion2 = ProtocolVersion(0x02)
)

func (v ProtocolVersion) IsSupported() bool {
	return v == ProtocolVersion1 || v == ProtocolVersion2
}

func (v ProtocolVersion) String() string {
	switch v {
	case ProtocolVersion1:
		return "ProtocolVersion 1"
	case ProtocolVersion2:
		return "ProtocolVersion 2"
	default:
		return fmt.Sprintf("ProtocolVersion ?%d", uint8(v))
	}
}

func CheckSupportedProtocolVersion(version ProtocolVersion) error {
	if !version.IsSupported() {
		return fmt.Errorf("invalid protocol version: %v", version)
	}
	return nil
}

// OpCode distinguishes the type of payload carried by a frame.
type OpCode uint8

const (
	OpCodeError       = OpCode(0x00)
	OpCodeStartup     = OpCode(0x01)
	OpCodeReady       = OpCode(0x02)
	OpCodeAuthenticate = OpCode(0x03)
	OpCodeCredentials = OpCode(0x04)
	OpCodeOptions     = OpCode(0x05)
	OpCodeSupported   = OpCode(0x06)
	OpCodeQuery       = OpCode(0x07)
	OpCodeResult      = OpCode(0x08)
	OpCodePrepare     = OpCode(0x09)
	OpCodeExecute     = OpCode(0x0A)
	OpCodeRegister    = OpCode(0x0B)
	OpCodeEvent       = OpCode(0x0C)
)

func (c OpCode) IsRequest() bool {
	switch c {
	case OpCodeStartup, OpCodeCredentials, OpCodeOptions, OpCodeQuery, OpCodePrepare, OpCodeExecute, OpCodeRegister:
		return true
	default:
		return false
	}
}

func (c OpCode) IsResponse() bool {
	switch c {
	case OpCodeError, OpCodeReady, OpCodeAuthenticate, OpCodeSupported, OpCodeResult, OpCodeEvent:
		return true
	default:
		return false
	}
}

func (c OpCode) IsValid() bool {
	return c.IsRequest() || c.IsResponse()
}

func (c OpCode) String() string {
	switch c {
	case OpCodeError:
		return "ERROR"
	case OpCodeStartup:
		return "STARTUP"
	case OpCodeReady:
		return "READY"
	case OpCodeAuthenticate:
		return "AUTHENTICATE"
	case OpCodeCredentials:
		return "CREDENTIALS"
	case OpCodeOptions:
		return "OPTIONS"
	case OpCodeSupported:
		return "SUPPORTED"
	case OpCodeQuery:
		return "QUERY"
	case OpCodeResult:
		return "RESULT"
	case OpCodePrepare:
		return "PREPARE"
	case OpCodeExecute:
		return "EXECUTE"
	case OpCodeRegister:
		return "REGISTER"
	case OpCodeEvent:
		return "EVENT"
	default:
		return fmt.Sprintf("OpCode ?0x%02x", uint8(c))
	}
}

// HeaderFlag is a bit in the frame header's flags byte.
type HeaderFlag uint8

const (
	HeaderFlagCompressed = HeaderFlag(0x01)
	HeaderFlagTracing    = HeaderFlag(0x02)
)

func (f HeaderFlag) Contains(flag HeaderFlag) bool {
	return f&flag == flag
}

func (f HeaderFlag) Add(flag HeaderFlag) HeaderFlag {
	return f | flag
}

// RowsFlag is a bit in a RESULT message's metadata flags.
type RowsFlag uint32

const (
	RowsFlagGlobalTablesSpec = RowsFlag(0x0001)
)

func (f RowsFlag) Contains(flag RowsFlag) bool {
	return f&flag == flag
}

// ResultKind discriminates the body of a RESULT frame.
type ResultKind uint32

const (
	ResultKindVoid         = ResultKind(0x0001)
	ResultKindRows         = ResultKind(0x0002)
	ResultKindSetKeyspace  = ResultKind(0x0003)
	ResultKindPrepared     = ResultKind(0x0004)
	ResultKindSchemaChange = ResultKind(0x0005)
)

func (k ResultKind) String() string {
	switch k {
	case ResultKindVoid:
		return "VOID"
	case ResultKindRows:
		return "ROWS"
	case ResultKindSetKeyspace:
		return "SET_KEYSPACE"
	case ResultKindPrepared:
		return "PREPARED"
	case ResultKindSchemaChange:
		return "SCHEMA_CHANGE"
	default:
		return fmt.Sprintf("ResultKind ?%d", uint32(k))
	}
}

// ErrorCode identifies the kind of error carried by an ERROR response.
type ErrorCode uint32

const (
	ErrorCodeServerError     = ErrorCode(0x0000)
	ErrorCodeProtocolError   = ErrorCode(0x000A)
	ErrorCodeBadCredentials  = ErrorCode(0x0100)
	ErrorCodeUnavailable     = ErrorCode(0x1000)
	ErrorCodeOverloaded      = ErrorCode(0x1001)
	ErrorCodeIsBootstrapping = ErrorCode(0x1002)
	ErrorCodeTruncateError   = ErrorCode(0x1003)
	ErrorCodeWriteTimeout    = ErrorCode(0x1100)
	ErrorCodeReadTimeout     = ErrorCode(0x1200)
	ErrorCodeSyntaxError     = ErrorCode(0x2000)
	ErrorCodeUnauthorized    = ErrorCode(0x2100)
	ErrorCodeInvalid         = ErrorCode(0x2200)
	ErrorCodeConfigError     = ErrorCode(0x2300)
	ErrorCodeAlreadyExists   = ErrorCode(0x2400)
	ErrorCodeUnprepared      = ErrorCode(0x2500)
)

// DataTypeCode identifies a CQL column type on the wire.
type DataTypeCode uint16

const (
	DataTypeCodeCustom    = DataTypeCode(0x0000)
	DataTypeCodeAscii     = DataTypeCode(0x0001)
	DataTypeCodeBigint    = DataTypeCode(0x0002)
	DataTypeCodeBlob      = DataTypeCode(0x0003)
	DataTypeCodeBoolean   = DataTypeCode(0x0004)
	DataTypeCodeCounter   = DataTypeCode(0x0005)
	DataTypeCodeDecimal   = DataTypeCode(0x0006)
	DataTypeCodeDouble    = DataTypeCode(0x0007)
	DataTypeCodeFloat     = DataTypeCode(0x0008)
	DataTypeCodeInt       = DataTypeCode(0x0009)
	DataTypeCodeText      = DataTypeCode(0x000A)
	DataTypeCodeTimestamp = DataTypeCode(0x000B)
	DataTypeCodeUuid      = DataTypeCode(0x000C)
	DataTypeCodeVarchar   = DataTypeCode(0x000D)
	DataTypeCodeVarint    = DataTypeCode(0x000E)
	DataTypeCodeTimeuuid  = DataTypeCode(0x000F)
	DataTypeCodeInet      = DataTypeCode(0x0010)
	DataTypeCodeList      = DataTypeCode(0x0020)
	DataTypeCodeMap       = DataTypeCode(0x0021)
	DataTypeCodeSet       = DataTypeCode(0x0022)
)

func (c DataTypeCode) String() string {
	switch c {
	case DataTypeCodeCustom:
		return "custom"
	case DataTypeCodeAscii:
		return "ascii"
	case DataTypeCodeBigint:
		return "bigint"
	case DataTypeCodeBlob:
		return "blob"
	case DataTypeCodeBoolean:
		return "boolean"
	case DataTypeCodeCounter:
		return "counter"
	case DataTypeCodeDecimal:
		return "decimal"
	case DataTypeCodeDouble:
		return "double"
	case DataTypeCodeFloat:
		return "float"
	case DataTypeCodeInt:
		return "int"
	case DataTypeCodeText:
		return "text"
	case DataTypeCodeTimestamp:
		return "timestamp"
	case DataTypeCodeUuid:
		return "uuid"
	case DataTypeCodeVarchar:
		return "varchar"
	case DataTypeCodeVarint:
		return "varint"
	case DataTypeCodeTimeuuid:
		return "timeuuid"
	case DataTypeCodeInet:
		return "inet"
	case DataTypeCodeList:
		return "list"
	case DataTypeCodeMap:
		return "map"
	case DataTypeCodeSet:
		return "set"
	default:
		return fmt.Sprintf("DataTypeCode ?0x%04x", uint16(c))
	}
}

// EventType identifies the kind of payload carried by an EVENT frame.
type EventType = string

const (
	EventTypeTopologyChange = EventType("TOPOLOGY_CHANGE")
	EventTypeStatusChange   = EventType("STATUS_CHANGE")
	EventTypeSchemaChange   = EventType("SCHEMA_CHANGE")
)
