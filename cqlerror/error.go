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

// Package cqlerror defines the error taxonomy surfaced by this module: one
// Go type per ERROR response kind the server may send, plus a handful of
// client-local error types for failures that never reach the wire.
package cqlerror

import (
	"fmt"

	"github.com/nativecql/protocol/primitive"
)

// ServerSideError is implemented by every error kind decoded from an ERROR
// response frame.
type ServerSideError interface {
	error
	Code() primitive.ErrorCode
}

// ServerError is returned for ErrorCodeServerError: something unexpected
// happened on the server side.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %s", e.Message)
}

func (e *ServerError) Code() primitive.ErrorCode {
	return primitive.ErrorCodeServerError
}

// ProtocolError is returned when the client violates the protocol, for
// example by issuing an unexpected opcode or a malformed frame.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %s", e.Message)
}

func (e *ProtocolError) Code() primitive.ErrorCode {
	return primitive.ErrorCodeProtocolError
}

// BadCredentials is returned when CREDENTIALS or SASL authentication fails.
type BadCredentials struct {
	Message string
}

func (e *BadCredentials) Error() string {
	return fmt.Sprintf("bad credentials: %s", e.Message)
}

func (e *BadCredentials) Code() primitive.ErrorCode {
	return primitive.ErrorCodeBadCredentials
}

// Overloaded is returned when the coordinator rejects a request because it
// cannot currently process it.
type Overloaded struct {
	Message string
}

func (e *Overloaded) Error() string {
	return fmt.Sprintf("overloaded: %s", e.Message)
}

func (e *Overloaded) Code() primitive.ErrorCode {
	return primitive.ErrorCodeOverloaded
}

// IsBootstrapping is returned when the coordinator node is bootstrapping
// and cannot yet serve the request.
type IsBootstrapping struct {
	Message string
}

func (e *IsBootstrapping) Error() string {
	return fmt.Sprintf("node is bootstrapping: %s", e.Message)
}

func (e *IsBootstrapping) Code() primitive.ErrorCode {
	return primitive.ErrorCodeIsBootstrapping
}

// TruncateError is returned when a TRUNCATE statement fails.
type TruncateError struct {
	Message string
}

func (e *TruncateError) Error() string {
	return fmt.Sprintf("truncate error: %s", e.Message)
}

func (e *TruncateError) Code() primitive.ErrorCode {
	return primitive.ErrorCodeTruncateError
}

// SyntaxError is returned when the submitted CQL has a syntax error.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.Message)
}

func (e *SyntaxError) Code() primitive.ErrorCode {
	return primitive.ErrorCodeSyntaxError
}

// Unauthorized is returned when the logged in user does not have permission
// to perform the request operation.
type Unauthorized struct {
	Message string
}

func (e *Unauthorized) Error() string {
	return fmt.Sprintf("unauthorized: %s", e.Message)
}

func (e *Unauthorized) Code() primitive.ErrorCode {
	return primitive.ErrorCodeUnauthorized
}

// Invalid is returned when the submitted query is syntactically correct but
// invalid, for example a reference to a nonexistent table.
type Invalid struct {
	Message string
}

func (e *Invalid) Error() string {
	return fmt.Sprintf("invalid query: %s", e.Message)
}

func (e *Invalid) Code() primitive.ErrorCode {
	return primitive.ErrorCodeInvalid
}

// ConfigError is returned when the query is invalid because of some
// configuration issue.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Code() primitive.ErrorCode {
	return primitive.ErrorCodeConfigError
}

// Unavailable is returned when the coordinator knows there is not enough
// live replicas to achieve the requested consistency level.
type Unavailable struct {
	Message     string
	Consistency primitive.ConsistencyLevel
	Required    int32
	Alive       int32
}

func (e *Unavailable) Error() string {
	return fmt.Sprintf("unavailable: %s (consistency=%v required=%d alive=%d)",
		e.Message, e.Consistency, e.Required, e.Alive)
}

func (e *Unavailable) Code() primitive.ErrorCode {
	return primitive.ErrorCodeUnavailable
}

// WriteTimeout is returned when a write request times out waiting for
// acknowledgments from replicas.
type WriteTimeout struct {
	Message     string
	Consistency primitive.ConsistencyLevel
	Received    int32
	BlockFor    int32
	WriteType   primitive.WriteType
}

func (e *WriteTimeout) Error() string {
	return fmt.Sprintf("write timeout: %s (consistency=%v received=%d blockfor=%d writetype=%v)",
		e.Message, e.Consistency, e.Received, e.BlockFor, e.WriteType)
}

func (e *WriteTimeout) Code() primitive.ErrorCode {
	return primitive.ErrorCodeWriteTimeout
}

// ReadTimeout is returned when a read request times out waiting for
// responses from replicas.
type ReadTimeout struct {
	Message     string
	Consistency primitive.ConsistencyLevel
	Received    int32
	BlockFor    int32
	DataPresent bool
}

func (e *ReadTimeout) Error() string {
	return fmt.Sprintf("read timeout: %s (consistency=%v received=%d blockfor=%d data_present=%t)",
		e.Message, e.Consistency, e.Received, e.BlockFor, e.DataPresent)
}

func (e *ReadTimeout) Code() primitive.ErrorCode {
	return primitive.ErrorCodeReadTimeout
}

// AlreadyExists is returned when the submitted query attempts to create a
// keyspace or table that already exists. Table is empty when only the
// keyspace already exists.
type AlreadyExists struct {
	Message  string
	Keyspace string
	Table    string
}

func (e *AlreadyExists) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("keyspace %s already exists: %s", e.Keyspace, e.Message)
	}
	return fmt.Sprintf("table %s.%s already exists: %s", e.Keyspace, e.Table, e.Message)
}

func (e *AlreadyExists) Code() primitive.ErrorCode {
	return primitive.ErrorCodeAlreadyExists
}

// Unprepared is returned when the server cannot find the prepared
// statement id submitted with an EXECUTE request. The caller may recover by
// re-preparing the statement.
type Unprepared struct {
	Message   string
	UnknownID []byte
}

func (e *Unprepared) Error() string {
	return fmt.Sprintf("unprepared statement %x: %s", e.UnknownID, e.Message)
}

func (e *Unprepared) Code() primitive.ErrorCode {
	return primitive.ErrorCodeUnprepared
}
