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

import "fmt"

// DecodingError wraps a failure to decode a frame body or value from the
// wire.
type DecodingError struct {
	Cause error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decoding error: %s", e.Cause)
}

func (e *DecodingError) Unwrap() error {
	return e.Cause
}

// EncodingError wraps a failure to encode a value or message to the wire.
type EncodingError struct {
	Cause error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: %s", e.Cause)
}

func (e *EncodingError) Unwrap() error {
	return e.Cause
}

// BusyConnection is returned when a request is attempted while a previous
// Result has not yet been drained or closed.
type BusyConnection struct{}

func (e *BusyConnection) Error() string {
	return "connection is busy: a previous result has not been drained"
}

// IoError wraps a socket read or write failure. Receiving one transitions
// the connection to Closed.
type IoError struct {
	Cause error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("i/o error: %s", e.Cause)
}

func (e *IoError) Unwrap() error {
	return e.Cause
}
