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

package frame

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/nativecql/protocol/message"
	"github.com/nativecql/protocol/primitive"
)

// Frame is a high-level representation of a frame, where the body is fully decoded.
type Frame struct {
	Header *Header
	Body   *Body
}

// RawFrame is a low-level representation of a frame, where the body is not decoded.
type RawFrame struct {
	Header *Header
	Body   []byte
}

// Body is the body of a frame: just the decoded message. Tracing, custom
// payloads and warnings are not part of the v1/v2 wire format.
type Body struct {
	Message message.Message
}

// NewFrame creates a new Frame with the given version, stream id and message.
func NewFrame(version primitive.ProtocolVersion, streamID int8, msg message.Message) *Frame {
	return &Frame{
		Header: &Header{
			IsResponse: msg.IsResponse(),
			Version:    version,
			StreamID:   streamID,
			OpCode:     msg.GetOpCode(),
			BodyLength: 0, // set when encoding
		},
		Body: &Body{
			Message: msg,
		},
	}
}

// SetCompress configures this frame to request compression, adjusting the
// header flags accordingly. It has no effect on frames whose opcode is never
// compressed (STARTUP, OPTIONS, READY). Enabling the flag here does not by
// itself compress anything; the frame codec must also be given a
// Compressor.
func (f *Frame) SetCompress(compress bool) {
	if compress && isCompressible(f.Body.Message.GetOpCode()) {
		f.Header.Flags = f.Header.Flags.Add(primitive.HeaderFlagCompressed)
	} else {
		f.Header.Flags &^= primitive.HeaderFlagCompressed
	}
}

func (f *Frame) String() string {
	return fmt.Sprintf("{header: %v, body: %v}", f.Header, f.Body)
}

func (f *RawFrame) String() string {
	return fmt.Sprintf("{header: %v, body: %v}", f.Header, f.Body)
}

func (b *Body) String() string {
	return fmt.Sprintf("{message: %v}", b.Message)
}

// Dump encodes and dumps the contents of this frame, for debugging purposes.
func (f *Frame) Dump() (string, error) {
	buffer := bytes.Buffer{}
	if err := NewCodec().EncodeFrame(f, &buffer); err != nil {
		return "", err
	}
	return hex.Dump(buffer.Bytes()), nil
}

// Dump encodes and dumps the contents of this frame, for debugging purposes.
func (f *RawFrame) Dump() (string, error) {
	buffer := bytes.Buffer{}
	if err := NewRawCodec().EncodeRawFrame(f, &buffer); err != nil {
		return "", err
	}
	return hex.Dump(buffer.Bytes()), nil
}

func isCompressible(opCode primitive.OpCode) bool {
	// STARTUP must never be compressed as per protocol specs.
	return opCode != primitive.OpCodeStartup &&
		// OPTIONS and READY carry no body and gain nothing from compression.
		opCode != primitive.OpCodeOptions &&
		opCode != primitive.OpCodeReady
}
