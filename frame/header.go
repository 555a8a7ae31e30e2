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

// Package frame implements the 8-byte CQL v1/v2 frame header and the
// encoding/decoding of whole frames, optionally compressed.
package frame

import (
	"fmt"

	"github.com/nativecql/protocol/primitive"
)

const headerVersionDirectionMask = 0b1000_0000

// Header is the 8-byte header every CQL frame starts with: protocol
// version (with the request/response bit folded into the top bit), flags,
// stream id, opcode and body length.
type Header struct {
	IsResponse bool
	Version    primitive.ProtocolVersion
	Flags      primitive.HeaderFlag
	StreamID   int8
	OpCode     primitive.OpCode
	BodyLength int32
}

func (h *Header) String() string {
	return fmt.Sprintf("{response:%v version:%v flags:%08b stream:%d opcode:%v length:%d}",
		h.IsResponse, h.Version, h.Flags, h.StreamID, h.OpCode, h.BodyLength)
}

// IsEvent reports whether this header belongs to an unsolicited EVENT
// frame, identified by the reserved stream id -1.
func (h *Header) IsEvent() bool {
	return h.StreamID == primitive.EventStreamID
}
