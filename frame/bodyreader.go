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
	"fmt"
	"io"

	"github.com/nativecql/protocol/cqlerror"
)

// BodyReader wraps a frame body's io.Reader and tracks how many declared
// body bytes remain unread. Primitive decoders never see the body length
// directly; they just keep reading from a BodyReader until the message
// decoder they belong to is done, at which point Remaining reports whether
// the body was fully consumed.
type BodyReader struct {
	source    io.Reader
	remaining int32
}

// NewBodyReader wraps source, which must yield exactly bodyLength bytes.
func NewBodyReader(source io.Reader, bodyLength int32) *BodyReader {
	return &BodyReader{source: source, remaining: bodyLength}
}

// Read implements io.Reader. It never reads past the declared body length:
// a read is cut to the remaining bytes, and once none remain Read returns
// io.EOF, not a cqlerror.ProtocolError.
func (r *BodyReader) Read(p []byte) (n int, err error) {
	if r.remaining <= 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	if int32(len(p)) > r.remaining {
		p = p[:r.remaining]
	}
	n, err = r.source.Read(p)
	r.remaining -= int32(n)
	return n, err
}

// Remaining returns the number of declared body bytes not yet read.
func (r *BodyReader) Remaining() int32 {
	return r.remaining
}

// CheckExhausted returns a cqlerror.ProtocolError if any declared body bytes
// remain unread, i.e. the message decoder stopped short of the frame's
// declared body length.
func (r *BodyReader) CheckExhausted() error {
	if r.remaining != 0 {
		return &cqlerror.ProtocolError{
			Message: fmt.Sprintf("%d unread body bytes remaining after decoding message", r.remaining),
		}
	}
	return nil
}
