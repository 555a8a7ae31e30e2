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

// Package compression provides frame.Compressor implementations for the two
// algorithms a CQL v1/v2 server can negotiate via the STARTUP COMPRESSION
// option: lz4 and snappy.
package compression

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/pierrec/lz4/v4"
)

// LZ4 satisfies frame.Compressor for the "lz4" algorithm. Cassandra expects
// lz4-compressed bodies to start with a 4-byte integer holding the
// decompressed message length; the upstream lz4 block codec does not
// include that prefix, so it is added and stripped here.
type LZ4 struct{}

func (LZ4) Algorithm() string {
	return "lz4"
}

func (LZ4) Compress(source io.Reader, dest io.Writer) error {
	var uncompressedMessage *bytes.Buffer
	switch s := source.(type) {
	case *bytes.Buffer:
		uncompressedMessage = s
	default:
		uncompressedMessage = &bytes.Buffer{}
		if _, err := uncompressedMessage.ReadFrom(s); err != nil {
			return fmt.Errorf("cannot read uncompressed body: %w", err)
		}
	}
	maxCompressedSize := lz4.CompressBlockBound(uncompressedMessage.Len())
	// allocate enough space for the max compressed size plus the 4-byte length prefix
	compressedMessage := make([]byte, maxCompressedSize+4)
	binary.BigEndian.PutUint32(compressedMessage, uint32(uncompressedMessage.Len()))
	var compressor lz4.Compressor
	written, err := compressor.CompressBlock(uncompressedMessage.Bytes(), compressedMessage[4:])
	if err != nil {
		return fmt.Errorf("cannot compress body: %w", err)
	}
	// an incompressible block compresses to 0 bytes; Cassandra still expects the prefix
	// plus whatever bytes CompressBlock produced, which may legitimately be none.
	if _, err := dest.Write(compressedMessage[:written+4]); err != nil {
		return fmt.Errorf("cannot write compressed body: %w", err)
	}
	return nil
}

func (LZ4) Decompress(source io.Reader, dest io.Writer) error {
	var decompressedLength uint32
	if err := binary.Read(source, binary.BigEndian, &decompressedLength); err != nil {
		return fmt.Errorf("cannot read decompressed length: %w", err)
	}
	if decompressedLength == 0 {
		if _, err := io.Copy(ioutil.Discard, source); err != nil {
			return fmt.Errorf("cannot read empty body: %w", err)
		}
		return nil
	}
	var compressedMessage *bytes.Buffer
	switch s := source.(type) {
	case *bytes.Buffer:
		compressedMessage = s
	default:
		compressedMessage = &bytes.Buffer{}
		if _, err := compressedMessage.ReadFrom(s); err != nil {
			return fmt.Errorf("cannot read compressed body: %w", err)
		}
	}
	decompressedMessage := make([]byte, decompressedLength)
	written, err := lz4.UncompressBlock(compressedMessage.Bytes(), decompressedMessage)
	if err != nil {
		return fmt.Errorf("cannot decompress body: %w", err)
	} else if written != int(decompressedLength) {
		return fmt.Errorf("decompressed length mismatch: expected %d, got %d", decompressedLength, written)
	}
	if _, err := dest.Write(decompressedMessage[:written]); err != nil {
		return fmt.Errorf("cannot write decompressed body: %w", err)
	}
	return nil
}
