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
	"fmt"
	"io"
	"io/ioutil"

	"github.com/nativecql/protocol/cqlerror"
	"github.com/nativecql/protocol/primitive"
)

func (c *codec) DecodeFrame(source io.Reader) (*Frame, error) {
	if header, err := c.DecodeHeader(source); err != nil {
		return nil, fmt.Errorf("cannot decode frame header: %w", err)
	} else if body, err := c.DecodeBody(header, source); err != nil {
		return nil, fmt.Errorf("cannot decode frame body: %w", err)
	} else {
		return &Frame{Header: header, Body: body}, nil
	}
}

func (c *codec) DecodeRawFrame(source io.Reader) (*RawFrame, error) {
	if header, err := c.DecodeHeader(source); err != nil {
		return nil, fmt.Errorf("cannot decode frame header: %w", err)
	} else if body, err := c.DecodeRawBody(header, source); err != nil {
		return nil, fmt.Errorf("cannot read frame body: %w", err)
	} else {
		return &RawFrame{Header: header, Body: body}, nil
	}
}

func (c *codec) DecodeHeader(source io.Reader) (*Header, error) {
	versionAndDirection, err := primitive.ReadByte(source)
	if err != nil {
		return nil, fmt.Errorf("cannot decode header version and direction: %w", err)
	}
	isResponse := versionAndDirection&headerVersionDirectionMask > 0
	version := primitive.ProtocolVersion(versionAndDirection &^ headerVersionDirectionMask)
	header := &Header{
		IsResponse: isResponse,
		Version:    version,
	}
	if err := primitive.CheckSupportedProtocolVersion(version); err != nil {
		return nil, NewProtocolVersionErr(err.Error(), version)
	}

	var flags uint8
	if flags, err = primitive.ReadByte(source); err != nil {
		return nil, fmt.Errorf("cannot decode header flags: %w", err)
	}
	header.Flags = primitive.HeaderFlag(flags)

	if header.StreamID, err = primitive.ReadStreamID(source); err != nil {
		return nil, fmt.Errorf("cannot decode header stream id: %w", err)
	}

	var opCode uint8
	if opCode, err = primitive.ReadByte(source); err != nil {
		return nil, fmt.Errorf("cannot decode header opcode: %w", err)
	}
	header.OpCode = primitive.OpCode(opCode)
	if !header.OpCode.IsValid() {
		return nil, fmt.Errorf("invalid opcode: %v", header.OpCode)
	} else if isResponse && !header.OpCode.IsResponse() {
		return nil, fmt.Errorf("opcode %v is not a valid response opcode", header.OpCode)
	} else if !isResponse && !header.OpCode.IsRequest() {
		return nil, fmt.Errorf("opcode %v is not a valid request opcode", header.OpCode)
	}

	if header.BodyLength, err = primitive.ReadInt(source); err != nil {
		return nil, fmt.Errorf("cannot decode header body length: %w", err)
	}
	return header, nil
}

func (c *codec) DecodeBody(header *Header, source io.Reader) (body *Body, err error) {
	var reader io.Reader
	if header.Flags.Contains(primitive.HeaderFlagCompressed) {
		if c.compressor == nil {
			return nil, &cqlerror.ProtocolError{Message: "cannot decompress body: no compressor available"}
		}
		decompressedBody := &bytes.Buffer{}
		if err := c.compressor.Decompress(io.LimitReader(source, int64(header.BodyLength)), decompressedBody); err != nil {
			return nil, fmt.Errorf("cannot decompress body: %w", err)
		}
		reader = NewBodyReader(decompressedBody, int32(decompressedBody.Len()))
	} else {
		reader = NewBodyReader(source, header.BodyLength)
	}
	body = &Body{}
	decoder, err := c.findMessageCodec(header.OpCode)
	if err != nil {
		return nil, err
	}
	if body.Message, err = decoder.Decode(reader, header.Version); err != nil {
		return nil, fmt.Errorf("cannot decode body message: %w", err)
	}
	if bodyReader, ok := reader.(*BodyReader); ok {
		if err := bodyReader.CheckExhausted(); err != nil {
			return nil, fmt.Errorf("cannot decode body message: %w", err)
		}
	}
	return body, nil
}

func (c *codec) DecodeRawBody(header *Header, source io.Reader) (body []byte, err error) {
	if header.BodyLength < 0 {
		return nil, fmt.Errorf("invalid body length: %d", header.BodyLength)
	} else if header.BodyLength == 0 {
		return []byte{}, nil
	}
	count := int64(header.BodyLength)
	buf := bytes.NewBuffer(make([]byte, 0, count))
	if _, err := io.CopyN(buf, source, count); err != nil {
		return nil, fmt.Errorf("cannot decode raw body: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *codec) DiscardBody(header *Header, source io.Reader) (err error) {
	if header.BodyLength < 0 {
		return fmt.Errorf("invalid body length: %d", header.BodyLength)
	} else if header.BodyLength == 0 {
		return nil
	}
	count := int64(header.BodyLength)
	switch s := source.(type) {
	case io.Seeker:
		_, err = s.Seek(count, io.SeekCurrent)
	default:
		_, err = io.CopyN(ioutil.Discard, s, count)
	}
	if err != nil {
		err = fmt.Errorf("cannot discard body: %w", err)
	}
	return err
}
