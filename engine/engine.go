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

// Package engine drives the request/response state machine over a single
// transport.Socket: exactly one request in flight, a fixed stream id for
// ordinary requests, and a side channel for the server's stream -1 EVENT
// pushes. It knows frames and messages but nothing about queries, results
// or keyspaces — that belongs to client.Connection.
package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/nativecql/protocol/cqlerror"
	"github.com/nativecql/protocol/frame"
	"github.com/nativecql/protocol/message"
	"github.com/nativecql/protocol/primitive"
	"github.com/nativecql/protocol/transport"
)

// EventSink receives EVENT frames observed while waiting for a response.
type EventSink interface {
	HandleEvent(event message.Event)
}

// Engine owns the socket and drives one request/response cycle at a
// time. StreamID is fixed for the lifetime of the engine; Busy is set
// by a caller (client.Connection) for as long as a RowsResult is being
// drained, and cleared once draining completes.
type Engine struct {
	Socket   transport.Socket
	Codec    frame.Codec
	Version  primitive.ProtocolVersion
	StreamID int8
	Sink     EventSink

	busy int32
}

// New creates an Engine bound to socket, using codec to frame requests
// and responses at the given protocol version.
func New(socket transport.Socket, codec frame.Codec, version primitive.ProtocolVersion) *Engine {
	return &Engine{
		Socket:   socket,
		Codec:    codec,
		Version:  version,
		StreamID: primitive.DefaultStreamID,
	}
}

// Busy reports whether a RowsResult currently holds exclusive use of the
// connection.
func (e *Engine) Busy() bool {
	return atomic.LoadInt32(&e.busy) != 0
}

// SetBusy marks or clears the connection as held by a live RowsResult.
func (e *Engine) SetBusy(busy bool) {
	if busy {
		atomic.StoreInt32(&e.busy, 1)
	} else {
		atomic.StoreInt32(&e.busy, 0)
	}
}

// RoundTrip sends msg on the fixed stream id and waits for the matching
// response, routing any EVENT frames observed in between to Sink. It
// fails with cqlerror.BusyConnection if a RowsResult is currently being
// drained.
func (e *Engine) RoundTrip(msg message.Message) (*frame.Frame, error) {
	if e.Busy() {
		return nil, &cqlerror.BusyConnection{}
	}
	if err := e.Send(msg); err != nil {
		return nil, err
	}
	return e.Receive()
}

// Send writes msg as a request frame on the fixed stream id.
func (e *Engine) Send(msg message.Message) error {
	req := frame.NewFrame(e.Version, e.StreamID, msg)
	log.Debug().Int8("stream", e.StreamID).Uint8("opcode", uint8(msg.GetOpCode())).Msg("sending request")
	if err := e.Codec.EncodeFrame(req, e.Socket); err != nil {
		return fmt.Errorf("cannot send request: %w", err)
	}
	return nil
}

// Receive reads frames off the socket until one matches the fixed
// stream id, forwarding any EVENT frame (stream id EventStreamID) to
// Sink along the way.
func (e *Engine) Receive() (*frame.Frame, error) {
	for {
		resp, err := e.Codec.DecodeFrame(e.Socket)
		if err != nil {
			return nil, fmt.Errorf("cannot read response: %w", err)
		}
		if resp.Header.StreamID == primitive.EventStreamID {
			e.dispatchEvent(resp)
			continue
		}
		if resp.Header.StreamID != e.StreamID {
			return nil, fmt.Errorf("expected response on stream %d, got stream %d", e.StreamID, resp.Header.StreamID)
		}
		log.Debug().Int8("stream", resp.Header.StreamID).Uint8("opcode", uint8(resp.Header.OpCode)).Msg("received response")
		return resp, nil
	}
}

func (e *Engine) dispatchEvent(resp *frame.Frame) {
	event, ok := resp.Body.Message.(message.Event)
	if !ok {
		log.Error().Msgf("frame on event stream is not an Event: %T", resp.Body.Message)
		return
	}
	if e.Sink != nil {
		e.Sink.HandleEvent(event)
	}
}

// Close closes the underlying socket.
func (e *Engine) Close() error {
	return e.Socket.Close()
}
