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

// Package client is the caller-facing facade: connect, select a
// keyspace, query, prepare, execute, listen for events, close. It wires
// together transport.Socket, the frame/message codecs and engine.Engine
// into the single connection object callers interact with.
package client

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nativecql/protocol/auth"
	"github.com/nativecql/protocol/datacodec"
	"github.com/nativecql/protocol/engine"
	"github.com/nativecql/protocol/frame"
	"github.com/nativecql/protocol/message"
	"github.com/nativecql/protocol/primitive"
	"github.com/nativecql/protocol/result"
	"github.com/nativecql/protocol/transport"
)

const (
	DefaultConnectTimeout = 5 * time.Second
	DefaultReadTimeout    = 12 * time.Second
)

// Options configures a new Connection.
type Options struct {
	// Version is the protocol version to speak. Defaults to
	// primitive.ProtocolVersion1 when unset.
	Version primitive.ProtocolVersion
	// Authenticator supplies CREDENTIALS values when the server sends
	// AUTHENTICATE. Leave nil to reject any authentication challenge.
	Authenticator auth.Authenticator
	// Compressor, when set, is both offered in STARTUP and used to
	// compress/decompress frame bodies.
	Compressor frame.Compressor
	// ConnectTimeout bounds the initial TCP handshake.
	ConnectTimeout time.Duration
	// ReadTimeout bounds every subsequent socket read.
	ReadTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.Version == 0 {
		o.Version = primitive.ProtocolVersion1
	}
	if o.ConnectTimeout == 0 {
		o.ConnectTimeout = DefaultConnectTimeout
	}
	if o.ReadTimeout == 0 {
		o.ReadTimeout = DefaultReadTimeout
	}
	return o
}

// Connection is a single CQL connection: one socket, one request in
// flight at a time, one negotiated protocol version for its lifetime.
type Connection struct {
	engine        *engine.Engine
	version       primitive.ProtocolVersion
	authenticator auth.Authenticator

	usedKeyspace string
}

// Connect dials address, negotiates compression and performs the
// STARTUP/AUTHENTICATE handshake, returning a Connection ready to
// accept queries.
func Connect(ctx context.Context, address string, opts Options) (*Connection, error) {
	opts = opts.withDefaults()
	socket, err := transport.Dial(ctx, address, opts.ConnectTimeout, opts.ReadTimeout)
	if err != nil {
		return nil, err
	}
	var codec frame.Codec
	if opts.Compressor != nil {
		codec = frame.NewCodecWithCompression(opts.Compressor)
	} else {
		codec = frame.NewCodec()
	}
	conn := &Connection{
		engine:        engine.New(socket, codec, opts.Version),
		version:       opts.Version,
		authenticator: opts.Authenticator,
	}
	if err := conn.handshake(opts.Compressor); err != nil {
		_ = socket.Close()
		return nil, err
	}
	log.Info().Msgf("connection to %s established (protocol v%d)", address, opts.Version)
	return conn, nil
}

func (c *Connection) handshake(compressor frame.Compressor) error {
	startup := message.NewStartup()
	if compressor != nil {
		startup.Options[message.StartupOptionCompression] = compressor.Algorithm()
	}
	msg, err := c.roundTrip(startup)
	if err != nil {
		return fmt.Errorf("handshake: %w", err)
	}
	switch m := msg.(type) {
	case *message.Ready:
		return nil
	case *message.Authenticate:
		return c.authenticate(m)
	default:
		return fmt.Errorf("handshake: expected READY or AUTHENTICATE, got %v", m)
	}
}

func (c *Connection) authenticate(challenge *message.Authenticate) error {
	if c.authenticator == nil {
		return fmt.Errorf("server requires authenticator %q but none is configured", challenge.Authenticator)
	}
	values, err := c.authenticator.Credentials(challenge.Authenticator)
	if err != nil {
		return fmt.Errorf("cannot produce credentials: %w", err)
	}
	msg, err := c.roundTrip(&message.Credentials{Values: values})
	if err != nil {
		return fmt.Errorf("authentication: %w", err)
	}
	if _, ok := msg.(*message.Ready); !ok {
		return fmt.Errorf("authentication: expected READY, got %v", msg)
	}
	return nil
}

// roundTrip sends msg and unwraps the response: a server-side ERROR is
// turned into its cqlerror cause, anything else is returned as-is.
func (c *Connection) roundTrip(msg message.Message) (message.Message, error) {
	resp, err := c.engine.RoundTrip(msg)
	if err != nil {
		return nil, err
	}
	if errMsg, ok := resp.Body.Message.(*message.Error); ok {
		return nil, errMsg.Cause
	}
	return resp.Body.Message, nil
}

// Options asks the server which startup options it supports.
func (c *Connection) Options() (map[string][]string, error) {
	msg, err := c.roundTrip(&message.Options{})
	if err != nil {
		return nil, err
	}
	supported, ok := msg.(*message.Supported)
	if !ok {
		return nil, fmt.Errorf("expected SUPPORTED, got %v", msg)
	}
	return supported.Options, nil
}

// Query executes cql directly at the given consistency level. It
// refuses cql beginning with PREPARE; use Prepare for that.
func (c *Connection) Query(cql string, consistency primitive.ConsistencyLevel) (interface{}, error) {
	if startsWithKeyword(cql, "PREPARE") {
		return nil, errors.New("client: use Prepare, not Query, for a PREPARE statement")
	}
	msg, err := c.roundTrip(&message.Query{Query: cql, Consistency: consistency})
	if err != nil {
		return nil, err
	}
	return c.asResult(msg)
}

// Prepare registers cql as a prepared statement.
func (c *Connection) Prepare(cql string) (*result.Prepared, error) {
	msg, err := c.roundTrip(&message.Prepare{Query: cql})
	if err != nil {
		return nil, err
	}
	r, err := c.asResult(msg)
	if err != nil {
		return nil, err
	}
	prepared, ok := r.(*result.Prepared)
	if !ok {
		return nil, fmt.Errorf("expected a prepared statement, got %T", r)
	}
	return prepared, nil
}

// Execute runs a previously prepared statement. values are already
// wire-encoded column values, nil meaning SQL NULL.
func (c *Connection) Execute(queryID []byte, values [][]byte, consistency primitive.ConsistencyLevel) (interface{}, error) {
	if len(values) > math.MaxInt16 {
		return nil, fmt.Errorf("client: too many bound values: %d exceeds %d", len(values), math.MaxInt16)
	}
	msg, err := c.roundTrip(&message.Execute{QueryID: queryID, Values: values, Consistency: consistency})
	if err != nil {
		return nil, err
	}
	return c.asResult(msg)
}

// ExecuteValues is Execute for callers holding plain Go values instead
// of pre-encoded column bytes: each value is encoded with
// datacodec.EncodeValue (a nil value encodes as SQL NULL) before being
// bound the same way Execute would.
func (c *Connection) ExecuteValues(queryID []byte, values []interface{}, consistency primitive.ConsistencyLevel) (interface{}, error) {
	encoded := make([][]byte, len(values))
	for i, v := range values {
		b, err := datacodec.EncodeValue(v, c.version)
		if err != nil {
			return nil, fmt.Errorf("client: cannot encode bound value %d: %w", i, err)
		}
		encoded[i] = b
	}
	return c.Execute(queryID, encoded, consistency)
}

func (c *Connection) asResult(msg message.Message) (interface{}, error) {
	r, ok := msg.(message.Result)
	if !ok {
		return nil, fmt.Errorf("expected a RESULT message, got %T", msg)
	}
	val, err := result.FromMessage(r, c.version)
	if err != nil {
		return nil, err
	}
	if rows, ok := val.(*result.Rows); ok {
		c.engine.SetBusy(true)
		rows.OnClose = func() { c.engine.SetBusy(false) }
	}
	return val, nil
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// UseKeyspace selects keyspace name as the current keyspace, validating
// the identifier first. It is a no-op when name is already selected.
func (c *Connection) UseKeyspace(name string) error {
	unquoted := strings.Trim(name, `"`)
	if !identifierPattern.MatchString(unquoted) {
		return fmt.Errorf("client: invalid keyspace identifier %q", name)
	}
	if c.usedKeyspace == name {
		return nil
	}
	val, err := c.Query("USE "+name, primitive.ConsistencyLevelAny)
	if err != nil {
		return err
	}
	keyspace, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected RESULT SetKeyspace, got %T", val)
	}
	c.usedKeyspace = keyspace
	return nil
}

// Register subscribes this connection to the given server-pushed event
// types. Received events surface through Listen.
func (c *Connection) Register(eventTypes []primitive.EventType) error {
	msg, err := c.roundTrip(&message.Register{EventTypes: eventTypes})
	if err != nil {
		return err
	}
	if _, ok := msg.(*message.Ready); !ok {
		return fmt.Errorf("expected READY, got %v", msg)
	}
	return nil
}

// Listen blocks, reading frames and forwarding EVENT frames to sink,
// until ctx is done or the socket fails. The caller runs it in its own
// goroutine; Listen never spawns one itself. It must not be called
// while a request/response round trip is in flight on the same
// connection.
func (c *Connection) Listen(ctx context.Context, sink engine.EventSink) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := c.engine.Codec.DecodeFrame(c.engine.Socket)
		if err != nil {
			if isTimeout(err) {
				continue
			}
			return err
		}
		if f.Header.StreamID != primitive.EventStreamID {
			return fmt.Errorf("client: Listen received a non-event frame on stream %d", f.Header.StreamID)
		}
		if event, ok := f.Body.Message.(message.Event); ok {
			sink.HandleEvent(event)
		}
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Close closes the underlying socket.
func (c *Connection) Close() error {
	return c.engine.Close()
}

func startsWithKeyword(cql, keyword string) bool {
	trimmed := strings.TrimLeft(cql, " \t\r\n")
	return len(trimmed) >= len(keyword) && strings.EqualFold(trimmed[:len(keyword)], keyword)
}
