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

// Package transport supplies the byte-stream collaborator the protocol
// engine reads and writes frames over. It knows nothing about frames,
// messages or CQL; it is a thin, test-friendly substitute for net.Conn.
package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"
)

// Socket is the byte-stream abstraction engine.Engine drives. Any
// net.Conn satisfies it; tests substitute an in-memory pipe.
type Socket interface {
	io.Reader
	io.Writer
	io.Closer
	SetReadDeadline(t time.Time) error
}

// TCPSocket wraps a net.Conn established over TCP, applying ReadTimeout
// as a read deadline ahead of every Read call.
type TCPSocket struct {
	conn        net.Conn
	ReadTimeout time.Duration
}

// Dial establishes a new TCP connection to address, applying
// connectTimeout to the dial itself and readTimeout to every subsequent
// Read.
func Dial(ctx context.Context, address string, connectTimeout, readTimeout time.Duration) (*TCPSocket, error) {
	dialer := net.Dialer{}
	dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	conn, err := dialer.DialContext(dialCtx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("cannot establish TCP connection to %s: %w", address, err)
	}
	return &TCPSocket{conn: conn, ReadTimeout: readTimeout}, nil
}

func (s *TCPSocket) Read(p []byte) (int, error) {
	if s.ReadTimeout > 0 {
		if err := s.conn.SetReadDeadline(time.Now().Add(s.ReadTimeout)); err != nil {
			return 0, fmt.Errorf("cannot set read deadline: %w", err)
		}
	}
	return s.conn.Read(p)
}

func (s *TCPSocket) Write(p []byte) (int, error) {
	return s.conn.Write(p)
}

func (s *TCPSocket) Close() error {
	return s.conn.Close()
}

func (s *TCPSocket) SetReadDeadline(t time.Time) error {
	return s.conn.SetReadDeadline(t)
}
