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

package client_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nativecql/protocol/frame"
	"github.com/nativecql/protocol/message"
)

// fakeServer is a one-shot, single-connection stand-in for a Cassandra
// node: it decodes one request at a time from the pipe and replies with
// whatever handler says to. It exists purely to drive client.Connection
// through its handshake and request/response paths without a real
// cluster.
type fakeServer struct {
	t     *testing.T
	conn  net.Conn
	codec frame.Codec
}

func newFakeServer(t *testing.T, serverConn net.Conn) *fakeServer {
	return &fakeServer{t: t, conn: serverConn, codec: frame.NewCodec()}
}

// handle decodes one request frame and replies with the message handler
// returns for it.
func (s *fakeServer) handle(handler func(msg message.Message) message.Message) {
	s.t.Helper()
	req, err := s.codec.DecodeFrame(s.conn)
	require.NoError(s.t, err)
	resp := handler(req.Body.Message)
	respFrame := frame.NewFrame(req.Header.Version, req.Header.StreamID, resp)
	require.NoError(s.t, s.codec.EncodeFrame(respFrame, s.conn))
}

// reply replies with the same message to any request, ignoring its
// contents; useful for a single expected STARTUP/READY exchange.
func (s *fakeServer) reply(msg message.Message) {
	s.handle(func(message.Message) message.Message { return msg })
}
