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

package transport

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDial_readWrite(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	accepted := make(chan net.Conn, 1)
	go func() {
		conn, acceptErr := listener.Accept()
		require.NoError(t, acceptErr)
		accepted <- conn
	}()

	socket, err := Dial(context.Background(), listener.Addr().String(), time.Second, time.Second)
	require.NoError(t, err)
	defer socket.Close()

	serverConn := <-accepted
	defer serverConn.Close()

	_, err = serverConn.Write([]byte("hello"))
	require.NoError(t, err)

	buf := make([]byte, 5)
	n, err := socket.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(buf[:n]))

	_, err = socket.Write([]byte("world"))
	assert.NoError(t, err)
}

func TestDial_connectTimeout(t *testing.T) {
	// 198.51.100.0/24 is reserved for documentation (RFC 5737) and never routes,
	// so dialing it reliably exercises the connect timeout path.
	_, err := Dial(context.Background(), "198.51.100.1:9042", 50*time.Millisecond, time.Second)
	assert.Error(t, err)
}
