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
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nativecql/protocol/auth"
	"github.com/nativecql/protocol/client"
	"github.com/nativecql/protocol/cqlerror"
	"github.com/nativecql/protocol/datacodec"
	"github.com/nativecql/protocol/message"
	"github.com/nativecql/protocol/primitive"
	"github.com/nativecql/protocol/result"
)

func listen(t *testing.T) (net.Listener, chan net.Conn) {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	accepted := make(chan net.Conn, 1)
	go func() {
		conn, err := listener.Accept()
		if err == nil {
			accepted <- conn
		}
	}()
	return listener, accepted
}

func connectOptions() client.Options {
	return client.Options{
		Version:        primitive.ProtocolVersion2,
		ConnectTimeout: 2 * time.Second,
		ReadTimeout:    2 * time.Second,
	}
}

func TestConnect_handshakeNoAuth(t *testing.T) {
	listener, accepted := listen(t)
	defer listener.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		server := newFakeServer(t, <-accepted)
		server.reply(&message.Ready{})
	}()

	conn, err := client.Connect(context.Background(), listener.Addr().String(), connectOptions())
	require.NoError(t, err)
	defer conn.Close()

	<-done
}

func TestConnect_handshakeWithAuth(t *testing.T) {
	listener, accepted := listen(t)
	defer listener.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		server := newFakeServer(t, <-accepted)
		server.reply(&message.Authenticate{Authenticator: "org.apache.cassandra.auth.PasswordAuthenticator"})
		server.handle(func(msg message.Message) message.Message {
			creds, ok := msg.(*message.Credentials)
			require.True(t, ok)
			assert.Equal(t, map[string]string{"username": "bob", "password": "s3cr3t"}, creds.Values)
			return &message.Ready{}
		})
	}()

	opts := connectOptions()
	opts.Authenticator = auth.PlainTextAuthenticator{Username: "bob", Password: "s3cr3t"}
	conn, err := client.Connect(context.Background(), listener.Addr().String(), opts)
	require.NoError(t, err)
	defer conn.Close()

	<-done
}

func TestConnect_handshakeAuthRequiredButNotConfigured(t *testing.T) {
	listener, accepted := listen(t)
	defer listener.Close()

	go func() {
		server := newFakeServer(t, <-accepted)
		server.reply(&message.Authenticate{Authenticator: "org.apache.cassandra.auth.PasswordAuthenticator"})
	}()

	_, err := client.Connect(context.Background(), listener.Addr().String(), connectOptions())
	assert.Error(t, err)
}

func dialConnected(t *testing.T) (*client.Connection, *fakeServer, func()) {
	t.Helper()
	listener, accepted := listen(t)

	serverReady := make(chan *fakeServer, 1)
	go func() {
		server := newFakeServer(t, <-accepted)
		server.reply(&message.Ready{})
		serverReady <- server
	}()

	conn, err := client.Connect(context.Background(), listener.Addr().String(), connectOptions())
	require.NoError(t, err)
	server := <-serverReady
	return conn, server, func() {
		conn.Close()
		listener.Close()
	}
}

func TestConnection_Query_void(t *testing.T) {
	conn, server, cleanup := dialConnected(t)
	defer cleanup()

	done := make(chan struct{})
	go func() {
		defer close(done)
		server.reply(&message.VoidResult{})
	}()

	val, err := conn.Query("INSERT INTO t (a) VALUES (1)", primitive.ConsistencyLevelQuorum)
	require.NoError(t, err)
	assert.Nil(t, val)
	<-done
}

func TestConnection_Query_rejectsPrepareStatements(t *testing.T) {
	conn, _, cleanup := dialConnected(t)
	defer cleanup()

	_, err := conn.Query("PREPARE SELECT * FROM t", primitive.ConsistencyLevelAny)
	assert.Error(t, err)
}

func TestConnection_UseKeyspace_idempotent(t *testing.T) {
	conn, server, cleanup := dialConnected(t)
	defer cleanup()

	requestCount := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		server.handle(func(msg message.Message) message.Message {
			requestCount++
			q, ok := msg.(*message.Query)
			require.True(t, ok)
			assert.Equal(t, "USE ks1", q.Query)
			return &message.SetKeyspaceResult{Keyspace: "ks1"}
		})
	}()

	require.NoError(t, conn.UseKeyspace("ks1"))
	<-done
	assert.Equal(t, 1, requestCount)

	require.NoError(t, conn.UseKeyspace("ks1"))
	assert.Equal(t, 1, requestCount, "selecting the already-active keyspace must not issue a second frame")
}

func TestConnection_UseKeyspace_invalidIdentifier(t *testing.T) {
	conn, _, cleanup := dialConnected(t)
	defer cleanup()

	assert.Error(t, conn.UseKeyspace("1nvalid"))
	assert.Error(t, conn.UseKeyspace("bad name"))
}

func TestConnection_PrepareExecute(t *testing.T) {
	conn, server, cleanup := dialConnected(t)
	defer cleanup()

	queryID := []byte("0123456789abcdef")
	done := make(chan struct{})
	go func() {
		defer close(done)
		server.handle(func(msg message.Message) message.Message {
			p, ok := msg.(*message.Prepare)
			require.True(t, ok)
			assert.Equal(t, "INSERT INTO t(a,b) VALUES (?,?)", p.Query)
			return &message.PreparedResult{
				PreparedQueryId: queryID,
				VariablesMetadata: &message.ResultMetadata{
					ColumnCount: 2,
					Columns: []*message.ColumnSpec{
						{Keyspace: "ks1", Table: "t", Name: "a", Type: datacodec.TypeSpec{Code: primitive.DataTypeCodeInt}},
						{Keyspace: "ks1", Table: "t", Name: "b", Type: datacodec.TypeSpec{Code: primitive.DataTypeCodeVarchar}},
					},
				},
				ResultMetadata: &message.ResultMetadata{},
			}
		})
		server.handle(func(msg message.Message) message.Message {
			e, ok := msg.(*message.Execute)
			require.True(t, ok)
			assert.Equal(t, queryID, e.QueryID)
			require.Len(t, e.Values, 2)
			return &message.VoidResult{}
		})
	}()

	prepared, err := conn.Prepare("INSERT INTO t(a,b) VALUES (?,?)")
	require.NoError(t, err)
	assert.Equal(t, queryID, prepared.QueryID)

	intCodec, err := datacodec.NewCodec(datacodec.TypeSpec{Code: primitive.DataTypeCodeInt})
	require.NoError(t, err)
	varcharCodec, err := datacodec.NewCodec(datacodec.TypeSpec{Code: primitive.DataTypeCodeVarchar})
	require.NoError(t, err)
	aValue, err := intCodec.Encode(int32(42), primitive.ProtocolVersion2)
	require.NoError(t, err)
	bValue, err := varcharCodec.Encode("hi", primitive.ProtocolVersion2)
	require.NoError(t, err)

	val, err := conn.Execute(prepared.QueryID, [][]byte{aValue, bValue}, primitive.ConsistencyLevelQuorum)
	require.NoError(t, err)
	assert.Nil(t, val)
	<-done
}

func TestConnection_ExecuteValues(t *testing.T) {
	conn, server, cleanup := dialConnected(t)
	defer cleanup()

	queryID := []byte("0123456789abcdef")
	done := make(chan struct{})
	go func() {
		defer close(done)
		server.handle(func(msg message.Message) message.Message {
			e, ok := msg.(*message.Execute)
			require.True(t, ok)
			assert.Equal(t, queryID, e.QueryID)
			require.Len(t, e.Values, 2)

			intCodec, err := datacodec.NewCodec(datacodec.TypeSpec{Code: primitive.DataTypeCodeInt})
			require.NoError(t, err)
			var a int32
			_, err = intCodec.Decode(e.Values[0], &a, primitive.ProtocolVersion2)
			require.NoError(t, err)
			assert.Equal(t, int32(42), a)

			varcharCodec, err := datacodec.NewCodec(datacodec.TypeSpec{Code: primitive.DataTypeCodeVarchar})
			require.NoError(t, err)
			var b string
			_, err = varcharCodec.Decode(e.Values[1], &b, primitive.ProtocolVersion2)
			require.NoError(t, err)
			assert.Equal(t, "hi", b)

			return &message.VoidResult{}
		})
	}()

	val, err := conn.ExecuteValues(queryID, []interface{}{int32(42), "hi"}, primitive.ConsistencyLevelQuorum)
	require.NoError(t, err)
	assert.Nil(t, val)
	<-done
}

func TestConnection_Execute_tooManyValues(t *testing.T) {
	conn, _, cleanup := dialConnected(t)
	defer cleanup()

	values := make([][]byte, 1<<16)
	_, err := conn.Execute([]byte("id"), values, primitive.ConsistencyLevelAny)
	assert.Error(t, err)
}

func TestConnection_Query_unavailableError(t *testing.T) {
	conn, server, cleanup := dialConnected(t)
	defer cleanup()

	done := make(chan struct{})
	go func() {
		defer close(done)
		server.reply(&message.Error{Cause: &cqlerror.Unavailable{
			Message:     "Cannot achieve consistency",
			Consistency: primitive.ConsistencyLevelQuorum,
			Required:    3,
			Alive:       1,
		}})
	}()

	_, err := conn.Query("SELECT * FROM t", primitive.ConsistencyLevelQuorum)
	require.Error(t, err)
	var unavailable *cqlerror.Unavailable
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, int32(3), unavailable.Required)
	assert.Equal(t, int32(1), unavailable.Alive)
	<-done
}

func TestConnection_Rows_busyUntilDrained(t *testing.T) {
	conn, server, cleanup := dialConnected(t)
	defer cleanup()

	idCol := &message.ColumnSpec{Keyspace: "ks1", Table: "t", Name: "id", Type: datacodec.TypeSpec{Code: primitive.DataTypeCodeInt}}
	intCodec, err := datacodec.NewCodec(idCol.Type)
	require.NoError(t, err)
	row1, err := intCodec.Encode(int32(1), primitive.ProtocolVersion2)
	require.NoError(t, err)
	row2, err := intCodec.Encode(int32(2), primitive.ProtocolVersion2)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		server.reply(&message.RowsResult{
			Metadata: &message.ResultMetadata{ColumnCount: 1, Columns: []*message.ColumnSpec{idCol}},
			Data:     message.RowSet{message.Row{row1}, message.Row{row2}},
		})
	}()

	val, err := conn.Query("SELECT id FROM t", primitive.ConsistencyLevelQuorum)
	require.NoError(t, err)
	<-done
	rows, ok := val.(*result.Rows)
	require.True(t, ok)

	_, err = conn.Query("SELECT 1", primitive.ConsistencyLevelAny)
	require.Error(t, err)
	var busy *cqlerror.BusyConnection
	require.ErrorAs(t, err, &busy)

	require.True(t, rows.Next())
	require.NoError(t, rows.Close())

	done2 := make(chan struct{})
	go func() {
		defer close(done2)
		server.reply(&message.VoidResult{})
	}()
	_, err = conn.Query("SELECT 1", primitive.ConsistencyLevelAny)
	require.NoError(t, err)
	<-done2
}

func TestConnection_Register(t *testing.T) {
	conn, server, cleanup := dialConnected(t)
	defer cleanup()

	done := make(chan struct{})
	go func() {
		defer close(done)
		server.handle(func(msg message.Message) message.Message {
			r, ok := msg.(*message.Register)
			require.True(t, ok)
			assert.Equal(t, []primitive.EventType{primitive.EventTypeSchemaChange}, r.EventTypes)
			return &message.Ready{}
		})
	}()

	require.NoError(t, conn.Register([]primitive.EventType{primitive.EventTypeSchemaChange}))
	<-done
}
