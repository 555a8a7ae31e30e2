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

// Package auth supplies the CREDENTIALS values a v1/v2 handshake sends in
// response to an AUTHENTICATE message. Unlike v3+'s SASL exchange, the
// native protocol's early versions ask for a flat {username, password}
// string map up front; there is no challenge/response round trip.
package auth

import "github.com/nativecql/protocol/cqlerror"

// Authenticator supplies the credential values sent in a CREDENTIALS
// message in reply to an AUTHENTICATE challenge naming authenticatorClass.
type Authenticator interface {
	Credentials(authenticatorClass string) (map[string]string, error)
}

// NoAuthenticator always fails. It is the default for connections that
// never expect the server to challenge them; wiring it in explicitly
// documents that auth was never set up, rather than silently
// succeeding with an empty credentials map.
type NoAuthenticator struct{}

func (NoAuthenticator) Credentials(string) (map[string]string, error) {
	return nil, &cqlerror.BadCredentials{Message: "no authenticator configured"}
}

// PlainTextAuthenticator supplies the {username, password} pair expected
// by Cassandra's stock org.apache.cassandra.auth.PasswordAuthenticator.
type PlainTextAuthenticator struct {
	Username string
	Password string
}

func (a PlainTextAuthenticator) Credentials(string) (map[string]string, error) {
	return map[string]string{
		"username": a.Username,
		"password": a.Password,
	}, nil
}
