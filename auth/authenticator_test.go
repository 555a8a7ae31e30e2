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

package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nativecql/protocol/cqlerror"
)

func TestNoAuthenticator_Credentials(t *testing.T) {
	creds, err := NoAuthenticator{}.Credentials("org.apache.cassandra.auth.PasswordAuthenticator")
	assert.Nil(t, creds)
	assert.Equal(t, &cqlerror.BadCredentials{Message: "no authenticator configured"}, err)
}

func TestPlainTextAuthenticator_Credentials(t *testing.T) {
	a := PlainTextAuthenticator{Username: "bob", Password: "s3cr3t"}
	creds, err := a.Credentials("org.apache.cassandra.auth.PasswordAuthenticator")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"username": "bob", "password": "s3cr3t"}, creds)
}
