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

package primitive_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nativecql/protocol/primitive"
)

func TestBytes(t *testing.T) {
	t.Run("null round-trips to nil", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, primitive.WriteBytes(nil, buf))
		assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, buf.Bytes())

		decoded, err := primitive.ReadBytes(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Nil(t, decoded)
	})
	t.Run("empty non-null slice round-trips to zero length", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, primitive.WriteBytes([]byte{}, buf))
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, buf.Bytes())

		decoded, err := primitive.ReadBytes(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.NotNil(t, decoded)
		assert.Empty(t, decoded)
	})
	t.Run("content round-trips", func(t *testing.T) {
		content := []byte{0x01, 0x02, 0x03}
		buf := &bytes.Buffer{}
		require.NoError(t, primitive.WriteBytes(content, buf))
		assert.Equal(t, len(content), int(primitive.LengthOfBytes(content))-4)

		decoded, err := primitive.ReadBytes(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, content, decoded)
	})
}

func TestShortBytes(t *testing.T) {
	content := []byte{0xAB, 0xCD}
	buf := &bytes.Buffer{}
	require.NoError(t, primitive.WriteShortBytes(content, buf))
	assert.Equal(t, []byte{0x00, 0x02, 0xAB, 0xCD}, buf.Bytes())

	decoded, err := primitive.ReadShortBytes(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}
