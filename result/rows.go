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

package result

import (
	"errors"
	"fmt"

	"github.com/nativecql/protocol/datacodec"
	"github.com/nativecql/protocol/message"
	"github.com/nativecql/protocol/primitive"
)

// Rows is a single-pass, non-restartable cursor over the rows already
// decoded into a message.RowsResult. It never reads further off the
// wire: the frame carrying it was fully consumed by the time
// engine.Engine handed the RowsResult back, so Close only needs to
// release the connection, not drain anything.
type Rows struct {
	metadata *message.ResultMetadata
	data     message.RowSet
	version  primitive.ProtocolVersion

	pos    int
	closed bool

	// OnClose, if set, is called exactly once, the first time Close is
	// called (explicitly, or implicitly by exhausting the last row).
	// client.Connection uses it to clear the engine's busy flag.
	OnClose func()
}

// NewRows wraps an already-decoded RowsResult in a forward-only cursor.
func NewRows(r *message.RowsResult, version primitive.ProtocolVersion) *Rows {
	metadata := r.Metadata
	if metadata == nil {
		metadata = &message.ResultMetadata{}
	}
	return &Rows{
		metadata: metadata,
		data:     r.Data,
		version:  version,
		pos:      -1,
	}
}

// Columns describes the result set's columns, in wire order.
func (r *Rows) Columns() []*message.ColumnSpec {
	return r.metadata.Columns
}

// Next advances the cursor to the next row, returning false once the
// row set is exhausted or the cursor has been closed. It never goes
// backwards: a Rows cannot be restarted.
func (r *Rows) Next() bool {
	if r.closed {
		return false
	}
	r.pos++
	if r.pos >= len(r.data) {
		r.close()
		return false
	}
	return true
}

// Scan decodes the current row's columns into dest, one pointer per
// column, in column order, and each one must be a pointer to the CQL
// type's preferred Go representation (see datacodec.PreferredGoType),
// or a pointer to interface{}. Extra columns beyond len(dest) are
// skipped; extra dest beyond len(Columns()) are left untouched.
func (r *Rows) Scan(dest ...interface{}) error {
	if r.closed {
		return errors.New("result: Scan called on a closed Rows")
	}
	if r.pos < 0 || r.pos >= len(r.data) {
		return errors.New("result: Scan called without a prior successful call to Next")
	}
	row := r.data[r.pos]
	cols := r.metadata.Columns
	n := len(dest)
	if len(cols) < n {
		n = len(cols)
	}
	for i := 0; i < n; i++ {
		col := cols[i]
		codec, err := datacodec.NewCodec(col.Type)
		if err != nil {
			return fmt.Errorf("result: no codec for column %q (%v): %w", col.Name, col.Type, err)
		}
		if _, err = codec.Decode(row[i], dest[i], r.version); err != nil {
			return fmt.Errorf("result: cannot scan column %q into %T: %w", col.Name, dest[i], err)
		}
	}
	return nil
}

// Close releases the cursor. Dropping a Rows before exhausting it is
// safe: the underlying bytes were already consumed off the wire when
// the RowsResult was decoded, so there is nothing left to drain, but
// OnClose must still run so the connection is marked free for reuse.
func (r *Rows) Close() error {
	r.close()
	return nil
}

func (r *Rows) close() {
	if r.closed {
		return
	}
	r.closed = true
	if r.OnClose != nil {
		r.OnClose()
	}
}
