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

package primitive

import "fmt"

// WriteType qualifies the write that timed out, carried in a WRITE_TIMEOUT
// error body. v1/v2 only defines the five values below; later protocol
// versions add CAS, VIEW and CDC, which this module does not decode.
type WriteType string

const (
	WriteTypeSimple        = WriteType("SIMPLE")
	WriteTypeBatch         = WriteType("BATCH")
	WriteTypeUnloggedBatch = WriteType("UNLOGGED_BATCH")
	WriteTypeCounter       = WriteType("COUNTER")
	WriteTypeBatchLog      = WriteType("BATCH_LOG")
)

func (t WriteType) IsValid() bool {
	switch t {
	case WriteTypeSimple, WriteTypeBatch, WriteTypeUnloggedBatch, WriteTypeCounter, WriteTypeBatchLog:
		return true
	default:
		return false
	}
}

func CheckValidWriteType(t WriteType) error {
	if !t.IsValid() {
		return fmt.Errorf("invalid write type: %v", t)
	}
	return nil
}
