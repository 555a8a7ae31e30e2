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

package message

import (
	"fmt"
	"io"

	"github.com/nativecql/protocol/datacodec"
	"github.com/nativecql/protocol/primitive"
)

// ColumnSpec describes one column of a result set or of a prepared
// statement's bound variables.
type ColumnSpec struct {
	Keyspace string
	Table    string
	Name     string
	Type     datacodec.TypeSpec
}

// ResultMetadata is the single metadata block shared by RowsResult and
// PreparedResult: a flags word, a column count and, when columns are
// present, the column specs themselves.
type ResultMetadata struct {
	// ColumnCount must equal len(Columns) whenever Columns is non-nil.
	ColumnCount int32
	Columns     []*ColumnSpec
}

func (m *ResultMetadata) Flags() (flag primitive.RowsFlag) {
	if len(m.Columns) > 0 && haveSameTable(m.Columns) {
		flag |= primitive.RowsFlagGlobalTablesSpec
	}
	return flag
}

func encodeResultMetadata(metadata *ResultMetadata, dest io.Writer, version primitive.ProtocolVersion) (err error) {
	if metadata == nil {
		metadata = &ResultMetadata{}
	}
	columnSpecsLength := len(metadata.Columns)
	if columnSpecsLength > 0 && int(metadata.ColumnCount) != columnSpecsLength {
		return fmt.Errorf(
			"invalid RESULT metadata: metadata.ColumnCount %d != len(metadata.Columns) %d",
			metadata.ColumnCount,
			columnSpecsLength,
		)
	}
	flags := metadata.Flags()
	if err = primitive.WriteInt(int32(flags), dest); err != nil {
		return fmt.Errorf("cannot write RESULT metadata flags: %w", err)
	}
	if err = primitive.WriteInt(metadata.ColumnCount, dest); err != nil {
		return fmt.Errorf("cannot write RESULT metadata column count: %w", err)
	}
	if columnSpecsLength > 0 {
		globalTableSpec := flags.Contains(primitive.RowsFlagGlobalTablesSpec)
		if err = encodeColumnSpecs(globalTableSpec, metadata.Columns, dest, version); err != nil {
			return fmt.Errorf("cannot write RESULT metadata columns: %w", err)
		}
	}
	return nil
}

func lengthOfResultMetadata(metadata *ResultMetadata, version primitive.ProtocolVersion) (length int, err error) {
	if metadata == nil {
		metadata = &ResultMetadata{}
	}
	length += primitive.LengthOfInt // flags
	length += primitive.LengthOfInt // column count
	if len(metadata.Columns) > 0 {
		globalTableSpec := metadata.Flags().Contains(primitive.RowsFlagGlobalTablesSpec)
		var lengthOfCols int
		if lengthOfCols, err = lengthOfColumnSpecs(globalTableSpec, metadata.Columns, version); err != nil {
			return -1, fmt.Errorf("cannot compute length of RESULT metadata columns: %w", err)
		}
		length += lengthOfCols
	}
	return length, nil
}

func decodeResultMetadata(source io.Reader, version primitive.ProtocolVersion) (metadata *ResultMetadata, err error) {
	metadata = &ResultMetadata{}
	var f int32
	if f, err = primitive.ReadInt(source); err != nil {
		return nil, fmt.Errorf("cannot read RESULT metadata flags: %w", err)
	}
	flags := primitive.RowsFlag(f)
	if metadata.ColumnCount, err = primitive.ReadInt(source); err != nil {
		return nil, fmt.Errorf("cannot read RESULT metadata column count: %w", err)
	}
	if metadata.ColumnCount > 0 {
		globalTableSpec := flags.Contains(primitive.RowsFlagGlobalTablesSpec)
		if metadata.Columns, err = decodeColumnSpecs(globalTableSpec, metadata.ColumnCount, source, version); err != nil {
			return nil, fmt.Errorf("cannot read RESULT metadata columns: %w", err)
		}
	}
	return metadata, nil
}

func encodeColumnSpecs(globalTableSpec bool, cols []*ColumnSpec, dest io.Writer, version primitive.ProtocolVersion) (err error) {
	if globalTableSpec {
		firstCol := cols[0]
		if err = primitive.WriteString(firstCol.Keyspace, dest); err != nil {
			return fmt.Errorf("cannot write column spec global keyspace: %w", err)
		}
		if err = primitive.WriteString(firstCol.Table, dest); err != nil {
			return fmt.Errorf("cannot write column spec global table: %w", err)
		}
	}
	for i, col := range cols {
		if !globalTableSpec {
			if err = primitive.WriteString(col.Keyspace, dest); err != nil {
				return fmt.Errorf("cannot write column spec %d keyspace: %w", i, err)
			}
			if err = primitive.WriteString(col.Table, dest); err != nil {
				return fmt.Errorf("cannot write column spec %d table: %w", i, err)
			}
		}
		if err = primitive.WriteString(col.Name, dest); err != nil {
			return fmt.Errorf("cannot write column spec %d name: %w", i, err)
		}
		if err = datacodec.WriteTypeSpec(col.Type, dest); err != nil {
			return fmt.Errorf("cannot write column spec %d type: %w", i, err)
		}
	}
	return nil
}

func lengthOfColumnSpecs(globalTableSpec bool, cols []*ColumnSpec, version primitive.ProtocolVersion) (length int, err error) {
	if globalTableSpec {
		firstCol := cols[0]
		length += primitive.LengthOfString(firstCol.Keyspace)
		length += primitive.LengthOfString(firstCol.Table)
	}
	for _, col := range cols {
		if !globalTableSpec {
			length += primitive.LengthOfString(col.Keyspace)
			length += primitive.LengthOfString(col.Table)
		}
		length += primitive.LengthOfString(col.Name)
		length += datacodec.LengthOfTypeSpec(col.Type)
	}
	return length, nil
}

func decodeColumnSpecs(globalTableSpec bool, columnCount int32, source io.Reader, version primitive.ProtocolVersion) (cols []*ColumnSpec, err error) {
	var globalKsName string
	var globalTableName string
	if globalTableSpec {
		if globalKsName, err = primitive.ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read column spec global keyspace: %w", err)
		}
		if globalTableName, err = primitive.ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read column spec global table: %w", err)
		}
	}
	cols = make([]*ColumnSpec, columnCount)
	for i := 0; i < int(columnCount); i++ {
		cols[i] = &ColumnSpec{}
		if globalTableSpec {
			cols[i].Keyspace = globalKsName
		} else {
			if cols[i].Keyspace, err = primitive.ReadString(source); err != nil {
				return nil, fmt.Errorf("cannot read column spec %d keyspace: %w", i, err)
			}
		}
		if globalTableSpec {
			cols[i].Table = globalTableName
		} else {
			if cols[i].Table, err = primitive.ReadString(source); err != nil {
				return nil, fmt.Errorf("cannot read column spec %d table: %w", i, err)
			}
		}
		if cols[i].Name, err = primitive.ReadString(source); err != nil {
			return nil, fmt.Errorf("cannot read column spec %d name: %w", i, err)
		}
		if cols[i].Type, err = datacodec.ReadTypeSpec(source); err != nil {
			return nil, fmt.Errorf("cannot read column spec %d type: %w", i, err)
		}
	}
	return cols, nil
}

func haveSameTable(cols []*ColumnSpec) bool {
	if len(cols) == 0 {
		return false
	}
	first := true
	var ksName string
	var tableName string
	for _, col := range cols {
		if first {
			first = false
			ksName = col.Keyspace
			tableName = col.Table
		} else if col.Keyspace != ksName || col.Table != tableName {
			return false
		}
	}
	return true
}
