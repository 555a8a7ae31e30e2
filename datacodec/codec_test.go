// Copyright 2021 DataStax
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

package datacodec

import (
	"reflect"
	"testing"

	"github.com/nativecql/protocol/primitive"
	"github.com/stretchr/testify/assert"
)

func TestNewCodec(t *testing.T) {
	customType := NewCustomType("com.example.Type")
	listType := NewListType(TypeSpec{Code: primitive.DataTypeCodeInt})
	listCodec, _ := NewList(TypeSpec{Code: primitive.DataTypeCodeInt})
	setType := NewSetType(TypeSpec{Code: primitive.DataTypeCodeInt})
	setCodec, _ := NewSet(TypeSpec{Code: primitive.DataTypeCodeInt})
	mapType := NewMapType(TypeSpec{Code: primitive.DataTypeCodeInt}, TypeSpec{Code: primitive.DataTypeCodeVarchar})
	mapCodec, _ := NewMap(TypeSpec{Code: primitive.DataTypeCodeInt}, TypeSpec{Code: primitive.DataTypeCodeVarchar})
	tests := []struct {
		name      string
		dt        TypeSpec
		wantCodec Codec
		wantErr   string
	}{
		{"Ascii", TypeSpec{Code: primitive.DataTypeCodeAscii}, Ascii, ""},
		{"Bigint", TypeSpec{Code: primitive.DataTypeCodeBigint}, Bigint, ""},
		{"Blob", TypeSpec{Code: primitive.DataTypeCodeBlob}, Blob, ""},
		{"Boolean", TypeSpec{Code: primitive.DataTypeCodeBoolean}, Boolean, ""},
		{"Counter", TypeSpec{Code: primitive.DataTypeCodeCounter}, Counter, ""},
		{"Custom", customType, NewCustom(customType.Custom), ""},
		{"Decimal", TypeSpec{Code: primitive.DataTypeCodeDecimal}, Decimal, ""},
		{"Double", TypeSpec{Code: primitive.DataTypeCodeDouble}, Double, ""},
		{"Float", TypeSpec{Code: primitive.DataTypeCodeFloat}, Float, ""},
		{"Inet", TypeSpec{Code: primitive.DataTypeCodeInet}, Inet, ""},
		{"Int", TypeSpec{Code: primitive.DataTypeCodeInt}, Int, ""},
		{"Text", TypeSpec{Code: primitive.DataTypeCodeText}, Text, ""},
		{"Timestamp", TypeSpec{Code: primitive.DataTypeCodeTimestamp}, Timestamp, ""},
		{"Timeuuid", TypeSpec{Code: primitive.DataTypeCodeTimeuuid}, Timeuuid, ""},
		{"Uuid", TypeSpec{Code: primitive.DataTypeCodeUuid}, Uuid, ""},
		{"Varchar", TypeSpec{Code: primitive.DataTypeCodeVarchar}, Varchar, ""},
		{"Varint", TypeSpec{Code: primitive.DataTypeCodeVarint}, Varint, ""},
		{"List", listType, listCodec, ""},
		{"Set", setType, setCodec, ""},
		{"Map", mapType, mapCodec, ""},
		{"wrong", wrongDataType, nil, "cannot create data codec for CQL type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotCodec, gotErr := NewCodec(tt.dt)
			assert.Equal(t, tt.wantCodec, gotCodec)
			assertErrorMessage(t, tt.wantErr, gotErr)
		})
	}
}

func TestPreferredGoType(t *testing.T) {
	customType := NewCustomType("com.example.Type")
	listType := NewListType(TypeSpec{Code: primitive.DataTypeCodeInt})
	setType := NewSetType(TypeSpec{Code: primitive.DataTypeCodeInt})
	mapType := NewMapType(TypeSpec{Code: primitive.DataTypeCodeInt}, TypeSpec{Code: primitive.DataTypeCodeVarchar})
	tests := []struct {
		name     string
		dt       TypeSpec
		wantType reflect.Type
		wantErr  string
	}{
		{"Ascii", TypeSpec{Code: primitive.DataTypeCodeAscii}, typeOfString, ""},
		{"Bigint", TypeSpec{Code: primitive.DataTypeCodeBigint}, typeOfInt64, ""},
		{"Blob", TypeSpec{Code: primitive.DataTypeCodeBlob}, typeOfByteSlice, ""},
		{"Boolean", TypeSpec{Code: primitive.DataTypeCodeBoolean}, typeOfBoolean, ""},
		{"Counter", TypeSpec{Code: primitive.DataTypeCodeCounter}, typeOfInt64, ""},
		{"Custom", customType, typeOfByteSlice, ""},
		{"Decimal", TypeSpec{Code: primitive.DataTypeCodeDecimal}, typeOfCqlDecimal, ""},
		{"Double", TypeSpec{Code: primitive.DataTypeCodeDouble}, typeOfFloat64, ""},
		{"Float", TypeSpec{Code: primitive.DataTypeCodeFloat}, typeOfFloat32, ""},
		{"Inet", TypeSpec{Code: primitive.DataTypeCodeInet}, typeOfNetIP, ""},
		{"Int", TypeSpec{Code: primitive.DataTypeCodeInt}, typeOfInt32, ""},
		{"Timestamp", TypeSpec{Code: primitive.DataTypeCodeTimestamp}, typeOfTime, ""},
		{"Timeuuid", TypeSpec{Code: primitive.DataTypeCodeTimeuuid}, typeOfUUID, ""},
		{"Uuid", TypeSpec{Code: primitive.DataTypeCodeUuid}, typeOfUUID, ""},
		{"Varchar", TypeSpec{Code: primitive.DataTypeCodeVarchar}, typeOfString, ""},
		{"Varint", TypeSpec{Code: primitive.DataTypeCodeVarint}, typeOfBigIntPointer, ""},
		{"List", listType, reflect.TypeOf([]*int32{}), ""},
		{"Set", setType, reflect.TypeOf([]*int32{}), ""},
		{"Map", mapType, reflect.TypeOf(map[*int32]*string{}), ""},
		{"List wrong", NewListType(wrongDataType), nil, "could not find any suitable Go type"},
		{"Set wrong", NewSetType(wrongDataType), nil, "could not find any suitable Go type"},
		{"Map wrong key", NewMapType(wrongDataType, TypeSpec{Code: primitive.DataTypeCodeInt}), nil, "could not find any suitable Go type"},
		{"Map wrong value", NewMapType(TypeSpec{Code: primitive.DataTypeCodeInt}, wrongDataType), nil, "could not find any suitable Go type"},
		{"wrong", wrongDataType, nil, "could not find any suitable Go type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotErr := PreferredGoType(tt.dt)
			assert.Equal(t, tt.wantType, gotType, "expected %s, got %s", tt.wantType, gotType)
			assertErrorMessage(t, tt.wantErr, gotErr)
		})
	}
}
