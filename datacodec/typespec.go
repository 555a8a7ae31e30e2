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

package datacodec

import (
	"fmt"
	"io"

	"github.com/nativecql/protocol/primitive"
)

// TypeSpec describes a column type as it appears on the wire: a type code
// plus, for collections and custom types, the nested type information that
// code requires. It is the decoded form of the [option] structure used in
// column specs and in list/set/map element descriptions.
type TypeSpec struct {
	Code primitive.DataTypeCode

	// Elem is the element type for List and Set, and the value type for Map.
	Elem *TypeSpec

	// Key is the key type for Map. Nil for every other code.
	Key *TypeSpec

	// Custom is the Java class name for Custom. Empty for every other code.
	Custom string
}

func (t TypeSpec) String() string {
	switch t.Code {
	case primitive.DataTypeCodeList:
		return fmt.Sprintf("list<%v>", t.Elem)
	case primitive.DataTypeCodeSet:
		return fmt.Sprintf("set<%v>", t.Elem)
	case primitive.DataTypeCodeMap:
		return fmt.Sprintf("map<%v, %v>", t.Key, t.Elem)
	case primitive.DataTypeCodeCustom:
		return fmt.Sprintf("custom(%s)", t.Custom)
	default:
		return t.Code.String()
	}
}

// NewListType builds the TypeSpec for a list of elem.
func NewListType(elem TypeSpec) TypeSpec {
	return TypeSpec{Code: primitive.DataTypeCodeList, Elem: &elem}
}

// NewSetType builds the TypeSpec for a set of elem.
func NewSetType(elem TypeSpec) TypeSpec {
	return TypeSpec{Code: primitive.DataTypeCodeSet, Elem: &elem}
}

// NewMapType builds the TypeSpec for a map from key to value.
func NewMapType(key TypeSpec, value TypeSpec) TypeSpec {
	return TypeSpec{Code: primitive.DataTypeCodeMap, Key: &key, Elem: &value}
}

// NewCustomType builds the TypeSpec for a custom type backed by the given
// Java class name.
func NewCustomType(class string) TypeSpec {
	return TypeSpec{Code: primitive.DataTypeCodeCustom, Custom: class}
}

// ReadTypeSpec reads an [option]: a [short] type code followed by whatever
// extra fields that code requires.
func ReadTypeSpec(source io.Reader) (TypeSpec, error) {
	code, err := primitive.ReadShort(source)
	if err != nil {
		return TypeSpec{}, fmt.Errorf("cannot read type code: %w", err)
	}
	typeCode := primitive.DataTypeCode(code)
	switch typeCode {
	case primitive.DataTypeCodeCustom:
		class, err := primitive.ReadString(source)
		if err != nil {
			return TypeSpec{}, fmt.Errorf("cannot read custom class name: %w", err)
		}
		return NewCustomType(class), nil
	case primitive.DataTypeCodeList, primitive.DataTypeCodeSet:
		elem, err := ReadTypeSpec(source)
		if err != nil {
			return TypeSpec{}, fmt.Errorf("cannot read %v element type: %w", typeCode, err)
		}
		return TypeSpec{Code: typeCode, Elem: &elem}, nil
	case primitive.DataTypeCodeMap:
		key, err := ReadTypeSpec(source)
		if err != nil {
			return TypeSpec{}, fmt.Errorf("cannot read map key type: %w", err)
		}
		value, err := ReadTypeSpec(source)
		if err != nil {
			return TypeSpec{}, fmt.Errorf("cannot read map value type: %w", err)
		}
		return NewMapType(key, value), nil
	default:
		return TypeSpec{Code: typeCode}, nil
	}
}

// WriteTypeSpec writes an [option] for t.
func WriteTypeSpec(t TypeSpec, dest io.Writer) error {
	if err := primitive.WriteShort(uint16(t.Code), dest); err != nil {
		return fmt.Errorf("cannot write type code: %w", err)
	}
	switch t.Code {
	case primitive.DataTypeCodeCustom:
		if err := primitive.WriteString(t.Custom, dest); err != nil {
			return fmt.Errorf("cannot write custom class name: %w", err)
		}
	case primitive.DataTypeCodeList, primitive.DataTypeCodeSet:
		if t.Elem == nil {
			return fmt.Errorf("%v type missing element type", t.Code)
		}
		if err := WriteTypeSpec(*t.Elem, dest); err != nil {
			return fmt.Errorf("cannot write %v element type: %w", t.Code, err)
		}
	case primitive.DataTypeCodeMap:
		if t.Key == nil || t.Elem == nil {
			return fmt.Errorf("map type missing key or value type")
		}
		if err := WriteTypeSpec(*t.Key, dest); err != nil {
			return fmt.Errorf("cannot write map key type: %w", err)
		}
		if err := WriteTypeSpec(*t.Elem, dest); err != nil {
			return fmt.Errorf("cannot write map value type: %w", err)
		}
	}
	return nil
}

// LengthOfTypeSpec returns the encoded length of t's [option].
func LengthOfTypeSpec(t TypeSpec) int {
	size := primitive.LengthOfShort
	switch t.Code {
	case primitive.DataTypeCodeCustom:
		size += primitive.LengthOfString(t.Custom)
	case primitive.DataTypeCodeList, primitive.DataTypeCodeSet:
		if t.Elem != nil {
			size += LengthOfTypeSpec(*t.Elem)
		}
	case primitive.DataTypeCodeMap:
		if t.Key != nil {
			size += LengthOfTypeSpec(*t.Key)
		}
		if t.Elem != nil {
			size += LengthOfTypeSpec(*t.Elem)
		}
	}
	return size
}
