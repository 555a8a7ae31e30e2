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
	"math/big"
	"net"
	"reflect"
	"time"

	"github.com/nativecql/protocol/cqlerror"
	"github.com/nativecql/protocol/primitive"
)

// EncodeValue encodes a bound query or execute parameter supplied as an ordinary Go value. Unlike Codec, which
// requires the CQL type to be known up front (the server always tells a client the type of a column it is
// decoding), EncodeValue has no column spec to consult: it infers the CQL type from source's own Go type and
// picks the matching codec itself.
//
// A nil source encodes to a CQL NULL. Supported scalar types are string, bool, int32, int64, float32, float64,
// []byte, net.IP, primitive.UUID, *big.Int, time.Time and CqlDecimal. Slices of any supported element type encode
// to a CQL list, and maps with a supported key and value type encode to a CQL map.
//
// int64 always encodes as CQL bigint, never counter: Cassandra does not allow binding a counter value in an
// INSERT or UPDATE's bound parameters, so there is no Go value for which EncodeValue would need to produce a
// counter encoding.
//
// A Go type this function does not recognize results in a cqlerror.EncodingError.
func EncodeValue(source interface{}, version primitive.ProtocolVersion) ([]byte, error) {
	if source == nil {
		return nil, nil
	}
	codec, err := codecForGoValue(source)
	if err != nil {
		return nil, &cqlerror.EncodingError{Cause: err}
	}
	encoded, err := codec.Encode(source, version)
	if err != nil {
		return nil, &cqlerror.EncodingError{Cause: err}
	}
	return encoded, nil
}

func codecForGoValue(source interface{}) (Codec, error) {
	switch source.(type) {
	case string:
		return Varchar, nil
	case bool:
		return Boolean, nil
	case int32:
		return Int, nil
	case int64:
		return Bigint, nil
	case float32:
		return Float, nil
	case float64:
		return Double, nil
	case []byte:
		return Blob, nil
	case net.IP:
		return Inet, nil
	case primitive.UUID:
		return Uuid, nil
	case *big.Int:
		return Varint, nil
	case CqlDecimal:
		return Decimal, nil
	case time.Time:
		return Timestamp, nil
	}
	value := reflect.ValueOf(source)
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		if value.Kind() == reflect.Slice && value.Type().Elem().Kind() == reflect.Uint8 {
			return Blob, nil
		}
		elemType, err := typeSpecForGoType(value.Type().Elem())
		if err != nil {
			return nil, err
		}
		return NewList(elemType)
	case reflect.Map:
		keyType, err := typeSpecForGoType(value.Type().Key())
		if err != nil {
			return nil, err
		}
		valueType, err := typeSpecForGoType(value.Type().Elem())
		if err != nil {
			return nil, err
		}
		return NewMap(keyType, valueType)
	}
	return nil, errUnsupportedGoTypeForEncoding(value.Type())
}

// typeSpecForGoType is the inverse of PreferredGoType, used by EncodeValue to build the element TypeSpec that
// NewList, NewSet and NewMap need out of a slice or map's static Go element type.
func typeSpecForGoType(t reflect.Type) (TypeSpec, error) {
	switch t.Kind() {
	case reflect.String:
		return TypeSpec{Code: primitive.DataTypeCodeVarchar}, nil
	case reflect.Bool:
		return TypeSpec{Code: primitive.DataTypeCodeBoolean}, nil
	case reflect.Int32:
		return TypeSpec{Code: primitive.DataTypeCodeInt}, nil
	case reflect.Int64:
		return TypeSpec{Code: primitive.DataTypeCodeBigint}, nil
	case reflect.Float32:
		return TypeSpec{Code: primitive.DataTypeCodeFloat}, nil
	case reflect.Float64:
		return TypeSpec{Code: primitive.DataTypeCodeDouble}, nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return TypeSpec{Code: primitive.DataTypeCodeBlob}, nil
		}
	case reflect.Ptr:
		if t == reflect.TypeOf((*big.Int)(nil)) {
			return TypeSpec{Code: primitive.DataTypeCodeVarint}, nil
		}
	}
	switch t {
	case reflect.TypeOf(net.IP{}):
		return TypeSpec{Code: primitive.DataTypeCodeInet}, nil
	case reflect.TypeOf(primitive.UUID{}):
		return TypeSpec{Code: primitive.DataTypeCodeUuid}, nil
	case reflect.TypeOf(time.Time{}):
		return TypeSpec{Code: primitive.DataTypeCodeTimestamp}, nil
	case reflect.TypeOf(CqlDecimal{}):
		return TypeSpec{Code: primitive.DataTypeCodeDecimal}, nil
	}
	return TypeSpec{}, errUnsupportedGoTypeForEncoding(t)
}

func errUnsupportedGoTypeForEncoding(t reflect.Type) error {
	return fmt.Errorf("%w: %v", ErrSourceTypeNotSupported, t)
}
