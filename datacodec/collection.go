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
	"bytes"
	"fmt"
	"math"
	"reflect"

	"github.com/nativecql/protocol/primitive"
)

// NewList creates a codec for the CQL list<elementType> type.
func NewList(elementType TypeSpec) (Codec, error) {
	codec, err := NewCodec(elementType)
	if err != nil {
		return nil, fmt.Errorf("cannot create codec for list elements: %w", err)
	}
	return &collectionCodec{NewListType(elementType), codec}, nil
}

// NewSet creates a codec for the CQL set<elementType> type.
func NewSet(elementType TypeSpec) (Codec, error) {
	codec, err := NewCodec(elementType)
	if err != nil {
		return nil, fmt.Errorf("cannot create codec for set elements: %w", err)
	}
	return &collectionCodec{NewSetType(elementType), codec}, nil
}

// NewMap creates a codec for the CQL map<keyType, valueType> type.
func NewMap(keyType, valueType TypeSpec) (Codec, error) {
	kc, err := NewCodec(keyType)
	if err != nil {
		return nil, fmt.Errorf("cannot create codec for map keys: %w", err)
	}
	vc, err := NewCodec(valueType)
	if err != nil {
		return nil, fmt.Errorf("cannot create codec for map values: %w", err)
	}
	return &mapCodec{NewMapType(keyType, valueType), kc, vc}, nil
}

type collectionCodec struct {
	dataType     TypeSpec
	elementCodec Codec
}

func (c *collectionCodec) DataType() TypeSpec {
	return c.dataType
}

func (c *collectionCodec) Encode(source interface{}, version primitive.ProtocolVersion) (dest []byte, err error) {
	ext, size, err := c.createExtractor(source)
	if err == nil && ext != nil {
		dest, err = writeCollection(ext, c.elementCodec, size, version)
	}
	if err != nil {
		err = errCannotEncode(source, c.DataType(), version, err)
	}
	return
}

func (c *collectionCodec) Decode(source []byte, dest interface{}, version primitive.ProtocolVersion) (wasNull bool, err error) {
	wasNull = len(source) == 0
	var injectorFactory func(int) (injector, error)
	if injectorFactory, err = c.createInjector(dest, wasNull); err == nil && injectorFactory != nil {
		err = readCollection(source, injectorFactory, c.elementCodec, version)
	}
	if err != nil {
		err = errCannotDecode(dest, c.DataType(), version, err)
	}
	return
}

func (c *collectionCodec) createExtractor(source interface{}) (ext extractor, size int, err error) {
	sourceValue, sourceType, wasNil := reflectSource(source)
	if sourceType != nil {
		switch sourceType.Kind() {
		case reflect.Slice, reflect.Array:
			if !wasNil {
				ext, err = newSliceExtractor(sourceValue)
				size = sourceValue.Len()
			}
		default:
			err = ErrSourceTypeNotSupported
		}
	}
	return
}

func (c *collectionCodec) createInjector(dest interface{}, wasNull bool) (injectorFactory func(int) (injector, error), err error) {
	destValue, err := reflectDest(dest, wasNull)
	if err == nil {
		switch destValue.Kind() {
		case reflect.Slice:
			if !wasNull {
				injectorFactory = func(size int) (injector, error) {
					adjustSliceLength(destValue, size)
					return newSliceInjector(destValue)
				}
			}
		case reflect.Array:
			if !wasNull {
				injectorFactory = func(size int) (injector, error) {
					return newSliceInjector(destValue)
				}
			}
		case reflect.Interface:
			if !wasNull {
				var targetType reflect.Type
				if targetType, err = PreferredGoType(c.DataType()); err == nil {
					injectorFactory = func(size int) (injector, error) {
						destValue.Set(reflect.MakeSlice(targetType, size, size))
						return newSliceInjector(destValue.Elem())
					}
				}
			}
		default:
			err = ErrDestinationTypeNotSupported
		}
	}
	return
}

// writeCollection writes a list<T>/set<T> body: [short] n then n × [short bytes].
func writeCollection(ext extractor, elementCodec Codec, size int, version primitive.ProtocolVersion) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := writeCollectionSize(size, buf); err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		if elem, err := ext.getElem(i, i); err != nil {
			return nil, errCannotExtractElement(i, err)
		} else if encodedElem, err := elementCodec.Encode(elem, version); err != nil {
			return nil, errCannotEncodeElement(i, err)
		} else if err := primitive.WriteShortBytes(encodedElem, buf); err != nil {
			return nil, fmt.Errorf("cannot write element %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

func readCollection(source []byte, injectorFactory func(int) (injector, error), elementCodec Codec, version primitive.ProtocolVersion) error {
	reader := bytes.NewReader(source)
	total := len(source)
	if size, err := readCollectionSize(reader); err != nil {
		return err
	} else if inj, err := injectorFactory(size); err != nil {
		return err
	} else {
		for i := 0; i < size; i++ {
			if encodedElem, err := primitive.ReadShortBytes(reader); err != nil {
				return errCannotReadElement(i, err)
			} else if decodedElem, err := inj.zeroElem(i, i); err != nil {
				return errCannotCreateElement(i, err)
			} else if elementWasNull, err := elementCodec.Decode(encodedElem, decodedElem, version); err != nil {
				return errCannotDecodeElement(i, err)
			} else if err = inj.setElem(i, i, decodedElem, false, elementWasNull); err != nil {
				return errCannotInjectElement(i, err)
			}
		}
		if remaining := reader.Len(); remaining != 0 {
			return errBytesRemaining(total, remaining)
		}
	}
	return nil
}

func writeCollectionSize(size int, dest *bytes.Buffer) (err error) {
	if size > math.MaxUint16 {
		err = collectionSizeTooLarge(size, math.MaxUint16)
	} else if size < 0 {
		err = collectionSizeNegative(size)
	} else {
		err = primitive.WriteShort(uint16(size), dest)
	}
	if err != nil {
		err = cannotWriteCollectionSize(err)
	}
	return
}

func readCollectionSize(source *bytes.Reader) (size int, err error) {
	var sizeInt16 uint16
	sizeInt16, err = primitive.ReadShort(source)
	size = int(sizeInt16)
	if err != nil {
		err = fmt.Errorf("cannot read collection size: %w", err)
	}
	return
}

type mapCodec struct {
	dataType   TypeSpec
	keyCodec   Codec
	valueCodec Codec
}

func (c *mapCodec) DataType() TypeSpec {
	return c.dataType
}

func (c *mapCodec) Encode(source interface{}, version primitive.ProtocolVersion) (dest []byte, err error) {
	ext, size, err := c.createExtractor(source)
	if err == nil && ext != nil {
		dest, err = writeMap(ext, c.keyCodec, c.valueCodec, size, version)
	}
	if err != nil {
		err = errCannotEncode(source, c.DataType(), version, err)
	}
	return
}

func (c *mapCodec) Decode(source []byte, dest interface{}, version primitive.ProtocolVersion) (wasNull bool, err error) {
	wasNull = len(source) == 0
	var inj keyValueInjector
	if inj, err = c.createInjector(dest, wasNull); err == nil && inj != nil {
		err = readMap(source, inj, c.keyCodec, c.valueCodec, version)
	}
	if err != nil {
		err = errCannotDecode(dest, c.DataType(), version, err)
	}
	return
}

func (c *mapCodec) createExtractor(source interface{}) (ext keyValueExtractor, size int, err error) {
	sourceValue, sourceType, wasNil := reflectSource(source)
	if sourceType != nil {
		switch sourceType.Kind() {
		case reflect.Map:
			if !wasNil {
				ext, err = newMapExtractor(sourceValue)
				size = sourceValue.Len()
			}
		default:
			err = ErrSourceTypeNotSupported
		}
	}
	return
}

func (c *mapCodec) createInjector(dest interface{}, wasNull bool) (inj keyValueInjector, err error) {
	destValue, err := reflectDest(dest, wasNull)
	if err == nil {
		switch destValue.Kind() {
		case reflect.Map:
			if !wasNull {
				if destValue.IsNil() {
					destValue.Set(reflect.MakeMap(destValue.Type()))
				}
				inj, err = newMapInjector(destValue)
			}
		case reflect.Interface:
			if !wasNull {
				var targetType reflect.Type
				if targetType, err = PreferredGoType(c.DataType()); err == nil {
					destValue.Set(reflect.MakeMap(targetType))
					inj, err = newMapInjector(destValue.Elem())
				}
			}
		default:
			err = ErrDestinationTypeNotSupported
		}
	}
	return
}

// writeMap writes a map<K, V> body: [short] n then n × ([short bytes] key + [short bytes] value).
func writeMap(ext keyValueExtractor, keyCodec, valueCodec Codec, size int, version primitive.ProtocolVersion) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := writeCollectionSize(size, buf); err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		key := ext.getKey(i)
		if encodedKey, err := keyCodec.Encode(key, version); err != nil {
			return nil, errCannotEncodeElement(i, err)
		} else if err := primitive.WriteShortBytes(encodedKey, buf); err != nil {
			return nil, fmt.Errorf("cannot write key %d: %w", i, err)
		}
		if elem, err := ext.getElem(i, key); err != nil {
			return nil, errCannotExtractElement(i, err)
		} else if encodedElem, err := valueCodec.Encode(elem, version); err != nil {
			return nil, errCannotEncodeElement(i, err)
		} else if err := primitive.WriteShortBytes(encodedElem, buf); err != nil {
			return nil, fmt.Errorf("cannot write value %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

func readMap(source []byte, inj keyValueInjector, keyCodec, valueCodec Codec, version primitive.ProtocolVersion) error {
	reader := bytes.NewReader(source)
	total := len(source)
	size, err := readCollectionSize(reader)
	if err != nil {
		return err
	}
	for i := 0; i < size; i++ {
		encodedKey, err := primitive.ReadShortBytes(reader)
		if err != nil {
			return errCannotReadElement(i, err)
		}
		zeroKey, err := inj.zeroKey(i)
		if err != nil {
			return errCannotCreateElement(i, err)
		}
		keyWasNull, err := keyCodec.Decode(encodedKey, zeroKey, version)
		if err != nil {
			return errCannotDecodeElement(i, err)
		}
		encodedElem, err := primitive.ReadShortBytes(reader)
		if err != nil {
			return errCannotReadElement(i, err)
		}
		zeroElem, err := inj.zeroElem(i, zeroKey)
		if err != nil {
			return errCannotCreateElement(i, err)
		}
		valueWasNull, err := valueCodec.Decode(encodedElem, zeroElem, version)
		if err != nil {
			return errCannotDecodeElement(i, err)
		}
		if err := inj.setElem(i, zeroKey, zeroElem, keyWasNull, valueWasNull); err != nil {
			return errCannotInjectElement(i, err)
		}
	}
	if remaining := reader.Len(); remaining != 0 {
		return errBytesRemaining(total, remaining)
	}
	return nil
}
