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

import (
	"fmt"
	"io"
)

// ConsistencyLevel is the replica agreement level requested for a read or write.
type ConsistencyLevel uint16

const (
	ConsistencyLevelAny         = ConsistencyLevel(0x0000)
	ConsistencyLevelOne         = ConsistencyLevel(0x0001)
	ConsistencyLevelTwo         = ConsistencyLevel(0x0002)
	ConsistencyLevelThree       = ConsistencyLevel(0x0003)
	ConsistencyLevelQuorum      = ConsistencyLevel(0x0004)
	ConsistencyLevelAll         = ConsistencyLevel(0x0005)
	ConsistencyLevelLocalQuorum = ConsistencyLevel(0x0006)
	ConsistencyLevelEachQuorum  = ConsistencyLevel(0x0007)
)

func (c ConsistencyLevel) IsValid() bool {
	return c <= ConsistencyLevelEachQuorum
}

func (c ConsistencyLevel) String() string {
	switch c {
	case ConsistencyLevelAny:
		return "ANY"
	case ConsistencyLevelOne:
		return "ONE"
	case ConsistencyLevelTwo:
		return "TWO"
	case ConsistencyLevelThree:
		return "THREE"
	case ConsistencyLevelQuorum:
		return "QUORUM"
	case ConsistencyLevelAll:
		return "ALL"
	case ConsistencyLevelLocalQuorum:
		return "LOCAL_QUORUM"
	case ConsistencyLevelEachQuorum:
		return "EACH_QUORUM"
	default:
		return fmt.Sprintf("ConsistencyLevel ?%d", uint16(c))
	}
}

func CheckValidConsistencyLevel(c ConsistencyLevel) error {
	if !c.IsValid() {
		return fmt.Errorf("invalid consistency level: %v", c)
	}
	return nil
}

// [consistency]

func ReadConsistencyLevel(source io.Reader) (ConsistencyLevel, error) {
	level, err := ReadShort(source)
	if err != nil {
		return 0, fmt.Errorf("cannot read [consistency]: %w", err)
	}
	return ConsistencyLevel(level), nil
}

func WriteConsistencyLevel(c ConsistencyLevel, dest io.Writer) error {
	if err := WriteShort(uint16(c), dest); err != nil {
		return fmt.Errorf("cannot write [consistency]: %w", err)
	}
	return nil
}

func LengthOfConsistencyLevel() int {
	return LengthOfShort
}
