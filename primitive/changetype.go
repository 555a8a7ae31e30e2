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

// SchemaChangeType is the kind of change carried by a SCHEMA_CHANGE event
// or RESULT.
type SchemaChangeType string

const (
	SchemaChangeTypeCreated = SchemaChangeType("CREATED")
	SchemaChangeTypeUpdated = SchemaChangeType("UPDATED")
	SchemaChangeTypeDropped = SchemaChangeType("DROPPED")
)

func CheckValidSchemaChangeType(t SchemaChangeType) error {
	switch t {
	case SchemaChangeTypeCreated, SchemaChangeTypeUpdated, SchemaChangeTypeDropped:
		return nil
	default:
		return fmt.Errorf("invalid schema change type: %v", t)
	}
}

// StatusChangeType is the kind of change carried by a STATUS_CHANGE event.
type StatusChangeType string

const (
	StatusChangeTypeUp   = StatusChangeType("UP")
	StatusChangeTypeDown = StatusChangeType("DOWN")
)

func CheckValidStatusChangeType(t StatusChangeType) error {
	switch t {
	case StatusChangeTypeUp, StatusChangeTypeDown:
		return nil
	default:
		return fmt.Errorf("invalid status change type: %v", t)
	}
}

// TopologyChangeType is the kind of change carried by a TOPOLOGY_CHANGE
// event. MOVED_NODE is a v3+ addition and is not accepted here.
type TopologyChangeType string

const (
	TopologyChangeTypeNewNode     = TopologyChangeType("NEW_NODE")
	TopologyChangeTypeRemovedNode = TopologyChangeType("REMOVED_NODE")
)

func CheckValidTopologyChangeType(t TopologyChangeType) error {
	switch t {
	case TopologyChangeTypeNewNode, TopologyChangeTypeRemovedNode:
		return nil
	default:
		return fmt.Errorf("invalid topology change type: %v", t)
	}
}
