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

package client

import (
	"github.com/nativecql/protocol/engine"
	"github.com/nativecql/protocol/message"
)

// EventSink is the callback surface passed to Connection.Listen. It is
// an alias of engine.EventSink so callers never need to import engine
// directly just to implement it.
type EventSink = engine.EventSink

// EventSinkFunc adapts a plain function to EventSink.
type EventSinkFunc func(event message.Event)

func (f EventSinkFunc) HandleEvent(event message.Event) {
	f(event)
}
