// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package encoder

import (
	"m4o.io/osmxml/model"
)

// operation is the change-file classification of an OSM object.
type operation int

const (
	opNone operation = iota
	opCreate
	opModify
	opDelete
)

// classify derives the change operation from an object's metadata: deleted
// objects are invisible, version one is a creation, anything later a
// modification.  Without metadata the object cannot be placed in any group.
func classify(info *model.Info) (operation, error) {
	if info == nil {
		return opNone, ErrCannotClassify
	}

	if !info.Visible {
		return opDelete, nil
	}

	if info.Version == 1 {
		return opCreate, nil
	}

	return opModify, nil
}

// openCloseOpTag closes the currently open operation group, if any, and opens
// the group for op.  Consecutive objects of the same operation share one
// group.  Called with opNone it flushes the open group.
func (e *blockEncoder) openCloseOpTag(op operation) {
	if op == e.lastOp {
		return
	}

	switch e.lastOp {
	case opNone:
	case opCreate:
		e.out = append(e.out, "  </create>\n"...)
	case opModify:
		e.out = append(e.out, "  </modify>\n"...)
	case opDelete:
		e.out = append(e.out, "  </delete>\n"...)
	}

	switch op {
	case opNone:
	case opCreate:
		e.out = append(e.out, "  <create>\n"...)
	case opModify:
		e.out = append(e.out, "  <modify>\n"...)
	case opDelete:
		e.out = append(e.out, "  <delete>\n"...)
	}

	e.lastOp = op
}
