// Copyright 2026 Blink Labs Software
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

package tagvalue

// FieldContext disambiguates which part of a message a field occurrence
// belongs to. FIX tags are only unique within a single repeating group
// entry, so a message is a tree rather than a flat map: the same tag can
// legitimately occur once at the root and once per group entry. A
// FieldContext is either the root context or a specific entry of a
// specific group, where the group is identified by the sequence index of
// its entry-count field within the message. Using the sequence index
// rather than the count tag keeps nested groups with the same count tag
// distinct
type FieldContext struct {
	withinGroup     bool
	indexOfGroupTag uint32
	entryIndex      uint32
}

// RootContext is the context of fields outside any repeating group
var RootContext = FieldContext{}

// GroupContext returns the context of entry entryIndex of the group whose
// entry-count field sits at sequence index indexOfGroupTag
func GroupContext(indexOfGroupTag uint32, entryIndex uint32) FieldContext {
	return FieldContext{
		withinGroup:     true,
		indexOfGroupTag: indexOfGroupTag,
		entryIndex:      entryIndex,
	}
}

// IsRoot returns true for the root context
func (c FieldContext) IsRoot() bool {
	return !c.withinGroup
}

// fieldKey uniquely identifies one stored field occurrence
type fieldKey struct {
	tag     uint32
	context FieldContext
}

// groupFrame tracks one open repeating group while decoding. The tag that
// begins each entry is not declared on the wire; it is learned from the
// first field that follows the entry-count field
type groupFrame struct {
	countTag        uint32
	firstTag        uint32
	numEntries      int
	currentEntry    int
	indexOfGroupTag int
}

// pendingGroup records an entry-count field whose group frame cannot be
// pushed yet because the first tag of its entries is still unknown
type pendingGroup struct {
	countTag        uint32
	indexOfGroupTag int
	numEntries      int
}

// groupTracker is the stack-based state machine that assigns each decoded
// field its FieldContext. An explicit stack, rather than recursion, keeps
// input-driven nesting depth off the call stack
type groupTracker struct {
	stack   []groupFrame
	pending pendingGroup
	waiting bool
}

func (t *groupTracker) reset() {
	t.stack = t.stack[:0]
	t.waiting = false
}

// assign advances the group state machine for the given tag and returns
// the context the field belongs to. It must be called exactly once per
// decoded field, in wire order
func (t *groupTracker) assign(tag uint32) FieldContext {
	if t.waiting {
		// The previous field was an entry count; this tag is learned as
		// the first tag of every entry and opens entry 0
		t.stack = append(t.stack, groupFrame{
			countTag:        t.pending.countTag,
			firstTag:        tag,
			numEntries:      t.pending.numEntries,
			currentEntry:    0,
			indexOfGroupTag: t.pending.indexOfGroupTag,
		})
		t.waiting = false
	} else {
		for len(t.stack) > 0 {
			top := &t.stack[len(t.stack)-1]
			if top.currentEntry >= top.numEntries {
				// Group exhausted; pop and re-test against the enclosing
				// group, if any
				t.stack = t.stack[:len(t.stack)-1]
				continue
			}
			if tag == top.firstTag {
				// A new repetition of the innermost group began
				top.currentEntry++
			}
			break
		}
	}
	if len(t.stack) == 0 {
		return RootContext
	}
	top := t.stack[len(t.stack)-1]
	return GroupContext(uint32(top.indexOfGroupTag), uint32(top.currentEntry))
}

// openGroup arms the tracker after an entry-count field with a positive
// count. The frame itself is pushed by the next assign call, once the
// first tag of the entries is known. A count of zero never reaches here:
// an empty group leaves no trace
func (t *groupTracker) openGroup(
	countTag uint32,
	indexOfGroupTag int,
	numEntries int,
) {
	t.pending = pendingGroup{
		countTag:        countTag,
		indexOfGroupTag: indexOfGroupTag,
		numEntries:      numEntries,
	}
	t.waiting = true
}
