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

import (
	"github.com/blinklabs-io/gofix/field"
)

// Field is one (tag, value) pair in wire order, as yielded by
// Message.Fields
type Field struct {
	Tag   uint32
	Value []byte
}

// Message is a read-only projection of a decoded message, scoped to one
// FieldContext: the root, or one entry of one repeating group. Accessors
// resolve tags within that context only. A Message stays valid until the
// decoder that produced it decodes another message or is cleared
type Message struct {
	record  *messageRecord
	context FieldContext
}

// Bytes returns the raw bytes of the whole message, envelope included
func (m *Message) Bytes() []byte {
	return m.record.bytes
}

// MsgType returns the value of the MsgType (tag 35) field
func (m *Message) MsgType() (string, error) {
	var v field.String
	if err := m.Get(35, &v); err != nil {
		return "", err
	}
	return string(v), nil
}

// Get parses the field with the given tag into v. It returns
// ErrFieldMissing if no such field exists in this context, or an
// InvalidFieldError if the raw bytes cannot be parsed as v's type. Both
// are recoverable and leave the message untouched
func (m *Message) Get(tag uint32, v field.Value) error {
	raw := m.GetRaw(tag)
	if raw == nil {
		return ErrFieldMissing
	}
	if err := v.Parse(raw); err != nil {
		return InvalidFieldError{Tag: tag, Err: err}
	}
	return nil
}

// GetRaw returns the raw byte value of the field with the given tag, or
// nil if the field is not present in this context. Repeated calls return
// identical bytes
func (m *Message) GetRaw(tag uint32) []byte {
	if tag == 0 {
		return nil
	}
	entry, ok := m.record.get(fieldKey{tag: tag, context: m.context})
	if !ok {
		return nil
	}
	return entry.value
}

// Group returns a handle for the repeating group whose entry-count field
// has the given tag in this context. It returns ErrFieldMissing if the
// count field is absent and an InvalidFieldError if its value is not
// numeric. Entries are projected lazily: no per-entry state is built until
// Get is called
func (m *Message) Group(tag uint32) (*MessageGroup, error) {
	if tag == 0 {
		return nil, ErrFieldMissing
	}
	entry, ok := m.record.get(fieldKey{tag: tag, context: m.context})
	if !ok {
		return nil, ErrFieldMissing
	}
	var count field.Int
	if err := count.Parse(entry.value); err != nil {
		return nil, InvalidFieldError{Tag: tag, Err: err}
	}
	return &MessageGroup{
		record:          m.record,
		indexOfGroupTag: uint32(entry.index),
		numEntries:      int(count),
	}, nil
}

// Fields returns every stored field of the message in wire order,
// regardless of context. For a message without repeating groups this is
// exactly the top-level fields
func (m *Message) Fields() []Field {
	fields := make([]Field, 0, m.record.len())
	for _, key := range m.record.order {
		entry, ok := m.record.get(key)
		if !ok {
			// Removed via MessageMut
			continue
		}
		fields = append(fields, Field{Tag: entry.tag, Value: entry.value})
	}
	return fields
}

// Len returns the number of fields stored for the whole message
func (m *Message) Len() int {
	return m.record.len()
}

// IsEmpty returns true if the message holds no fields
func (m *Message) IsEmpty() bool {
	return m.Len() == 0
}

// MessageGroup is a lazily-indexed handle on one repeating group
type MessageGroup struct {
	record          *messageRecord
	indexOfGroupTag uint32
	numEntries      int
}

// Len returns the number of entries declared by the group's count field
func (g *MessageGroup) Len() int {
	return g.numEntries
}

// Get returns entry i of the group as a child Message scoped to that
// entry, or nil if i is out of range
func (g *MessageGroup) Get(i int) *Message {
	if i < 0 || i >= g.numEntries {
		return nil
	}
	return &Message{
		record:  g.record,
		context: GroupContext(g.indexOfGroupTag, uint32(i)),
	}
}

// MessageMut is a Message view that additionally supports removing
// fields
type MessageMut struct {
	Message
}

// Remove drops the field with the given tag from this context, if
// present. Removal never renumbers group entries
func (m *MessageMut) Remove(tag uint32) {
	if tag == 0 {
		return
	}
	m.record.remove(fieldKey{tag: tag, context: m.context})
}

// AsMessage returns a read-only view of the same message and context
func (m *MessageMut) AsMessage() *Message {
	return &m.Message
}
