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

// fieldEntry is one stored field occurrence. The value is an independently
// owned copy: no stored field borrows from a shared backing buffer, so a
// Message view can never alias decoder-internal scratch space
type fieldEntry struct {
	tag   uint32
	value []byte
	index int
}

// messageRecord persists the decoded fields of one message, keyed by
// (tag, context), with both random and ordered access. One record lives
// per Decoder and is cleared and reused before each decode
type messageRecord struct {
	bytes  []byte
	fields map[fieldKey]fieldEntry
	order  []fieldKey
}

func newMessageRecord() *messageRecord {
	return &messageRecord{
		fields: make(map[fieldKey]fieldEntry),
	}
}

func (r *messageRecord) clear() {
	r.bytes = r.bytes[:0]
	clear(r.fields)
	r.order = r.order[:0]
}

func (r *messageRecord) setBytes(data []byte) {
	r.bytes = append(r.bytes[:0], data...)
}

// insert records a field under the given key and returns its sequence
// index. Inserting an existing key overwrites the stored value but still
// appends to the encounter order
func (r *messageRecord) insert(key fieldKey, value []byte) int {
	index := len(r.order)
	r.fields[key] = fieldEntry{
		tag:   key.tag,
		value: append([]byte(nil), value...),
		index: index,
	}
	r.order = append(r.order, key)
	return index
}

func (r *messageRecord) get(key fieldKey) (fieldEntry, bool) {
	entry, ok := r.fields[key]
	return entry, ok
}

// remove drops a field by key. Group entry indices are derived from
// contexts, never from positions, so removal never renumbers entries
func (r *messageRecord) remove(key fieldKey) {
	if _, ok := r.fields[key]; !ok {
		return
	}
	delete(r.fields, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *messageRecord) len() int {
	return len(r.order)
}
