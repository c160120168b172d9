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

import "bytes"

// fieldWalker scans a message payload into an ordered sequence of
// (tag, value) pairs. A pending data length set from a preceding
// Length-typed field overrides the value scan for exactly one field,
// allowing the value to contain the separator byte verbatim
type fieldWalker struct {
	payload []byte
	sep     byte
	pos     int
	dataLen int
}

func newFieldWalker(payload []byte, sep byte) *fieldWalker {
	return &fieldWalker{
		payload: payload,
		sep:     sep,
		dataLen: -1,
	}
}

// setDataLength fixes the byte length of the next field's value. It is
// called by the decoder when a Length-typed field is seen
func (w *fieldWalker) setDataLength(length int) {
	w.dataLen = length
}

// next returns the next (tag, value) pair, or ok == false at the end of
// the payload. The returned value aliases the payload buffer; callers that
// retain it must copy
func (w *fieldWalker) next() (uint32, []byte, bool, error) {
	if w.pos >= len(w.payload) {
		return 0, nil, false, nil
	}
	tagStart := w.pos
	// Tag: ASCII digits up to '='
	equalsIdx := bytes.IndexByte(w.payload[w.pos:], '=')
	if equalsIdx < 0 {
		return 0, nil, false, FieldSyntaxError{
			Offset: tagStart,
			Reason: "field is missing '='",
		}
	}
	equalsIdx += w.pos
	if equalsIdx == tagStart {
		return 0, nil, false, FieldSyntaxError{
			Offset: tagStart,
			Reason: "field has an empty tag",
		}
	}
	var tag uint32
	for _, c := range w.payload[tagStart:equalsIdx] {
		if c < '0' || c > '9' {
			return 0, nil, false, FieldSyntaxError{
				Offset: tagStart,
				Reason: "field tag contains a non-digit character",
			}
		}
		tag = tag*10 + uint32(c-'0')
	}
	if tag == 0 {
		return 0, nil, false, FieldSyntaxError{
			Offset: tagStart,
			Reason: "field tag is zero",
		}
	}
	valueStart := equalsIdx + 1
	var valueEnd int
	if w.dataLen >= 0 {
		// The previous field fixed this value's length; consume it
		// verbatim, embedded separator bytes included
		valueEnd = valueStart + w.dataLen
		w.dataLen = -1
		if valueEnd > len(w.payload) {
			return 0, nil, false, FieldSyntaxError{
				Offset: valueStart,
				Reason: "data field value runs past the end of the message",
			}
		}
		if valueEnd == len(w.payload) {
			return 0, nil, false, FieldSyntaxError{
				Offset: valueEnd,
				Reason: "data field is not terminated by a separator",
			}
		}
		if w.payload[valueEnd] != w.sep {
			return 0, nil, false, FieldSyntaxError{
				Offset: valueEnd,
				Reason: "data field value is not followed by a separator",
			}
		}
	} else {
		sepIdx := bytes.IndexByte(w.payload[valueStart:], w.sep)
		if sepIdx < 0 {
			return 0, nil, false, FieldSyntaxError{
				Offset: valueStart,
				Reason: "field is not terminated by a separator",
			}
		}
		valueEnd = valueStart + sepIdx
	}
	w.pos = valueEnd + 1
	return tag, w.payload[valueStart:valueEnd], true, nil
}
