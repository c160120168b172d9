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
	"errors"

	"github.com/blinklabs-io/gofix/dict"
)

const beginStringTag = 8

// Decoder is a one-shot decoder for the FIX tag-value encoding. It owns
// mutable scratch state that is reset and reused across Decode calls, so a
// single Decoder is not safe for concurrent use: create one Decoder per
// goroutine and share the (immutable) Dictionary between them
type Decoder struct {
	dictionary *dict.Dictionary
	config     config
	raw        *RawDecoder
	tracker    groupTracker
	record     *messageRecord
}

// NewDecoder returns a Decoder using the provided dictionary to recognize
// NumInGroup and Length fields
func NewDecoder(
	dictionary *dict.Dictionary,
	opts ...DecoderOptionFunc,
) *Decoder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Decoder{
		dictionary: dictionary,
		config:     cfg,
		raw:        &RawDecoder{config: cfg},
		record:     newMessageRecord(),
	}
}

// Dictionary returns the dictionary used by the decoder
func (d *Decoder) Dictionary() *dict.Dictionary {
	return d.dictionary
}

// Decode frames and decodes one message and returns a root-context view of
// it. Any returned error is fatal for this message: no partial result is
// kept, and the previous decoded message (if any) has been discarded. The
// returned Message is valid until the next Decode call
func (d *Decoder) Decode(data []byte) (*Message, error) {
	frame, err := d.raw.Decode(data)
	if err != nil {
		return nil, err
	}
	return d.decodeFrame(frame)
}

func (d *Decoder) decodeFrame(frame RawFrame) (*Message, error) {
	d.record.clear()
	d.tracker.reset()
	d.record.setBytes(frame.Bytes())
	walker := newFieldWalker(frame.Payload(), d.config.separator)
	// The BeginString field is recorded like any other root-context field
	// so that callers can read tag 8 off the message
	if err := d.handleField(beginStringTag, frame.BeginString(), walker); err != nil {
		return nil, err
	}
	for {
		tag, value, ok, err := walker.next()
		if err != nil {
			d.config.logger.Debug(
				"field walk failed",
				"component", "tagvalue.Decoder",
				"error", err,
			)
			return nil, err
		}
		if !ok {
			break
		}
		if err := d.handleField(tag, value, walker); err != nil {
			return nil, err
		}
	}
	d.config.logger.Debug(
		"decoded message",
		"component", "tagvalue.Decoder",
		"fields", d.record.len(),
		"bytes", len(frame.Bytes()),
	)
	return d.message(), nil
}

// handleField assigns the field its context, stores it, and applies the
// dictionary-driven side effects: a NumInGroup count arms the group
// tracker and a Length value fixes the next field's byte length
func (d *Decoder) handleField(
	tag uint32,
	value []byte,
	walker *fieldWalker,
) error {
	context := d.tracker.assign(tag)
	index := d.record.insert(fieldKey{tag: tag, context: context}, value)
	if d.dictionary == nil {
		return nil
	}
	switch d.dictionary.TypeOf(tag) {
	case dict.DatatypeNumInGroup:
		count, err := parseUintBytes(value)
		if err != nil {
			return ConstraintViolationError{
				Tag:    tag,
				Reason: "NumInGroup value is not numeric",
			}
		}
		if count > 0 {
			d.tracker.openGroup(tag, index, count)
		}
	case dict.DatatypeLength:
		length, err := parseUintBytes(value)
		if err != nil {
			return ConstraintViolationError{
				Tag:    tag,
				Reason: "Length value is not numeric",
			}
		}
		walker.setDataLength(length)
	}
	return nil
}

func (d *Decoder) message() *Message {
	return &Message{
		record:  d.record,
		context: RootContext,
	}
}

func (d *Decoder) messageMut() *MessageMut {
	return &MessageMut{
		Message: Message{
			record:  d.record,
			context: RootContext,
		},
	}
}

// parseUintBytes parses a small non-negative ASCII decimal. NumInGroup and
// Length values are required immediately by the decoder, unlike ordinary
// typed field access, which is validated lazily
func parseUintBytes(data []byte) (int, error) {
	if len(data) == 0 || len(data) > 9 {
		return 0, errors.New("value is not a valid unsigned integer")
	}
	result := 0
	for _, c := range data {
		if c < '0' || c > '9' {
			return 0, errors.New("value is not a valid unsigned integer")
		}
		result = result*10 + int(c-'0')
	}
	return result, nil
}
