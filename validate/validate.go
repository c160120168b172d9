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

// Package validate provides structural validation of decoded tag-value
// messages, layered on top of the decoder's output. It never re-parses
// wire bytes
package validate

import (
	"fmt"

	"github.com/blinklabs-io/gofix/dict"
	"github.com/blinklabs-io/gofix/tagvalue"
)

// RequiredFieldMissingError indicates a message is missing a field that is
// required for its message type
type RequiredFieldMissingError struct {
	Tag     uint32
	MsgType string
}

func (e RequiredFieldMissingError) Error() string {
	return fmt.Sprintf(
		"field %d is required but not present in message type %q",
		e.Tag,
		e.MsgType,
	)
}

// UnknownMessageTypeError indicates a message type with no registered
// layout
type UnknownMessageTypeError struct {
	MsgType string
}

func (e UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("unknown message type %q", e.MsgType)
}

// MissingMsgTypeError indicates a message without a MsgType field
type MissingMsgTypeError struct{}

func (MissingMsgTypeError) Error() string {
	return "message has no MsgType field"
}

// InvalidFieldValueError indicates a field whose value does not conform to
// its dictionary datatype
type InvalidFieldValueError struct {
	Tag    uint32
	Value  string
	Reason string
}

func (e InvalidFieldValueError) Error() string {
	return fmt.Sprintf(
		"invalid value %q for field %d: %s",
		e.Value,
		e.Tag,
		e.Reason,
	)
}

// Validator checks a decoded message and returns nil on success
type Validator interface {
	Validate(msg *tagvalue.Message) error
}

// SimpleValidator checks field presence and datatype conformance. Required
// maps a message type to the tags that must be present at the root
// context; a nil map skips presence checks entirely, while a message type
// absent from a non-nil map fails as unknown
type SimpleValidator struct {
	Dict     *dict.Dictionary
	Required map[string][]uint32
}

func (v SimpleValidator) Validate(msg *tagvalue.Message) error {
	msgType, err := msg.MsgType()
	if err != nil {
		return MissingMsgTypeError{}
	}
	if v.Required != nil {
		required, ok := v.Required[msgType]
		if !ok {
			return UnknownMessageTypeError{MsgType: msgType}
		}
		for _, tag := range required {
			if msg.GetRaw(tag) == nil {
				return RequiredFieldMissingError{
					Tag:     tag,
					MsgType: msgType,
				}
			}
		}
	}
	if v.Dict == nil {
		return nil
	}
	// Length and NumInGroup fields were already needed by the decoder, but
	// plain integer fields are only validated here
	for _, f := range msg.Fields() {
		switch v.Dict.TypeOf(f.Tag) {
		case dict.DatatypeInt, dict.DatatypeSeqNum:
			if !isNumeric(f.Value) {
				return InvalidFieldValueError{
					Tag:    f.Tag,
					Value:  string(f.Value),
					Reason: "value is not numeric",
				}
			}
		case dict.DatatypeBoolean:
			if len(f.Value) != 1 ||
				(f.Value[0] != 'Y' && f.Value[0] != 'N') {
				return InvalidFieldValueError{
					Tag:    f.Tag,
					Value:  string(f.Value),
					Reason: "value is not 'Y' or 'N'",
				}
			}
		}
	}
	return nil
}

func isNumeric(value []byte) bool {
	if len(value) == 0 {
		return false
	}
	start := 0
	if value[0] == '-' {
		if len(value) == 1 {
			return false
		}
		start = 1
	}
	for _, c := range value[start:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
