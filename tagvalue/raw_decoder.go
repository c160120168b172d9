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
	"bytes"
	"fmt"
)

const (
	// Offset of the BeginString value within a message ("8=" prefix)
	beginStringOffset = 2

	// The trailing CheckSum field is always "10=" plus three ASCII digits
	// plus the separator
	checksumFieldLen = 7
)

// RawFrame is the byte span of one framed message. Bytes covers the whole
// message including the envelope fields; Payload covers the span between
// the BodyLength field and the CheckSum field, which is where the field
// walker operates
type RawFrame struct {
	data         []byte
	beginString  []byte
	payloadStart int
	payloadEnd   int
}

// Bytes returns the full message bytes, envelope included
func (f RawFrame) Bytes() []byte {
	return f.data
}

// BeginString returns the value of the BeginString (tag 8) field
func (f RawFrame) BeginString() []byte {
	return f.beginString
}

// Payload returns the message body between the BodyLength field and the
// CheckSum field
func (f RawFrame) Payload() []byte {
	return f.data[f.payloadStart:f.payloadEnd]
}

// RawDecoder locates one message's byte span using the envelope fields
// (BeginString, BodyLength, CheckSum) and verifies the trailing checksum.
// It performs no field-level parsing
type RawDecoder struct {
	config config
}

// NewRawDecoder returns a RawDecoder with the provided options applied
func NewRawDecoder(opts ...DecoderOptionFunc) *RawDecoder {
	rd := &RawDecoder{
		config: defaultConfig(),
	}
	for _, opt := range opts {
		opt(&rd.config)
	}
	return rd
}

// Decode frames a single message starting at the beginning of data. Extra
// bytes after the framed message are ignored
func (rd *RawDecoder) Decode(data []byte) (RawFrame, error) {
	frame, complete, err := rd.parseFrame(data, false)
	if err != nil {
		return RawFrame{}, err
	}
	if !complete {
		// The non-streaming path maps every incomplete case to an error
		return RawFrame{}, FrameError{Reason: "truncated message"}
	}
	return frame, nil
}

// parseFrame attempts to frame one message at the start of data. When
// streaming is true, spans that are valid so far but incomplete report
// (zero, false, nil) so the caller can wait for more bytes; otherwise every
// incomplete span is a hard error
func (rd *RawDecoder) parseFrame(
	data []byte,
	streaming bool,
) (RawFrame, bool, error) {
	sep := rd.config.separator
	incomplete := func(reason string) (RawFrame, bool, error) {
		if streaming {
			return RawFrame{}, false, nil
		}
		return RawFrame{}, false, FrameError{Reason: reason}
	}
	// BeginString field ("8=<version><sep>")
	if len(data) < beginStringOffset {
		return incomplete("missing BeginString field")
	}
	if data[0] != '8' || data[1] != '=' {
		return RawFrame{}, false, FrameError{
			Reason: "message does not start with BeginString field",
		}
	}
	beginStringEnd := bytes.IndexByte(data[beginStringOffset:], sep)
	if beginStringEnd < 0 {
		return incomplete("unterminated BeginString field")
	}
	beginStringEnd += beginStringOffset
	// BodyLength field ("9=<digits><sep>")
	bodyLenStart := beginStringEnd + 1
	if len(data) < bodyLenStart+2 {
		return incomplete("missing BodyLength field")
	}
	if data[bodyLenStart] != '9' || data[bodyLenStart+1] != '=' {
		return RawFrame{}, false, FrameError{
			Reason: "BeginString field is not followed by BodyLength field",
		}
	}
	bodyLen := 0
	i := bodyLenStart + 2
	for {
		if i >= len(data) {
			return incomplete("unterminated BodyLength field")
		}
		c := data[i]
		if c == sep {
			if i == bodyLenStart+2 {
				return RawFrame{}, false, FrameError{
					Reason: "empty BodyLength value",
				}
			}
			break
		}
		if c < '0' || c > '9' {
			return RawFrame{}, false, FrameError{
				Reason: "BodyLength value is not numeric",
			}
		}
		bodyLen = bodyLen*10 + int(c-'0')
		if rd.config.maxMessageSize > 0 && bodyLen > rd.config.maxMessageSize {
			return RawFrame{}, false, FrameError{
				Reason: fmt.Sprintf(
					"message exceeds maximum size %d",
					rd.config.maxMessageSize,
				),
			}
		}
		i++
	}
	payloadStart := i + 1
	payloadEnd := payloadStart + bodyLen
	total := payloadEnd + checksumFieldLen
	if rd.config.maxMessageSize > 0 && total > rd.config.maxMessageSize {
		return RawFrame{}, false, FrameError{
			Reason: fmt.Sprintf(
				"message exceeds maximum size %d",
				rd.config.maxMessageSize,
			),
		}
	}
	if len(data) < payloadEnd {
		return incomplete("truncated message body")
	}
	// CheckSum field ("10=<3 digits><sep>")
	checksumField := data[payloadEnd:]
	if len(checksumField) >= 3 &&
		string(checksumField[:3]) != "10=" {
		return RawFrame{}, false, FrameError{
			Reason: "message body is not followed by CheckSum field",
		}
	}
	if len(checksumField) < 3 {
		return incomplete("missing CheckSum field")
	}
	declared := 0
	for j := 3; j < 6; j++ {
		if j >= len(checksumField) {
			return incomplete("truncated CheckSum field")
		}
		c := checksumField[j]
		if c < '0' || c > '9' {
			return RawFrame{}, false, FrameError{
				Reason: "CheckSum value is not numeric",
			}
		}
		declared = declared*10 + int(c-'0')
	}
	if len(checksumField) < checksumFieldLen {
		if streaming {
			return RawFrame{}, false, nil
		}
		// Everything but the final separator byte is present. FIX does not
		// allow implicit end-of-input termination of the last field
		return RawFrame{}, false, FieldSyntaxError{
			Offset: len(data),
			Reason: "final field is not terminated by a separator",
		}
	}
	if checksumField[6] != sep {
		return RawFrame{}, false, FieldSyntaxError{
			Offset: payloadEnd + 6,
			Reason: "CheckSum field is not terminated by a separator",
		}
	}
	if rd.config.checkChecksum {
		sum := 0
		for _, b := range data[:payloadEnd] {
			sum += int(b)
		}
		if sum%256 != declared {
			return RawFrame{}, false, FrameError{
				Reason: fmt.Sprintf(
					"checksum mismatch: declared %03d, computed %03d",
					declared,
					sum%256,
				),
			}
		}
	}
	return RawFrame{
		data:         data[:total],
		beginString:  data[beginStringOffset:beginStringEnd],
		payloadStart: payloadStart,
		payloadEnd:   payloadEnd,
	}, true, nil
}
