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

// Package sofh implements the FIX Simple Open Framing Header, the
// fixed-layout envelope used to frame messages of the other encodings
// (tag-value, SBE, ASN.1, FAST) over a stream transport. Each frame is a
// six byte header (four byte big-endian message length, two byte encoding
// type) followed by the message payload
package sofh

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// HeaderLength is the fixed size of the framing header in bytes
const HeaderLength = 6

// Encoding type values registered by the FIX Trading Community
const (
	EncodingTypeSbeV1BigEndian    uint16 = 0x5BE0
	EncodingTypeSbeV1LittleEndian uint16 = 0xEB50
	EncodingTypeGpb               uint16 = 0xF000
	EncodingTypeAsn1Ber           uint16 = 0xF100
	EncodingTypeAsn1Oer           uint16 = 0xF200
	EncodingTypeAsn1Per           uint16 = 0xF300
	EncodingTypeTagValue          uint16 = 0xF500

	// FAST encodings occupy a range; the low byte carries a
	// template-negotiation hint
	encodingTypeFastRangeStart uint16 = 0xFA00
	encodingTypeFastRangeEnd   uint16 = 0xFAFF
)

var (
	ErrShortHeader       = errors.New("buffer is shorter than the framing header")
	ErrInvalidMessageLen = errors.New("message length is shorter than the framing header")
)

// IsFastEncoding returns true if the encoding type falls in the range
// reserved for FAST
func IsFastEncoding(encodingType uint16) bool {
	return encodingType >= encodingTypeFastRangeStart &&
		encodingType <= encodingTypeFastRangeEnd
}

// Header is the decoded form of one framing header. MessageLength counts
// the whole frame, header included
type Header struct {
	MessageLength uint32
	EncodingType  uint16
}

// PayloadLength returns the number of payload bytes that follow the
// header
func (h Header) PayloadLength() int {
	return int(h.MessageLength) - HeaderLength
}

// ParseHeader decodes a framing header from the start of data
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderLength {
		return Header{}, ErrShortHeader
	}
	h := Header{
		MessageLength: binary.BigEndian.Uint32(data[0:4]),
		EncodingType:  binary.BigEndian.Uint16(data[4:6]),
	}
	if h.MessageLength < HeaderLength {
		return Header{}, ErrInvalidMessageLen
	}
	return h, nil
}

// Serialize appends the wire form of the header to buf
func (h Header) Serialize(buf []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, h.MessageLength)
	return binary.BigEndian.AppendUint16(buf, h.EncodingType)
}

// ReadFrame reads one whole frame from r and returns its header and
// payload. We use ReadFull because it guarantees to read the expected
// number of bytes or return an error
func ReadFrame(r io.Reader) (Header, []byte, error) {
	var headerBytes [HeaderLength]byte
	if _, err := io.ReadFull(r, headerBytes[:]); err != nil {
		return Header{}, nil, err
	}
	header, err := ParseHeader(headerBytes[:])
	if err != nil {
		return Header{}, nil, err
	}
	payload := make([]byte, header.PayloadLength())
	if _, err := io.ReadFull(r, payload); err != nil {
		return Header{}, nil, fmt.Errorf("short frame payload: %w", err)
	}
	return header, payload, nil
}

// WriteFrame writes one whole frame wrapping payload with the given
// encoding type
func WriteFrame(w io.Writer, encodingType uint16, payload []byte) error {
	header := Header{
		MessageLength: uint32(HeaderLength + len(payload)),
		EncodingType:  encodingType,
	}
	buf := make([]byte, 0, HeaderLength+len(payload))
	buf = header.Serialize(buf)
	buf = append(buf, payload...)
	if _, err := w.Write(buf); err != nil {
		return err
	}
	return nil
}
