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
	"testing"

	"github.com/blinklabs-io/gofix/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRawDecoder(opts ...DecoderOptionFunc) *RawDecoder {
	opts = append([]DecoderOptionFunc{WithSeparator('|')}, opts...)
	return NewRawDecoder(opts...)
}

func TestRawDecodeSpans(t *testing.T) {
	body := "35=0|49=A|56=B|"
	data := test.BuildMessage('|', "FIX.4.2", body)
	frame, err := testRawDecoder().Decode(data)
	require.NoError(t, err)
	assert.Equal(t, data, frame.Bytes())
	assert.Equal(t, []byte("FIX.4.2"), frame.BeginString())
	assert.Equal(t, []byte(body), frame.Payload())
}

func TestRawDecodeIgnoresTrailingBytes(t *testing.T) {
	data := test.BuildMessage('|', "FIX.4.2", "35=0|49=A|56=B|")
	withTrailer := append(append([]byte(nil), data...), "8=FIX"...)
	frame, err := testRawDecoder().Decode(withTrailer)
	require.NoError(t, err)
	assert.Equal(t, data, frame.Bytes())
}

func TestRawDecodeErrors(t *testing.T) {
	valid := test.BuildMessage('|', "FIX.4.2", "35=0|49=A|56=B|")
	tests := []struct {
		name       string
		data       []byte
		wantSyntax bool
	}{
		{name: "empty input", data: []byte{}},
		{name: "no begin string", data: []byte("35=D|49=A|10=000|")},
		{
			name: "begin string not followed by body length",
			data: []byte("8=FIX.4.2|35=D|49=A|10=000|"),
		},
		{
			name: "body length not numeric",
			data: []byte("8=FIX.4.2|9=2x|35=D|10=000|"),
		},
		{name: "empty body length", data: []byte("8=FIX.4.2|9=|35=D|10=000|")},
		{name: "truncated body", data: valid[:len(valid)-10]},
		{
			name: "body not followed by checksum",
			data: []byte("8=FIX.4.2|9=5|35=0|11=000|"),
		},
		{
			name: "checksum not numeric",
			data: []byte("8=FIX.4.2|9=5|35=0|10=0x0|"),
		},
		{
			name:       "missing final separator",
			data:       valid[:len(valid)-1],
			wantSyntax: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testRawDecoder().Decode(tt.data)
			require.Error(t, err)
			if tt.wantSyntax {
				var syntaxErr FieldSyntaxError
				assert.ErrorAs(t, err, &syntaxErr)
			} else {
				var frameErr FrameError
				assert.ErrorAs(t, err, &frameErr)
			}
		})
	}
}

func TestRawDecodeChecksum(t *testing.T) {
	data := test.BuildMessage('|', "FIX.4.2", "35=0|49=A|56=B|")
	corrupted := append([]byte(nil), data...)
	// Swap in a wrong (but well-formed) checksum value
	digits := corrupted[len(corrupted)-4 : len(corrupted)-1]
	if string(digits) == "000" {
		copy(digits, "001")
	} else {
		copy(digits, "000")
	}
	_, err := testRawDecoder().Decode(corrupted)
	var frameErr FrameError
	require.ErrorAs(t, err, &frameErr)
	_, err = testRawDecoder(WithChecksumVerification(false)).
		Decode(corrupted)
	assert.NoError(t, err)
}

func TestRawDecodeMaxMessageSize(t *testing.T) {
	data := test.BuildMessage('|', "FIX.4.2", "35=0|49=A|56=B|")
	_, err := testRawDecoder(WithMaxMessageSize(8)).Decode(data)
	var frameErr FrameError
	require.ErrorAs(t, err, &frameErr)
	// A limit of zero disables the check
	_, err = testRawDecoder(WithMaxMessageSize(0)).Decode(data)
	assert.NoError(t, err)
}
