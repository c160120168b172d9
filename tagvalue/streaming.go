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

import "fmt"

// DecoderStreaming decodes messages from an incrementally fed byte stream.
// It moves through three states: idle (no buffered bytes), framing
// (accumulating bytes until a whole message is present), and ready (a
// decoded Message is available). Feeding the stream in arbitrarily small
// chunks yields the same decoded messages as one-shot decoding of the
// concatenated bytes.
//
// A fatal decode error invalidates the stream: every subsequent TryParse
// returns the same error until Clear is called
type DecoderStreaming struct {
	decoder *Decoder
	buffer  []byte
	ready   bool
	failed  error
}

// Streaming wraps the decoder for incremental feeding. The wrapper shares
// the decoder's scratch state, so the decoder must not be used directly
// while the wrapper is in use
func (d *Decoder) Streaming() *DecoderStreaming {
	return &DecoderStreaming{
		decoder: d,
	}
}

// Feed appends bytes to the internal buffer. It performs no parsing
func (ds *DecoderStreaming) Feed(data []byte) {
	ds.buffer = append(ds.buffer, data...)
}

// TryParse attempts to decode one message from the buffered bytes. It
// returns (true, nil) once a whole message has been decoded, after which
// Message and MessageMut return views of it; (false, nil) when more bytes
// are needed; or a fatal error that invalidates the stream until Clear.
// The bytes of a successfully decoded message are evicted from the buffer,
// bounding memory to one message plus unconsumed trailing bytes
func (ds *DecoderStreaming) TryParse() (bool, error) {
	if ds.failed != nil {
		return false, ds.failed
	}
	ds.ready = false
	frame, complete, err := ds.decoder.raw.parseFrame(ds.buffer, true)
	if err != nil {
		ds.failed = err
		return false, err
	}
	if !complete {
		maxSize := ds.decoder.config.maxMessageSize
		if maxSize > 0 && len(ds.buffer) > maxSize {
			ds.failed = FrameError{
				Reason: fmt.Sprintf(
					"no message frame within maximum size %d",
					maxSize,
				),
			}
			return false, ds.failed
		}
		return false, nil
	}
	if _, err := ds.decoder.decodeFrame(frame); err != nil {
		ds.failed = err
		return false, err
	}
	// The record owns a copy of the message bytes, so the framed span can
	// be evicted while the decoded message stays valid
	consumed := len(frame.Bytes())
	ds.buffer = append(ds.buffer[:0], ds.buffer[consumed:]...)
	ds.ready = true
	return true, nil
}

// Message returns a read-only root-context view of the decoded message,
// or nil if the most recent TryParse did not report one. The view is valid
// until the next TryParse that decodes a message
func (ds *DecoderStreaming) Message() *Message {
	if !ds.ready {
		return nil
	}
	return ds.decoder.message()
}

// MessageMut returns a mutable root-context view of the last decoded
// message, or nil if none is available
func (ds *DecoderStreaming) MessageMut() *MessageMut {
	if !ds.ready {
		return nil
	}
	return ds.decoder.messageMut()
}

// Clear discards all buffered bytes and resets the stream after a fatal
// error or when abandoning a partially fed message
func (ds *DecoderStreaming) Clear() {
	ds.buffer = ds.buffer[:0]
	ds.ready = false
	ds.failed = nil
}
