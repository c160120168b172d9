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
	"io"
	"log/slog"
)

const (
	// DefaultSeparator is the standard FIX field separator (SOH)
	DefaultSeparator byte = 0x01

	// DefaultMaxMessageSize bounds how many bytes a single message may
	// span, including the envelope fields
	DefaultMaxMessageSize = 65536
)

type config struct {
	separator      byte
	checkChecksum  bool
	maxMessageSize int
	logger         *slog.Logger
}

func defaultConfig() config {
	return config{
		separator:      DefaultSeparator,
		checkChecksum:  true,
		maxMessageSize: DefaultMaxMessageSize,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// DecoderOptionFunc is a type that represents functions that modify the
// decoder config
type DecoderOptionFunc func(*config)

// WithSeparator specifies the field separator byte. The default is the
// standard SOH control byte; test fixtures commonly use '|'
func WithSeparator(separator byte) DecoderOptionFunc {
	return func(c *config) {
		c.separator = separator
	}
}

// WithChecksumVerification specifies whether the trailing CheckSum field is
// verified against the message bytes. Verification is enabled by default
func WithChecksumVerification(verify bool) DecoderOptionFunc {
	return func(c *config) {
		c.checkChecksum = verify
	}
}

// WithMaxMessageSize specifies the maximum size in bytes of a single
// message. A message whose framed length exceeds this limit fails with a
// FrameError. A value of 0 disables the limit
func WithMaxMessageSize(size int) DecoderOptionFunc {
	return func(c *config) {
		c.maxMessageSize = size
	}
}

// WithLogger specifies a logger for debug output. If none is provided, log
// output is discarded
func WithLogger(logger *slog.Logger) DecoderOptionFunc {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
