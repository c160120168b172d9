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
	"fmt"
)

// ErrFieldMissing is returned by typed field accessors when no field with
// the requested tag exists in the message view's context
var ErrFieldMissing = errors.New("field not present in this context")

// FrameError indicates the message envelope could not be parsed: a missing
// BeginString or BodyLength field, a truncated body, or a checksum
// mismatch. It is fatal and the message is discarded
type FrameError struct {
	Reason string
}

func (e FrameError) Error() string {
	return fmt.Sprintf("invalid message frame: %s", e.Reason)
}

// FieldSyntaxError indicates a malformed field within the message payload,
// such as a non-digit tag, a missing '=', a value that runs past the end of
// the buffer, or a final field without its terminating separator. It is
// fatal and no partial message is returned
type FieldSyntaxError struct {
	Offset int
	Reason string
}

func (e FieldSyntaxError) Error() string {
	return fmt.Sprintf("field syntax error at offset %d: %s", e.Offset, e.Reason)
}

// ConstraintViolationError indicates that a NumInGroup or Length field
// holds a non-numeric value. The decoder needs these values immediately to
// drive parsing, so the violation aborts the whole decode
type ConstraintViolationError struct {
	Tag    uint32
	Reason string
}

func (e ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint violation on tag %d: %s", e.Tag, e.Reason)
}

// InvalidFieldError is returned by typed field accessors when a field is
// present but its raw bytes cannot be parsed as the requested value type.
// Unlike the decode errors above, it is recoverable and does not affect
// decoder state
type InvalidFieldError struct {
	Tag uint32
	Err error
}

func (e InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value for tag %d: %v", e.Tag, e.Err)
}

func (e InvalidFieldError) Unwrap() error {
	return e.Err
}
