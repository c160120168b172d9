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

// The field package provides the typed value layer of the tag-value codec.
// Each FIX datatype gets its own Value implementation that knows how to
// parse itself from raw field bytes and serialize itself back, so typed
// access is one interface dispatch rather than a switch over datatypes
package field

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyValue  = errors.New("field value is empty")
	ErrInvalidInt  = errors.New("field value is not a valid integer")
	ErrInvalidBool = errors.New("field value is not 'Y' or 'N'")
	ErrInvalidChar = errors.New("field value is not a single character")
)

// Value is implemented by every typed FIX field value. Parse replaces the
// receiver's value with the one read from data. Serialize appends the wire
// representation of the value to buf and returns the extended slice
type Value interface {
	Parse(data []byte) error
	Serialize(buf []byte) []byte
}

// Int is a FIX integer field value (int, Length, NumInGroup, SeqNum, etc.)
type Int int64

func (v *Int) Parse(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyValue
	}
	i := 0
	negative := false
	if data[0] == '-' {
		negative = true
		i++
		if len(data) == 1 {
			return ErrInvalidInt
		}
	}
	var result int64
	for ; i < len(data); i++ {
		c := data[i]
		if c < '0' || c > '9' {
			return ErrInvalidInt
		}
		result = result*10 + int64(c-'0')
	}
	if negative {
		result = -result
	}
	*v = Int(result)
	return nil
}

func (v Int) Serialize(buf []byte) []byte {
	return fmt.Appendf(buf, "%d", int64(v))
}

// String is a FIX string field value
type String string

func (v *String) Parse(data []byte) error {
	*v = String(data)
	return nil
}

func (v String) Serialize(buf []byte) []byte {
	return append(buf, v...)
}

// Bytes is a raw FIX data field value. The parsed value is an owned copy,
// never an alias of the input
type Bytes []byte

func (v *Bytes) Parse(data []byte) error {
	*v = append((*v)[:0], data...)
	return nil
}

func (v Bytes) Serialize(buf []byte) []byte {
	return append(buf, v...)
}

// Bool is a FIX boolean field value, encoded as 'Y' or 'N'
type Bool bool

func (v *Bool) Parse(data []byte) error {
	if len(data) != 1 {
		return ErrInvalidBool
	}
	switch data[0] {
	case 'Y':
		*v = true
	case 'N':
		*v = false
	default:
		return ErrInvalidBool
	}
	return nil
}

func (v Bool) Serialize(buf []byte) []byte {
	if v {
		return append(buf, 'Y')
	}
	return append(buf, 'N')
}

// Char is a FIX single-character field value
type Char byte

func (v *Char) Parse(data []byte) error {
	if len(data) != 1 {
		return ErrInvalidChar
	}
	*v = Char(data[0])
	return nil
}

func (v Char) Serialize(buf []byte) []byte {
	return append(buf, byte(v))
}

// Decimal is a FIX price/quantity field value with exact decimal semantics
type Decimal struct {
	decimal.Decimal
}

func (v *Decimal) Parse(data []byte) error {
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return err
	}
	v.Decimal = d
	return nil
}

func (v Decimal) Serialize(buf []byte) []byte {
	return append(buf, v.String()...)
}

const (
	utcTimestampLayout       = "20060102-15:04:05"
	utcTimestampMillisLayout = "20060102-15:04:05.000"
)

// UTCTimestamp is a FIX UTCTimestamp field value, with or without
// millisecond precision
type UTCTimestamp struct {
	time.Time
}

func (v *UTCTimestamp) Parse(data []byte) error {
	layout := utcTimestampLayout
	if len(data) == len(utcTimestampMillisLayout) {
		layout = utcTimestampMillisLayout
	}
	t, err := time.Parse(layout, string(data))
	if err != nil {
		return err
	}
	v.Time = t
	return nil
}

func (v UTCTimestamp) Serialize(buf []byte) []byte {
	if v.Nanosecond() != 0 {
		return v.AppendFormat(buf, utcTimestampMillisLayout)
	}
	return v.AppendFormat(buf, utcTimestampLayout)
}
