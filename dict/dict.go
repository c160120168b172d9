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

// The dict package provides the read-only tag dictionary consumed by the
// tag-value decoder. A Dictionary maps field tags to their FIX datatype so
// the decoder can recognize the two datatypes that change parsing behavior:
// NumInGroup (starts a repeating group) and Length (fixes the byte length
// of the next field's value)
package dict

// Datatype represents the FIX datatype of a field as far as the decoder
// cares about it. Most datatypes are carried only for informational
// purposes; NumInGroup and Length alter parsing
type Datatype int

const (
	DatatypeUnknown Datatype = iota
	DatatypeInt
	DatatypeLength
	DatatypeNumInGroup
	DatatypeSeqNum
	DatatypeFloat
	DatatypeChar
	DatatypeBoolean
	DatatypeString
	DatatypeData
	DatatypeUTCTimestamp
)

func (d Datatype) String() string {
	switch d {
	case DatatypeInt:
		return "Int"
	case DatatypeLength:
		return "Length"
	case DatatypeNumInGroup:
		return "NumInGroup"
	case DatatypeSeqNum:
		return "SeqNum"
	case DatatypeFloat:
		return "Float"
	case DatatypeChar:
		return "Char"
	case DatatypeBoolean:
		return "Boolean"
	case DatatypeString:
		return "String"
	case DatatypeData:
		return "Data"
	case DatatypeUTCTimestamp:
		return "UTCTimestamp"
	}
	return "Unknown"
}

// Dictionary is an immutable tag to datatype lookup table. It is built once
// and can safely be shared by reference between any number of decoders,
// including decoders running on different goroutines
type Dictionary struct {
	types map[uint32]Datatype
}

// NewDictionary returns a Dictionary built from the provided tag to
// datatype mapping. The mapping is copied, so later modification of the
// argument does not affect the returned Dictionary
func NewDictionary(types map[uint32]Datatype) *Dictionary {
	d := &Dictionary{
		types: make(map[uint32]Datatype, len(types)),
	}
	for tag, dt := range types {
		d.types[tag] = dt
	}
	return d
}

// TypeOf returns the datatype recorded for the given tag, or
// DatatypeUnknown if the tag isn't present in the dictionary. Unknown tags
// are not an error: the decoder treats them as ordinary fields
func (d *Dictionary) TypeOf(tag uint32) Datatype {
	return d.types[tag]
}

// IsNumInGroup returns true if the given tag holds a repeating group entry
// count
func (d *Dictionary) IsNumInGroup(tag uint32) bool {
	return d.types[tag] == DatatypeNumInGroup
}

// IsLength returns true if the given tag holds the byte length of the
// immediately following data field
func (d *Dictionary) IsLength(tag uint32) bool {
	return d.types[tag] == DatatypeLength
}

// Len returns the number of tags in the dictionary
func (d *Dictionary) Len() int {
	return len(d.types)
}
