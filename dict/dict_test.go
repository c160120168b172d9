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

package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIX44Lookups(t *testing.T) {
	d := FIX44()
	require.NotNil(t, d)
	assert.Equal(t, DatatypeString, d.TypeOf(8))
	assert.Equal(t, DatatypeLength, d.TypeOf(9))
	assert.Equal(t, DatatypeSeqNum, d.TypeOf(34))
	assert.Equal(t, DatatypeUTCTimestamp, d.TypeOf(52))
	assert.Equal(t, DatatypeNumInGroup, d.TypeOf(268))
	assert.Equal(t, DatatypeLength, d.TypeOf(93))
	assert.Equal(t, DatatypeData, d.TypeOf(89))
	assert.Equal(t, DatatypeFloat, d.TypeOf(44))
	assert.Equal(t, DatatypeUnknown, d.TypeOf(99999))
}

func TestFIX44Predicates(t *testing.T) {
	d := FIX44()
	assert.True(t, d.IsNumInGroup(268))
	assert.False(t, d.IsNumInGroup(55))
	assert.True(t, d.IsLength(93))
	assert.False(t, d.IsLength(89))
}

func TestFIX44IsSingleton(t *testing.T) {
	assert.Same(t, FIX44(), FIX44())
}

func TestNewDictionaryCopiesInput(t *testing.T) {
	types := map[uint32]Datatype{
		1: DatatypeString,
		2: DatatypeNumInGroup,
	}
	d := NewDictionary(types)
	types[1] = DatatypeInt
	delete(types, 2)
	assert.Equal(t, DatatypeString, d.TypeOf(1))
	assert.True(t, d.IsNumInGroup(2))
	assert.Equal(t, 2, d.Len())
}

func TestDatatypeString(t *testing.T) {
	assert.Equal(t, "NumInGroup", DatatypeNumInGroup.String())
	assert.Equal(t, "Unknown", DatatypeUnknown.String())
	assert.Equal(t, "Unknown", Datatype(250).String())
}
