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

	"github.com/stretchr/testify/assert"
)

func TestTrackerRootOnly(t *testing.T) {
	var tracker groupTracker
	assert.Equal(t, RootContext, tracker.assign(35))
	assert.Equal(t, RootContext, tracker.assign(49))
	assert.True(t, tracker.assign(56).IsRoot())
}

func TestTrackerLearnsFirstTag(t *testing.T) {
	var tracker groupTracker
	assert.Equal(t, RootContext, tracker.assign(268))
	tracker.openGroup(268, 1, 2)
	// The next tag, whatever it is, becomes the group's entry delimiter
	assert.Equal(t, GroupContext(1, 0), tracker.assign(279))
	assert.Equal(t, GroupContext(1, 0), tracker.assign(269))
	// Seeing the delimiter again starts entry 1
	assert.Equal(t, GroupContext(1, 1), tracker.assign(279))
	assert.Equal(t, GroupContext(1, 1), tracker.assign(269))
}

func TestTrackerZeroCountNeverOpens(t *testing.T) {
	var tracker groupTracker
	assert.Equal(t, RootContext, tracker.assign(268))
	// The decoder never calls openGroup for a zero count; the next field
	// stays at the root
	assert.Equal(t, RootContext, tracker.assign(346))
}

func TestTrackerNestedFrames(t *testing.T) {
	var tracker groupTracker
	assert.Equal(t, RootContext, tracker.assign(555))
	tracker.openGroup(555, 0, 1)
	assert.Equal(t, GroupContext(0, 0), tracker.assign(600))
	assert.Equal(t, GroupContext(0, 0), tracker.assign(604))
	tracker.openGroup(604, 2, 2)
	assert.Equal(t, GroupContext(2, 0), tracker.assign(605))
	assert.Equal(t, GroupContext(2, 1), tracker.assign(605))
}

func TestTrackerPopsExhaustedFrame(t *testing.T) {
	var tracker groupTracker
	tracker.assign(268)
	tracker.openGroup(268, 0, 1)
	assert.Equal(t, GroupContext(0, 0), tracker.assign(279))
	// A repetition beyond the declared count exhausts the frame; the
	// field after it re-tests against the enclosing scope
	assert.Equal(t, GroupContext(0, 1), tracker.assign(279))
	assert.Equal(t, RootContext, tracker.assign(346))
}

func TestTrackerReset(t *testing.T) {
	var tracker groupTracker
	tracker.assign(268)
	tracker.openGroup(268, 0, 5)
	tracker.assign(279)
	tracker.reset()
	assert.Equal(t, RootContext, tracker.assign(279))
}
