// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	assert.Len(t, eventNames, numEvents)
	assert.Len(t, Events(), numEvents)
	events := Events()
	assert.Equal(t, BeforeExecutionStart, events[BeforeExecutionStart])
	assert.Equal(t, BeforeSend, events[BeforeSend])
	assert.Equal(t, AfterSend, events[AfterSend])
	assert.Equal(t, AfterCookieMerge, events[AfterCookieMerge])
	assert.Equal(t, AfterExecutionEnd, events[AfterExecutionEnd])
}

func TestEvent_Name(t *testing.T) {
	assert.Equal(t, "BeforeExecutionStart", BeforeExecutionStart.Name())
	assert.Equal(t, "BeforeSend", BeforeSend.Name())
	assert.Equal(t, "AfterSend", AfterSend.Name())
	assert.Equal(t, "AfterCookieMerge", AfterCookieMerge.String())
	assert.Equal(t, "AfterExecutionEnd", AfterExecutionEnd.String())
}
