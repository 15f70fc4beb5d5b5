// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents_OrderAndCount(t *testing.T) {
	evts := Events()
	assert.Equal(t, []Event{BeforeNavigate, BeforeDispatch, AfterDispatch, BeforeRedirect, AfterNavigate}, evts)
	assert.Len(t, evts, numEvents)
}

func TestEvent_Name(t *testing.T) {
	assert.Equal(t, "BeforeNavigate", BeforeNavigate.Name())
	assert.Equal(t, "AfterNavigate", AfterNavigate.Name())
	assert.Equal(t, "BeforeDispatch", BeforeDispatch.String())
}
