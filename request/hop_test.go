// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHop_Duration(t *testing.T) {
	start := time.Now()
	hop := &Hop{Start: start, End: start.Add(250 * time.Millisecond)}
	assert.Equal(t, 250*time.Millisecond, hop.Duration())
}

func TestHop_Duration_ZeroWhenNotEnded(t *testing.T) {
	hop := &Hop{Start: time.Now()}
	assert.Equal(t, time.Duration(0), hop.Duration())
}

func TestHop_Duration_NilReceiver(t *testing.T) {
	var hop *Hop
	assert.Equal(t, time.Duration(0), hop.Duration())
}
