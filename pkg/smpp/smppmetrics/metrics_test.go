// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

//go:build metrics

package smppmetrics_test

import (
	"testing"

	"github.com/absmach/smpp/pkg/smpp/command"
	"github.com/absmach/smpp/pkg/smpp/framer"
	"github.com/absmach/smpp/pkg/smpp/smppmetrics"
	"github.com/stretchr/testify/assert"
)

func TestHookHandlesSuccessAndError(t *testing.T) {
	hook := smppmetrics.Hook()
	assert.NotPanics(t, func() {
		hook(framer.Event{ID: command.IDEnquireLink, Err: nil})
		hook(framer.Event{ID: command.IDEnquireLink, Err: assert.AnError})
	})
}
