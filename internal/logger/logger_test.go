/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/czero/internal/logger"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetOutput(os.Stderr)
		logger.SetQuiet(false)
	})
	return &buf
}

func TestWarn_Prefix(t *testing.T) {
	buf := capture(t)
	logger.Warn("unknown component %q", "carousel")
	assert.Contains(t, buf.String(), "warning: unknown component \"carousel\"")
}

func TestInfo_NoPrefix(t *testing.T) {
	buf := capture(t)
	logger.Info("wrote %s", "czero.css")
	assert.Contains(t, buf.String(), "wrote czero.css")
	assert.NotContains(t, buf.String(), "warning:")
}

func TestDebug_HiddenUnlessVerbose(t *testing.T) {
	buf := capture(t)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.SetVerbose(true)
	defer logger.SetVerbose(false)
	logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetQuiet(t *testing.T) {
	buf := capture(t)
	logger.SetQuiet(true)
	logger.Info("chatty")
	logger.Warn("important")
	assert.NotContains(t, buf.String(), "chatty")
	assert.Contains(t, buf.String(), "important")
}

func TestWarnList(t *testing.T) {
	buf := capture(t)
	logger.WarnList("2 configuration warnings:", []string{"a", "b"})
	assert.Contains(t, buf.String(), "warning: 2 configuration warnings:\n  • a\n  • b")
}

func TestErrorList_Empty(t *testing.T) {
	buf := capture(t)
	logger.ErrorList("nothing", nil)
	assert.Empty(t, buf.String())
}
