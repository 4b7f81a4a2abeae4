/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := write(&buf, "text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "czero ") {
		t.Errorf("unexpected text output %q", buf.String())
	}

	buf.Reset()
	if err := write(&buf, "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var info map[string]any
	if err := json.Unmarshal(buf.Bytes(), &info); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if info["version"] == nil || info["version"] == "" {
		t.Errorf("expected a version field, got %v", info)
	}

	if err := write(&buf, "xml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
