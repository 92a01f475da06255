package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitAndLevelString(t *testing.T) {
	defer Init("info")
	Init("debug")
	if got := LevelString(); got != "debug" {
		t.Fatalf("LevelString() = %q, want %q", got, "debug")
	}
	Init("WARN")
	if got := LevelString(); got != "warn" {
		t.Fatalf("LevelString() = %q, want %q", got, "warn")
	}
	Init("Error")
	if got := LevelString(); got != "error" {
		t.Fatalf("LevelString() = %q, want %q", got, "error")
	}
	Init("nonsense")
	if got := LevelString(); got != "info" {
		t.Fatalf("LevelString() = %q, want %q for unknown input", got, "info")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	orig := log
	log = newLogger(&buf)
	defer func() { log = orig }()

	Init("warn")
	Debugf("debug-msg")
	Infof("info-msg")
	Warnf("warn-msg")
	Errorf("error-msg")

	out := buf.String()
	if strings.Contains(out, "debug-msg") {
		t.Fatalf("debug messages should be suppressed at warn level")
	}
	if strings.Contains(out, "info-msg") {
		t.Fatalf("info messages should be suppressed at warn level")
	}
	if !strings.Contains(out, "warn-msg") {
		t.Fatalf("warn message missing: %q", out)
	}
	if !strings.Contains(out, "error-msg") {
		t.Fatalf("error message missing: %q", out)
	}
}

func TestJSONFormatWithFields(t *testing.T) {
	var buf bytes.Buffer
	orig := log
	log = newLogger(&buf)
	defer func() { log = orig }()

	if err := SetFormat("json"); err != nil {
		t.Fatalf("SetFormat(json): %v", err)
	}
	WithFields(logrus.Fields{"document_id": "doc-1"}).Info("saved")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output is not json: %q (%v)", buf.String(), err)
	}
	if entry["document_id"] != "doc-1" || entry["msg"] != "saved" {
		t.Fatalf("unexpected entry: %#v", entry)
	}

	if err := SetFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
