package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// TestLevelFiltering tests that events below the configured level are dropped
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: "warn", Output: &buf})

	log.Info("dropped")
	log.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info message emitted at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn message missing")
	}
	if log.Level() != zerolog.WarnLevel {
		t.Errorf("Level() = %v, want warn", log.Level())
	}
}

// TestStructuredFields tests context and event fields in JSON output
func TestStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: "debug", Output: &buf}).With().Str("component", "signer").Logger()

	log.DebugEvent().Int("attempt", 2).Hex("r", []byte{0xab, 0xcd}).Bool("low_s", true).Msg("nonce rejected")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["component"] != "signer" {
		t.Errorf("component = %v", entry["component"])
	}
	if entry["attempt"] != float64(2) {
		t.Errorf("attempt = %v", entry["attempt"])
	}
	if entry["r"] != "abcd" {
		t.Errorf("r = %v", entry["r"])
	}
	if entry["message"] != "nonce rejected" {
		t.Errorf("message = %v", entry["message"])
	}
}

// TestNop tests that the nop logger writes nothing and is safe to use
func TestNop(t *testing.T) {
	log := Nop()
	log.Error("ignored")
	log.DebugEvent().Str("k", "v").Msg("ignored")
	log.With().Int("x", 1).Logger().Info("ignored")
}

// TestParseLevel tests level name parsing
func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"verbose", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestRedaction tests secret redaction helpers
func TestRedaction(t *testing.T) {
	if got := RedactSecret(""); got != "<empty>" {
		t.Errorf("RedactSecret(\"\") = %q", got)
	}
	if got := RedactSecret("short"); got != "<redacted>" {
		t.Errorf("RedactSecret(short) = %q", got)
	}
	if got := RedactSecret("deadbeefcafebabe"); got != "dead...<redacted>" {
		t.Errorf("RedactSecret(long) = %q", got)
	}

	secret := bytes.Repeat([]byte{0x42}, 32)
	got := RedactBytes(secret)
	if got != "<redacted 32 bytes>" {
		t.Errorf("RedactBytes = %q", got)
	}
	if strings.Contains(got, "4242") {
		t.Error("RedactBytes leaked content")
	}
}
