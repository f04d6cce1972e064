// Public domain.

package diag_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mkreidl/bsc2java/internal/diag"
)

func TestLogConfigValidate(t *testing.T) {
	for _, tc := range []struct {
		c  diag.LogConfig
		ok bool
	}{
		{diag.LogConfig{}, true},
		{diag.LogConfig{Level: "debug", Format: "json"}, true},
		{diag.LogConfig{Level: "warn", Format: "console"}, true},
		{diag.LogConfig{Level: "loud"}, false},
		{diag.LogConfig{Format: "xml"}, false},
	} {
		if err := tc.c.Validate(); (err == nil) != tc.ok {
			t.Errorf("%+v: %v", tc.c, err)
		}
	}
	if _, err := diag.NewLogger(diag.LogConfig{Format: "xml"}); err == nil {
		t.Fatal("NewLogger accepted bad format")
	}
}

func TestNewLogger(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "run.log")
	lg, err := diag.NewLogger(diag.LogConfig{Level: "info", Format: "json", Output: fn})
	if err != nil {
		t.Fatal(err)
	}
	lg.Debug("hidden")
	lg.Info("shown")
	lg.Sync()
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 1 {
		t.Fatalf("%d lines:\n%s", len(lines), b)
	}
	var m map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatal(err)
	}
	if m["msg"] != "shown" {
		t.Fatal(m)
	}
	if run, _ := m["run"].(string); len(run) != 36 {
		t.Fatal("run id", m["run"])
	}
}

func TestStats(t *testing.T) {
	s := diag.NewStats()
	s.Read.Add(3)
	s.Dropped.Inc()
	s.Emitted.Add(2)
	s.IAUNames.Set(7)
	if got := testutil.ToFloat64(s.Read); got != 3 {
		t.Fatal("read", got)
	}
	if got := testutil.ToFloat64(s.Skipped); got != 0 {
		t.Fatal("skipped", got)
	}
	fn := filepath.Join(t.TempDir(), "bsc2java.prom")
	if err := s.WriteTextfile(fn); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"bsc2java_records_read_total 3\n",
		"bsc2java_records_dropped_total 1\n",
		"bsc2java_entries_emitted_total 2\n",
		"bsc2java_iau_names 7\n",
	} {
		if !strings.Contains(string(b), want) {
			t.Fatalf("missing %q in\n%s", want, b)
		}
	}
}
