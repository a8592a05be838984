package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/kamilkobak/kkdash/pkg/snapshot"
)

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 3 {
		t.Errorf("SupportedFormats() len = %d, want 3", len(formats))
	}
	for _, f := range []Format{FormatJSON, FormatYAML, FormatTable} {
		if f.IsUnknown() {
			t.Errorf("format %s should be known", f)
		}
	}
	if !Format("xml").IsUnknown() {
		t.Error("format xml should be unknown")
	}
}

func TestWriterSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	if err := w.Serialize(context.Background(), testSnapshot()); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var got snapshot.Snapshot
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.SchemaVersion != snapshot.SchemaVersion {
		t.Errorf("schema_version = %q, want %q", got.SchemaVersion, snapshot.SchemaVersion)
	}
}

func TestWriterSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	if err := w.Serialize(context.Background(), testSnapshot()); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "schema_version: v1") {
		t.Errorf("YAML output missing schema version:\n%s", out)
	}
	if !strings.Contains(out, "hostname: node-1") {
		t.Errorf("YAML output missing host data:\n%s", out)
	}
}

func TestWriterSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	if err := w.Serialize(context.Background(), testSnapshot()); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "FIELD") || !strings.Contains(out, "VALUE") {
		t.Errorf("table output missing header:\n%s", out)
	}
	if !strings.Contains(out, "host.data.hostname") {
		t.Errorf("table output should use JSON tag key paths:\n%s", out)
	}
	if !strings.Contains(out, "node-1") {
		t.Errorf("table output missing host data:\n%s", out)
	}
	// testSnapshot leaves cpu absent; nil sections must not render.
	if strings.Contains(out, "cpu.") {
		t.Errorf("absent sections should not appear in table output:\n%s", out)
	}
}

func TestWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	if err := w.Serialize(context.Background(), map[string]string{"k": "v"}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"k": "v"`) {
		t.Errorf("fallback output should be JSON, got:\n%s", buf.String())
	}
}

func TestNewFileOrStdoutWriter(t *testing.T) {
	t.Run("empty path falls back to stdout", func(t *testing.T) {
		w := NewFileOrStdoutWriter(FormatJSON, "")
		if w.closer != nil {
			t.Error("stdout writer should have no closer")
		}
		if err := w.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})

	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		w := NewFileOrStdoutWriter(FormatJSON, path)

		if err := w.Serialize(context.Background(), map[string]int{"n": 1}); err != nil {
			t.Fatalf("Serialize() error = %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read output file: %v", err)
		}
		if !strings.Contains(string(data), `"n": 1`) {
			t.Errorf("file output = %s, want JSON content", data)
		}
	})

	t.Run("unwritable path falls back to stdout", func(t *testing.T) {
		w := NewFileOrStdoutWriter(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json"))
		if w.closer != nil {
			t.Error("fallback writer should have no closer")
		}
	})
}

func TestFlattenValueTimeFormat(t *testing.T) {
	snap := testSnapshot()
	flat := make(map[string]any)
	flattenValue(flat, reflect.ValueOf(snap), "")

	ts, ok := flat["timestamp"].(string)
	if !ok {
		t.Fatalf("timestamp = %T, want RFC3339 string", flat["timestamp"])
	}
	if !strings.Contains(ts, "T") {
		t.Errorf("timestamp = %q, want RFC3339 form", ts)
	}
}
