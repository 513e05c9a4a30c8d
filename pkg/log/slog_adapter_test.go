package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSlogAdapterLogsMutationEvent(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	slogger := slog.New(handler)

	adapter := NewSlogAdapter(slogger)

	adapter.Log(Event{
		Timestamp: time.Now(),
		Source:    SourceDatabase,
		Category:  CategoryMutation,
		AID:       2,
		IID:       9,
		Mutation: &MutationEvent{
			Kind:  MutationSetValue,
			Type:  "00000025-0000-1000-8000-0026BB765291",
			Value: true,
		},
	})

	output := buf.String()
	if output == "" {
		t.Fatal("no output produced")
	}

	// Parse JSON log entry
	var logEntry map[string]any
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	// Verify key fields
	if logEntry["source"] != "DATABASE" {
		t.Errorf("source: got %v, want %q", logEntry["source"], "DATABASE")
	}
	if logEntry["category"] != "MUTATION" {
		t.Errorf("category: got %v, want %q", logEntry["category"], "MUTATION")
	}
	if logEntry["aid"] != float64(2) {
		t.Errorf("aid: got %v, want %v", logEntry["aid"], 2)
	}
	if logEntry["mutation"] != "SET_VALUE" {
		t.Errorf("mutation: got %v, want %q", logEntry["mutation"], "SET_VALUE")
	}
}

func TestSlogAdapterLogsSnapshotEvent(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	slogger := slog.New(handler)

	adapter := NewSlogAdapter(slogger)

	adapter.Log(Event{
		Timestamp: time.Now(),
		Source:    SourceStore,
		Category:  CategorySnapshot,
		Snapshot: &SnapshotEvent{
			Kind:        SnapshotSave,
			Path:        "/tmp/accessories.snap",
			Accessories: 2,
			Bytes:       512,
		},
	})

	output := buf.String()
	if output == "" {
		t.Fatal("no output produced")
	}

	// Parse JSON log entry
	var logEntry map[string]any
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	// Verify snapshot fields
	if logEntry["op"] != "SAVE" {
		t.Errorf("op: got %v, want %q", logEntry["op"], "SAVE")
	}
	if logEntry["path"] != "/tmp/accessories.snap" {
		t.Errorf("path: got %v, want %q", logEntry["path"], "/tmp/accessories.snap")
	}
	if logEntry["accessories"] != float64(2) {
		t.Errorf("accessories: got %v, want %v", logEntry["accessories"], 2)
	}
}

func TestSlogAdapterErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	slogger := slog.New(handler)

	adapter := NewSlogAdapter(slogger)

	adapter.Log(Event{
		Timestamp: time.Now(),
		Source:    SourceStore,
		Category:  CategoryError,
		Error: &ErrorEventData{
			Source:  SourceStore,
			Message: "snapshot corrupt",
		},
	})

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if logEntry["level"] != "ERROR" {
		t.Errorf("level: got %v, want ERROR", logEntry["level"])
	}
	if logEntry["error_msg"] != "snapshot corrupt" {
		t.Errorf("error_msg: got %v, want snapshot corrupt", logEntry["error_msg"])
	}
}

func TestSlogAdapterIncludesInstance(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	slogger := slog.New(handler)

	adapter := NewSlogAdapter(slogger)

	adapter.Log(Event{
		Timestamp: time.Now(),
		Source:    SourceDiscovery,
		Category:  CategoryBrowse,
		Browse: &BrowseEvent{
			Kind:     BrowseFound,
			Instance: "Living Room Light",
		},
	})

	output := buf.String()
	if !strings.Contains(output, "Living Room Light") {
		t.Error("output does not contain instance name")
	}
}
