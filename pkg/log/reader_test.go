package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.hlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func TestReaderIteratesEvents(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), Source: SourceDatabase, Category: CategoryMutation, AID: 1},
		{Timestamp: time.Now(), Source: SourceStore, Category: CategorySnapshot, AID: 2},
		{Timestamp: time.Now(), Source: SourceDiscovery, Category: CategoryBrowse, AID: 3},
	}

	path := createTestLogFile(t, events)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var read []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}

	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}

	// Verify order
	if read[0].AID != 1 {
		t.Errorf("first event AID = %d, want 1", read[0].AID)
	}
	if read[2].AID != 3 {
		t.Errorf("last event AID = %d, want 3", read[2].AID)
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.hlog")

	// Create empty file
	logger, _ := NewFileLogger(path)
	logger.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != io.EOF {
		t.Errorf("expected io.EOF, got err=%v, event=%+v", err, event)
	}
}

func TestReaderFilterBySource(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), Source: SourceDatabase, Category: CategoryMutation, AID: 1},
		{Timestamp: time.Now(), Source: SourceStore, Category: CategorySnapshot, AID: 2},
		{Timestamp: time.Now(), Source: SourceDatabase, Category: CategoryMutation, AID: 3},
		{Timestamp: time.Now(), Source: SourceDiscovery, Category: CategoryBrowse, AID: 4},
	}

	path := createTestLogFile(t, events)

	source := SourceDatabase
	reader, err := NewFilteredReader(path, Filter{Source: &source})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	var read []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}

	if len(read) != 2 {
		t.Fatalf("got %d events, want 2", len(read))
	}
	if read[0].AID != 1 || read[1].AID != 3 {
		t.Errorf("filtered AIDs = %d, %d, want 1, 3", read[0].AID, read[1].AID)
	}
}

func TestReaderFilterByCategory(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), Source: SourceDatabase, Category: CategoryMutation, AID: 1},
		{Timestamp: time.Now(), Source: SourceDatabase, Category: CategoryError, AID: 2},
		{Timestamp: time.Now(), Source: SourceStore, Category: CategoryError, AID: 3},
	}

	path := createTestLogFile(t, events)

	category := CategoryError
	reader, err := NewFilteredReader(path, Filter{Category: &category})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		_, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		count++
	}

	if count != 2 {
		t.Errorf("got %d error events, want 2", count)
	}
}

func TestReaderFilterByAID(t *testing.T) {
	events := []Event{
		{Timestamp: time.Now(), Source: SourceDatabase, Category: CategoryMutation, AID: 2},
		{Timestamp: time.Now(), Source: SourceDatabase, Category: CategoryMutation, AID: 3},
		{Timestamp: time.Now(), Source: SourceDatabase, Category: CategoryMutation, AID: 2},
	}

	path := createTestLogFile(t, events)

	reader, err := NewFilteredReader(path, Filter{AID: 2})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	count := 0
	for {
		_, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		count++
	}

	if count != 2 {
		t.Errorf("got %d events for aid 2, want 2", count)
	}
}

func TestReaderFilterByTimeRange(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base, Source: SourceDatabase, Category: CategoryMutation, AID: 1},
		{Timestamp: base.Add(time.Minute), Source: SourceDatabase, Category: CategoryMutation, AID: 2},
		{Timestamp: base.Add(2 * time.Minute), Source: SourceDatabase, Category: CategoryMutation, AID: 3},
	}

	path := createTestLogFile(t, events)

	start := base.Add(30 * time.Second)
	end := base.Add(90 * time.Second)
	reader, err := NewFilteredReader(path, Filter{TimeStart: &start, TimeEnd: &end})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if event.AID != 2 {
		t.Errorf("event AID = %d, want 2", event.AID)
	}

	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after range, got %v", err)
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.hlog")); err == nil {
		t.Error("NewReader on missing file should fail")
	}
}
