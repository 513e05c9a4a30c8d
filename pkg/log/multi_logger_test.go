package log

import (
	"testing"
	"time"
)

// mockLogger records events for testing
type mockLogger struct {
	events []Event
}

func (m *mockLogger) Log(event Event) {
	m.events = append(m.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	mock1 := &mockLogger{}
	mock2 := &mockLogger{}
	mock3 := &mockLogger{}

	multi := NewMultiLogger(mock1, mock2, mock3)

	event := Event{
		Timestamp: time.Now(),
		Source:    SourceDatabase,
		Category:  CategoryMutation,
		AID:       7,
	}

	multi.Log(event)

	// All loggers should have received the event
	for i, mock := range []*mockLogger{mock1, mock2, mock3} {
		if len(mock.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(mock.events))
			continue
		}
		if mock.events[0].AID != 7 {
			t.Errorf("logger %d: AID = %d, want 7", i, mock.events[0].AID)
		}
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	multi := NewMultiLogger()

	// Should not panic with empty logger list
	event := Event{
		Timestamp: time.Now(),
		Source:    SourceDatabase,
		Category:  CategoryMutation,
	}

	multi.Log(event)
}

func TestMultiLoggerSingleLogger(t *testing.T) {
	mock := &mockLogger{}
	multi := NewMultiLogger(mock)

	event := Event{
		Timestamp: time.Now(),
		Source:    SourceDiscovery,
		Category:  CategoryBrowse,
		Browse:    &BrowseEvent{Kind: BrowseFound, Instance: "Bridge"},
	}

	multi.Log(event)

	if len(mock.events) != 1 {
		t.Fatalf("got %d events, want 1", len(mock.events))
	}
	if mock.events[0].Browse == nil || mock.events[0].Browse.Instance != "Bridge" {
		t.Errorf("Browse = %+v, want instance Bridge", mock.events[0].Browse)
	}
}
