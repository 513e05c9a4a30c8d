package log

import (
	"testing"
	"time"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	// Should not panic with any event type
	event := Event{
		Timestamp: time.Now(),
		Source:    SourceDatabase,
		Category:  CategoryMutation,
	}

	// Test with nil payloads
	logger.Log(event)

	// Test with mutation payload
	event.Mutation = &MutationEvent{Kind: MutationAddAccessory}
	logger.Log(event)

	// Test with snapshot payload
	event.Mutation = nil
	event.Snapshot = &SnapshotEvent{Kind: SnapshotSave, Path: "/tmp/x.snap"}
	logger.Log(event)

	// Test with browse payload
	event.Snapshot = nil
	event.Browse = &BrowseEvent{Kind: BrowseFound, Instance: "Bridge"}
	logger.Log(event)

	// Test with error payload
	event.Browse = nil
	event.Error = &ErrorEventData{Message: "test error"}
	logger.Log(event)
}

func TestLoggerInterfaceSatisfaction(t *testing.T) {
	// Compile-time check that NoopLogger satisfies Logger interface
	var _ Logger = NoopLogger{}
	var _ Logger = &NoopLogger{}
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	// NoopLogger should be usable as zero value
	var logger NoopLogger
	logger.Log(Event{})
}
