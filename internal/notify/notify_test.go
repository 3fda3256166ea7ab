package notify

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPublish_AppendsJournalLine(t *testing.T) {
	dir := t.TempDir()
	ch, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer ch.Close()

	ch.Publish(context.Background(), Event{
		Action: ActionSessionComplete, SessionID: "s1", SessionType: "standard",
	})

	data, err := os.ReadFile(filepath.Join(dir, "journal.jsonl"))
	if err != nil {
		t.Fatalf("read journal: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d journal lines, want 1", len(lines))
	}
	var ev Event
	if err := json.Unmarshal([]byte(lines[0]), &ev); err != nil {
		t.Fatalf("unmarshal journal line: %v", err)
	}
	if ev.Action != ActionSessionComplete || ev.SessionID != "s1" {
		t.Errorf("got event %+v", ev)
	}
	if ev.At.IsZero() {
		t.Error("publish should stamp the event time")
	}
}

func TestDrain_DeliversAppendedEvents(t *testing.T) {
	dir := t.TempDir()
	ch, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer ch.Close()

	var got []Event
	ch.subs = append(ch.subs, func(ev Event) { got = append(got, ev) })

	ch.Publish(context.Background(), Event{Action: ActionSessionCreate, SessionID: "a"})
	ch.Publish(context.Background(), Event{Action: ActionSessionExpire, SessionID: "b"})
	ch.drain()

	if len(got) != 2 {
		t.Fatalf("drained %d events, want 2", len(got))
	}
	if got[0].SessionID != "a" || got[1].SessionID != "b" {
		t.Errorf("got %+v", got)
	}

	// A second drain starts past the consumed offset.
	got = nil
	ch.drain()
	if len(got) != 0 {
		t.Errorf("re-drain delivered %d events, want 0", len(got))
	}
}

func TestOpen_SkipsExistingJournal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "journal.jsonl")
	if err := os.WriteFile(path, []byte(`{"action":"session_create","session_id":"old"}`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ch, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer ch.Close()

	var got []Event
	ch.subs = append(ch.subs, func(ev Event) { got = append(got, ev) })
	ch.drain()
	if len(got) != 0 {
		t.Errorf("pre-existing lines delivered %d events, want 0", len(got))
	}
}

func TestNopPublisher(t *testing.T) {
	// Must not panic or write anywhere.
	NopPublisher{}.Publish(context.Background(), Event{Action: ActionSessionCreate})
}
