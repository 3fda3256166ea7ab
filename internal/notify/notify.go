// Package notify provides the best-effort cross-instance notification
// channel: an append-only JSON-lines journal under the data directory,
// watched with fsnotify. Another open instance of the application sees
// lifecycle events (a session completed elsewhere) and can refresh its
// view. Absence or failure of this channel never affects core
// correctness, only freshness of cross-instance awareness.
package notify

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event actions.
const (
	ActionSessionCreate   = "session_create"
	ActionSessionComplete = "session_complete"
	ActionSessionExpire   = "session_expire"
)

// Event is one journal entry.
type Event struct {
	Action      string    `json:"action"`
	SessionID   string    `json:"session_id"`
	SessionType string    `json:"session_type"`
	At          time.Time `json:"at"`
}

// Publisher broadcasts lifecycle events. Implementations are best-effort:
// Publish never returns an error.
type Publisher interface {
	Publish(ctx context.Context, ev Event)
}

// NopPublisher discards every event. Used when the channel is disabled or
// failed to construct.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}

// Channel is the journal-backed publisher and watcher.
type Channel struct {
	path    string
	log     *slog.Logger
	watcher *fsnotify.Watcher

	mu   sync.Mutex
	subs []func(Event)
	off  int64 // journal read offset for the watcher
}

// Open creates (or reuses) the journal at dir/journal.jsonl. On any
// construction failure the caller should fall back to NopPublisher.
func Open(dir string, log *slog.Logger) (*Channel, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, "journal.jsonl")

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	off, _ := f.Seek(0, io.SeekEnd)
	f.Close()

	return &Channel{path: path, log: log, off: off}, nil
}

// Publish appends the event to the journal. Best-effort: failures log at
// debug and are dropped.
func (c *Channel) Publish(_ context.Context, ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	line, err := json.Marshal(ev)
	if err != nil {
		c.log.Debug("notify marshal failed", "error", err)
		return
	}
	f, err := os.OpenFile(c.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		c.log.Debug("notify journal open failed", "error", err)
		return
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		c.log.Debug("notify journal write failed", "error", err)
	}
}

// Subscribe registers a callback for events appended by other instances.
// The first subscription starts the watcher.
func (c *Channel) Subscribe(fn func(Event)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.subs = append(c.subs, fn)
	if c.watcher != nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(c.path)); err != nil {
		w.Close()
		return err
	}
	c.watcher = w
	go c.watch()
	return nil
}

// Close stops the watcher. The journal file itself is left in place.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher != nil {
		err := c.watcher.Close()
		c.watcher = nil
		return err
	}
	return nil
}

func (c *Channel) watch() {
	for {
		select {
		case ev, ok := <-c.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != c.path || !ev.Has(fsnotify.Write) {
				continue
			}
			c.drain()
		case err, ok := <-c.watcher.Errors:
			if !ok {
				return
			}
			c.log.Debug("notify watcher error", "error", err)
		}
	}
}

// drain reads journal lines appended past the current offset and fans
// them out to subscribers. Malformed lines are skipped.
func (c *Channel) drain() {
	c.mu.Lock()
	defer c.mu.Unlock()

	f, err := os.Open(c.path)
	if err != nil {
		return
	}
	defer f.Close()
	if _, err := f.Seek(c.off, io.SeekStart); err != nil {
		return
	}

	dec := json.NewDecoder(f)
	for {
		var ev Event
		if err := dec.Decode(&ev); err != nil {
			break
		}
		for _, fn := range c.subs {
			fn(ev)
		}
	}
	if pos, err := f.Seek(0, io.SeekEnd); err == nil {
		c.off = pos
	}
}
