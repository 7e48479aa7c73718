package testutil

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
)

// MemoryStorage keeps uploaded objects in memory.
type MemoryStorage struct {
	mu      sync.Mutex
	Objects map[string][]byte
	// FailDelete makes every Delete call fail.
	FailDelete bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{Objects: map[string][]byte{}}
}

func (m *MemoryStorage) Upload(_ context.Context, key, _ string, body io.Reader, _ int64) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Objects[key] = buf.Bytes()
	return nil
}

func (m *MemoryStorage) Delete(_ context.Context, key string) error {
	if m.FailDelete {
		return errors.New("delete failed")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, key)
	return nil
}

func (m *MemoryStorage) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

func (m *MemoryStorage) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Objects[key]
	return ok
}

// RecordingMailer collects the recipients of welcome emails.
type RecordingMailer struct {
	sent chan string
}

func NewRecordingMailer() *RecordingMailer {
	return &RecordingMailer{sent: make(chan string, 16)}
}

func (r *RecordingMailer) SendWelcomeEmail(email, _ string) error {
	r.sent <- email
	return nil
}

// Sent exposes delivered recipients in order.
func (r *RecordingMailer) Sent() <-chan string {
	return r.sent
}
