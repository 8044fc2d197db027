package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockDocumentArchive is an in-memory DocumentArchive for testing
type MockDocumentArchive struct {
	documents map[string][]byte // map of key to document content
	mu        sync.RWMutex
	// StoreErr, when set, is returned by every Store call
	StoreErr error
}

// NewMockDocumentArchive creates an empty mock archive
func NewMockDocumentArchive() *MockDocumentArchive {
	return &MockDocumentArchive{
		documents: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global archive instance
func (m *MockDocumentArchive) SetAsMockForTesting() {
	SetDocumentArchive(m)
}

// Store implements DocumentArchive
func (m *MockDocumentArchive) Store(_ context.Context, quoteID, filename string, data []byte) (string, error) {
	if m.StoreErr != nil {
		return "", m.StoreErr
	}
	key := ArchiveKey(quoteID, filename)
	m.mu.Lock()
	m.documents[key] = append([]byte(nil), data...)
	m.mu.Unlock()
	return key, nil
}

// PresignedURL implements DocumentArchive
func (m *MockDocumentArchive) PresignedURL(_ context.Context, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	m.mu.RLock()
	_, exists := m.documents[key]
	m.mu.RUnlock()
	if !exists {
		return "", fmt.Errorf("document not found in mock archive: %s", key)
	}
	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s?mock=true", key), nil
}

// DeleteQuote implements DocumentArchive
func (m *MockDocumentArchive) DeleteQuote(_ context.Context, quoteID string) error {
	prefix := ArchiveKey(quoteID, "") + "/"
	m.mu.Lock()
	for key := range m.documents {
		if strings.HasPrefix(key, prefix) {
			delete(m.documents, key)
		}
	}
	m.mu.Unlock()
	return nil
}

// Exists reports whether a key is stored
func (m *MockDocumentArchive) Exists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.documents[key]
	return exists
}

// Keys returns every stored key
func (m *MockDocumentArchive) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.documents))
	for k := range m.documents {
		keys = append(keys, k)
	}
	return keys
}

// Clear removes all documents
func (m *MockDocumentArchive) Clear() {
	m.mu.Lock()
	m.documents = make(map[string][]byte)
	m.mu.Unlock()
}
