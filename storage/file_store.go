package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"storefront-service/models"
)

// FileStore keeps the order history as a single JSON blob on disk.
// Every append is a read-modify-write of the whole list followed by an
// atomic rename, so readers never observe a partially written history.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the JSON file at path. The
// file is created lazily on first append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append adds an order to the end of the persisted list.
func (s *FileStore) Append(order models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.load()
	orders = append(orders, order)

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal order list: %w", err)
	}

	// Write to a temp file in the same directory, then rename over the
	// blob so a crash mid-write cannot corrupt the existing history.
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "orders-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write order list: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace order file: %w", err)
	}
	return nil
}

// ListAll returns the persisted history in insertion order.
func (s *FileStore) ListAll() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

// NextID returns an id one above the highest persisted order id,
// starting at 1 for an empty store.
func (s *FileStore) NextID() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := 1
	for _, order := range s.load() {
		if order.OrderID >= next {
			next = order.OrderID + 1
		}
	}
	return next, nil
}

// load reads the blob under the store lock. A missing file is an empty
// history; a blob that fails to parse degrades to an empty history
// rather than failing the caller.
func (s *FileStore) load() []models.Order {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read order file %s, treating as empty: %v", s.path, err)
		}
		return []models.Order{}
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		log.Printf("Order file %s is corrupt, treating as empty: %v", s.path, err)
		return []models.Order{}
	}

	// Reject malformed records at the boundary instead of trusting them.
	valid := orders[:0]
	for _, order := range orders {
		if order.OrderID <= 0 {
			log.Printf("Dropping malformed order record with id %d", order.OrderID)
			continue
		}
		valid = append(valid, order)
	}
	return valid
}
