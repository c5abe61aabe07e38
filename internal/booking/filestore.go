package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// fileRepository keeps the booking list in a single JSON file holding the
// full record array, mirroring the browser local-storage blob the service
// replaced. The file is rewritten in full on every mutation.
type fileRepository struct {
	path string

	mu       sync.Mutex
	bookings []*Booking
	bySlot   map[string]int
}

// NewFileRepository loads the booking file at path. An absent or corrupted
// file degrades to an empty list rather than failing startup.
func NewFileRepository(path string) Repository {
	r := &fileRepository{
		path:   path,
		bySlot: make(map[string]int),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("booking store: read %s failed: %v, starting empty", path, err)
		}
		return r
	}

	var loaded []*Booking
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("booking store: %s is not valid JSON: %v, starting empty", path, err)
		return r
	}

	r.bookings = loaded
	for i, b := range loaded {
		r.bySlot[b.SlotID] = i
	}
	return r
}

func (r *fileRepository) Insert(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.bySlot[b.SlotID]; taken {
		return ErrAlreadyBooked
	}

	r.bookings = append(r.bookings, b)
	r.bySlot[b.SlotID] = len(r.bookings) - 1

	if err := r.flush(); err != nil {
		// Roll back the in-memory append so memory and disk stay consistent.
		r.bookings = r.bookings[:len(r.bookings)-1]
		delete(r.bySlot, b.SlotID)
		return fmt.Errorf("persist booking failed: %w", err)
	}
	return nil
}

func (r *fileRepository) GetBySlotID(_ context.Context, slotID string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.bySlot[slotID]
	if !ok {
		return nil, nil
	}
	cp := *r.bookings[i]
	return &cp, nil
}

func (r *fileRepository) List(_ context.Context) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Booking, len(r.bookings))
	for i, b := range r.bookings {
		cp := *b
		out[i] = &cp
	}
	return out, nil
}

// flush writes the whole array atomically via a temp file rename.
// Callers must hold r.mu.
func (r *fileRepository) flush() error {
	data, err := json.MarshalIndent(r.bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bookings failed: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir failed: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".bookings-*.json")
	if err != nil {
		return fmt.Errorf("create temp file failed: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file failed: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file failed: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store file failed: %w", err)
	}
	return nil
}
