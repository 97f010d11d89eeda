// Package snapshot persists world state as zstd-compressed gob files.
package snapshot

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"pixelgarden/internal/sims/garden"
)

// Save writes the snapshot to path atomically (write to a temp file in the
// same directory, then rename).
func Save(path string, s *garden.SnapshotState) error {
	if s == nil {
		return fmt.Errorf("nil snapshot")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	bw := bufio.NewWriter(tmp)
	enc, err := zstd.NewWriter(bw)
	if err != nil {
		tmp.Close()
		return err
	}
	if err := gob.NewEncoder(enc).Encode(s); err != nil {
		enc.Close()
		tmp.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		tmp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Load reads a snapshot written by Save.
func Load(path string) (*garden.SnapshotState, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var s garden.SnapshotState
	if err := gob.NewDecoder(dec).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if s.Version != garden.SnapshotVersion {
		return nil, fmt.Errorf("snapshot %s has unsupported version %d", path, s.Version)
	}
	return &s, nil
}
