// Package state saves and restores the calculator expression across runs.
//
// The file is JSON with a single "expression" field. Inverse mode and the
// cursor are not stored; a restored expression puts the cursor at its end.
package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Snapshot is the persisted calculator state.
type Snapshot struct {
	Expression string `json:"expression"`
}

// Load reads the snapshot at path. A missing file yields an empty snapshot.
func Load(path string) (Snapshot, error) {
	var s Snapshot
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read state %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode state %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path atomically, creating parent directories.
func Save(path string, s Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	data = append(data, '\n')
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write state %s: %w", path, err)
	}
	return nil
}
