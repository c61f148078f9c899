package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/russellteter/blue-intelligence/internal/domain/model"
)

// WriteSnapshot marshals the snapshot to path as indented JSON, creating
// parent directories as needed. The dashboard reads this file directly,
// so the layout must stay stable across runs.
func WriteSnapshot(path string, snap *model.Snapshot) error {
	return writeIndented(path, snap)
}

// WriteHistory writes an elections.json payload.
func WriteHistory(path string, set *model.HistorySet) error {
	return writeIndented(path, set)
}

// WriteFilings writes a candidates.json payload.
func WriteFilings(path string, set *model.FilingSet) error {
	return writeIndented(path, set)
}

func writeIndented(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// BackupSnapshot copies the existing snapshot at path to backupPath
// before a new one overwrites it. A missing source is not an error; the
// first run has nothing to back up.
func BackupSnapshot(path, backupPath string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read previous snapshot: %w", err)
	}

	if dir := filepath.Dir(backupPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create backup dir: %w", err)
		}
	}
	if err := os.WriteFile(backupPath, raw, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}
