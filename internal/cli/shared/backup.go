package shared

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	BackupNone      = "none"
	BackupTimestamp = "timestamp"
)

// ValidBackup reports whether strategy is a known backup strategy.
func ValidBackup(strategy string) bool {
	return strategy == BackupNone || strategy == BackupTimestamp
}

// BackupPath returns the timestamped backup location for path.
func BackupPath(path string, now time.Time) string {
	return fmt.Sprintf("%s.%s.bak", path, now.Format("20060102150405"))
}

// BackupFile stores content next to path when strategy is timestamp.
func BackupFile(path string, content []byte, strategy string, now time.Time) error {
	if strategy != BackupTimestamp {
		return nil
	}
	backupPath := BackupPath(path, now)
	if err := os.MkdirAll(filepath.Dir(backupPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(backupPath, content, 0o644)
}
