// Package fs handles reading and rewriting the target file.
package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReadFile reads the full content of path as UTF-8 text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteBack opens path for writing, truncates it and writes content in a
// single call. There is no atomic rename and no backup; an interrupted
// write leaves the file partial.
func WriteBack(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// FileSHA256 returns the hex-encoded SHA256 of the file content at path.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Snapshot copies the current content of path into dir and returns the
// content hash. Snapshots are content-addressed, so identical content is
// stored once and may be shared between history entries.
func Snapshot(path, dir string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s for snapshot: %w", path, err)
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	snapPath := filepath.Join(dir, hash)
	if _, err := os.Stat(snapPath); err == nil {
		return hash, nil // already stored
	}
	if err := os.WriteFile(snapPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot for %s: %w", path, err)
	}
	return hash, nil
}

// ReadSnapshot returns the content stored under hash in dir.
func ReadSnapshot(dir, hash string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, hash))
	if err != nil {
		return "", fmt.Errorf("failed to read snapshot %s: %w", hash, err)
	}
	return string(data), nil
}
