package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// maxLogSize is the size past which an existing log is moved to <path>.old.
const maxLogSize = 10 * 1024 * 1024

// setupLogging sends the standard logger to path, creating its directory and
// rotating an oversized previous log. An empty path keeps stderr and returns
// a nil file.
func setupLogging(path string) (*os.File, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if path == "" {
		log.SetOutput(os.Stderr)
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, path+".old"); err != nil {
			return nil, fmt.Errorf("rotate log: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
