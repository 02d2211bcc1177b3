// Package fs reads events from the local filesystem.
package fs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/concordlog/internal/domain"
	"github.com/bft-labs/concordlog/pkg/log"
)

// FollowerConfig configures a Follower.
type FollowerConfig struct {
	// Path is the JSON-lines file to follow. It may not exist yet.
	Path string

	// FromStart reads lines already in the file before following.
	// Otherwise the follower starts at the current end of file.
	FromStart bool

	// PollInterval re-checks the file when no notification arrives, which
	// covers filesystems where fsnotify is unreliable. Default: 1 second.
	PollInterval time.Duration
}

// Follower tails a JSON-lines file of CloudEvents, one object per line.
// Truncation or replacement of the file restarts reading at offset zero.
type Follower struct {
	config FollowerConfig
	logger log.Logger

	offset  int64
	partial []byte
}

// NewFollower creates a follower. logger may be nil.
func NewFollower(config FollowerConfig, logger log.Logger) *Follower {
	if config.PollInterval <= 0 {
		config.PollInterval = time.Second
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Follower{config: config, logger: logger}
}

// Run delivers every complete line to handle until ctx is done.
// Lines that do not decode are logged and skipped.
func (f *Follower) Run(ctx context.Context, handle func(domain.CloudEvent)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(f.config.Path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	if !f.config.FromStart {
		if info, err := os.Stat(f.config.Path); err == nil {
			f.offset = info.Size()
		}
	}
	f.readNew(handle)

	poll := time.NewTicker(f.config.PollInterval)
	defer poll.Stop()

	name := filepath.Clean(f.config.Path)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				f.reset()
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				f.readNew(handle)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			f.logger.Warn("file watcher error", log.Err(err))

		case <-poll.C:
			f.readNew(handle)
		}
	}
}

func (f *Follower) reset() {
	f.offset = 0
	f.partial = nil
}

func (f *Follower) readNew(handle func(domain.CloudEvent)) {
	file, err := os.Open(f.config.Path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.logger.Warn("open events file", log.String("path", f.config.Path), log.Err(err))
		}
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return
	}
	if info.Size() < f.offset {
		f.logger.Info("events file truncated, reading from start", log.String("path", f.config.Path))
		f.reset()
	}
	if info.Size() == f.offset {
		return
	}

	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		f.logger.Warn("seek events file", log.Err(err))
		return
	}

	r := bufio.NewReader(file)
	for {
		chunk, err := r.ReadBytes('\n')
		f.offset += int64(len(chunk))
		if err != nil {
			// Incomplete trailing line; finished on a later read.
			f.partial = append(f.partial, chunk...)
			return
		}

		line := append(f.partial, chunk...)
		f.partial = nil
		f.handleLine(line, handle)
	}
}

func (f *Follower) handleLine(line []byte, handle func(domain.CloudEvent)) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return
	}

	var ev domain.CloudEvent
	if err := json.Unmarshal(line, &ev); err != nil {
		f.logger.Warn("skipping malformed event line", log.Err(err))
		return
	}
	if ev.Type == "" || ev.Name == "" {
		f.logger.Warn("skipping event without type or name")
		return
	}
	handle(ev)
}
