package editor

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// SaveFunc stores the edited text. It is called from the goroutine that
// called Watch.
type SaveFunc func(ctx context.Context, text string) error

// WatchOptions tune Watch.
type WatchOptions struct {
	// Interval between checksum polls while the editor runs.
	Interval time.Duration

	// SaveUnchanged saves once even when the file was never modified, so a
	// new note is created from an untouched template.
	SaveUnchanged bool

	// Run replaces Session.Run; tests use it to script an editor.
	Run func(ctx context.Context) error
}

// ErrNotSaved is returned by Watch when a save failed; the temp file is kept.
var ErrNotSaved = errors.New("edited note could not be saved")

// Watch runs the editor and calls save each time the file checksum changes,
// including once after the editor exits. The temp file is removed when every
// save succeeded. After a failed save no further saves are attempted.
func (s *Session) Watch(ctx context.Context, opts WatchOptions, save SaveFunc) error {
	if opts.Interval <= 0 {
		opts.Interval = 5 * time.Second
	}
	run := opts.Run
	if run == nil {
		run = s.Run
	}

	prev, err := s.Checksum()
	if err != nil {
		return fmt.Errorf("read temp file: %w", err)
	}
	pending := opts.SaveUnchanged
	var saveErr error

	check := func() {
		if saveErr != nil {
			return
		}
		sum, err := s.Checksum()
		if err != nil {
			saveErr = err
			return
		}
		if sum == prev && !pending {
			return
		}
		text, err := s.Read()
		if err != nil {
			saveErr = err
			return
		}
		if err := save(ctx, text); err != nil {
			s.logger.Error("autosave %s: %v", s.path, err)
			saveErr = err
			return
		}
		s.logger.Debug("saved %s (%s)", s.path, sum)
		prev = sum
		pending = false
	}

	done := make(chan error, 1)
	go func() {
		done <- run(ctx)
	}()

	ticker := time.NewTicker(opts.Interval)
	defer ticker.Stop()

	var runErr error
loop:
	for {
		check()
		select {
		case runErr = <-done:
			break loop
		case <-ticker.C:
		}
	}
	check()

	if err := errors.Join(runErr, saveErr); err != nil {
		return fmt.Errorf("%w, so it remains in %s: %w", ErrNotSaved, s.path, err)
	}
	if err := s.Remove(); err != nil {
		s.logger.Warn("remove %s: %v", s.path, err)
	}
	return nil
}
