package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gnote-tools/cli/internal/paths"
)

// ErrLockTimeout means another gnote process kept the rc file locked.
var ErrLockTimeout = errors.New("config: rc file is locked by another process")

// rcLock is an O_EXCL lock file next to the rc file. A lock older than
// stale is assumed to belong to a crashed process.
type rcLock struct {
	path  string
	wait  time.Duration
	stale time.Duration
	poll  time.Duration
}

func newRCLock() (rcLock, error) {
	rc, err := paths.ConfigFilePath()
	if err != nil {
		return rcLock{}, err
	}
	return rcLock{path: rc + ".lock", wait: 5 * time.Second, stale: 30 * time.Second, poll: 50 * time.Millisecond}, nil
}

// WithLock runs fn while holding the rc file lock.
func WithLock(fn func() error) error {
	l, err := newRCLock()
	if err != nil {
		return err
	}
	release, err := l.acquire()
	if err != nil {
		return err
	}
	defer release()
	return fn()
}

func (l rcLock) acquire() (release func(), err error) {
	deadline := time.Now().Add(l.wait)
	for {
		if info, err := os.Stat(l.path); err == nil && time.Since(info.ModTime()) > l.stale {
			_ = os.Remove(l.path)
		}

		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			fmt.Fprintf(f, "%d\n", os.Getpid())
			return func() {
				_ = f.Close()
				_ = os.Remove(l.path)
			}, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("config: lock: %w", err)
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		time.Sleep(l.poll)
	}
}
