// Package editor runs the user's text editor on a temporary copy of a note.
package editor

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/gosimple/slug"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/log"
)

// Default editors when nothing is configured.
const (
	DefaultUnixEditor    = "nano"
	DefaultWindowsEditor = "notepad.exe"
)

// Resolve picks the editor command: the user's setting, then $editor, then
// $EDITOR, then the platform default.
func Resolve(setting string, getenv func(string) string, goos string) string {
	if setting != "" {
		return setting
	}
	if getenv != nil {
		for _, name := range []string{"editor", "EDITOR"} {
			if v := getenv(name); v != "" {
				return v
			}
		}
	}
	if goos == "windows" {
		return DefaultWindowsEditor
	}
	return DefaultUnixEditor
}

// Session is one note opened in an editor.
type Session struct {
	path    string
	command string
	logger  domain.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l domain.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStdio replaces the terminal the editor is attached to.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(s *Session) {
		s.stdin = stdin
		s.stdout = stdout
		s.stderr = stderr
	}
}

// New writes content to a temp file in dir named after title, with the
// extension ext, for command to edit.
func New(dir, title, ext, content, command string, opts ...Option) (*Session, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create edit dir: %w", err)
	}

	name := slug.Make(title)
	if name == "" {
		name = "note"
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	f, err := os.CreateTemp(dir, name+"-*"+ext)
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("write temp file: %w", err)
	}

	s := &Session{
		path:    f.Name(),
		command: command,
		logger:  log.Default(),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path is the temp file being edited.
func (s *Session) Path() string {
	return s.path
}

// Checksum is the MD5 of the temp file, hex encoded.
func (s *Session) Checksum() (string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Read returns the current file content.
func (s *Session) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Run starts the editor through the shell and waits for it to exit.
func (s *Session) Run(ctx context.Context) error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", s.command, s.path)
	} else {
		// The path travels as $1 so it needs no quoting.
		cmd = exec.CommandContext(ctx, "sh", "-c", s.command+` "$1"`, "gnote-editor", s.path)
	}
	cmd.Stdin = s.stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	s.logger.Debug("launch editor: %s %s", s.command, s.path)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run editor %q: %w", s.command, err)
	}
	return nil
}

// Remove deletes the temp file.
func (s *Session) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
