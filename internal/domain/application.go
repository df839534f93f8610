package domain

import (
	"io"
	"time"
)

// Application holds the dependencies shared by every command.
type Application struct {
	Config  ConfigProvider
	Cache   Cache
	Secrets SecretStore
	Logger  Logger

	Output   OutputWriter
	ErrOut   io.Writer
	Input    io.Reader
	Styler   Styler
	Progress Progress
	Terminal Terminal

	// Connect returns a note service authenticated with token.
	Connect func(token string) NoteService

	// Host is the service host used for note links.
	Host string

	Version  string
	Now      func() time.Time
	Location *time.Location
}
