package output

import (
	"context"
	"errors"
)

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrUnknownApplication  = errors.New("unknown application")
	ErrUnsupportedPlatform = errors.New("not supported on this operating system")
)

// SystemPort performs operating system automation on behalf of the desktop assistant.
type SystemPort interface {
	DesktopDir() (string, error)
	CreateFolder(ctx context.Context, path string) error
	Sleep(ctx context.Context) error
	Lock(ctx context.Context) error
	OpenApplication(ctx context.Context, name string) error
	CloseTabs(ctx context.Context, count int) error
}
