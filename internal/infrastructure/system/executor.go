package system

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"

	"alfred/internal/application/port/output"
)

var _ output.SystemPort = (*Executor)(nil)

// Runner starts a program. Blocking programs such as editors are started
// without waiting when detach is true.
type Runner func(ctx context.Context, detach bool, name string, args ...string) error

type Executor struct {
	goos   string
	run    Runner
	home   func() (string, error)
	logger output.LoggerPort
}

func NewExecutor(logger output.LoggerPort) *Executor {
	return &Executor{
		goos:   runtime.GOOS,
		run:    execRunner,
		home:   homedir.Dir,
		logger: logger,
	}
}

// WithPlatform returns a copy that issues commands for goos through run.
func (e *Executor) WithPlatform(goos string, run Runner) *Executor {
	c := *e
	c.goos = goos
	c.run = run
	return &c
}

func (e *Executor) WithHome(home func() (string, error)) *Executor {
	c := *e
	c.home = home
	return &c
}

func (e *Executor) DesktopDir() (string, error) {
	home, err := e.home()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, "Desktop"), nil
}

func (e *Executor) CreateFolder(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, output.ErrAlreadyExists)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}
	e.logger.Info("Folder created", "path", path)
	return nil
}

func (e *Executor) Sleep(ctx context.Context) error {
	switch e.goos {
	case "windows":
		return e.run(ctx, false, "rundll32.exe", "powrprof.dll,SetSuspendState", "0,1,0")
	case "linux":
		return e.run(ctx, false, "systemctl", "suspend")
	case "darwin":
		return e.run(ctx, false, "pmset", "sleepnow")
	}
	return output.ErrUnsupportedPlatform
}

func (e *Executor) Lock(ctx context.Context) error {
	switch e.goos {
	case "windows":
		return e.run(ctx, false, "rundll32.exe", "user32.dll,LockWorkStation")
	case "linux":
		return e.run(ctx, false, "loginctl", "lock-session")
	case "darwin":
		return e.run(ctx, false, "pmset", "displaysleepnow")
	}
	return output.ErrUnsupportedPlatform
}

func (e *Executor) OpenApplication(ctx context.Context, name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	home, _ := e.home()

	var argv []string
	switch name {
	case "vs code", "visual studio code", "code":
		argv = e.pick(map[string][]string{
			"windows": {"cmd", "/c", "code"},
			"linux":   {"code"},
			"darwin":  {"open", "-a", "Visual Studio Code"},
		})
	case "notepad", "text editor":
		argv = e.pick(map[string][]string{
			"windows": {"notepad.exe"},
			"linux":   {"gedit"},
			"darwin":  {"open", "-a", "TextEdit"},
		})
	case "this pc":
		argv = e.pick(map[string][]string{
			"windows": {"explorer.exe", "::{20D04FE0-3AEA-1069-A2D8-08002B30309D}"},
		})
	case "recycle bin":
		argv = e.pick(map[string][]string{
			"windows": {"explorer.exe", "shell:RecycleBinFolder"},
		})
	case "file explorer", "files":
		argv = e.pick(map[string][]string{
			"windows": {"explorer.exe"},
			"linux":   {"xdg-open", home},
			"darwin":  {"open", home},
		})
	default:
		return fmt.Errorf("%q: %w", name, output.ErrUnknownApplication)
	}

	if argv == nil {
		return fmt.Errorf("open %s: %w", name, output.ErrUnsupportedPlatform)
	}
	e.logger.Info("Opening application", "name", name, "command", argv)
	return e.run(ctx, true, argv[0], argv[1:]...)
}

// CloseTabs sends the close-tab shortcut to the focused window count times.
func (e *Executor) CloseTabs(ctx context.Context, count int) error {
	if count <= 0 {
		return fmt.Errorf("invalid number of tabs: %d", count)
	}

	var argv []string
	switch e.goos {
	case "linux":
		argv = []string{"xdotool", "key", "--repeat", fmt.Sprint(count), "ctrl+w"}
	case "darwin":
		script := fmt.Sprintf(`repeat %d times
tell application "System Events" to keystroke "w" using command down
end repeat`, count)
		argv = []string{"osascript", "-e", script}
	case "windows":
		script := fmt.Sprintf(`$w = New-Object -ComObject WScript.Shell; 1..%d | ForEach-Object { $w.SendKeys('^w'); Start-Sleep -Milliseconds 100 }`, count)
		argv = []string{"powershell", "-NoProfile", "-Command", script}
	default:
		return output.ErrUnsupportedPlatform
	}
	return e.run(ctx, false, argv[0], argv[1:]...)
}

func (e *Executor) pick(byOS map[string][]string) []string {
	return byOS[e.goos]
}

func execRunner(ctx context.Context, detach bool, name string, args ...string) error {
	if detach {
		cmd := exec.Command(name, args...)
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("start %s: %w", name, err)
		}
		return cmd.Process.Release()
	}
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
