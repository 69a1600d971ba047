package di

import (
	"context"
	"fmt"
	"os"

	"alfred/internal/adapter/action"
	"alfred/internal/application/port/input"
	"alfred/internal/application/port/output"
	"alfred/internal/application/service"
	"alfred/internal/domain/site"
	"alfred/internal/infrastructure/browser/pagescan"
	"alfred/internal/infrastructure/browser/rod"
	"alfred/internal/infrastructure/logger"
	"alfred/internal/infrastructure/speech"
	"alfred/internal/infrastructure/system"
	"alfred/internal/usecase/assistant"
	"alfred/internal/usecase/dispatcher"
	"alfred/internal/usecase/inspector"
	"alfred/internal/usecase/ordinal"
	"alfred/internal/usecase/resolver"
	"alfred/internal/usecase/search"
	desktop "alfred/internal/usecase/system"
	"alfred/internal/usecase/website"
)

type Container struct {
	Browser    output.BrowserPort
	Logger     output.LoggerPort
	Speaker    output.SpeakerPort
	Listener   output.ListenerPort
	Parser     input.CommandParser
	Dispatcher input.Dispatcher
	Actions    output.ActionRegistry
	Assistant  *assistant.Assistant
}

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) (*logger.LoggerAdapter, error) {
	lc := logger.DefaultConfig()
	lc.Level = cfg.LogLevel
	lc.File = cfg.LogFile
	log, err := logger.NewLoggerAdapter(lc)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

// NewBrowserContainer wires the voice controlled browser.
func NewBrowserContainer(ctx context.Context, cfg Config) (*Container, error) {
	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	c := &Container{Logger: log}

	c.Parser, err = NewParser(ctx, cfg, log)
	if err != nil {
		c.Close()
		return nil, err
	}

	c.Speaker = newSpeaker(cfg)
	c.Listener = newListener(cfg, log)

	if cfg.DriverPath != "" {
		log.Warn("EDGE_WEBDRIVER_PATH is a WebDriver server and is ignored, set BROWSER_PATH to a browser binary",
			"driver", cfg.DriverPath)
	}
	browserCfg := rod.DefaultConfig()
	browserCfg.Bin = cfg.BrowserPath
	browserCfg.Headless = cfg.BrowserHeadless
	browser, err := rod.NewBrowserAdapter(ctx, browserCfg)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to create browser: %w", err)
	}
	c.Browser = browser

	catalog := site.DefaultCatalog()
	scanCfg := pagescan.DefaultConfig
	inspectCfg := inspector.DefaultConfig()
	inspectCfg.Screenshots = cfg.Screenshots
	lister := inspector.New(browser, pagescan.NewScanner(&scanCfg), inspectCfg, log)

	actions := service.NewActionRegistry()
	for _, a := range action.BrowserActions(action.Deps{
		Browser:      browser,
		Opener:       website.NewOpener(browser, catalog, log),
		Searcher:     search.NewExecutor(browser, catalog, search.DefaultConfig(), log),
		Elements:     resolver.New(browser, catalog, lister, resolver.DefaultConfig(), log),
		Ordinals:     ordinal.New(browser, catalog, ordinal.DefaultConfig(), log),
		Lister:       lister,
		ScrollAmount: cfg.ScrollAmount,
	}) {
		actions.Register(a)
	}
	c.Actions = actions
	c.Dispatcher = dispatcher.New(actions, c.Speaker, log)

	loopCfg := assistant.DefaultConfig()
	loopCfg.PollInterval = cfg.PollInterval
	handler := assistant.Pipeline{Parser: c.Parser, Dispatcher: c.Dispatcher, Logger: log}
	c.Assistant = assistant.New(c.Listener, c.Speaker, handler, service.NewMailbox(), loopCfg, log)

	log.Info("Browser assistant ready", "provider", cfg.LLMProvider, "input", cfg.InputMode, "headless", cfg.BrowserHeadless)
	return c, nil
}

// NewDesktopContainer wires the desktop assistant, which needs no browser or model.
func NewDesktopContainer(ctx context.Context, cfg Config) (*Container, error) {
	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	c := &Container{
		Logger:   log,
		Speaker:  newSpeaker(cfg),
		Listener: newListener(cfg, log),
	}

	d := desktop.NewDesktop(system.NewExecutor(log), c.Speaker, log)
	loopCfg := assistant.DefaultConfig()
	loopCfg.Greeting = desktop.MsgGreeting
	loopCfg.PollInterval = cfg.PollInterval
	c.Assistant = assistant.New(c.Listener, c.Speaker, d, service.NewMailbox(), loopCfg, log)

	log.Info("Desktop assistant ready", "input", cfg.InputMode)
	return c, nil
}

func (c *Container) Close() {
	if c.Browser != nil {
		if err := c.Browser.Close(); err != nil && c.Logger != nil {
			c.Logger.Warn("Browser close failed", "error", err)
		}
	}
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func newSpeaker(cfg Config) output.SpeakerPort {
	speakers := speech.Speakers{speech.NewConsoleSpeaker(os.Stdout)}
	if cfg.TTSCommand != "" {
		speakers = append(speakers, speech.NewExecSpeaker(cfg.TTSCommand))
	}
	return speech.NewSerialized(speakers)
}

func newListener(cfg Config, log output.LoggerPort) output.ListenerPort {
	if cfg.InputMode == InputWhisper {
		wc := speech.DefaultWhisperConfig(cfg.OpenAIAPIKey)
		return speech.NewWhisperListener(speech.NewCommandRecorder(cfg.RecordCommand), wc, log)
	}
	return speech.NewStdinListener(os.Stdin)
}
