package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"alfred/internal/application/port/output"
	"alfred/internal/di"
)

func newRootCmd(env output.ConfigPort) *cobra.Command {
	var headless bool
	var provider string

	load := func(cmd *cobra.Command) (di.Config, error) {
		cfg, err := di.LoadConfig(env)
		if err != nil {
			return di.Config{}, err
		}
		if cmd.Flags().Changed("headless") {
			cfg.BrowserHeadless = headless
		}
		if provider != "" {
			cfg.LLMProvider = strings.ToLower(provider)
		}
		return cfg, nil
	}

	browse := &cobra.Command{
		Use:   "browse",
		Short: "Drive the browser with spoken commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			c, err := di.NewBrowserContainer(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer c.Close()
			return c.Assistant.Run(cmd.Context())
		},
	}
	browse.Flags().BoolVar(&headless, "headless", false, "run the browser without a window")

	parse := &cobra.Command{
		Use:   "parse <utterance...>",
		Short: "Print the command an utterance is understood as",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			log, err := di.NewLogger(cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			parser, err := di.NewParser(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			parsed := parser.Parse(cmd.Context(), strings.ToLower(strings.Join(args, " ")))
			out, err := json.Marshal(parsed)
			if err != nil {
				return fmt.Errorf("encode command: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	desktop := &cobra.Command{
		Use:   "system",
		Short: "Run the desktop assistant (folders, apps, power, tabs)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			c, err := di.NewDesktopContainer(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer c.Close()
			return c.Assistant.Run(cmd.Context())
		},
	}

	root := &cobra.Command{
		Use:           "alfred",
		Short:         "Voice driven browser and desktop assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          browse.RunE,
	}
	root.PersistentFlags().StringVar(&provider, "provider", "", "override LLM_PROVIDER (gemini, openrouter, ollama, rules)")
	root.Flags().BoolVar(&headless, "headless", false, "run the browser without a window")
	root.AddCommand(browse, parse, desktop)
	return root
}
