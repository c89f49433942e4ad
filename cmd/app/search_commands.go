package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/jwtcrack/cmd/app/commands"
	"github.com/allisson/jwtcrack/internal/app"
	"github.com/allisson/jwtcrack/internal/config"
	searchDomain "github.com/allisson/jwtcrack/internal/search/domain"
)

func getSearchCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "crack",
			Usage: "Brute-force the HMAC key of a token",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "token",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Token to crack",
				},
				&cli.IntFlag{
					Name:    "min",
					Aliases: []string{"m"},
					Usage:   "Shortest key length to try (default: SEARCH_MIN_LENGTH or 1)",
				},
				&cli.IntFlag{
					Name:    "max",
					Aliases: []string{"x"},
					Usage:   "Longest key length to try (default: SEARCH_MAX_LENGTH or 10)",
				},
				&cli.StringFlag{
					Name:    "charset",
					Aliases: []string{"c"},
					Usage:   "Exact characters to try, used verbatim (overrides class flags)",
				},
				&cli.BoolFlag{
					Name:  "lower",
					Usage: "Include lowercase letters",
				},
				&cli.BoolFlag{
					Name:  "upper",
					Usage: "Include uppercase letters",
				},
				&cli.BoolFlag{
					Name:  "digits",
					Usage: "Include digits",
				},
				&cli.BoolFlag{
					Name:  "special",
					Usage: "Include ASCII punctuation",
				},
				&cli.IntFlag{
					Name:    "workers",
					Aliases: []string{"w"},
					Usage:   "Number of parallel workers (default: SEARCH_WORKERS or one per CPU)",
				},
				&cli.DurationFlag{
					Name:  "timeout",
					Value: 0,
					Usage: "Give up after this duration (e.g. 30s, 5m); 0 runs until done",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				searchUseCase, err := container.SearchUseCase()
				if err != nil {
					return err
				}

				return commands.RunCrack(
					ctx,
					searchUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					crackOptions(cmd, cfg),
				)
			},
		},
	}
}

// crackOptions merges command flags over configured defaults.
func crackOptions(cmd *cli.Command, cfg *config.Config) commands.CrackOptions {
	opts := commands.CrackOptions{
		Token:            cmd.String("token"),
		MinLength:        cfg.SearchMinLength,
		MaxLength:        cfg.SearchMaxLength,
		Charset:          cmd.String("charset"),
		Workers:          cfg.SearchWorkers,
		Timeout:          cmd.Duration("timeout"),
		ProgressInterval: cfg.SearchProgressInterval,
		ProgressBuffer:   cfg.SearchProgressBuffer,
		Format:           cmd.String("format"),
	}

	if cmd.IsSet("min") {
		opts.MinLength = int(cmd.Int("min"))
	}
	if cmd.IsSet("max") {
		opts.MaxLength = int(cmd.Int("max"))
	}
	if cmd.IsSet("workers") {
		opts.Workers = int(cmd.Int("workers"))
	}

	for flag, class := range map[string]searchDomain.CharClass{
		"lower":   searchDomain.Lowercase,
		"upper":   searchDomain.Uppercase,
		"digits":  searchDomain.Digits,
		"special": searchDomain.Special,
	} {
		if cmd.Bool(flag) {
			opts.Classes |= class
		}
	}

	if opts.Charset == "" && opts.Classes == 0 {
		opts.Charset = cfg.SearchCharset
	}

	return opts
}
