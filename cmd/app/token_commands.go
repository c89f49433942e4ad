package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/jwtcrack/cmd/app/commands"
	"github.com/allisson/jwtcrack/internal/app"
	"github.com/allisson/jwtcrack/internal/config"
)

func getTokenCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "verify",
			Usage: "Check whether a key verifies a token",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "token",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Token to verify",
				},
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Candidate HMAC key",
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

				tokenUseCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				return commands.RunVerify(
					ctx,
					tokenUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("token"),
					cmd.String("key"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "decode",
			Usage: "Print the header and payload of a token without verifying it",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "token",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Token to decode",
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

				tokenUseCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				return commands.RunDecode(
					ctx,
					tokenUseCase,
					commands.DefaultIO().Writer,
					cmd.String("token"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "sign",
			Usage: "Sign a header and payload with a known key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "header",
					Value: `{"alg":"HS256","typ":"JWT"}`,
					Usage: "Header JSON; alg must be HS256, HS384 or HS512",
				},
				&cli.StringFlag{
					Name:     "payload",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Payload JSON object",
				},
				&cli.StringFlag{
					Name:     "key",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "HMAC key",
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

				tokenUseCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				return commands.RunSign(
					ctx,
					tokenUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("header"),
					cmd.String("payload"),
					cmd.String("key"),
					cmd.String("format"),
				)
			},
		},
	}
}
