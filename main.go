package main

import (
	"fmt"
	"os"

	"meca-api/core/logger"
	"meca-api/core/server"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "meca-api",
		Usage: "event hosting requests, event director assignment and approval workflow",
		Action: func(c *cli.Context) error {
			return server.Run()
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API and the notification worker",
				Action: func(c *cli.Context) error {
					return server.Run()
				},
			},
			{
				Name:  "migrate",
				Usage: "apply pending database migrations and exit",
				Action: func(c *cli.Context) error {
					return server.Migrate(c.Context)
				},
			},
			{
				Name:  "token",
				Usage: "print a bearer token for a profile",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "profile", Usage: "profile id (uuid)", Required: true},
					&cli.StringFlag{Name: "role", Usage: "admin, event_director or user", Value: "user"},
					&cli.DurationFlag{Name: "ttl", Usage: "token lifetime, defaults to JWT_TTL"},
				},
				Action: func(c *cli.Context) error {
					token, err := server.IssueToken(c.String("profile"), c.String("role"), c.Duration("ttl"))
					if err != nil {
						return err
					}
					fmt.Fprintln(c.App.Writer, token)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("Main:Run", "error", err)
		fmt.Fprintln(os.Stderr, "meca-api:", err)
		os.Exit(1)
	}
}
