package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/level"
	"github.com/mongodb/grip/message"
	"github.com/mongodb/grip/send"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"cartera-go/internal/app"
	"cartera-go/internal/config"
)

func main() {
	grip.EmergencyFatal(buildApp().Run(os.Args))
}

func buildApp() *cli.App {
	cliApp := cli.NewApp()
	cliApp.Name = "cartera"
	cliApp.Usage = "research project portfolio API"

	cliApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "level",
			Usage: "lowest visible log level: 'emergency|alert|critical|error|warning|notice|info|debug|trace' (default LOG_LEVEL or info)",
		},
	}
	cliApp.Before = func(c *cli.Context) error {
		config.LoadEnvFile()
		l := c.String("level")
		if l == "" {
			l = config.LogLevel()
		}
		return loggingSetup(cliApp.Name, l)
	}

	cliApp.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "start the HTTP API and the scheduled fund sync",
			Action: serve,
		},
		{
			Name:   "sync-fondos",
			Usage:  "replace the stored funds sheet with the remote copy and exit",
			Action: syncFondos,
		},
	}
	cliApp.Action = serve

	return cliApp
}

func loggingSetup(name, l string) error {
	if err := grip.SetSender(send.MakeErrorLogger()); err != nil {
		return err
	}
	grip.SetName(name)

	sender := grip.GetSender()
	info := sender.Level()
	info.Threshold = level.FromString(l)

	return sender.SetLevel(info)
}

func build(ctx context.Context, options ...app.BuilderOption) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "config error")
	}
	application, err := app.NewBuilder(&cfg, options...).Build(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "app build error")
	}
	return application, nil
}

func serve(c *cli.Context) error {
	application, err := build(context.Background())
	if err != nil {
		return err
	}

	if err := application.Start(); err != nil {
		return errors.Wrap(err, "app start error")
	}

	return waitForShutdown(application)
}

func syncFondos(c *cli.Context) error {
	ctx := context.Background()
	application, err := build(ctx, app.WithEnsureIndexes(false))
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		grip.Warning(application.Client.Disconnect(shutdownCtx))
	}()

	res, err := application.FundSync.Sync(ctx)
	if err != nil {
		return errors.Wrap(err, "fund sync")
	}
	grip.Info(message.Fields{
		"message":  "fund sync finished",
		"source":   res.Source,
		"deleted":  res.Deleted,
		"inserted": res.Inserted,
	})
	return nil
}

func waitForShutdown(application *app.App) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	grip.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return errors.Wrap(application.Shutdown(ctx), "server shutdown error")
}
