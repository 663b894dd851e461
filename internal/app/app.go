package app

import (
	"context"
	"net/http"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"cartera-go/internal/config"
	"cartera-go/internal/scheduler"
	"cartera-go/internal/services/fundsync"
	"cartera-go/internal/services/reporting"
)

type App struct {
	Config    *config.Config
	Client    *mongo.Client
	Database  *mongo.Database
	Reports   *reporting.Service
	FundSync  *fundsync.Service
	Scheduler *scheduler.Scheduler
	Server    *http.Server

	ownsClient bool
}

func (a *App) Start() error {
	if err := a.Scheduler.Start(); err != nil {
		return err
	}

	go func() {
		grip.Info(message.Fields{
			"message":  "http server listening",
			"addr":     a.Server.Addr,
			"database": a.Config.DBName,
		})
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			grip.EmergencyFatal(message.WrapError(err, message.Fields{
				"message": "http server error",
			}))
		}
	}()

	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	catcher := grip.NewBasicCatcher()
	a.Scheduler.Stop()
	catcher.Add(errors.Wrap(a.Server.Shutdown(ctx), "shutdown http server"))
	if a.ownsClient {
		catcher.Add(errors.Wrap(a.Client.Disconnect(ctx), "disconnect mongodb"))
	}
	return catcher.Resolve()
}
