package app

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"cartera-go/internal/config"
	"cartera-go/internal/db"
	"cartera-go/internal/httpapi"
	"cartera-go/internal/model"
	"cartera-go/internal/providers/sheets"
	"cartera-go/internal/repositories/mongodb"
	"cartera-go/internal/scheduler"
	"cartera-go/internal/services/fundsync"
	"cartera-go/internal/services/reporting"
)

type Builder struct {
	cfg           *config.Config
	ensureIndexes bool

	client     *mongo.Client
	fetcher    fundsync.RowFetcher
	httpClient *http.Client

	scheduler *scheduler.Scheduler
	server    *http.Server
}

type BuilderOption func(*Builder)

func NewBuilder(cfg *config.Config, options ...BuilderOption) *Builder {
	builder := &Builder{
		cfg:           cfg,
		ensureIndexes: cfg != nil && cfg.EnsureIndexes,
	}
	for _, option := range options {
		option(builder)
	}
	return builder
}

func WithEnsureIndexes(enabled bool) BuilderOption {
	return func(b *Builder) {
		b.ensureIndexes = enabled
	}
}

func WithMongoClient(client *mongo.Client) BuilderOption {
	return func(b *Builder) {
		b.client = client
	}
}

func WithFetcher(fetcher fundsync.RowFetcher) BuilderOption {
	return func(b *Builder) {
		b.fetcher = fetcher
	}
}

func WithHTTPClient(client *http.Client) BuilderOption {
	return func(b *Builder) {
		b.httpClient = client
	}
}

func WithScheduler(scheduler *scheduler.Scheduler) BuilderOption {
	return func(b *Builder) {
		b.scheduler = scheduler
	}
}

func WithHTTPServer(server *http.Server) BuilderOption {
	return func(b *Builder) {
		b.server = server
	}
}

func (b *Builder) Build(ctx context.Context) (*App, error) {
	if b.cfg == nil {
		return nil, errors.New("config is required")
	}

	app := &App{Config: b.cfg}
	if b.client == nil {
		client, err := db.Connect(ctx, b.cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		b.client = client
		app.ownsClient = true
	}
	app.Client = b.client
	app.Database = b.client.Database(b.cfg.DBName)

	if b.ensureIndexes {
		if err := db.EnsureIndexes(ctx, app.Database); err != nil {
			return nil, err
		}
	}

	stores := newStores(app.Database)

	if b.httpClient == nil {
		b.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if b.fetcher == nil && b.cfg.FondosSyncURL != "" {
		b.fetcher = sheets.NewFetcher(b.httpClient, b.cfg.FondosSyncURL)
	}

	app.FundSync = fundsync.NewService(b.fetcher, stores.ExcelFondos)
	app.Reports = reporting.NewService(mongodb.NewAggregator(app.Database), stores.ExcelProyectos)

	if b.scheduler == nil {
		spec := b.cfg.FondosSyncCron
		if !app.FundSync.Enabled() {
			spec = ""
		}
		b.scheduler = scheduler.New(spec, app.FundSync)
	}
	app.Scheduler = b.scheduler

	if b.server == nil {
		handler := httpapi.NewHandler(stores, app.Reports, app.FundSync, b.cfg.CORSOrigins)
		b.server = &http.Server{
			Addr:              ":" + b.cfg.HTTPPort,
			Handler:           handler.Router(),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}
	app.Server = b.server

	return app, nil
}

func newStores(database *mongo.Database) httpapi.Stores {
	return httpapi.Stores{
		Proyectos:      mongodb.NewStore[model.Project](database.Collection(db.Proyectos)),
		Academicos:     mongodb.NewPersonStore(database.Collection(db.Academicos)),
		Estudiantes:    mongodb.NewPersonStore(database.Collection(db.Estudiantes)),
		Instituciones:  mongodb.NewStore[model.Catalogo](database.Collection(db.Instituciones), "nombre"),
		Unidades:       mongodb.NewStore[model.Catalogo](database.Collection(db.Unidades), "nombre"),
		Tematicas:      mongodb.NewStore[model.Catalogo](database.Collection(db.Tematicas), "nombre"),
		TiposApoyo:     mongodb.NewStore[model.CatalogoTipo](database.Collection(db.TiposApoyo), "tipo"),
		TiposConv:      mongodb.NewStore[model.Catalogo](database.Collection(db.TiposConv), "nombre"),
		Estatus:        mongodb.NewStore[model.CatalogoTipo](database.Collection(db.Estatus), "tipo"),
		Fondos:         mongodb.NewStore[model.Fondo](database.Collection(db.Fondos), "nombre"),
		Preguntas:      mongodb.NewStore[model.PreguntaPerfil](database.Collection(db.PerfilProyecto), "numero", "pregunta"),
		Respuestas:     mongodb.NewStore[model.RespuestaPerfil](database.Collection(db.RespuestasPerfil)),
		ExcelProyectos: mongodb.NewSheetStore(database.Collection(db.ExcelProyectos)),
		ExcelFondos:    mongodb.NewSheetStore(database.Collection(db.ExcelFondos)),
	}
}
