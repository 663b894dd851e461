package db

import (
	"context"
	"time"

	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	Proyectos        = "PROYECTOS"
	Academicos       = "ACADEMICOS"
	Estudiantes      = "ESTUDIANTES"
	Instituciones    = "INSTITUCIONES"
	Unidades         = "UA"
	Tematicas        = "TEMATICAS"
	TiposApoyo       = "TIPO_APOYO"
	TiposConv        = "TIPO_CONV"
	Estatus          = "ESTATUS"
	Fondos           = "FONDOS"
	PerfilProyecto   = "PERFIL_PROYECTO"
	RespuestasPerfil = "RESPUESTAS_PERFIL"
	ExcelProyectos   = "EXCEL-BUN"
	ExcelFondos      = "FONDOS_EXEL"
)

func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}))
	if err != nil {
		return nil, errors.Wrap(err, "connect to mongodb")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(err, "ping mongodb")
	}
	return client, nil
}

var indexes = map[string][]mongo.IndexModel{
	Proyectos: {
		{Keys: bson.D{{Key: "tematica", Value: 1}}},
		{Keys: bson.D{{Key: "unidad", Value: 1}}},
		{Keys: bson.D{{Key: "inst_conv", Value: 1}}},
		{Keys: bson.D{{Key: "tipo_convocatoria", Value: 1}}},
		{Keys: bson.D{{Key: "estatus", Value: 1}}},
	},
	Academicos:  personIndexes(),
	Estudiantes: personIndexes(),
}

func personIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "nombre", Value: 1}, {Key: "a_paterno", Value: 1}, {Key: "a_materno", Value: 1}}},
		{Keys: bson.D{{Key: "unidad", Value: 1}}},
	}
}

// EnsureIndexes creates the lookup indexes used by reports and photo
// updates. Existing indexes with the same keys are left alone.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	for name, models := range indexes {
		created, err := database.Collection(name).Indexes().CreateMany(ctx, models)
		if err != nil {
			return errors.Wrapf(err, "create indexes on %s", name)
		}
		grip.Debug(message.Fields{
			"message":    "ensured indexes",
			"collection": name,
			"indexes":    created,
		})
	}
	return nil
}
