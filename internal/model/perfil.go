package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PreguntaPerfil struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Numero   int                `bson:"numero" json:"numero" validate:"required,min=1"`
	Pregunta string             `bson:"pregunta" json:"pregunta" validate:"required"`
}

func (p *PreguntaPerfil) SetID(id primitive.ObjectID) { p.ID = id }

type PreguntaPerfilPatch struct {
	Numero   *int    `bson:"numero" json:"numero" validate:"omitnil,min=1"`
	Pregunta *string `bson:"pregunta" json:"pregunta" validate:"omitnil,min=1"`
}

type RespuestaPerfil struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Titulo        string             `bson:"titulo" json:"titulo" validate:"required"`
	Investigador  string             `bson:"investigador" json:"investigador" validate:"required"`
	Escuela       string             `bson:"escuela" json:"escuela" validate:"required"`
	Respuestas    []string           `bson:"respuestas" json:"respuestas" validate:"required,min=1,dive,required"`
	FechaCreacion time.Time          `bson:"fecha_creacion" json:"fecha_creacion"`
}

func (r *RespuestaPerfil) SetID(id primitive.ObjectID) { r.ID = id }

// Prepare stamps the creation time; clients cannot supply it.
func (r *RespuestaPerfil) Prepare() {
	r.FechaCreacion = time.Now().UTC()
}

type RespuestaPerfilPatch struct {
	Titulo       *string   `bson:"titulo" json:"titulo" validate:"omitnil,min=1"`
	Investigador *string   `bson:"investigador" json:"investigador" validate:"omitnil,min=1"`
	Escuela      *string   `bson:"escuela" json:"escuela" validate:"omitnil,min=1"`
	Respuestas   *[]string `bson:"respuestas" json:"respuestas" validate:"omitnil,min=1,dive,required"`
}
