package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type AcademicoRef struct {
	Nombre   string  `bson:"nombre" json:"nombre" validate:"required"`
	APaterno string  `bson:"a_paterno" json:"a_paterno" validate:"required"`
	AMaterno *string `bson:"a_materno" json:"a_materno"`
}

type EstudianteRef struct {
	Nombre   *string `bson:"nombre" json:"nombre"`
	APaterno *string `bson:"a_paterno" json:"a_paterno"`
	AMaterno *string `bson:"a_materno" json:"a_materno"`
}

type Project struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	IDKTH            *string            `bson:"id_kth" json:"id_kth"`
	Comentarios      *string            `bson:"comentarios" json:"comentarios"`
	Nombre           string             `bson:"nombre" json:"nombre" validate:"required"`
	Academicos       []AcademicoRef     `bson:"academicos" json:"academicos" validate:"required,min=1,dive"`
	Estudiantes      []EstudianteRef    `bson:"estudiantes" json:"estudiantes"`
	Monto            *float64           `bson:"monto" json:"monto"`
	FechaPostulacion *string            `bson:"fecha_postulacion" json:"fecha_postulacion"`
	Unidad           *string            `bson:"unidad" json:"unidad"`
	Tematica         *string            `bson:"tematica" json:"tematica"`
	Estatus          *string            `bson:"estatus" json:"estatus"`
	Convocatoria     *string            `bson:"convocatoria" json:"convocatoria"`
	TipoConvocatoria *string            `bson:"tipo_convocatoria" json:"tipo_convocatoria"`
	InstConv         *string            `bson:"inst_conv" json:"inst_conv"`
	DetalleApoyo     *string            `bson:"detalle_apoyo" json:"detalle_apoyo"`
	Apoyo            *string            `bson:"apoyo" json:"apoyo"`
}

func (p *Project) SetID(id primitive.ObjectID) { p.ID = id }

// Prepare fills server-side defaults before insert.
func (p *Project) Prepare() {
	if p.Estudiantes == nil {
		p.Estudiantes = []EstudianteRef{}
	}
}

// ProjectPatch is the partial update body for a project. A nil field is
// left untouched unless the key was sent explicitly as null.
type ProjectPatch struct {
	IDKTH            *string          `bson:"id_kth" json:"id_kth"`
	Comentarios      *string          `bson:"comentarios" json:"comentarios"`
	Nombre           *string          `bson:"nombre" json:"nombre" validate:"omitnil,min=1"`
	Academicos       *[]AcademicoRef  `bson:"academicos" json:"academicos" validate:"omitnil,min=1,dive"`
	Estudiantes      *[]EstudianteRef `bson:"estudiantes" json:"estudiantes"`
	Monto            *float64         `bson:"monto" json:"monto"`
	FechaPostulacion *string          `bson:"fecha_postulacion" json:"fecha_postulacion"`
	Unidad           *string          `bson:"unidad" json:"unidad"`
	Tematica         *string          `bson:"tematica" json:"tematica"`
	Estatus          *string          `bson:"estatus" json:"estatus"`
	Convocatoria     *string          `bson:"convocatoria" json:"convocatoria"`
	TipoConvocatoria *string          `bson:"tipo_convocatoria" json:"tipo_convocatoria"`
	InstConv         *string          `bson:"inst_conv" json:"inst_conv"`
	DetalleApoyo     *string          `bson:"detalle_apoyo" json:"detalle_apoyo"`
	Apoyo            *string          `bson:"apoyo" json:"apoyo"`
}
