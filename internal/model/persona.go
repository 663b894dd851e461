package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Persona is the shape shared by academics and students.
type Persona struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Nombre   string             `bson:"nombre" json:"nombre" validate:"required"`
	APaterno string             `bson:"a_paterno" json:"a_paterno" validate:"required"`
	AMaterno *string            `bson:"a_materno" json:"a_materno"`
	Email    *string            `bson:"email" json:"email" validate:"omitnil,email_or_empty"`
	Unidad   *string            `bson:"unidad" json:"unidad"`
	LinkFoto *string            `bson:"link_foto" json:"link_foto" validate:"omitnil,url_or_empty"`
}

func (p *Persona) SetID(id primitive.ObjectID) { p.ID = id }

type PersonaPatch struct {
	Nombre   *string `bson:"nombre" json:"nombre" validate:"omitnil,min=1"`
	APaterno *string `bson:"a_paterno" json:"a_paterno" validate:"omitnil,min=1"`
	AMaterno *string `bson:"a_materno" json:"a_materno"`
	Email    *string `bson:"email" json:"email" validate:"omitnil,email_or_empty"`
	Unidad   *string `bson:"unidad" json:"unidad"`
	LinkFoto *string `bson:"link_foto" json:"link_foto" validate:"omitnil,url_or_empty"`
}

// PhotoQuery identifies a person by name. AMaterno only takes part in the
// match when HasAMaterno is set, in which case a nil value matches null.
type PhotoQuery struct {
	Nombre      string
	APaterno    string
	AMaterno    *string
	HasAMaterno bool
}

type PhotoUpdate struct {
	Nombre   string   `json:"nombre" validate:"required"`
	APaterno string   `json:"a_paterno" validate:"required"`
	AMaterno Nullable `json:"a_materno"`
	LinkFoto *string  `json:"link_foto" validate:"omitnil,url_or_empty"`
}

func (u PhotoUpdate) Query() PhotoQuery {
	return PhotoQuery{
		Nombre:      u.Nombre,
		APaterno:    u.APaterno,
		AMaterno:    u.AMaterno.Value,
		HasAMaterno: u.AMaterno.Set,
	}
}
