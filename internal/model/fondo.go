package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type Fondo struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Nombre         string             `bson:"nombre" json:"nombre" validate:"required"`
	Inicio         string             `bson:"inicio" json:"inicio" validate:"required"`
	Cierre         string             `bson:"cierre" json:"cierre" validate:"required"`
	Financiamiento string             `bson:"financiamiento" json:"financiamiento" validate:"required"`
	Plazo          string             `bson:"plazo" json:"plazo" validate:"required"`
	Objetivo       string             `bson:"objetivo" json:"objetivo" validate:"required"`
	TRL            *int               `bson:"trl" json:"trl" validate:"required,min=0"`
	CRL            *int               `bson:"crl" json:"crl"`
	Team           *int               `bson:"team" json:"team"`
	BRL            *int               `bson:"brl" json:"brl"`
	IPRL           *int               `bson:"iprl" json:"iprl"`
	FRL            *int               `bson:"frl" json:"frl"`
	Tipo           int                `bson:"tipo" json:"tipo" validate:"required,min=1"`
	Req            *string            `bson:"req" json:"req"`
}

func (f *Fondo) SetID(id primitive.ObjectID) { f.ID = id }

type FondoPatch struct {
	Nombre         *string `bson:"nombre" json:"nombre" validate:"omitnil,min=1"`
	Inicio         *string `bson:"inicio" json:"inicio" validate:"omitnil,min=1"`
	Cierre         *string `bson:"cierre" json:"cierre" validate:"omitnil,min=1"`
	Financiamiento *string `bson:"financiamiento" json:"financiamiento" validate:"omitnil,min=1"`
	Plazo          *string `bson:"plazo" json:"plazo" validate:"omitnil,min=1"`
	Objetivo       *string `bson:"objetivo" json:"objetivo" validate:"omitnil,min=1"`
	TRL            *int    `bson:"trl" json:"trl" validate:"omitnil,min=0"`
	CRL            *int    `bson:"crl" json:"crl"`
	Team           *int    `bson:"team" json:"team"`
	BRL            *int    `bson:"brl" json:"brl"`
	IPRL           *int    `bson:"iprl" json:"iprl"`
	FRL            *int    `bson:"frl" json:"frl"`
	Tipo           *int    `bson:"tipo" json:"tipo" validate:"omitnil,min=1"`
	Req            *string `bson:"req" json:"req"`
}
