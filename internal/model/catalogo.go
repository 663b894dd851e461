package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Catalogo is a lookup entry keyed by a unique name (institutions, units,
// topics, call types).
type Catalogo struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Nombre string             `bson:"nombre" json:"nombre" validate:"required"`
}

func (c *Catalogo) SetID(id primitive.ObjectID) { c.ID = id }

type CatalogoPatch struct {
	Nombre *string `bson:"nombre" json:"nombre" validate:"omitnil,min=1"`
}

// CatalogoTipo is a lookup entry keyed by a unique tipo (support types,
// statuses).
type CatalogoTipo struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Tipo string             `bson:"tipo" json:"tipo" validate:"required"`
}

func (c *CatalogoTipo) SetID(id primitive.ObjectID) { c.ID = id }

type CatalogoTipoPatch struct {
	Tipo *string `bson:"tipo" json:"tipo" validate:"omitnil,min=1"`
}
