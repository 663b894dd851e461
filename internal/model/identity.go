package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Identifiable is implemented by every stored document type so the store
// can hand back the generated id after insert.
type Identifiable interface {
	SetID(id primitive.ObjectID)
}

// Preparer is implemented by documents with server-side defaults.
type Preparer interface {
	Prepare()
}
