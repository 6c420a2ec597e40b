package uid

import "go.mongodb.org/mongo-driver/bson/primitive"

// ObjectID generates MongoDB ObjectID hex strings.
//
// Entity primary keys live in Mongo _id fields, so they are generated in the
// same format the store uses natively.
type ObjectID struct{}

// NewObjectID returns an ObjectID generator.
func NewObjectID() *ObjectID {
	return &ObjectID{}
}

// Generate returns a new 24-character ObjectID hex string.
func (o *ObjectID) Generate() string {
	return primitive.NewObjectID().Hex()
}
