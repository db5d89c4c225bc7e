package track

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID is the string form of a store-assigned track identifier (24 hex characters).
type ID string

// ParseID validates an external identifier string.
func ParseID(value string) (ID, error) {
	trimmed := strings.TrimSpace(value)
	oid, err := primitive.ObjectIDFromHex(trimmed)
	if err != nil {
		return "", &InvalidIDError{Value: value}
	}
	return ID(oid.Hex()), nil
}

// NewID mints a fresh identifier for backends that do not assign one natively.
func NewID() ID {
	return ID(primitive.NewObjectID().Hex())
}

// ObjectID converts the identifier into the document store's native type.
func (id ID) ObjectID() (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return primitive.NilObjectID, &InvalidIDError{Value: string(id)}
	}
	return oid, nil
}

func (id ID) String() string { return string(id) }

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool { return id == "" }
