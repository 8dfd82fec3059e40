package domain

import "go.mongodb.org/mongo-driver/v2/bson"

// NewID generates a fresh document id as a hex string.
func NewID() string {
	return bson.NewObjectID().Hex()
}

// ValidateID checks a caller-supplied id before it reaches any query.
func ValidateID(id string) error {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
