package domain

// User is an account record. This service never creates or mutates users;
// they are looked up at login and listed for administration.
type User struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Username string `bson:"username" json:"username"`
	Password string `bson:"password,omitempty" json:"-"` // bcrypt hash, never serialized
	Role     Role   `bson:"role" json:"role"`
}
