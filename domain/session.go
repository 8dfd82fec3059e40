package domain

import "time"

// Session is a server-issued credential proving a user's identity and role
// between login and logout. The token is opaque and globally unique; it is
// the only lookup key handed out to clients.
type Session struct {
	ID        string    `bson:"_id,omitempty" json:"-"`
	UserID    string    `bson:"user_id" json:"userId"`
	Username  string    `bson:"username" json:"username"`
	Role      Role      `bson:"role" json:"role"`
	Token     string    `bson:"token" json:"token"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	ExpiresAt time.Time `bson:"expires_at" json:"expiresAt"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
