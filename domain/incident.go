package domain

import "time"

// IncidentType classifies a ticket.
type IncidentType string

const (
	IncidentFeature   IncidentType = "feature"
	IncidentBug       IncidentType = "bug"
	IncidentTechnical IncidentType = "technical"
)

// Valid reports whether the type is one of the known classifications.
func (t IncidentType) Valid() bool {
	return t == IncidentFeature || t == IncidentBug || t == IncidentTechnical
}

// Incident is a support ticket. Titles are unique (case-sensitive) across
// the collection; resolution is restricted to the assigned user.
type Incident struct {
	ID          string       `bson:"_id,omitempty" json:"id"`
	Title       string       `bson:"title" json:"title"`
	Description string       `bson:"description" json:"description"`
	Type        IncidentType `bson:"type" json:"type"`
	Comment     string       `bson:"comment,omitempty" json:"comment,omitempty"`
	IsResolved  bool         `bson:"is_resolved" json:"isResolved"`
	AssignedTo  string       `bson:"assigned_to" json:"assignedTo"`
	CreatedBy   string       `bson:"created_by" json:"createdBy"`
	DateCreated time.Time    `bson:"date_created" json:"dateCreated"`
	DateUpdated time.Time    `bson:"date_updated" json:"dateUpdated"`
	IsViewed    bool         `bson:"is_viewed" json:"isViewed"`
}

// IncidentProfile is an incident with the assigned/creator usernames
// denormalized from the users collection. Ephemeral, never persisted.
type IncidentProfile struct {
	Incident         `bson:",inline"`
	AssignedUsername string `bson:"assigned_username,omitempty" json:"assignedUsername,omitempty"`
	CreatedUsername  string `bson:"created_username,omitempty" json:"createdUsername,omitempty"`
}

// IncidentUpsert enumerates the fields a ticket create/update may set.
// An empty ID inserts a new ticket stamped with date_created; otherwise
// the matching document is patched and date_updated refreshed.
type IncidentUpsert struct {
	ID          string
	Title       string
	Description string
	Type        IncidentType
	Comment     string
	AssignedTo  string
	CreatedBy   string
}
