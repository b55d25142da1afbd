package models

// Event types published to the user events topic.
const (
	EventUserCreated      = "user.created"
	EventUserUpdated      = "user.updated"
	EventUserDeleted      = "user.deleted"
	EventPictureUploaded  = "picture.uploaded"
	EventEncodingsRebuilt = "encodings.rebuilt"
)

// UserEvent describes a change made through the profile API.
type UserEvent struct {
	EventID   string            `json:"event_id"`          // EventID is a unique identifier for the event.
	Type      string            `json:"type"`              // Type is one of the Event* constants.
	UserID    string            `json:"user_id,omitempty"` // UserID is the profile the event refers to, if any.
	Timestamp int64             `json:"timestamp"`         // Timestamp is the Unix time (seconds) the event occurred.
	Details   map[string]string `json:"details,omitempty"` // Details carries event specific values.
}
