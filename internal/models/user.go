package models

// User is a profile record in the profile collection.
type User struct {
	UID         string `json:"u_id" bson:"u_id"`                 // UID is the 28-character alphanumeric identifier
	Name        string `json:"name" bson:"name"`                 // Display name
	Nickname    string `json:"nickname" bson:"nickname"`         // Nickname
	Email       string `json:"email" bson:"email"`               // Contact email
	PhoneNumber string `json:"phone_number" bson:"phone_number"` // Contact phone number
	LineID      string `json:"lineID" bson:"lineID"`             // LINE chat-app identifier
}

// UpdatableUserFields lists the bson field names the generic update endpoint may change.
var UpdatableUserFields = map[string]struct{}{
	"name":         {},
	"nickname":     {},
	"email":        {},
	"phone_number": {},
	"lineID":       {},
}
