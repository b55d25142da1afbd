package models

import "time"

// UserPicture is an uploaded profile image stored in the user_picture collection.
type UserPicture struct {
	UserID        string    `json:"user_id" bson:"user_id"`               // Owner of the picture
	Filename      string    `json:"filename" bson:"filename"`             // <user_id><ext>, also the mirror file name
	FileExtension string    `json:"file_extension" bson:"file_extension"` // Extension including the dot, e.g. ".jpg"
	ImageData     []byte    `json:"-" bson:"image_data"`                  // Raw image bytes
	UploadedAt    time.Time `json:"uploaded_at" bson:"uploaded_at"`       // Time of the latest upload
}
