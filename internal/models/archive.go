package models

// EncodingArchive pairs face feature vectors with the user ids they belong to.
// Encodings[i] belongs to UserIDs[i].
type EncodingArchive struct {
	Encodings [][]float64 `json:"encodings"`
	UserIDs   []string    `json:"user_ids"`
}

// Len returns the number of entries in the archive.
func (a *EncodingArchive) Len() int {
	if a == nil {
		return 0
	}
	return len(a.UserIDs)
}

// Add appends one vector and its owner.
func (a *EncodingArchive) Add(userID string, encoding []float64) {
	a.Encodings = append(a.Encodings, encoding)
	a.UserIDs = append(a.UserIDs, userID)
}

// SkippedImage is an image left out of an archive rebuild.
type SkippedImage struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// EncodingSummary reports the outcome of an archive rebuild.
type EncodingSummary struct {
	Images  int            `json:"images"`  // Images found in the database
	Encoded int            `json:"encoded"` // Entries written to the archive
	Skipped []SkippedImage `json:"skipped,omitempty"`
}
