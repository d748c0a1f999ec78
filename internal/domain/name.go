package domain

// Name is a candidate name awaiting a decision from the active profile.
// Gender, origin and meaning are optional metadata from the backend.
type Name struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Gender  string `json:"gender,omitempty"`
	Origin  string `json:"origin,omitempty"`
	Meaning string `json:"meaning,omitempty"`
}
