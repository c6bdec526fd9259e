package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the aggregate owned by a single user. Experience and education
// are ordered newest-first and are always read and written together with the
// rest of the document.
type Profile struct {
	ID         uuid.UUID    `json:"id"`
	UserID     uuid.UUID    `json:"user"`
	Company    string       `json:"company,omitempty"`
	Website    string       `json:"website,omitempty"`
	Location   string       `json:"location,omitempty"`
	Bio        string       `json:"bio,omitempty"`
	Status     string       `json:"status"`
	Skills     []string     `json:"skills"`
	Social     Social       `json:"social"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`

	// Owner carries the joined name/avatar of the owning user on reads
	// that populate it. Not persisted with the profile.
	Owner *ProfileOwner `json:"owner,omitempty"`
}

type ProfileOwner struct {
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
}

// Social holds the named platform links. Empty entries are omitted from JSON
// and are never normalized.
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

type Experience struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	From        Date      `json:"from"`
	To          *Date     `json:"to,omitempty"`
	Current     bool      `json:"current"`
	Description string    `json:"description,omitempty"`
}

type Education struct {
	ID           uuid.UUID `json:"id"`
	School       string    `json:"school"`
	Degree       string    `json:"degree"`
	FieldOfStudy string    `json:"fieldofstudy,omitempty"`
	From         Date      `json:"from"`
	To           *Date     `json:"to,omitempty"`
	Current      bool      `json:"current"`
	Description  string    `json:"description,omitempty"`
}
