package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the persisted record of a principal. ID equals the principal ID,
// so a principal has at most one profile.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      *Role     `json:"role"` // nil when no role was ever assigned
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins first and last name.
func (p *Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
