package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the credential row behind a session. The profile record that the
// rest of the platform reads lives in the profile package.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
