package domain

type Role string

const (
	RoleResident Role = "resident"
	RoleAdmin    Role = "admin"
)

// User is the minimal identity surface the engine reads: requester
// lookups, admin fan-out and push device tokens. Authentication and
// account management live in the external identity service.
type User struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	DeviceToken string `json:"-"`
}

// Actor identifies who is performing an engine operation. It is supplied
// by the identity layer and trusted completely.
type Actor struct {
	UserID int32
	Role   Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
