package models

// User roles recognized by the dispatch core
const (
	RolePassenger = "passenger"
	RoleDriver    = "driver"
	RoleAdmin     = "admin"
)

// Identity is the resolved identity attached to a connection or request.
// It is produced from a verified credential and never persisted here.
type Identity struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// IsPassenger reports whether the identity carries the passenger role.
func (i *Identity) IsPassenger() bool {
	return i != nil && i.Role == RolePassenger
}

// IsDriver reports whether the identity carries the driver role.
func (i *Identity) IsDriver() bool {
	return i != nil && i.Role == RoleDriver
}
