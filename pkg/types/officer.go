package types

type OfficerRole string

const (
	OfficerRoleOfficer  OfficerRole = "officer"
	OfficerRoleReviewer OfficerRole = "reviewer"
	OfficerRoleAdmin    OfficerRole = "admin"
)

// Officer is a State Agency or Bank staff member who reviews uploads.
type Officer struct {
	Phone        string      `json:"phone" validate:"required"`
	Name         string      `json:"name" validate:"required"`
	Role         OfficerRole `json:"role" validate:"oneof=officer reviewer admin"`
	Organization *string     `json:"organization"`
}

func (o *Officer) ApplyDefaults() {
	if o.Role == "" {
		o.Role = OfficerRoleOfficer
	}
}
