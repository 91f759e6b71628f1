package constants

import "fmt"

const (
	RoleStudent   = "student"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// AllowedRoles covers every authenticated role.
var AllowedRoles = []string{RoleStudent, RoleOrganizer, RoleAdmin}

// OrganizerRoles may create events and read organizer dashboards.
var OrganizerRoles = []string{RoleOrganizer, RoleAdmin}

// Role guard message templates
const (
	ErrOnlyOrganizersCanAccess = "Only organizers or admins may access %s."
	ErrOnlyLoggedInCanAccess   = "Only authenticated users may access %s."
)

func RoleErrorOrganizer(feature string) string {
	return fmt.Sprintf(ErrOnlyOrganizersCanAccess, feature)
}

func RoleErrorLoggedIn(feature string) string {
	return fmt.Sprintf(ErrOnlyLoggedInCanAccess, feature)
}
