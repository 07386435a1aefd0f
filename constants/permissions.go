package constants

// Staff permissions
const (
	// Admin permissions
	PermManagerFull = "guesthouse-booking.manager.full-permit"
	PermStaffFull   = "guesthouse-booking.staff.full-permit"

	// Special permissions
	PermAny = "any"
)

// Permission groups for convenience
var (
	StaffAdminPermissions = []string{
		PermManagerFull,
		PermStaffFull,
	}
)
