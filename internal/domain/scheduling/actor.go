package scheduling

// ===============================
// Actor & Capabilities
// ===============================

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Actor is the authenticated caller as the scheduling core sees it. How the
// id and role were established (session, token) is not this package's concern.
type Actor struct {
	ID   string
	Role Role
}

// CanScheduleInterviews gates the assignment ledger operations.
func (a Actor) CanScheduleInterviews() bool {
	return a.Role == RoleAdmin
}

// CanManageCalendar gates interview date creation and deletion.
func (a Actor) CanManageCalendar() bool {
	return a.Role == RoleAdmin
}

// CanImportApplications gates the PDF intake flow.
func (a Actor) CanImportApplications() bool {
	return a.Role == RoleAdmin
}
