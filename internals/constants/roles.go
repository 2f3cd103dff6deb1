package constants

// Crew roles (crew_member_role)
const (
	RoleOwner  = "owner"  // crew founder, full control
	RoleStaff  = "staff"  // can manage members, invite codes, records
	RoleMember = "member" // regular runner
)

// Membership status (crew_member_status).
// Only ACTIVE members count toward attendance-rate denominators.
const (
	MemberStatusActive   = "ACTIVE"
	MemberStatusInactive = "INACTIVE"
)

var StaffRoles = []string{RoleOwner, RoleStaff}
