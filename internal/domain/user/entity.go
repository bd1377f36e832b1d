package user

type Role string

const (
	RoleOffice     Role = "office"
	RoleMR         Role = "MR"
	RoleASM        Role = "ASM"
	RoleTSO        Role = "TSO"
	RoleRSM        Role = "RSM"
	RoleSuperAdmin Role = "super-admin"
	RoleInspect    Role = "inspect"
)

// RoleClass buckets roles for attendance thresholds. Only the office
// role keeps office hours; every field role shares the later schedule.
type RoleClass string

const (
	ClassOffice RoleClass = "office"
	ClassField  RoleClass = "field"
)

func (r Role) Class() RoleClass {
	if r == RoleOffice {
		return ClassOffice
	}
	return ClassField
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOffice, RoleMR, RoleASM, RoleTSO, RoleRSM, RoleSuperAdmin, RoleInspect:
		return true
	}
	return false
}

// Profile is the externally owned user record. The core reads it
// through the upstream API and caches it alongside the local
// checked-in flag; it never writes profile fields back.
type Profile struct {
	ID        string
	Name      string
	Role      Role
	Group     string
	Zone      string
	CheckedIn bool
}

// Filter narrows GetAllUsers results.
type Filter struct {
	Role  *Role
	Group *string
	Zone  *string
}
