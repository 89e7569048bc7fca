// Package access decides which achievement records a principal may see and change.
//
// It is the only place role scope is interpreted. Functions here are pure: they
// never fail and never touch storage; callers turn a false answer into Forbidden.
package access

// Role is the organisational role of a user.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDekanat    Role = "dekanat"    // dean's office, scoped to a faculty
	RoleZaviduvach Role = "zaviduvach" // head of department
	RoleVykladach  Role = "vykladach"  // instructor, self only
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDekanat, RoleZaviduvach, RoleVykladach:
		return true
	}
	return false
}

// Principal is the authenticated caller of a request.
type Principal struct {
	ID           int64
	Role         Role
	FacultyID    *int64
	DepartmentID *int64
}

// OrgScope is the organisational placement of the target user.
type OrgScope struct {
	FacultyID    *int64
	DepartmentID *int64
}

// CanAccess reports whether p may read the record of targetUserID.
func CanAccess(p Principal, targetUserID int64, target OrgScope) bool {
	switch p.Role {
	case RoleAdmin:
		return true
	case RoleVykladach:
		return p.ID == targetUserID
	case RoleZaviduvach:
		return sameID(p.DepartmentID, target.DepartmentID)
	case RoleDekanat:
		return sameID(p.FacultyID, target.FacultyID)
	default:
		return false
	}
}

// CanWrite reports whether p may replace the record of targetUserID.
// An instructor is pinned to their own record even if read scope ever widens.
func CanWrite(p Principal, targetUserID int64, target OrgScope) bool {
	if p.Role == RoleVykladach {
		return p.ID == targetUserID
	}
	return CanAccess(p, targetUserID, target)
}

// Precheck answers CanAccess and CanWrite when the answer does not depend on where
// the target sits: admins, instructors, unknown roles and heads without a placement.
// decided is false when the target's OrgScope is needed.
func Precheck(p Principal, targetUserID int64) (allowed, decided bool) {
	switch p.Role {
	case RoleAdmin:
		return true, true
	case RoleVykladach:
		return p.ID == targetUserID, true
	case RoleZaviduvach:
		if p.DepartmentID == nil {
			return false, true
		}
	case RoleDekanat:
		if p.FacultyID == nil {
			return false, true
		}
	default:
		return false, true
	}
	return false, false
}

// sameID treats an unset id as matching nothing.
func sameID(a, b *int64) bool {
	return a != nil && b != nil && *a == *b
}
