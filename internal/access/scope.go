package access

// Scope is the set of users a principal may enumerate in multi-user operations.
// Zero-valued fields are unconstrained; None excludes everybody.
type Scope struct {
	UserID       *int64
	FacultyID    *int64
	DepartmentID *int64
	None         bool
}

// All reports whether the scope is unconstrained.
func (s Scope) All() bool {
	return !s.None && s.UserID == nil && s.FacultyID == nil && s.DepartmentID == nil
}

// ScopeOf returns the enumeration scope matching CanAccess for p.
// Supervisors without an org placement get an empty scope.
func ScopeOf(p Principal) Scope {
	switch p.Role {
	case RoleAdmin:
		return Scope{}
	case RoleDekanat:
		if p.FacultyID == nil {
			return Scope{None: true}
		}
		return Scope{FacultyID: p.FacultyID}
	case RoleZaviduvach:
		if p.DepartmentID == nil {
			return Scope{None: true}
		}
		return Scope{DepartmentID: p.DepartmentID}
	case RoleVykladach:
		id := p.ID
		return Scope{UserID: &id}
	default:
		return Scope{None: true}
	}
}

// Narrow intersects s with optional caller-supplied filters.
// Conflicting constraints produce an empty scope.
func (s Scope) Narrow(facultyID, departmentID *int64) Scope {
	if s.None {
		return s
	}
	out := s
	if facultyID != nil {
		if out.FacultyID != nil && *out.FacultyID != *facultyID {
			return Scope{None: true}
		}
		out.FacultyID = facultyID
	}
	if departmentID != nil {
		if out.DepartmentID != nil && *out.DepartmentID != *departmentID {
			return Scope{None: true}
		}
		out.DepartmentID = departmentID
	}
	return out
}

// Contains reports whether a user with the given id and placement falls inside s.
func (s Scope) Contains(userID int64, target OrgScope) bool {
	if s.None {
		return false
	}
	if s.UserID != nil && *s.UserID != userID {
		return false
	}
	if s.FacultyID != nil && !sameID(s.FacultyID, target.FacultyID) {
		return false
	}
	if s.DepartmentID != nil && !sameID(s.DepartmentID, target.DepartmentID) {
		return false
	}
	return true
}
