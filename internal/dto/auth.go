package dto

// ── auth DTO ──

// LoginRequest authenticates by employee id and password.
type LoginRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=50"`
	Password   string `json:"password"    binding:"required,max=128"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int          `json:"expires_in"` // seconds
	User        UserResponse `json:"user"`
}

// UserResponse is the caller's own profile.
type UserResponse struct {
	ID             int64  `json:"id"`
	EmployeeID     string `json:"employee_id"`
	FullName       string `json:"full_name"`
	Email          string `json:"email,omitempty"`
	Position       string `json:"position,omitempty"`
	Role           string `json:"role"`
	RoleDisplay    string `json:"role_display"`
	FacultyID      *int64 `json:"faculty_id,omitempty"`
	FacultyName    string `json:"faculty_name,omitempty"`
	DepartmentID   *int64 `json:"department_id,omitempty"`
	DepartmentName string `json:"department_name,omitempty"`
	LastLogin      string `json:"last_login,omitempty"`
}
