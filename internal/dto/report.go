package dto

// ── report DTO ──

// UserListRequest pages the users visible to the caller.
type UserListRequest struct {
	PaginationRequest
	FacultyID    *int64 `form:"faculty_id"    binding:"omitempty,min=1"`
	DepartmentID *int64 `form:"department_id" binding:"omitempty,min=1"`
}

// ReportExportRequest selects scope filters and file format of the bulk export.
type ReportExportRequest struct {
	FacultyID    *int64 `form:"faculty_id"    binding:"omitempty,min=1"`
	DepartmentID *int64 `form:"department_id" binding:"omitempty,min=1"`
	Format       string `form:"format"        binding:"omitempty,oneof=csv xlsx"`
	Encoding     string `form:"encoding"      binding:"omitempty,oneof=utf8bom utf8 windows1251"`
}

// RoleStat is a per-role head count.
type RoleStat struct {
	Role        string `json:"role"`
	RoleDisplay string `json:"role_display"`
	Count       int64  `json:"count"`
}

// FacultyStat is a per-faculty head count.
type FacultyStat struct {
	FacultyID   int64  `json:"faculty_id"`
	FacultyName string `json:"faculty_name"`
	Count       int64  `json:"count"`
}

// StatisticsResponse are the aggregate counts of the statistics page.
type StatisticsResponse struct {
	TotalActiveUsers        int64         `json:"total_active_users"`
	UsersWithAnyAchievement int64         `json:"users_with_any_achievement"`
	ByRole                  []RoleStat    `json:"by_role"`
	ByFaculty               []FacultyStat `json:"by_faculty"`
}

// UserSummaryResponse is a row of the users list.
type UserSummaryResponse struct {
	ID             int64   `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	FullName       string  `json:"full_name"`
	Position       string  `json:"position"`
	Role           string  `json:"role"`
	RoleDisplay    string  `json:"role_display"`
	FacultyName    string  `json:"faculty_name"`
	DepartmentName string  `json:"department_name"`
	LastUpdated    *string `json:"last_updated"`
}
