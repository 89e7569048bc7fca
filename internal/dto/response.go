package dto

// ── pagination request ──

// PaginationRequest are the common paging parameters.
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1"`
}

// GetPage returns the page number with its default.
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize returns the page size, defaulted to def and capped at max.
func (p *PaginationRequest) GetPageSize(def, max int) int {
	switch {
	case p.PageSize <= 0:
		return def
	case p.PageSize > max:
		return max
	}
	return p.PageSize
}

// GetOffset computes the row offset for a page size.
func (p *PaginationRequest) GetOffset(pageSize int) int {
	return (p.GetPage() - 1) * pageSize
}

// ── directory ──

// FacultyResponse is a faculty in lookups.
type FacultyResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// DepartmentResponse is a department in lookups.
type DepartmentResponse struct {
	ID          int64  `json:"id"`
	FacultyID   int64  `json:"faculty_id"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	FacultyName string `json:"faculty_name,omitempty"`
}

// DepartmentListRequest filters departments.
type DepartmentListRequest struct {
	FacultyID *int64 `form:"faculty_id" binding:"omitempty,min=1"`
}

// ── system ──

// AuditLogResponse is one audit entry with its actor's name.
type AuditLogResponse struct {
	ID          int64  `json:"id"`
	UserID      *int64 `json:"user_id,omitempty"`
	UserName    string `json:"user_name,omitempty"`
	Action      string `json:"action"`
	Description string `json:"description"`
	IPAddress   string `json:"ip_address"`
	UserAgent   string `json:"user_agent"`
	CreatedAt   string `json:"created_at"`
}
