package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/seojacky/account-teacher/internal/access"
	"github.com/seojacky/account-teacher/internal/model"
	"github.com/seojacky/account-teacher/internal/repository"
)

var errMockStore = errors.New("connection refused")

// ── Mock UserRepository ──

type mockUserRepo struct {
	mu    sync.Mutex
	users map[int64]*model.User
	fail  error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*model.User)}
}

func (m *mockUserRepo) add(u *model.User) *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
	return u
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmployeeID(_ context.Context, employeeID string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	for _, u := range m.users {
		if u.EmployeeID == employeeID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

func (m *mockUserRepo) visible(scope access.Scope) []model.User {
	var out []model.User
	for _, u := range m.users {
		if u.IsActive && scope.Contains(u.ID, u.OrgScope()) {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out
}

func (m *mockUserRepo) ListSummaries(_ context.Context, scope access.Scope, offset, limit int) ([]repository.UserSummary, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, 0, m.fail
	}
	all := m.visible(scope)
	var page []repository.UserSummary
	for i := offset; i < len(all) && i < offset+limit; i++ {
		u := all[i]
		page = append(page, repository.UserSummary{
			ID:         u.ID,
			EmployeeID: u.EmployeeID,
			FullName:   u.FullName,
			Position:   u.Position,
			RoleName:   string(u.RoleName()),
		})
	}
	return page, int64(len(all)), nil
}

func (m *mockUserRepo) ListActive(_ context.Context, scope access.Scope) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	return m.visible(scope), nil
}

// ── Mock AchievementRepository ──

// mockAchievementRepo stores whole records under a mutex, like a row write.
type mockAchievementRepo struct {
	mu      sync.Mutex
	records map[int64]model.Achievement
	writes  int
	fail    error
}

func newMockAchievementRepo() *mockAchievementRepo {
	return &mockAchievementRepo{records: make(map[int64]model.Achievement)}
}

func (m *mockAchievementRepo) GetByUserID(_ context.Context, userID int64) (*model.Achievement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	rec, ok := m.records[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &rec, nil
}

func (m *mockAchievementRepo) ListByUserIDs(_ context.Context, userIDs []int64) ([]model.Achievement, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Achievement
	for _, id := range userIDs {
		if rec, ok := m.records[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *mockAchievementRepo) Upsert(_ context.Context, a *model.Achievement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.records[a.UserID] = *a
	m.writes++
	return nil
}

// ── Mock Faculty/Department repositories ──

type mockFacultyRepo struct {
	faculties []model.Faculty
}

func (m *mockFacultyRepo) List(_ context.Context) ([]model.Faculty, error) {
	return m.faculties, nil
}

func (m *mockFacultyRepo) GetByID(_ context.Context, id int64) (*model.Faculty, error) {
	for i := range m.faculties {
		if m.faculties[i].ID == id {
			return &m.faculties[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type mockDeptRepo struct {
	departments []model.Department
	fail        error
}

func (m *mockDeptRepo) List(_ context.Context, facultyID *int64) ([]model.Department, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	var out []model.Department
	for _, d := range m.departments {
		if facultyID == nil || d.FacultyID == *facultyID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDeptRepo) GetByID(_ context.Context, id int64) (*model.Department, error) {
	for i := range m.departments {
		if m.departments[i].ID == id {
			return &m.departments[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock AuditLogRepository ──

type mockAuditLogRepo struct {
	mu      sync.Mutex
	entries []model.AuditLog
	fail    error
}

func (m *mockAuditLogRepo) Create(_ context.Context, entry *model.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	entry.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockAuditLogRepo) List(_ context.Context, offset, limit int) ([]model.AuditLog, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var page []model.AuditLog
	for i := len(m.entries) - 1 - offset; i >= 0 && len(page) < limit; i-- {
		page = append(page, m.entries[i])
	}
	return page, int64(len(m.entries)), nil
}

func (m *mockAuditLogRepo) actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Action
	}
	return out
}

// ── Mock ReportRepository ──

type mockReportRepo struct {
	users        *mockUserRepo
	achievements *mockAchievementRepo
	calls        int
	lastScope    access.Scope
}

func (m *mockReportRepo) CountActiveUsers(_ context.Context, scope access.Scope) (int64, error) {
	m.calls++
	m.lastScope = scope
	m.users.mu.Lock()
	defer m.users.mu.Unlock()
	return int64(len(m.users.visible(scope))), nil
}

func (m *mockReportRepo) CountUsersWithAchievements(_ context.Context, scope access.Scope) (int64, error) {
	m.users.mu.Lock()
	visible := m.users.visible(scope)
	m.users.mu.Unlock()

	m.achievements.mu.Lock()
	defer m.achievements.mu.Unlock()
	var n int64
	for _, u := range visible {
		if rec, ok := m.achievements.records[u.ID]; ok && rec.HasAny() {
			n++
		}
	}
	return n, nil
}

func (m *mockReportRepo) CountByRole(_ context.Context, _ access.Scope) ([]repository.RoleCount, error) {
	return []repository.RoleCount{{RoleName: "vykladach", RoleDisplay: "Викладач", Count: 1}}, nil
}

func (m *mockReportRepo) CountByFaculty(_ context.Context, _ access.Scope) ([]repository.FacultyCount, error) {
	return []repository.FacultyCount{{FacultyID: 1, FacultyName: "ФІТ", Count: 1}}, nil
}

// ── fixture ──

type mocks struct {
	users        *mockUserRepo
	achievements *mockAchievementRepo
	audit        *mockAuditLogRepo
	report       *mockReportRepo
	depts        *mockDeptRepo
}

func newMockRepository() (*repository.Repository, *mocks) {
	m := &mocks{
		users:        newMockUserRepo(),
		achievements: newMockAchievementRepo(),
		audit:        &mockAuditLogRepo{},
		depts: &mockDeptRepo{departments: []model.Department{
			{ID: 3, FacultyID: 1, Name: "Кафедра програмної інженерії", ShortName: "ПІ", Faculty: &model.Faculty{ID: 1, ShortName: "ФІТ"}},
			{ID: 7, FacultyID: 1, Name: "Кафедра комп'ютерних наук", ShortName: "КН"},
			{ID: 9, FacultyID: 2, Name: "Кафедра фізики", ShortName: "Ф"},
		}},
	}
	m.report = &mockReportRepo{users: m.users, achievements: m.achievements}
	repo := &repository.Repository{
		User:        m.users,
		Achievement: m.achievements,
		Faculty: &mockFacultyRepo{faculties: []model.Faculty{
			{ID: 1, Name: "Факультет інформаційних технологій", ShortName: "ФІТ"},
			{ID: 2, Name: "Фізичний факультет", ShortName: "ФФ"},
		}},
		Department: m.depts,
		AuditLog:   m.audit,
		Report:     m.report,
	}
	return repo, m
}

func int64Ptr(v int64) *int64 { return &v }

var (
	roleAdmin      = &model.Role{ID: 1, Name: "admin", DisplayName: "Адміністратор"}
	roleDekanat    = &model.Role{ID: 2, Name: "dekanat", DisplayName: "Деканат"}
	roleZaviduvach = &model.Role{ID: 3, Name: "zaviduvach", DisplayName: "Завідувач кафедри"}
	roleVykladach  = &model.Role{ID: 4, Name: "vykladach", DisplayName: "Викладач"}
)

// newTestUser creates an active user placed in faculty/department.
func newTestUser(id int64, name string, role *model.Role, facultyID, departmentID int64) *model.User {
	u := &model.User{
		ID:         id,
		EmployeeID: "EMP" + name,
		FullName:   name,
		RoleID:     role.ID,
		Role:       role,
		IsActive:   true,
	}
	if facultyID != 0 {
		u.FacultyID = int64Ptr(facultyID)
		u.Faculty = &model.Faculty{ID: facultyID, ShortName: "F" + string(rune('0'+facultyID))}
	}
	if departmentID != 0 {
		u.DepartmentID = int64Ptr(departmentID)
		u.Department = &model.Department{ID: departmentID, FacultyID: facultyID, ShortName: "D" + string(rune('0'+departmentID))}
	}
	return u
}
