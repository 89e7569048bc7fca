package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/seojacky/account-teacher/internal/model"
)

// FacultyRepository is the faculty data access interface.
type FacultyRepository interface {
	List(ctx context.Context) ([]model.Faculty, error)
	GetByID(ctx context.Context, id int64) (*model.Faculty, error)
}

// DepartmentRepository is the department data access interface.
type DepartmentRepository interface {
	// List returns departments, optionally of one faculty.
	List(ctx context.Context, facultyID *int64) ([]model.Department, error)
	GetByID(ctx context.Context, id int64) (*model.Department, error)
}

type facultyRepo struct {
	db *gorm.DB
}

// NewFacultyRepo creates a FacultyRepository.
func NewFacultyRepo(db *gorm.DB) FacultyRepository {
	return &facultyRepo{db: db}
}

func (r *facultyRepo) List(ctx context.Context) ([]model.Faculty, error) {
	var faculties []model.Faculty
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&faculties).Error
	return faculties, err
}

func (r *facultyRepo) GetByID(ctx context.Context, id int64) (*model.Faculty, error) {
	var f model.Faculty
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// departmentRepo is the GORM implementation of DepartmentRepository.
type departmentRepo struct {
	db *gorm.DB
}

// NewDepartmentRepo creates a DepartmentRepository.
func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) List(ctx context.Context, facultyID *int64) ([]model.Department, error) {
	var depts []model.Department
	q := r.db.WithContext(ctx).Preload("Faculty")
	if facultyID != nil {
		q = q.Where("faculty_id = ?", *facultyID)
	}
	err := q.Order("name ASC").Find(&depts).Error
	return depts, err
}

func (r *departmentRepo) GetByID(ctx context.Context, id int64) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).
		Preload("Faculty").
		Where("id = ?", id).
		First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}
