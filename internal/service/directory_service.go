package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/seojacky/account-teacher/internal/dto"
	"github.com/seojacky/account-teacher/internal/repository"
)

// DirectoryService lists the org structure used by report filters.
type DirectoryService interface {
	ListFaculties(ctx context.Context) ([]dto.FacultyResponse, error)
	ListDepartments(ctx context.Context, facultyID *int64) ([]dto.DepartmentResponse, error)
}

type directoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDirectoryService creates a DirectoryService.
func NewDirectoryService(repo *repository.Repository, logger *zap.Logger) DirectoryService {
	return &directoryService{repo: repo, logger: logger}
}

func (s *directoryService) ListFaculties(ctx context.Context) ([]dto.FacultyResponse, error) {
	faculties, err := s.repo.Faculty.List(ctx)
	if err != nil {
		s.logger.Error("failed to list faculties", zap.Error(err))
		return nil, storeError(err)
	}
	out := make([]dto.FacultyResponse, 0, len(faculties))
	for _, f := range faculties {
		out = append(out, dto.FacultyResponse{ID: f.ID, Name: f.Name, ShortName: f.ShortName})
	}
	return out, nil
}

func (s *directoryService) ListDepartments(ctx context.Context, facultyID *int64) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx, facultyID)
	if err != nil {
		s.logger.Error("failed to list departments", zap.Error(err))
		return nil, storeError(err)
	}
	out := make([]dto.DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		item := dto.DepartmentResponse{ID: d.ID, FacultyID: d.FacultyID, Name: d.Name, ShortName: d.ShortName}
		if d.Faculty != nil {
			item.FacultyName = d.Faculty.ShortName
		}
		out = append(out, item)
	}
	return out, nil
}
