package handler

import "github.com/seojacky/account-teacher/internal/service"

// Handler is the aggregate entry point of all handlers.
type Handler struct {
	Auth        *AuthHandler
	Achievement *AchievementHandler
	Report      *ReportHandler
	Directory   *DirectoryHandler
	System      *SystemHandler
}

// NewHandler builds the aggregate. deps are the readiness checks.
func NewHandler(svc *service.Service, deps map[string]Pinger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Achievement: NewAchievementHandler(svc.Achievement),
		Report:      NewReportHandler(svc.Report),
		Directory:   NewDirectoryHandler(svc.Directory),
		System:      NewSystemHandler(svc.System, deps),
	}
}
