package service

import (
	"strings"

	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/repository"
	"lumina_lms_backend/internal/util"
)

// AdminService owns the administrative registries: certificates and
// calendar events, both append-only.
type AdminService struct {
	CertificateRepo *repository.CertificateRepository
	EventRepo       *repository.EventRepository
}

func NewAdminService(certificateRepo *repository.CertificateRepository, eventRepo *repository.EventRepository) *AdminService {
	return &AdminService{
		CertificateRepo: certificateRepo,
		EventRepo:       eventRepo,
	}
}

type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
}

func (s *AdminService) AddEvent(req EventRequest) (*model.CalendarEvent, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Date) == "" {
		return nil, util.ErrEmptyField
	}

	switch model.EventType(req.Type) {
	case model.EventCourse, model.EventExam, model.EventHoliday, model.EventMaintenance:
	default:
		return nil, util.ErrInvalidEvent
	}

	event := &model.CalendarEvent{
		ID:          model.NewID(),
		Title:       strings.TrimSpace(req.Title),
		Date:        req.Date,
		Type:        model.EventType(req.Type),
		Description: req.Description,
	}
	if err := s.EventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *AdminService) Events() ([]model.CalendarEvent, error) {
	return s.EventRepo.FindAll()
}

type CertificateRequest struct {
	StudentName string `json:"studentName" binding:"required"`
	CourseTitle string `json:"courseTitle" binding:"required"`
	IssueDate   string `json:"issueDate" binding:"required"`
	Code        string `json:"code" binding:"required"`
}

func (s *AdminService) IssueCertificate(req CertificateRequest) (*model.Certificate, error) {
	if strings.TrimSpace(req.StudentName) == "" || strings.TrimSpace(req.CourseTitle) == "" || strings.TrimSpace(req.Code) == "" {
		return nil, util.ErrEmptyField
	}

	cert := &model.Certificate{
		ID:          model.NewID(),
		StudentName: strings.TrimSpace(req.StudentName),
		CourseTitle: strings.TrimSpace(req.CourseTitle),
		IssueDate:   req.IssueDate,
		Code:        req.Code,
	}
	if err := s.CertificateRepo.Create(cert); err != nil {
		return nil, err
	}
	return cert, nil
}

func (s *AdminService) Certificates() ([]model.Certificate, error) {
	return s.CertificateRepo.FindAll()
}
