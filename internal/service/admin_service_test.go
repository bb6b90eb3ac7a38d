package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/internal/repository"
	"lumina_lms_backend/internal/util"
	"lumina_lms_backend/pkg/database"
)

func newAdminService(t *testing.T) *AdminService {
	t.Helper()
	db := database.Open()
	require.NoError(t, database.Seed(db))
	return NewAdminService(repository.NewCertificateRepository(db), repository.NewEventRepository(db))
}

func TestAddEventAppends(t *testing.T) {
	s := newAdminService(t)

	event, err := s.AddEvent(EventRequest{
		Title: "Guest Lecture: Systems Design",
		Date:  "2026-09-12",
		Type:  string(model.EventCourse),
	})
	require.NoError(t, err)

	events, err := s.Events()
	require.NoError(t, err)
	require.Len(t, events, 4)
	// Registration order is preserved; new entries go last.
	assert.Equal(t, "ev1", events[0].ID)
	assert.Equal(t, event.ID, events[3].ID)
}

func TestAddEventValidatesType(t *testing.T) {
	s := newAdminService(t)

	_, err := s.AddEvent(EventRequest{Title: "Party", Date: "2026-09-12", Type: "party"})
	assert.ErrorIs(t, err, util.ErrInvalidEvent)

	_, err = s.AddEvent(EventRequest{Title: " ", Date: "2026-09-12", Type: string(model.EventExam)})
	assert.ErrorIs(t, err, util.ErrEmptyField)
}

func TestIssueCertificateAppends(t *testing.T) {
	s := newAdminService(t)

	cert, err := s.IssueCertificate(CertificateRequest{
		StudentName: "Alex Johnson",
		CourseTitle: "Advanced React Patterns",
		IssueDate:   "2026-08-30",
		Code:        "MUST-RE-2026-014",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, cert.ID)

	certs, err := s.Certificates()
	require.NoError(t, err)
	require.Len(t, certs, 2)
	assert.Equal(t, "cert1", certs[0].ID)
	assert.Equal(t, cert.ID, certs[1].ID)
}

func TestIssueCertificateValidation(t *testing.T) {
	s := newAdminService(t)

	_, err := s.IssueCertificate(CertificateRequest{
		StudentName: " ",
		CourseTitle: "x",
		IssueDate:   "2026-08-30",
		Code:        "c",
	})
	assert.ErrorIs(t, err, util.ErrEmptyField)
}
