package repository

import (
	"lumina_lms_backend/internal/model"
	"lumina_lms_backend/pkg/database"
)

// Certificates and calendar events are append-only registries: no
// update or delete operations exist, and list order is issue order.

type CertificateRepository struct {
	DB *database.DB
}

func NewCertificateRepository(db *database.DB) *CertificateRepository {
	return &CertificateRepository{DB: db}
}

func (r *CertificateRepository) FindAll() ([]model.Certificate, error) {
	r.DB.Certificates.RLock()
	defer r.DB.Certificates.RUnlock()

	out := make([]model.Certificate, 0, len(r.DB.Certificates.Rows))
	for _, c := range r.DB.Certificates.Rows {
		out = append(out, *c)
	}
	return out, nil
}

func (r *CertificateRepository) Create(cert *model.Certificate) error {
	r.DB.Certificates.Lock()
	defer r.DB.Certificates.Unlock()

	cp := *cert
	r.DB.Certificates.Rows = append(r.DB.Certificates.Rows, &cp)
	return nil
}

type EventRepository struct {
	DB *database.DB
}

func NewEventRepository(db *database.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) FindAll() ([]model.CalendarEvent, error) {
	r.DB.Events.RLock()
	defer r.DB.Events.RUnlock()

	out := make([]model.CalendarEvent, 0, len(r.DB.Events.Rows))
	for _, e := range r.DB.Events.Rows {
		out = append(out, *e)
	}
	return out, nil
}

func (r *EventRepository) Create(event *model.CalendarEvent) error {
	r.DB.Events.Lock()
	defer r.DB.Events.Unlock()

	cp := *event
	r.DB.Events.Rows = append(r.DB.Events.Rows, &cp)
	return nil
}
