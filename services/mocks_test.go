package services

import (
	"UnifyMD/events"
	"UnifyMD/models"
	"context"
	"sync"

	"github.com/google/uuid"
)

type mockPatientRepo struct {
	patients  map[uuid.UUID]*models.Patient
	cached    map[uuid.UUID]*models.PatientDetail
	deleted   []uuid.UUID
	createErr error
	getErr    error
	deleteErr error
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: map[uuid.UUID]*models.Patient{}, cached: map[uuid.UUID]*models.PatientDetail{}}
}

func (m *mockPatientRepo) Create(_ context.Context, p *models.Patient) error {
	if m.createErr != nil {
		return m.createErr
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id uuid.UUID) (*models.PatientDetail, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if detail, ok := m.cached[id]; ok {
		return detail, nil
	}
	p, ok := m.patients[id]
	if !ok {
		return nil, nil
	}
	return &models.PatientDetail{Patient: *p, Records: []models.RecordSummary{}}, nil
}

func (m *mockPatientRepo) GetAll(_ context.Context) ([]models.PatientSummary, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	out := []models.PatientSummary{}
	for _, p := range m.patients {
		out = append(out, models.PatientSummary{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName})
	}
	return out, nil
}

func (m *mockPatientRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	_, ok := m.patients[id]
	return ok, nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.patients, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockRecordRepo struct {
	records   map[uuid.UUID]*models.Record
	createErr error
}

func newMockRecordRepo() *mockRecordRepo {
	return &mockRecordRepo{records: map[uuid.UUID]*models.Record{}}
}

func (m *mockRecordRepo) Create(_ context.Context, r *models.Record) error {
	if m.createErr != nil {
		return m.createErr
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	for i := range r.Medications {
		r.Medications[i].RecordID = r.ID
	}
	m.records[r.ID] = r
	return nil
}

func (m *mockRecordRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Record, error) {
	r, ok := m.records[id]
	if !ok {
		return nil, nil
	}
	return r, nil
}

type mockDoctorRepo struct {
	doctors   map[string]*models.Doctor
	createErr error
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: map[string]*models.Doctor{}}
}

func (m *mockDoctorRepo) Create(_ context.Context, d *models.Doctor) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, nil
	}
	return d, nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, id string) error {
	delete(m.doctors, id)
	return nil
}

type mockPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (m *mockPublisher) Publish(_ context.Context, evt events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, evt)
	return m.err
}

func (m *mockPublisher) Close() error { return nil }

func (m *mockPublisher) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.events))
	for _, e := range m.events {
		out = append(out, e.Type)
	}
	return out
}
