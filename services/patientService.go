package services

import (
	"UnifyMD/events"
	"UnifyMD/models"
	"UnifyMD/repositories"
	"UnifyMD/utils"
	"context"
)

type PatientService interface {
	Create(ctx context.Context, input *models.CreatePatientInput) (*models.Patient, error)
	GetByID(ctx context.Context, id string) (*models.PatientDetail, error)
	GetAll(ctx context.Context) ([]models.PatientSummary, error)
	Delete(ctx context.Context, id string) error
}

type patientService struct {
	repository repositories.PatientRepository
	publisher  events.Publisher
}

func NewPatientService(repository repositories.PatientRepository, publisher events.Publisher) PatientService {
	return &patientService{repository: repository, publisher: publisher}
}

// Create validates the form and inserts the patient. Validation failures are
// returned as validation.Errors.
func (s *patientService) Create(ctx context.Context, input *models.CreatePatientInput) (*models.Patient, error) {
	patient, err := utils.ValidateCreatePatient(input)
	if err != nil {
		return nil, err
	}
	if err := s.repository.Create(ctx, patient); err != nil {
		return nil, err
	}
	publish(ctx, s.publisher, events.New(events.PatientCreated, patient.ID.String()))
	return patient, nil
}

func (s *patientService) GetByID(ctx context.Context, id string) (*models.PatientDetail, error) {
	patientID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	patient, err := s.repository.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (s *patientService) GetAll(ctx context.Context) ([]models.PatientSummary, error) {
	return s.repository.GetAll(ctx)
}

// Delete removes the patient and everything recorded for it. A patient that
// does not exist is reported as deleted.
func (s *patientService) Delete(ctx context.Context, id string) error {
	patientID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, patientID); err != nil {
		return err
	}
	publish(ctx, s.publisher, events.New(events.PatientDeleted, patientID.String()))
	return nil
}
