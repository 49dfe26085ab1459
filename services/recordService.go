package services

import (
	"UnifyMD/events"
	"UnifyMD/models"
	"UnifyMD/repositories"
	"UnifyMD/utils"
	"context"
)

type RecordService interface {
	Create(ctx context.Context, input *models.CreateRecordInput) (*models.Record, error)
	GetByID(ctx context.Context, id string) (*models.Record, error)
}

type recordService struct {
	records   repositories.RecordRepository
	patients  repositories.PatientRepository
	publisher events.Publisher
}

func NewRecordService(records repositories.RecordRepository, patients repositories.PatientRepository, publisher events.Publisher) RecordService {
	return &recordService{records: records, patients: patients, publisher: publisher}
}

// Create validates the form and stores the record with its medications. The
// owning patient must exist.
func (s *recordService) Create(ctx context.Context, input *models.CreateRecordInput) (*models.Record, error) {
	record, err := utils.ValidateCreateRecord(input)
	if err != nil {
		return nil, err
	}

	exists, err := s.patients.Exists(ctx, record.PatientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}
	publish(ctx, s.publisher, events.New(events.RecordCreated, record.ID.String()))
	return record, nil
}

func (s *recordService) GetByID(ctx context.Context, id string) (*models.Record, error) {
	recordID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	record, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}
	return record, nil
}
