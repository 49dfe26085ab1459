package services

import (
	"UnifyMD/events"
	"UnifyMD/models"
	"UnifyMD/repositories"
	"context"
	"errors"
)

type DoctorService interface {
	HandleAuthEvent(ctx context.Context, event *models.AuthEvent) error
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
}

type doctorService struct {
	repository repositories.DoctorRepository
	publisher  events.Publisher
}

func NewDoctorService(repository repositories.DoctorRepository, publisher events.Publisher) DoctorService {
	return &doctorService{repository: repository, publisher: publisher}
}

// HandleAuthEvent mirrors a user event from the auth provider into the doctor
// table. user.deleted removes the doctor; every other event type inserts one.
func (s *doctorService) HandleAuthEvent(ctx context.Context, event *models.AuthEvent) error {
	if event.UserID == "" {
		return errors.New("missing user_id")
	}

	if event.EventType == models.AuthEventUserDeleted {
		if err := s.repository.Delete(ctx, event.UserID); err != nil {
			return err
		}
		publish(ctx, s.publisher, events.New(events.DoctorDeleted, event.UserID))
		return nil
	}

	doctor := &models.Doctor{
		ID:        event.UserID,
		Email:     event.Email,
		FirstName: event.FirstName,
		LastName:  event.LastName,
	}
	if err := s.repository.Create(ctx, doctor); err != nil {
		return err
	}
	publish(ctx, s.publisher, events.New(events.DoctorCreated, doctor.ID))
	return nil
}

func (s *doctorService) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	doctor, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}
