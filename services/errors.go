package services

import (
	"UnifyMD/events"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrPatientNotFound = errors.New("Patient not found")
	ErrRecordNotFound  = errors.New("Record not found")
	ErrDoctorNotFound  = errors.New("Doctor not found")
	ErrInvalidID       = errors.New("invalid id")
)

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}

// publish sends evt and only logs a failure; the write it reports on has
// already committed.
func publish(ctx context.Context, publisher events.Publisher, evt events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, evt); err != nil {
		log.Error().Err(err).Str("type", evt.Type).Str("entity_id", evt.EntityID).Msg("failed to publish event")
	}
}
