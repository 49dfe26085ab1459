package repositories

import (
	"UnifyMD/cache"
	"UnifyMD/models"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	RecordCacheExpiry = 7 * 24 * time.Hour
)

type RecordRepository interface {
	Create(ctx context.Context, record *models.Record) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Record, error)
}

type recordRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewRecordRepository(db *gorm.DB, cache *cache.Cache) RecordRepository {
	return &recordRepository{db: db, cache: cache}
}

// Create inserts the record and then its medications, stamped with the new
// record id, in a single transaction.
func (r *recordRepository) Create(ctx context.Context, record *models.Record) error {
	medications := record.Medications

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Medications").Create(record).Error; err != nil {
			return fmt.Errorf("failed to create record: %w", err)
		}
		if len(medications) == 0 {
			return nil
		}
		for i := range medications {
			medications[i].RecordID = record.ID
		}
		if err := tx.Create(&medications).Error; err != nil {
			return fmt.Errorf("failed to create medications: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	record.Medications = medications

	if err := r.cache.Delete(ctx, patientCacheKey(record.PatientID)); err != nil {
		log.Warn().Err(err).Str("patient_id", record.PatientID.String()).Msg("failed to invalidate patient cache")
	}
	return nil
}

// GetByID returns nil and no error when the record does not exist.
func (r *recordRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := recordCacheKey(id)
	var cached models.Record
	if found, err := r.cache.GetJSON(ctx, cacheKey, &cached); err != nil {
		log.Warn().Err(err).Str("record_id", id.String()).Msg("failed to get record from cache")
	} else if found {
		return &cached, nil
	}

	var record models.Record
	err := r.db.WithContext(ctx).
		Preload("Medications").
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	if record.Medications == nil {
		record.Medications = []models.Medication{}
	}

	if err := r.cache.SetJSON(ctx, cacheKey, &record, RecordCacheExpiry); err != nil {
		log.Warn().Err(err).Str("record_id", id.String()).Msg("failed to set record in cache")
	}
	return &record, nil
}

func recordCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("record_cache:%s", id)
}
