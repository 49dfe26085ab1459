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
	PatientCacheExpiry = time.Hour
	patientsCacheKey   = "patients_cache"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PatientDetail, error)
	GetAll(ctx context.Context) ([]models.PatientSummary, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type patientRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewPatientRepository(db *gorm.DB, cache *cache.Cache) PatientRepository {
	return &patientRepository{db: db, cache: cache}
}

func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	if err := r.db.WithContext(ctx).Omit("Records").Create(patient).Error; err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}

	if err := r.cache.Delete(ctx, patientsCacheKey); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate patients cache")
	}
	return nil
}

// GetByID returns nil and no error when the patient does not exist.
func (r *patientRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PatientDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := patientCacheKey(id)
	var cached models.PatientDetail
	if found, err := r.cache.GetJSON(ctx, cacheKey, &cached); err != nil {
		log.Warn().Err(err).Str("patient_id", id.String()).Msg("failed to get patient from cache")
	} else if found {
		return &cached, nil
	}

	db := r.db.WithContext(ctx)

	var patient models.Patient
	if err := db.First(&patient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	records := []models.RecordSummary{}
	err := db.Model(&models.Record{}).
		Select("id, created_at").
		Where("patient_id = ?", id).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get patient records: %w", err)
	}

	detail := &models.PatientDetail{Patient: patient, Records: records}
	if err := r.cache.SetJSON(ctx, cacheKey, detail, PatientCacheExpiry); err != nil {
		log.Warn().Err(err).Str("patient_id", id.String()).Msg("failed to set patient in cache")
	}
	return detail, nil
}

// Exists checks the store directly. Writes that depend on the patient row use
// it instead of the cached detail.
func (r *patientRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Patient{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check patient: %w", err)
	}
	return count > 0, nil
}

func (r *patientRepository) GetAll(ctx context.Context) ([]models.PatientSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var cached []models.PatientSummary
	if found, err := r.cache.GetJSON(ctx, patientsCacheKey, &cached); err != nil {
		log.Warn().Err(err).Msg("failed to get patients from cache")
	} else if found {
		return cached, nil
	}

	patients := []models.PatientSummary{}
	err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Select("id, first_name, last_name, updated_at, date_of_birth, sex").
		Order("updated_at DESC").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	if err := r.cache.SetJSON(ctx, patientsCacheKey, patients, PatientCacheExpiry); err != nil {
		log.Warn().Err(err).Msg("failed to set patients in cache")
	}
	return patients, nil
}

// Delete removes the patient with its records and their medications. Deleting
// a patient that does not exist is not an error.
func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var recordIDs []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Record{}).Where("patient_id = ?", id).Pluck("id", &recordIDs).Error; err != nil {
			return err
		}
		if len(recordIDs) > 0 {
			if err := tx.Where("record_id IN ?", recordIDs).Delete(&models.Medication{}).Error; err != nil {
				return err
			}
			if err := tx.Where("patient_id = ?", id).Delete(&models.Record{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Patient{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	keys := []string{patientCacheKey(id), patientsCacheKey}
	for _, recordID := range recordIDs {
		keys = append(keys, recordCacheKey(recordID))
	}
	if err := r.cache.Delete(ctx, keys...); err != nil {
		log.Warn().Err(err).Str("patient_id", id.String()).Msg("failed to invalidate patient cache")
	}
	return nil
}

func patientCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("patient_cache:%s", id)
}
