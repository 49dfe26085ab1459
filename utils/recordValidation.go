package utils

import (
	"UnifyMD/models"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

var validMedication = validation.By(func(value interface{}) error {
	m, _ := value.(models.MedicationInput)
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required.Error("Required")),
		validation.Field(&m.Description, validation.Required.Error("Required")),
	)
})

// ValidateCreateRecord validates a create-record form and returns the record
// with its medications attached. Medication errors are keyed by list index.
func ValidateCreateRecord(in *models.CreateRecordInput) (*models.Record, error) {
	err := validation.ValidateStruct(in,
		validation.Field(&in.PatientID, validation.Required, is.UUID),
		validation.Field(&in.EventName, validation.Required),
		validation.Field(&in.HealthFacility, validation.Required),
		validation.Field(&in.Symptoms, validation.Required),
		validation.Field(&in.InitialSymptomTime, validation.Required, isDate),
		validation.Field(&in.SymptomSeverityDegree, validation.Required),
		validation.Field(&in.PastYearMajorIllness, validation.Required),
		validation.Field(&in.TakenMedications, validation.Required),
		validation.Field(&in.MilitaryServiceStatus, validation.Required),
		validation.Field(&in.SexualActivity, validation.Required),
		validation.Field(&in.AlcoholUsage, validation.Required),
		validation.Field(&in.SmokeUsage, validation.Required),
		validation.Field(&in.Medications, validation.NotNil.Error("Required"), validation.Each(validMedication)),
	)
	if err != nil {
		return nil, err
	}

	patientID, _ := uuid.Parse(in.PatientID)
	started, _ := time.Parse(DateLayout, in.InitialSymptomTime)

	return &models.Record{
		PatientID:             patientID,
		EventName:             in.EventName,
		HealthFacility:        in.HealthFacility,
		Symptoms:              in.Symptoms,
		InitialSymptomTime:    datatypes.Date(started),
		SymptomSeverityDegree: in.SymptomSeverityDegree,
		PastYearMajorIllness:  in.PastYearMajorIllness,
		TakenMedications:      in.TakenMedications,
		MilitaryServiceStatus: in.MilitaryServiceStatus,
		SexualActivity:        in.SexualActivity,
		AlcoholUsage:          in.AlcoholUsage,
		SmokeUsage:            in.SmokeUsage,
		Medications: lo.Map(in.Medications, func(m models.MedicationInput, _ int) models.Medication {
			return models.Medication{Name: m.Name, Description: m.Description}
		}),
	}, nil
}
