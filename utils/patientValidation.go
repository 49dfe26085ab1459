package utils

import (
	"UnifyMD/models"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gorm.io/datatypes"
)

// DateLayout is the wire format of calendar dates in forms.
const DateLayout = "2006-01-02"

var isDate = validation.Date(DateLayout).Error("must be a valid date (YYYY-MM-DD)")

// ValidateCreatePatient validates a create-patient form and returns the
// patient ready for insertion, with both phone fields in international
// format. Field failures come back as validation.Errors.
func ValidateCreatePatient(in *models.CreatePatientInput) (*models.Patient, error) {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
		validation.Field(&in.FirstName, validation.Required),
		validation.Field(&in.LastName, validation.Required),
		validation.Field(&in.DateOfBirth, validation.Required, isDate),
		validation.Field(&in.Sex, validation.Required),
		validation.Field(&in.Allergies, validation.Required),
		validation.Field(&in.PhoneNumber, validation.Required, isPhone),
		validation.Field(&in.EmergencyContact, validation.Required, isPhone),
		validation.Field(&in.FamilyIllnessHistory, validation.Required),
		validation.Field(&in.FamilySymptomsHistory, validation.Required),
	)
	if err != nil {
		return nil, err
	}

	dob, _ := time.Parse(DateLayout, in.DateOfBirth)
	phone, _ := NormalizePhone(in.PhoneNumber)
	emergency, _ := NormalizePhone(in.EmergencyContact)

	return &models.Patient{
		Email:                 in.Email,
		FirstName:             in.FirstName,
		LastName:              in.LastName,
		DateOfBirth:           datatypes.Date(dob),
		Sex:                   in.Sex,
		Allergies:             in.Allergies,
		PhoneNumber:           phone,
		EmergencyContact:      emergency,
		FamilyIllnessHistory:  in.FamilyIllnessHistory,
		FamilySymptomsHistory: in.FamilySymptomsHistory,
	}, nil
}
