package models

// CreatePatientInput is the raw create-patient form as submitted by a client.
// Dates are YYYY-MM-DD strings until validated.
type CreatePatientInput struct {
	Email                 string `json:"email" form:"email"`
	FirstName             string `json:"firstName" form:"firstName"`
	LastName              string `json:"lastName" form:"lastName"`
	DateOfBirth           string `json:"dateOfBirth" form:"dateOfBirth"`
	Sex                   string `json:"sex" form:"sex"`
	Allergies             string `json:"allergies" form:"allergies"`
	PhoneNumber           string `json:"phoneNumber" form:"phoneNumber"`
	EmergencyContact      string `json:"emergencyContact" form:"emergencyContact"`
	FamilyIllnessHistory  string `json:"familyIllnessHistory" form:"familyIllnessHistory"`
	FamilySymptomsHistory string `json:"familySymptomsHistory" form:"familySymptomsHistory"`
}

// MedicationInput is one medication row of a record form.
type MedicationInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateRecordInput is the raw create-record form, one record plus its
// medications.
type CreateRecordInput struct {
	PatientID             string            `json:"patientId"`
	EventName             string            `json:"eventName"`
	HealthFacility        string            `json:"healthFacility"`
	Symptoms              string            `json:"symptoms"`
	InitialSymptomTime    string            `json:"initialSymptomTime"`
	SymptomSeverityDegree string            `json:"symptomSeverityDegree"`
	PastYearMajorIllness  string            `json:"pastYearMajorIllness"`
	TakenMedications      string            `json:"takenMedications"`
	MilitaryServiceStatus string            `json:"militaryServiceStatus"`
	SexualActivity        string            `json:"sexualActivity"`
	AlcoholUsage          string            `json:"alcoholUsage"`
	SmokeUsage            string            `json:"smokeUsage"`
	Medications           []MedicationInput `json:"medications"`
}

// AuthEvent is a user lifecycle event delivered by the auth provider webhook.
type AuthEvent struct {
	EventType string `json:"event_type" form:"event_type"`
	UserID    string `json:"user_id" form:"user_id"`
	Email     string `json:"email" form:"email"`
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
}

const (
	AuthEventUserCreated = "user.created"
	AuthEventUserDeleted = "user.deleted"
)
