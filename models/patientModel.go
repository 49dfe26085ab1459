package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Doctor model. Rows mirror users of the external auth provider, so the ID is
// the provider's subject id and is never generated locally.
type Doctor struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	FirstName string    `gorm:"column:first_name;not null" json:"firstName"`
	LastName  string    `gorm:"column:last_name;not null" json:"lastName"`
	Email     string    `gorm:"column:email;not null" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Patient model
type Patient struct {
	ID                    uuid.UUID      `gorm:"primaryKey;type:uuid;column:id" json:"id"`
	Email                 string         `gorm:"column:email;not null" json:"email"`
	FirstName             string         `gorm:"column:first_name;not null" json:"firstName"`
	LastName              string         `gorm:"column:last_name;not null;index" json:"lastName"`
	DateOfBirth           datatypes.Date `gorm:"column:date_of_birth;not null" json:"dateOfBirth"`
	Sex                   string         `gorm:"column:sex;not null" json:"sex"`
	Allergies             string         `gorm:"column:allergies;not null" json:"allergies"`
	PhoneNumber           string         `gorm:"column:phone_number;not null" json:"phoneNumber"`
	EmergencyContact      string         `gorm:"column:emergency_contact;not null" json:"emergencyContact"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt             time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
	FamilyIllnessHistory  string         `gorm:"column:family_illness_history;not null" json:"familyIllnessHistory"`
	FamilySymptomsHistory string         `gorm:"column:family_symptoms_history;not null" json:"familySymptomsHistory"`
	Records               []Record       `gorm:"foreignKey:PatientID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Record model
type Record struct {
	ID                    uuid.UUID      `gorm:"primaryKey;type:uuid;column:id" json:"id"`
	PatientID             uuid.UUID      `gorm:"type:uuid;column:patient_id;not null;index" json:"patientId"`
	EventName             string         `gorm:"column:event_name;not null" json:"eventName"`
	HealthFacility        string         `gorm:"column:health_facility;not null" json:"healthFacility"`
	Symptoms              string         `gorm:"column:symptoms;not null" json:"symptoms"`
	InitialSymptomTime    datatypes.Date `gorm:"column:initial_symptom_time;not null" json:"initialSymptomTime"`
	SymptomSeverityDegree string         `gorm:"column:symptom_severity_degree;not null" json:"symptomSeverityDegree"`
	PastYearMajorIllness  string         `gorm:"column:past_year_major_illness;not null" json:"pastYearMajorIllness"`
	TakenMedications      string         `gorm:"column:taken_medications;not null" json:"takenMedications"`
	MilitaryServiceStatus string         `gorm:"column:military_service_status;not null" json:"militaryServiceStatus"`
	SexualActivity        string         `gorm:"column:sexual_activity;not null" json:"sexualActivity"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
	AlcoholUsage          string         `gorm:"column:alcohol_usage;not null" json:"alcoholUsage"`
	SmokeUsage            string         `gorm:"column:smoke_usage;not null" json:"smokeUsage"`
	Medications           []Medication   `gorm:"foreignKey:RecordID;references:ID;constraint:OnDelete:CASCADE" json:"medications"`
}

func (Record) TableName() string {
	return "records"
}

func (r *Record) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Medication model
type Medication struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;column:id" json:"id"`
	RecordID    uuid.UUID `gorm:"type:uuid;column:record_id;not null;index" json:"recordId"`
	Name        string    `gorm:"column:name;not null" json:"name"`
	Description string    `gorm:"column:description;not null" json:"description"`
}

func (Medication) TableName() string {
	return "medications"
}

func (m *Medication) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// PatientSummary is the column projection used by the patient list. Medical
// history never leaves the store through it.
type PatientSummary struct {
	ID          uuid.UUID      `gorm:"column:id" json:"id"`
	FirstName   string         `gorm:"column:first_name" json:"firstName"`
	LastName    string         `gorm:"column:last_name" json:"lastName"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updatedAt"`
	DateOfBirth datatypes.Date `gorm:"column:date_of_birth" json:"dateOfBirth"`
	Sex         string         `gorm:"column:sex" json:"sex"`
}

// RecordSummary identifies one record of a patient.
type RecordSummary struct {
	ID        uuid.UUID `gorm:"column:id" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

// PatientDetail is a patient together with its records, most recent first.
type PatientDetail struct {
	Patient
	Records []RecordSummary `json:"records"`
}
