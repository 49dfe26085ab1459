package services

import (
	"UnifyMD/events"
	"UnifyMD/models"
	"context"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

func validPatientInput() *models.CreatePatientInput {
	return &models.CreatePatientInput{
		Email:                 "jane@example.com",
		FirstName:             "Jane",
		LastName:              "Doe",
		DateOfBirth:           "1990-04-12",
		Sex:                   "female",
		Allergies:             "penicillin",
		PhoneNumber:           "2015550123",
		EmergencyContact:      "2015550124",
		FamilyIllnessHistory:  "none",
		FamilySymptomsHistory: "none",
	}
}

func TestPatientService_Create(t *testing.T) {
	repo := newMockPatientRepo()
	pub := &mockPublisher{}
	svc := NewPatientService(repo, pub)

	patient, err := svc.Create(context.Background(), validPatientInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patient.PhoneNumber != "+1 201-555-0123" {
		t.Errorf("expected normalized phone, got %s", patient.PhoneNumber)
	}
	if _, ok := repo.patients[patient.ID]; !ok {
		t.Error("expected patient to be stored")
	}
	if got := pub.types(); len(got) != 1 || got[0] != events.PatientCreated {
		t.Errorf("expected patient.created event, got %v", got)
	}
}

func TestPatientService_Create_ValidationError(t *testing.T) {
	repo := newMockPatientRepo()
	pub := &mockPublisher{}
	svc := NewPatientService(repo, pub)

	input := validPatientInput()
	input.PhoneNumber = "not-a-phone"

	_, err := svc.Create(context.Background(), input)
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation.Errors, got %v", err)
	}
	if len(repo.patients) != 0 {
		t.Error("invalid patient must not be stored")
	}
	if len(pub.types()) != 0 {
		t.Error("no event expected for a rejected patient")
	}
}

func TestPatientService_Create_StoreError(t *testing.T) {
	repo := newMockPatientRepo()
	repo.createErr = errors.New("connection refused")
	svc := NewPatientService(repo, &mockPublisher{})

	if _, err := svc.Create(context.Background(), validPatientInput()); err == nil {
		t.Fatal("expected store error")
	}
}

func TestPatientService_Create_PublishFailureIgnored(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewPatientService(repo, &mockPublisher{err: errors.New("broker down")})

	if _, err := svc.Create(context.Background(), validPatientInput()); err != nil {
		t.Fatalf("publish failure must not fail the write: %v", err)
	}
}

func TestPatientService_GetByID(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewPatientService(repo, events.NopPublisher{})
	ctx := context.Background()

	created, err := svc.Create(ctx, validPatientInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.GetByID(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("expected id %s, got %s", created.ID, got.ID)
	}
}

func TestPatientService_GetByID_NotFound(t *testing.T) {
	svc := NewPatientService(newMockPatientRepo(), events.NopPublisher{})

	_, err := svc.GetByID(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
	if err.Error() != "Patient not found" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestPatientService_GetByID_InvalidID(t *testing.T) {
	svc := NewPatientService(newMockPatientRepo(), events.NopPublisher{})

	if _, err := svc.GetByID(context.Background(), "42"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestPatientService_DeleteTwice(t *testing.T) {
	repo := newMockPatientRepo()
	pub := &mockPublisher{}
	svc := NewPatientService(repo, pub)
	ctx := context.Background()

	created, err := svc.Create(ctx, validPatientInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := svc.Delete(ctx, created.ID.String()); err != nil {
			t.Fatalf("Delete #%d: %v", i+1, err)
		}
	}
	if _, err := svc.GetByID(ctx, created.ID.String()); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected patient to be gone, got %v", err)
	}
	if got := pub.types(); len(got) != 3 || got[2] != events.PatientDeleted {
		t.Errorf("unexpected events %v", got)
	}
}

func TestPatientService_Delete_StoreError(t *testing.T) {
	repo := newMockPatientRepo()
	repo.deleteErr = errors.New("deadlock")
	pub := &mockPublisher{}
	svc := NewPatientService(repo, pub)

	if err := svc.Delete(context.Background(), uuid.NewString()); err == nil {
		t.Fatal("expected store error")
	}
	if len(pub.types()) != 0 {
		t.Error("no event expected when the delete fails")
	}
}
