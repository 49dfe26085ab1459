package handlers

import (
	"UnifyMD/agent"
	"UnifyMD/models"
	"UnifyMD/services"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePatientService struct {
	created   *models.CreatePatientInput
	detail    *models.PatientDetail
	list      []models.PatientSummary
	deletedID string
	err       error
}

func (f *fakePatientService) Create(_ context.Context, in *models.CreatePatientInput) (*models.Patient, error) {
	f.created = in
	if f.err != nil {
		return nil, f.err
	}
	return &models.Patient{ID: uuid.New(), FirstName: in.FirstName, LastName: in.LastName}, nil
}

func (f *fakePatientService) GetByID(_ context.Context, id string) (*models.PatientDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func (f *fakePatientService) GetAll(context.Context) ([]models.PatientSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakePatientService) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

type fakeRecordService struct {
	input  *models.CreateRecordInput
	record *models.Record
	err    error
}

func (f *fakeRecordService) Create(_ context.Context, in *models.CreateRecordInput) (*models.Record, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return f.record, nil
}

func (f *fakeRecordService) GetByID(context.Context, string) (*models.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.record, nil
}

type fakeDoctorService struct {
	events []*models.AuthEvent
	err    error
}

func (f *fakeDoctorService) HandleAuthEvent(_ context.Context, e *models.AuthEvent) error {
	f.events = append(f.events, e)
	return f.err
}

func (f *fakeDoctorService) GetByID(context.Context, string) (*models.Doctor, error) {
	return nil, services.ErrDoctorNotFound
}

type fakeExecutor struct {
	input  string
	output agent.Response
	err    error
}

func (f *fakeExecutor) Invoke(_ context.Context, input string) (agent.Response, error) {
	f.input = input
	return f.output, f.err
}

func perform(r http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
