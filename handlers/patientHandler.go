package handlers

import (
	"UnifyMD/middlewares"
	"UnifyMD/models"
	"UnifyMD/services"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PatientHandler struct {
	service services.PatientService
}

func NewPatientHandler(service services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// CreatePatient accepts the patient form as JSON or as form values.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var input models.CreatePatientInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	patient, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err, "Failed to create patient")
		return
	}
	middlewares.RespondSuccess(c, http.StatusCreated, patient)
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
	patient, err := h.service.GetByID(c.Request.Context(), c.Param("patient_id"))
	if err != nil {
		respondError(c, err, "Failed to get patient")
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, patient)
}

func (h *PatientHandler) GetPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get patients")
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, patients)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	patientID := c.Param("patient_id")
	if err := h.service.Delete(c.Request.Context(), patientID); err != nil {
		respondError(c, err, "Failed to delete patient")
		return
	}
	doctorID, _ := middlewares.ExtractDoctorIDFromContext(c.Request.Context())
	log.Info().Str("patient_id", patientID).Str("doctor_id", doctorID).Msg("patient deleted")
	middlewares.RespondSuccess(c, http.StatusOK, nil)
}
