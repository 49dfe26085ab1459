package handlers

import (
	"UnifyMD/middlewares"
	"UnifyMD/models"
	"UnifyMD/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RecordHandler struct {
	service services.RecordService
}

func NewRecordHandler(service services.RecordService) *RecordHandler {
	return &RecordHandler{service: service}
}

// CreatePatientRecord stores a record with its medications for the patient
// in the path. A patientId in the body is ignored.
func (h *RecordHandler) CreatePatientRecord(c *gin.Context) {
	var input models.CreateRecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	input.PatientID = c.Param("patient_id")

	record, err := h.service.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err, "Failed to create record")
		return
	}
	middlewares.RespondSuccess(c, http.StatusCreated, record)
}

func (h *RecordHandler) GetPatientRecord(c *gin.Context) {
	record, err := h.service.GetByID(c.Request.Context(), c.Param("record_id"))
	if err != nil {
		respondError(c, err, "Failed to get record")
		return
	}
	middlewares.RespondSuccess(c, http.StatusOK, record)
}
