package handlers

import (
	"UnifyMD/models"
	"UnifyMD/services"
	"fmt"
	"net/http"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

const exportSheet = "Patients"

var exportHeaders = map[string]string{
	"A1": "ID",
	"B1": "First Name",
	"C1": "Last Name",
	"D1": "Date of Birth",
	"E1": "Sex",
	"F1": "Last Updated",
}

type ExportHandler struct {
	service services.PatientService
}

func NewExportHandler(service services.PatientService) *ExportHandler {
	return &ExportHandler{service: service}
}

// ExportPatients streams the patient list as an xlsx workbook.
func (h *ExportHandler) ExportPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to export patients")
		return
	}

	file := patientWorkbook(patients)
	filename := fmt.Sprintf("patients-%s.xlsx", time.Now().Format("2006-01-02"))

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := file.Write(c.Writer); err != nil {
		c.Error(err)
	}
}

func patientWorkbook(patients []models.PatientSummary) *excelize.File {
	file := excelize.NewFile()
	file.SetSheetName("Sheet1", exportSheet)
	for cell, title := range exportHeaders {
		file.SetCellValue(exportSheet, cell, title)
	}
	for i, p := range patients {
		row := i + 2
		file.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), p.ID.String())
		file.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), p.FirstName)
		file.SetCellValue(exportSheet, fmt.Sprintf("C%d", row), p.LastName)
		file.SetCellValue(exportSheet, fmt.Sprintf("D%d", row), time.Time(p.DateOfBirth).Format("2006-01-02"))
		file.SetCellValue(exportSheet, fmt.Sprintf("E%d", row), p.Sex)
		file.SetCellValue(exportSheet, fmt.Sprintf("F%d", row), p.UpdatedAt.UTC().Format(time.RFC3339))
	}
	return file
}
