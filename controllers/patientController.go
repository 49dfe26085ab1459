package controllers

import (
	"UnifyMD/handlers"
	"UnifyMD/middlewares"
	"UnifyMD/utils"

	"github.com/gin-gonic/gin"
)

// APIHandlers groups the handlers served under /api.
type APIHandlers struct {
	Patient *handlers.PatientHandler
	Record  *handlers.RecordHandler
	Export  *handlers.ExportHandler
	Webhook *handlers.WebhookHandler
	Chat    *handlers.ChatHandler
}

// SetupAPIRoutes registers the API. Everything except the auth provider
// webhook requires a doctor access token.
func SetupAPIRoutes(router *gin.Engine, h APIHandlers, issuer *utils.TokenIssuer, doctors middlewares.DoctorLookup) {
	api := router.Group("/api")

	api.POST("/users/webhook", h.Webhook.HandleUserEvent)

	protected := api.Group("", middlewares.TokenAuthMiddleware(issuer, doctors))
	{
		protected.GET("/patients", h.Patient.GetPatients)
		protected.POST("/patients", h.Patient.CreatePatient)
		protected.GET("/patients/export", h.Export.ExportPatients)
		protected.GET("/patients/:patient_id", h.Patient.GetPatient)
		protected.DELETE("/patients/:patient_id", h.Patient.DeletePatient)
		protected.POST("/patients/:patient_id/records", h.Record.CreatePatientRecord)

		protected.GET("/records/:record_id", h.Record.GetPatientRecord)

		protected.POST("/bot", h.Chat.Chat)
	}
}
