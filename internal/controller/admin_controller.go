package controller

import (
	"github.com/gin-gonic/gin"

	"lumina_lms_backend/internal/service"
	"lumina_lms_backend/internal/util"
)

type AdminController struct {
	AdminService *service.AdminService
}

func NewAdminController(adminService *service.AdminService) *AdminController {
	return &AdminController{AdminService: adminService}
}

// GetEvents godoc
// @Summary Calendar events
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.CalendarEvent}
// @Router /api/admin/events [get]
func (c *AdminController) GetEvents(ctx *gin.Context) {
	events, err := c.AdminService.Events()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, events)
}

// AddEvent godoc
// @Summary Append a calendar event
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.EventRequest true "Event"
// @Success 201 {object} util.Response{data=model.CalendarEvent}
// @Failure 400 {object} util.Response
// @Router /api/admin/events [post]
func (c *AdminController) AddEvent(ctx *gin.Context) {
	var req service.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.AdminService.AddEvent(req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, event)
}

// GetCertificates godoc
// @Summary Issued certificates
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Certificate}
// @Router /api/admin/certificates [get]
func (c *AdminController) GetCertificates(ctx *gin.Context) {
	certs, err := c.AdminService.Certificates()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, certs)
}

// IssueCertificate godoc
// @Summary Issue a certificate
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CertificateRequest true "Certificate"
// @Success 201 {object} util.Response{data=model.Certificate}
// @Failure 400 {object} util.Response
// @Router /api/admin/certificates [post]
func (c *AdminController) IssueCertificate(ctx *gin.Context) {
	var req service.CertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	cert, err := c.AdminService.IssueCertificate(req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, cert)
}
