package v1

import (
	"net/http"
	"strconv"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := protected.Group("/applications")
	{
		applications.GET("", handler.GetMyApplications)
		applications.POST("", handler.Apply)
		applications.GET("/:id", handler.GetDetails)
		applications.GET("/opportunity/:id", handler.ListForOpportunity)
		applications.PATCH("/status/:id", handler.UpdateStatus)
	}
}

type ApplyRequest struct {
	Opportunity int64  `json:"opportunity" binding:"required"`
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url" binding:"omitempty,url"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=applied shortlisted rejected accepted"`
}

// Apply godoc
// @Summary      Apply to an opportunity
// @Description  Submit an application (students only, one per opportunity)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), userID, role, req.Opportunity, req.CoverLetter, req.ResumeURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// GetMyApplications godoc
// @Summary      Get my applications
// @Description  All applications submitted by the caller
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	applications, err := h.applicationUC.GetMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	if applications == nil {
		applications = []domain.Application{}
	}

	response.Success(c, http.StatusOK, "My applications", applications)
}

// GetDetails godoc
// @Summary      Get one of my applications
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetDetails(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	app, err := h.applicationUC.GetMyApplication(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application details", app)
}

// ListForOpportunity godoc
// @Summary      List applications for an opportunity
// @Description  All applications against a posting (creator only)
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Opportunity ID"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/opportunity/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForOpportunity(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	opportunityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid opportunity ID"))
		return
	}

	applications, err := h.applicationUC.ListByOpportunity(c.Request.Context(), userID, opportunityID)
	if err != nil {
		c.Error(err)
		return
	}
	if applications == nil {
		applications = []domain.Application{}
	}

	response.Success(c, http.StatusOK, "Applications for opportunity", applications)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Set the status of an application (opportunity creator only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "New status"
// @Success      200   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/status/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}
