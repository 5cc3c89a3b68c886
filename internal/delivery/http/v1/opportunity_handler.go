package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type OpportunityHandler struct {
	opportunityUC domain.OpportunityUsecase
}

func NewOpportunityHandler(protected *gin.RouterGroup, opportunityUC domain.OpportunityUsecase) {
	handler := &OpportunityHandler{opportunityUC: opportunityUC}

	opportunities := protected.Group("/opportunities")
	{
		opportunities.GET("", handler.List)
		opportunities.POST("", handler.Create)
		opportunities.GET("/my-opportunities", handler.ListMine)
		opportunities.GET("/:id", handler.GetDetails)
		opportunities.PUT("/:id", handler.Update)
		opportunities.PATCH("/:id", handler.Update)
		opportunities.DELETE("/:id", handler.Delete)
	}
}

type CreateOpportunityRequest struct {
	Title               string `json:"title" binding:"required,max=255"`
	Description         string `json:"description" binding:"required"`
	Type                string `json:"type" binding:"required,oneof=job internship project research"`
	Company             string `json:"company" binding:"max=255"`
	Location            string `json:"location" binding:"max=255"`
	Requirements        string `json:"requirements"`
	SalaryRange         string `json:"salary_range" binding:"max=100"`
	ApplicationDeadline string `json:"application_deadline" binding:"omitempty"`
}

type UpdateOpportunityRequest struct {
	Title               *string `json:"title" binding:"omitempty,max=255"`
	Description         *string `json:"description"`
	Type                *string `json:"type" binding:"omitempty,oneof=job internship project research"`
	Company             *string `json:"company" binding:"omitempty,max=255"`
	Location            *string `json:"location" binding:"omitempty,max=255"`
	Requirements        *string `json:"requirements"`
	SalaryRange         *string `json:"salary_range" binding:"omitempty,max=100"`
	ApplicationDeadline *string `json:"application_deadline"`
	IsActive            *bool   `json:"is_active"`
}

// Create godoc
// @Summary      Create an opportunity
// @Description  Post a job/internship/project/research listing (alumni and faculty; research is faculty-only)
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Param        body  body      CreateOpportunityRequest  true  "Opportunity JSON"
// @Success      201   {object}  response.Response{data=domain.Opportunity}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /opportunities [post]
// @Security     BearerAuth
func (h *OpportunityHandler) Create(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	var req CreateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	deadline, err := parseDeadline(req.ApplicationDeadline)
	if err != nil {
		c.Error(apperror.BadRequest("application_deadline must be RFC3339 or YYYY-MM-DD"))
		return
	}

	opp := &domain.Opportunity{
		Title:               req.Title,
		Description:         req.Description,
		Type:                req.Type,
		Company:             req.Company,
		Location:            req.Location,
		Requirements:        req.Requirements,
		SalaryRange:         req.SalaryRange,
		ApplicationDeadline: deadline,
	}

	if err := h.opportunityUC.Create(c.Request.Context(), userID, role, opp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Opportunity created", opp)
}

// List godoc
// @Summary      List active opportunities
// @Description  Active postings only, with optional type filter and free-text search over title, description and company
// @Tags         opportunities
// @Produce      json
// @Param        type       query     string  false  "Exact type filter"
// @Param        search     query     string  false  "Case-insensitive substring search"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /opportunities [get]
// @Security     BearerAuth
func (h *OpportunityHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	filter := domain.OpportunityFilter{
		Type:   c.Query("type"),
		Search: c.Query("search"),
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}

	opportunities, total, err := h.opportunityUC.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	if opportunities == nil {
		opportunities = []domain.Opportunity{}
	}

	response.Success(c, http.StatusOK, "Opportunity list", gin.H{
		"opportunities": opportunities,
		"total":         total,
		"page":          page,
		"page_size":     pageSize,
	})
}

// ListMine godoc
// @Summary      List my opportunities
// @Description  All the caller's postings, active or not
// @Tags         opportunities
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Opportunity}
// @Router       /opportunities/my-opportunities [get]
// @Security     BearerAuth
func (h *OpportunityHandler) ListMine(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	opportunities, err := h.opportunityUC.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	if opportunities == nil {
		opportunities = []domain.Opportunity{}
	}

	response.Success(c, http.StatusOK, "My opportunities", opportunities)
}

// GetDetails godoc
// @Summary      Get opportunity details
// @Tags         opportunities
// @Produce      json
// @Param        id   path      int  true  "Opportunity ID"
// @Success      200  {object}  response.Response{data=domain.Opportunity}
// @Failure      404  {object}  response.Response
// @Router       /opportunities/{id} [get]
// @Security     BearerAuth
func (h *OpportunityHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	opp, err := h.opportunityUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Opportunity details", opp)
}

// Update godoc
// @Summary      Update an opportunity
// @Description  Update supplied fields of a posting (creator only)
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Opportunity ID"
// @Param        body  body      UpdateOpportunityRequest  true  "Fields to update"
// @Success      200   {object}  response.Response{data=domain.Opportunity}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /opportunities/{id} [put]
// @Security     BearerAuth
func (h *OpportunityHandler) Update(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// PUT replaces the posting, so the core fields must all be present.
	// PATCH takes any subset.
	if c.Request.Method == http.MethodPut &&
		(req.Title == nil || req.Description == nil || req.Type == nil) {
		c.Error(apperror.BadRequest("title, description and type are required"))
		return
	}

	update := domain.OpportunityUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Company:      req.Company,
		Location:     req.Location,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		IsActive:     req.IsActive,
	}
	if req.ApplicationDeadline != nil {
		deadline, err := parseDeadline(*req.ApplicationDeadline)
		if err != nil {
			c.Error(apperror.BadRequest("application_deadline must be RFC3339 or YYYY-MM-DD"))
			return
		}
		update.ApplicationDeadline = deadline
	}

	opp, err := h.opportunityUC.Update(c.Request.Context(), userID, role, id, update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Opportunity updated", opp)
}

// Delete godoc
// @Summary      Delete an opportunity
// @Description  Permanently remove a posting (creator only)
// @Tags         opportunities
// @Produce      json
// @Param        id   path      int  true  "Opportunity ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /opportunities/{id} [delete]
// @Security     BearerAuth
func (h *OpportunityHandler) Delete(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	if err := h.opportunityUC.Delete(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Opportunity deleted", nil)
}

// parseDeadline accepts RFC3339 timestamps or bare dates.
func parseDeadline(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
