package v1

import (
	"net/http"
	"time"

	"go-careerhub-backend/internal/delivery/http/response"
	"go-careerhub-backend/internal/domain"
	"go-careerhub-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := protected.Group("/profiles")
	{
		profiles.GET("", handler.Get)
		profiles.PUT("", handler.Update)
		profiles.GET("/education", handler.ListEducation)
		profiles.POST("/education", handler.AddEducation)
		profiles.GET("/experience", handler.ListExperience)
		profiles.POST("/experience", handler.AddExperience)
	}
}

type UpdateProfileRequest struct {
	FullName *string   `json:"full_name" binding:"omitempty,max=255,valid_name"`
	Bio      *string   `json:"bio"`
	Skills   *[]string `json:"skills"`
	Phone    *string   `json:"phone" binding:"omitempty,valid_phone"`
	Location *string   `json:"location" binding:"omitempty,max=255"`
}

type AddEducationRequest struct {
	Institution  string `json:"institution" binding:"required,max=255"`
	Degree       string `json:"degree" binding:"required,max=255"`
	FieldOfStudy string `json:"field_of_study" binding:"max=255"`
	StartDate    string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Grade        string `json:"grade" binding:"max=10"`
}

type AddExperienceRequest struct {
	Company     string `json:"company" binding:"required,max=255"`
	Position    string `json:"position" binding:"required,max=255"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	IsCurrent   bool   `json:"is_current"`
}

// Get godoc
// @Summary      Get my profile
// @Description  Return the caller's profile with education and experience, creating an empty one on first access
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Profile}
// @Failure      401  {object}  response.Response
// @Router       /profiles [get]
// @Security     BearerAuth
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.profileUC.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// Update godoc
// @Summary      Update my profile
// @Description  Overwrite only the supplied profile fields
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateProfileRequest  true  "Profile fields"
// @Success      200   {object}  response.Response{data=domain.Profile}
// @Failure      400   {object}  response.Response
// @Router       /profiles [put]
// @Security     BearerAuth
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	update := domain.ProfileUpdate{
		FullName: req.FullName,
		Bio:      req.Bio,
		Skills:   req.Skills,
		Phone:    req.Phone,
		Location: req.Location,
	}

	profile, err := h.profileUC.UpdateMyProfile(c.Request.Context(), userID, update)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// ListEducation godoc
// @Summary      List my education records
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Education}
// @Failure      404  {object}  response.Response
// @Router       /profiles/education [get]
// @Security     BearerAuth
func (h *ProfileHandler) ListEducation(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	records, err := h.profileUC.ListEducation(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education records", records)
}

// AddEducation godoc
// @Summary      Add an education record
// @Description  Append a record under the caller's existing profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body      AddEducationRequest  true  "Education data"
// @Success      201   {object}  response.Response{data=domain.Education}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /profiles/education [post]
// @Security     BearerAuth
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req AddEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		c.Error(apperror.BadRequest("Dates must use the YYYY-MM-DD format"))
		return
	}

	edu := &domain.Education{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    startDate,
		EndDate:      endDate,
		Grade:        req.Grade,
	}

	if err := h.profileUC.AddEducation(c.Request.Context(), userID, edu); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Education record added", edu)
}

// ListExperience godoc
// @Summary      List my experience records
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Experience}
// @Failure      404  {object}  response.Response
// @Router       /profiles/experience [get]
// @Security     BearerAuth
func (h *ProfileHandler) ListExperience(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	records, err := h.profileUC.ListExperience(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience records", records)
}

// AddExperience godoc
// @Summary      Add an experience record
// @Description  Append a record under the caller's existing profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body      AddExperienceRequest  true  "Experience data"
// @Success      201   {object}  response.Response{data=domain.Experience}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /profiles/experience [post]
// @Security     BearerAuth
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	var req AddExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		c.Error(apperror.BadRequest("Dates must use the YYYY-MM-DD format"))
		return
	}

	exp := &domain.Experience{
		Company:     req.Company,
		Position:    req.Position,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		IsCurrent:   req.IsCurrent,
	}

	if err := h.profileUC.AddExperience(c.Request.Context(), userID, exp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience record added", exp)
}

func parseDateRange(start, end string) (time.Time, *time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, nil, err
	}
	if end == "" {
		return startDate, nil, nil
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, nil, err
	}
	return startDate, &endDate, nil
}
