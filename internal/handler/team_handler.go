package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mobilecarebd/off-white/internal/model"
	"github.com/mobilecarebd/off-white/internal/service"
)

// TeamHandler handles team member endpoints.
type TeamHandler struct {
	teamService service.TeamService
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// TeamMemberRequest represents a create or update team member request.
type TeamMemberRequest struct {
	Name        string            `json:"name" validate:"required"`
	Role        string            `json:"role"`
	Bio         string            `json:"bio"`
	ImageURL    string            `json:"imageUrl"`
	SocialLinks map[string]string `json:"socialLinks"`
	IsActive    *bool             `json:"isActive"`
}

// List godoc
// @Summary List team members
// @Tags team
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /team [get]
func (h *TeamHandler) List(c echo.Context) error {
	var (
		members []model.TeamMember
		err     error
	)
	if CurrentUser(c) != nil && CurrentUser(c).IsAdmin {
		members, err = h.teamService.ListAll(c.Request().Context())
	} else {
		members, err = h.teamService.ListPublic(c.Request().Context())
	}
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"team": members})
}

// Create adds a team member.
func (h *TeamHandler) Create(c echo.Context) error {
	var req TeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member := &model.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		Bio:         req.Bio,
		ImageURL:    req.ImageURL,
		SocialLinks: req.SocialLinks,
		IsActive:    true,
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := h.teamService.Create(c.Request().Context(), member); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"member": member})
}

// Update edits a team member.
func (h *TeamHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req TeamMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member := &model.TeamMember{
		ID:          id,
		Name:        req.Name,
		Role:        req.Role,
		Bio:         req.Bio,
		ImageURL:    req.ImageURL,
		SocialLinks: req.SocialLinks,
		IsActive:    true,
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := h.teamService.Update(c.Request().Context(), member); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"member": member})
}

// Delete removes a team member.
func (h *TeamHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.teamService.Delete(c.Request().Context(), id); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "team member deleted"})
}
