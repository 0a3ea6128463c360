package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	domerr "github.com/mobilecarebd/off-white/internal/errors"
	"github.com/mobilecarebd/off-white/internal/model"
	"github.com/mobilecarebd/off-white/internal/service"
)

// PackageHandler handles package endpoints.
type PackageHandler struct {
	packageService service.PackageService
}

// NewPackageHandler creates a new package handler.
func NewPackageHandler(packageService service.PackageService) *PackageHandler {
	return &PackageHandler{packageService: packageService}
}

// PackageRequest represents a create or update package request.
type PackageRequest struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	RegularPrice float64  `json:"regularPrice" validate:"required,gt=0"`
	OfferPrice   float64  `json:"offerPrice" validate:"gte=0"`
	Features     []string `json:"features"`
	ImageURL     string   `json:"imageUrl"`
	IsActive     *bool    `json:"isActive"`
}

// List godoc
// @Summary List packages
// @Tags packages
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /packages [get]
func (h *PackageHandler) List(c echo.Context) error {
	var (
		pkgs []model.Package
		err  error
	)
	if CurrentUser(c) != nil && CurrentUser(c).IsAdmin {
		pkgs, err = h.packageService.ListAll(c.Request().Context())
	} else {
		pkgs, err = h.packageService.ListPublic(c.Request().Context())
	}
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"packages": pkgs})
}

// Create godoc
// @Summary Create a package
// @Tags packages
// @Accept json
// @Produce json
// @Param request body PackageRequest true "Package data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /packages [post]
func (h *PackageHandler) Create(c echo.Context) error {
	var req PackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pkg := &model.Package{
		Name:         req.Name,
		Description:  req.Description,
		RegularPrice: req.RegularPrice,
		OfferPrice:   req.OfferPrice,
		Features:     req.Features,
		ImageURL:     req.ImageURL,
		IsActive:     true,
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	if err := h.packageService.Create(c.Request().Context(), pkg); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"package": pkg})
}

// Update godoc
// @Summary Update a package
// @Tags packages
// @Accept json
// @Produce json
// @Param id path int true "Package ID"
// @Param request body PackageRequest true "Package data"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /packages/{id} [put]
func (h *PackageHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req PackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pkg, err := h.packageService.Get(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}

	pkg.Name = req.Name
	pkg.Description = req.Description
	pkg.RegularPrice = req.RegularPrice
	pkg.OfferPrice = req.OfferPrice
	pkg.Features = req.Features
	pkg.ImageURL = req.ImageURL
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	if err := h.packageService.Update(c.Request().Context(), pkg); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"package": pkg})
}

// Delete godoc
// @Summary Delete a package
// @Tags packages
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /packages/{id} [delete]
func (h *PackageHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if _, err := h.packageService.Get(c.Request().Context(), id); err != nil {
		return mapDomainError(err)
	}
	if err := h.packageService.Delete(c.Request().Context(), id); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "package deleted"})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

func mapDomainError(err error) error {
	httpErr := domerr.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
