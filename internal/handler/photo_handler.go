package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mobilecarebd/off-white/internal/service"
)

// PhotoHandler handles gallery photo endpoints.
type PhotoHandler struct {
	photoService service.PhotoService
}

// NewPhotoHandler creates a new photo handler.
func NewPhotoHandler(photoService service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// List godoc
// @Summary List gallery photos
// @Tags photos
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /photos [get]
func (h *PhotoHandler) List(c echo.Context) error {
	photos, err := h.photoService.List(c.Request().Context())
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"photos": photos})
}

// Upload godoc
// @Summary Upload gallery photos
// @Tags photos
// @Accept mpfd
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /photos/upload [post]
func (h *PhotoHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "expected multipart form")
	}

	files := form.File["photos"]
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no photos in request")
	}

	var uploadedBy uint
	if user := CurrentUser(c); user != nil {
		uploadedBy = user.ID
	}

	title := c.FormValue("title")
	uploaded := make([]interface{}, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable file "+fh.Filename)
		}

		photo, err := h.photoService.Upload(c.Request().Context(), title, fh.Filename, src, uploadedBy)
		src.Close()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadGateway, "upload failed for "+fh.Filename)
		}
		uploaded = append(uploaded, photo)
	}

	return c.JSON(http.StatusCreated, echo.Map{"photos": uploaded})
}

// Delete removes a photo record.
func (h *PhotoHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.photoService.Delete(c.Request().Context(), id); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "photo deleted"})
}
