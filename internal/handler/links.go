package handler

import (
	"errors"
	"net/http"

	"lark/internal/service"

	"github.com/gin-gonic/gin"
)

// LinksHandler handles the link management API. The creation flow is a
// trusted collaborator: payloads arrive pre-validated, this handler
// only enforces slug uniqueness and expiry coherence.
type LinksHandler struct {
	directory service.DirectoryServiceInterface
}

// NewLinksHandler creates a new LinksHandler
func NewLinksHandler(directory service.DirectoryServiceInterface) *LinksHandler {
	return &LinksHandler{directory: directory}
}

// Create handles POST /api/v1/links
// @Summary Create a link
// @Tags links
// @Accept json
// @Produce json
// @Param request body service.CreateLinkInput true "Link record"
// @Success 200 {object} Response{data=model.Link}
// @Router /api/v1/links [post]
func (h *LinksHandler) Create(c *gin.Context) {
	var in service.CreateLinkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	in.OwnerID = ownerID(c)

	link, err := h.directory.CreateLink(c.Request.Context(), &in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugTaken):
			abortWithError(c, http.StatusConflict, "Slug already taken")
		case errors.Is(err, service.ErrSlugInvalid), errors.Is(err, service.ErrInvalidExpiry):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create link")
		}
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    link,
	})
}

// Update handles PATCH /api/v1/links/:id
// @Summary Update a link
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param request body service.UpdateLinkInput true "Fields to change"
// @Success 200 {object} Response{data=model.Link}
// @Router /api/v1/links/{id} [patch]
func (h *LinksHandler) Update(c *gin.Context) {
	var in service.UpdateLinkInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	link, err := h.directory.UpdateLink(c.Request.Context(), c.Param("id"), ownerID(c), &in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLinkNotFound):
			abortWithError(c, http.StatusNotFound, "Link not found")
		case errors.Is(err, service.ErrInvalidExpiry):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update link")
		}
		return
	}

	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    link,
	})
}

// DisableRequest is the admin disable payload
type DisableRequest struct {
	Reason string `json:"reason"`
}

// Disable handles POST /api/v1/admin/links/:id/disable
// @Summary Disable a link for moderation reasons
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param request body DisableRequest true "Reason"
// @Success 200 {object} Response
// @Router /api/v1/admin/links/{id}/disable [post]
func (h *LinksHandler) Disable(c *gin.Context) {
	var req DisableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := h.directory.AdminDisable(c.Request.Context(), c.Param("id"), req.Reason); err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			abortWithError(c, http.StatusNotFound, "Link not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to disable link")
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success"})
}

// Enable handles POST /api/v1/admin/links/:id/enable
// @Summary Lift a moderation block
// @Tags admin
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} Response
// @Router /api/v1/admin/links/{id}/enable [post]
func (h *LinksHandler) Enable(c *gin.Context) {
	if err := h.directory.AdminEnable(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			abortWithError(c, http.StatusNotFound, "Link not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to enable link")
		return
	}

	c.JSON(http.StatusOK, Response{Code: 0, Message: "success"})
}
