package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/samuel-prates/find-my-buddy-api/internal/domains/searchfor"
	"github.com/samuel-prates/find-my-buddy-api/internal/shared/response"
)

type Handler struct {
	service searchfor.Service
}

func NewHandler(service searchfor.Service) *Handler {
	return &Handler{service: service}
}

// Create - POST /api/v1/search-for
func (h *Handler) Create(c *gin.Context) {
	var req searchfor.CreateSearchForRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, searchfor.ToResponse(created))
}

// GetAll - GET /api/v1/search-for
func (h *Handler) GetAll(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, searchfor.ToResponses(items))
}

// GetByID - GET /api/v1/search-for/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid search item id")
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, searchfor.ToResponse(entity))
}

// GetByUser - GET /api/v1/search-for/by-user/:userId
func (h *Handler) GetByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	items, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, searchfor.ToResponses(items))
}

// GetByType - GET /api/v1/search-for/by-type/:type
func (h *Handler) GetByType(c *gin.Context) {
	t := searchfor.Type(c.Param("type"))

	items, err := h.service.GetByType(c.Request.Context(), t)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, searchfor.ToResponses(items))
}

// Update - PUT /api/v1/search-for/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid search item id")
		return
	}

	var req searchfor.UpdateSearchForRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, searchfor.ToResponse(updated))
}

// Delete - DELETE /api/v1/search-for/:id
// Always 204: deleting an unknown or already deleted report succeeds.
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid search item id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch status := searchfor.GetHTTPStatusCode(err); status {
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusBadRequest:
		response.BadRequest(c, err.Error())
	default:
		response.InternalServerError(c, "internal server error")
	}
}
