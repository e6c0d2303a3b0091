package handler

import (
	"certtrack/internal/delivery/http/dto"
	"certtrack/internal/pkg/response"
	"certtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills", h.ListSkills)
	r.Get("/jobs", h.ListJobs)
	r.Get("/credentials", h.ListCredentials)
}

// RegisterAdminRoutes mounts maintenance routes; r is expected to be
// guarded already.
func (h *CatalogHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/catalog/refresh", h.Refresh)
}

func (h *CatalogHandler) ListSkills(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSkillResponses(items))
}

func (h *CatalogHandler) ListJobs(c fiber.Ctx) error {
	items, err := h.uc.ListJobs(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListingResponses(items))
}

func (h *CatalogHandler) ListCredentials(c fiber.Ctx) error {
	items, err := h.uc.ListCredentials(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCredentialListingResponses(items))
}

func (h *CatalogHandler) Refresh(c fiber.Ctx) error {
	sum, err := h.uc.RefreshCatalog(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Catalog refreshed", dto.NewCatalogRefreshResponse(sum))
}
