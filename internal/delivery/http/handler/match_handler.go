package handler

import (
	"certtrack/internal/delivery/http/dto"
	"certtrack/internal/pkg/response"
	"certtrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/matches")
	grp.Post("/", h.MatchJobs)
	grp.Post("/job", h.MatchJob)
}

func (h *MatchHandler) MatchJobs(c fiber.Ctx) error {
	var req dto.MatchJobsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	matches, err := h.uc.MatchJobs(c.Context(), req.Skills)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobMatchResponses(matches))
}

func (h *MatchHandler) MatchJob(c fiber.Ctx) error {
	var req dto.MatchJobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	detail, err := h.uc.MatchJob(c.Context(), req.JobID, req.UserSkills, req.Limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobDetailResponse(detail))
}
