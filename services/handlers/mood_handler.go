package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/shared"
)

type MoodHandler struct {
	visionSvc VisionServiceInterface
}

func NewMoodHandler(visionSvc VisionServiceInterface) *MoodHandler {
	return &MoodHandler{visionSvc: visionSvc}
}

// @Summary List moods in display order
// @Tags moods
// @Produce json
// @Success 200 {object} shared.Response{data=[]model.Mood}
// @Router /api/v1/moods [get]
func (h *MoodHandler) ListMoods(c *fiber.Ctx) error {
	moods, err := h.visionSvc.ListMoods()
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, moods)
}

// @Summary Create a mood
// @Tags moods
// @Accept json
// @Produce json
// @Param createRequest body dto.CreateMoodRequest true "Mood"
// @Success 201 {object} shared.Response{data=model.Mood}
// @Router /api/v1/moods [post]
func (h *MoodHandler) CreateMood(c *fiber.Ctx) error {
	var req dto.CreateMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	mood, err := h.visionSvc.CreateMood(req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, http.StatusCreated, "Mood created", mood)
}

// @Summary Update a mood
// @Tags moods
// @Accept json
// @Produce json
// @Param id path int true "Mood ID"
// @Param updateRequest body dto.UpdateMoodRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=model.Mood}
// @Router /api/v1/moods/{id} [put]
func (h *MoodHandler) UpdateMood(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}

	mood, err := h.visionSvc.UpdateMood(id, req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, mood)
}

// @Summary Delete a mood
// @Tags moods
// @Produce json
// @Param id path int true "Mood ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/moods/{id} [delete]
func (h *MoodHandler) DeleteMood(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	if err := h.visionSvc.DeleteMood(id); err != nil {
		return err
	}
	return shared.ResponseOK(c, nil)
}
