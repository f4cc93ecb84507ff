package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/shared"
)

type ScenarioHandler struct {
	topicSvc TopicServiceInterface
}

func NewScenarioHandler(topicSvc TopicServiceInterface) *ScenarioHandler {
	return &ScenarioHandler{topicSvc: topicSvc}
}

// @Summary List scenarios, optionally of one topic
// @Tags scenarios
// @Produce json
// @Param topic_id query int false "Topic ID"
// @Success 200 {object} shared.Response{data=[]model.Scenario}
// @Router /api/v1/scenarios [get]
func (h *ScenarioHandler) ListScenarios(c *fiber.Ctx) error {
	topicID, err := queryInt(c, "topic_id")
	if err != nil {
		return err
	}
	scenarios, err := h.topicSvc.ListScenarios(topicID)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, scenarios)
}

// @Summary Get a scenario with its questions
// @Tags scenarios
// @Produce json
// @Param id path int true "Scenario ID"
// @Success 200 {object} shared.Response{data=model.Scenario}
// @Router /api/v1/scenarios/{id} [get]
func (h *ScenarioHandler) GetScenario(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	scenario, err := h.topicSvc.GetScenario(id)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, scenario)
}

// @Summary Create a scenario
// @Tags scenarios
// @Accept json
// @Produce json
// @Param createRequest body dto.CreateScenarioRequest true "Scenario"
// @Success 201 {object} shared.Response{data=model.Scenario}
// @Router /api/v1/scenarios [post]
func (h *ScenarioHandler) CreateScenario(c *fiber.Ctx) error {
	var req dto.CreateScenarioRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	scenario, err := h.topicSvc.CreateScenario(req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, http.StatusCreated, "Scenario created", scenario)
}

// @Summary Update a scenario
// @Tags scenarios
// @Accept json
// @Produce json
// @Param id path int true "Scenario ID"
// @Param updateRequest body dto.UpdateScenarioRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=model.Scenario}
// @Router /api/v1/scenarios/{id} [put]
func (h *ScenarioHandler) UpdateScenario(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateScenarioRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}

	scenario, err := h.topicSvc.UpdateScenario(id, req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, scenario)
}

// @Summary Delete a scenario and its questions
// @Tags scenarios
// @Produce json
// @Param id path int true "Scenario ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/scenarios/{id} [delete]
func (h *ScenarioHandler) DeleteScenario(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	if err := h.topicSvc.DeleteScenario(id); err != nil {
		return err
	}
	return shared.ResponseOK(c, nil)
}
