package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/shared"
)

type AnswerHandler struct {
	answerSvc AnswerServiceInterface
	metrics   StudyMetrics
}

func NewAnswerHandler(answerSvc AnswerServiceInterface, metrics StudyMetrics) *AnswerHandler {
	return &AnswerHandler{answerSvc: answerSvc, metrics: metrics}
}

// @Summary Submit a free text answer
// @Tags answers
// @Accept json
// @Produce json
// @Param createRequest body dto.CreateFreeTextAnswerRequest true "Answer"
// @Success 201 {object} shared.Response{data=model.Answer}
// @Router /api/v1/answers/freetext [post]
func (h *AnswerHandler) CreateFreeTextAnswer(c *fiber.Ctx) error {
	var req dto.CreateFreeTextAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	answer, err := h.answerSvc.CreateFreeTextAnswer(userID(c), req)
	if err != nil {
		return err
	}
	h.metrics.RecordAnswerSubmitted()
	return shared.ResponseJSON(c, http.StatusCreated, "Answer recorded", answer)
}

// @Summary Submit a choice answer
// @Description Choices accepts a single ID or a list of IDs
// @Tags answers
// @Accept json
// @Produce json
// @Param createRequest body dto.CreateChoiceAnswerRequest true "Answer"
// @Success 201 {object} shared.Response{data=model.Answer}
// @Router /api/v1/answers/choice [post]
func (h *AnswerHandler) CreateChoiceAnswer(c *fiber.Ctx) error {
	var req dto.CreateChoiceAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	answer, err := h.answerSvc.CreateChoiceAnswer(userID(c), req)
	if err != nil {
		return err
	}
	h.metrics.RecordAnswerSubmitted()
	return shared.ResponseJSON(c, http.StatusCreated, "Answer recorded", answer)
}

// @Summary List answers by question, scenario or topic
// @Description Exactly one of question_id, scenario_id and topic_id must be given
// @Tags answers
// @Produce json
// @Param question_id query int false "Question ID"
// @Param scenario_id query int false "Scenario ID"
// @Param topic_id query int false "Topic ID"
// @Param user_id query int false "Restrict to one user"
// @Success 200 {object} shared.Response{data=[]model.Answer}
// @Router /api/v1/answers [get]
func (h *AnswerHandler) ListAnswers(c *fiber.Ctx) error {
	questionID, err := queryInt(c, "question_id")
	if err != nil {
		return err
	}
	scenarioID, err := queryInt(c, "scenario_id")
	if err != nil {
		return err
	}
	topicID, err := queryInt(c, "topic_id")
	if err != nil {
		return err
	}
	filterUser, err := queryInt(c, "user_id")
	if err != nil {
		return err
	}

	set := 0
	for _, p := range []*int{questionID, scenarioID, topicID} {
		if p != nil {
			set++
		}
	}
	if set != 1 {
		return shared.NewInvalidCombinationError("exactly one of 'question_id', 'scenario_id' and 'topic_id' must be given")
	}

	var answers []model.Answer
	switch {
	case questionID != nil:
		answers, err = h.answerSvc.GetAnswersByQuestion(*questionID, filterUser)
	case scenarioID != nil:
		answers, err = h.answerSvc.GetAnswersByScenario(*scenarioID, filterUser)
	default:
		answers, err = h.answerSvc.GetAnswersByTopic(*topicID, filterUser)
	}
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, answers)
}

// @Summary Get a single answer
// @Tags answers
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} shared.Response{data=model.Answer}
// @Router /api/v1/answers/{id} [get]
func (h *AnswerHandler) GetAnswer(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	answer, err := h.answerSvc.GetAnswer(id)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, answer)
}

// @Summary Delete an answer
// @Tags answers
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/answers/{id} [delete]
func (h *AnswerHandler) DeleteAnswer(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	if err := h.answerSvc.DeleteAnswer(id); err != nil {
		return err
	}
	return shared.ResponseOK(c, nil)
}
