package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/shared"
)

type QuestionHandler struct {
	questionSvc QuestionServiceInterface
}

func NewQuestionHandler(questionSvc QuestionServiceInterface) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// @Summary List questions of a topic or scenario
// @Tags questions
// @Produce json
// @Param topic_id query int false "Topic ID"
// @Param scenario_id query int false "Scenario ID"
// @Param page query int false "Survey page, includes page-independent questions"
// @Success 200 {object} shared.Response{data=[]model.Question}
// @Router /api/v1/questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	topicID, err := queryInt(c, "topic_id")
	if err != nil {
		return err
	}
	scenarioID, err := queryInt(c, "scenario_id")
	if err != nil {
		return err
	}
	if topicID != nil && scenarioID != nil {
		return shared.NewInvalidCombinationError("cannot filter on both 'topic_id' and 'scenario_id'")
	}
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}

	questions, err := h.questionSvc.ListQuestions(topicID, scenarioID, page)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, questions)
}

// @Summary Get a question with its choices
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} shared.Response{data=model.Question}
// @Router /api/v1/questions/{id} [get]
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	question, err := h.questionSvc.GetQuestion(id)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, question)
}

// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param createRequest body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} shared.Response{data=model.Question}
// @Router /api/v1/questions [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}

	question, err := h.questionSvc.CreateQuestion(req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, http.StatusCreated, "Question created", question)
}

// @Summary Create a batch of questions atomically
// @Tags questions
// @Accept json
// @Produce json
// @Param createRequest body dto.CreateQuestionListRequest true "Questions"
// @Success 201 {object} shared.Response{data=[]model.Question}
// @Router /api/v1/questions/list [post]
func (h *QuestionHandler) CreateQuestionList(c *fiber.Ctx) error {
	var req dto.CreateQuestionListRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	questions, err := h.questionSvc.CreateQuestionList(req.Questions)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, http.StatusCreated, "Questions created", questions)
}

// @Summary Update a question in place
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param updateRequest body dto.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=model.Question}
// @Router /api/v1/questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}

	question, err := h.questionSvc.UpdateQuestion(id, req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, question)
}

// @Summary Delete a question and its choices
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	if err := h.questionSvc.DeleteQuestion(id); err != nil {
		return err
	}
	return shared.ResponseOK(c, nil)
}
