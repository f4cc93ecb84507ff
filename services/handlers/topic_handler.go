package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/shared"
)

type TopicHandler struct {
	topicSvc TopicServiceInterface
}

func NewTopicHandler(topicSvc TopicServiceInterface) *TopicHandler {
	return &TopicHandler{topicSvc: topicSvc}
}

// @Summary List topics
// @Tags topics
// @Produce json
// @Success 200 {object} shared.Response{data=[]model.Topic}
// @Router /api/v1/topics [get]
func (h *TopicHandler) ListTopics(c *fiber.Ctx) error {
	topics, err := h.topicSvc.ListTopics()
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, topics)
}

// @Summary Get a topic with its scenarios and questions
// @Tags topics
// @Produce json
// @Param id path int true "Topic ID"
// @Success 200 {object} shared.Response{data=model.Topic}
// @Router /api/v1/topics/{id} [get]
func (h *TopicHandler) GetTopic(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	topic, err := h.topicSvc.GetTopic(id)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, topic)
}

// @Summary Create a topic
// @Tags topics
// @Accept json
// @Produce json
// @Param createRequest body dto.CreateTopicRequest true "Topic"
// @Success 201 {object} shared.Response{data=model.Topic}
// @Router /api/v1/topics [post]
func (h *TopicHandler) CreateTopic(c *fiber.Ctx) error {
	var req dto.CreateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	topic, err := h.topicSvc.CreateTopic(req)
	if err != nil {
		return err
	}
	return shared.ResponseJSON(c, http.StatusCreated, "Topic created", topic)
}

// @Summary Update a topic
// @Tags topics
// @Accept json
// @Produce json
// @Param id path int true "Topic ID"
// @Param updateRequest body dto.UpdateTopicRequest true "Fields to update"
// @Success 200 {object} shared.Response{data=model.Topic}
// @Router /api/v1/topics/{id} [put]
func (h *TopicHandler) UpdateTopic(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}

	topic, err := h.topicSvc.UpdateTopic(id, req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, topic)
}

// @Summary Delete a topic and everything under it
// @Tags topics
// @Produce json
// @Param id path int true "Topic ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/topics/{id} [delete]
func (h *TopicHandler) DeleteTopic(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	if err := h.topicSvc.DeleteTopic(id); err != nil {
		return err
	}
	return shared.ResponseOK(c, nil)
}
