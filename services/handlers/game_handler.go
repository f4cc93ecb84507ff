package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/shared"
)

type GameHandler struct {
	gameSvc GameServiceInterface
}

func NewGameHandler(gameSvc GameServiceInterface) *GameHandler {
	return &GameHandler{gameSvc: gameSvc}
}

// @Summary Start a game against a random unseen vision in a scenario
// @Description Returns 204 when every eligible vision has been played
// @Tags games
// @Accept json
// @Produce json
// @Param randomRequest body dto.CreateRandomGameRequest true "Scenario to draw from"
// @Success 201 {object} shared.Response{data=dto.RandomGameResponse}
// @Success 204 {object} nil
// @Router /api/v1/games/random [post]
func (h *GameHandler) CreateRandomGame(c *fiber.Ctx) error {
	var req dto.CreateRandomGameRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	resp, err := h.gameSvc.CreateRandomGame(userID(c), req.ScenarioID)
	if err != nil {
		return err
	}
	if resp == nil {
		return shared.ResponseNoContent(c)
	}
	return shared.ResponseJSON(c, http.StatusCreated, "Game created", resp)
}

// @Summary Submit a finished game with its guesses
// @Tags games
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param submitRequest body dto.SubmitGameRequest true "Timing and guesses"
// @Success 200 {object} shared.Response{data=model.Game}
// @Router /api/v1/games/{id}/submit [post]
func (h *GameHandler) SubmitGame(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	var req dto.SubmitGameRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Malformed request body.")
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	game, err := h.gameSvc.SubmitGame(id, userID(c), req)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, game)
}

// @Summary Mark a game as failed on the client
// @Tags games
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} shared.Response{data=model.Game}
// @Router /api/v1/games/{id}/error [post]
func (h *GameHandler) SetGameError(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	game, err := h.gameSvc.SetGameError(id, userID(c))
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, game)
}

// @Summary List games
// @Tags games
// @Produce json
// @Param user_id query int false "Restrict to one user"
// @Param vision_id query int false "Restrict to one vision"
// @Success 200 {object} shared.Response{data=[]model.Game}
// @Router /api/v1/games [get]
func (h *GameHandler) ListGames(c *fiber.Ctx) error {
	filterUser, err := queryInt(c, "user_id")
	if err != nil {
		return err
	}
	filterVision, err := queryInt(c, "vision_id")
	if err != nil {
		return err
	}
	games, err := h.gameSvc.ListGames(filterUser, filterVision)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, games)
}

// @Summary Get a game with its guesses
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} shared.Response{data=model.Game}
// @Router /api/v1/games/{id} [get]
func (h *GameHandler) GetGame(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	game, err := h.gameSvc.GetGame(id)
	if err != nil {
		return err
	}
	return shared.ResponseOK(c, game)
}

// @Summary Delete a game and its guesses
// @Tags games
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/games/{id} [delete]
func (h *GameHandler) DeleteGame(c *fiber.Ctx) error {
	id, err := paramInt(c, "id")
	if err != nil {
		return err
	}
	if err := h.gameSvc.DeleteGame(id); err != nil {
		return err
	}
	return shared.ResponseOK(c, nil)
}
