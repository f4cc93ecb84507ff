package services

import (
	"github.com/alphabatem/common/context"
	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
	log "github.com/sirupsen/logrus"
)

// GameService runs the mood guessing game on top of the vision pool.
type GameService struct {
	context.DefaultService

	sqlSvc        *SqlService
	monitoringSvc *MonitoringService
}

const GAME_SVC = "game_svc"

func (svc GameService) Id() string {
	return GAME_SVC
}

func (svc *GameService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(SQL_SVC).(*SqlService)
	svc.monitoringSvc = ctx.Service(MONITORING_SVC).(*MonitoringService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *GameService) Start() error {
	return nil
}

// CreateRandomGame opens a new game against a vision in the scenario that the
// user has neither authored nor already finished guessing. A nil response
// means the pool for this user is exhausted.
func (svc *GameService) CreateRandomGame(userID, scenarioID int) (*dto.RandomGameResponse, error) {
	vision, err := svc.sqlSvc.Games().PickRandomVision(userID, scenarioID)
	if err != nil {
		return nil, err
	}
	if vision == nil {
		log.WithFields(log.Fields{"user_id": userID, "scenario_id": scenarioID}).
			Info("No remaining visions to guess")
		return nil, nil
	}

	game, err := svc.sqlSvc.Games().CreateGame(userID, vision.ID)
	if err != nil {
		return nil, err
	}
	svc.monitoringSvc.RecordGameStarted()

	return &dto.RandomGameResponse{
		GameID:     game.ID,
		VisionID:   vision.ID,
		ScenarioID: vision.ScenarioID,
		Medias:     vision.Medias,
	}, nil
}

func (svc *GameService) SubmitGame(gameID, userID int, req dto.SubmitGameRequest) (*model.Game, error) {
	game, err := svc.sqlSvc.Games().SubmitGame(gameID, userID, req)
	if err != nil {
		return nil, err
	}
	svc.monitoringSvc.RecordGameCompleted()
	return game, nil
}

func (svc *GameService) SetGameError(gameID, userID int) (*model.Game, error) {
	return svc.sqlSvc.Games().SetGameError(gameID, userID)
}

func (svc *GameService) GetGame(gameID int) (*model.Game, error) {
	return svc.sqlSvc.Games().GetGame(gameID)
}

func (svc *GameService) ListGames(userID, visionID *int) ([]model.Game, error) {
	return svc.sqlSvc.Games().ListGames(userID, visionID)
}

func (svc *GameService) DeleteGame(gameID int) error {
	return svc.sqlSvc.Games().DeleteGame(gameID)
}
