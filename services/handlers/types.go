package handlers

import (
	"context"
	"time"

	"github.com/periscope-tudelft/periscope_api/dto"
	"github.com/periscope-tudelft/periscope_api/model"
)

type AuthServiceInterface interface {
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
}

type TopicServiceInterface interface {
	CreateTopic(req dto.CreateTopicRequest) (*model.Topic, error)
	GetTopic(topicID int) (*model.Topic, error)
	ListTopics() ([]model.Topic, error)
	UpdateTopic(topicID int, req dto.UpdateTopicRequest) (*model.Topic, error)
	DeleteTopic(topicID int) error
	CreateScenario(req dto.CreateScenarioRequest) (*model.Scenario, error)
	GetScenario(scenarioID int) (*model.Scenario, error)
	ListScenarios(topicID *int) ([]model.Scenario, error)
	UpdateScenario(scenarioID int, req dto.UpdateScenarioRequest) (*model.Scenario, error)
	DeleteScenario(scenarioID int) error
}

type QuestionServiceInterface interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*model.Question, error)
	CreateQuestionList(reqs []dto.CreateQuestionRequest) ([]model.Question, error)
	GetQuestion(questionID int) (*model.Question, error)
	ListQuestions(topicID, scenarioID, page *int) ([]model.Question, error)
	UpdateQuestion(questionID int, req dto.UpdateQuestionRequest) (*model.Question, error)
	DeleteQuestion(questionID int) error
}

type AnswerServiceInterface interface {
	CreateFreeTextAnswer(userID int, req dto.CreateFreeTextAnswerRequest) (*model.Answer, error)
	CreateChoiceAnswer(userID int, req dto.CreateChoiceAnswerRequest) (*model.Answer, error)
	GetAnswer(answerID int) (*model.Answer, error)
	GetAnswersByQuestion(questionID int, userID *int) ([]model.Answer, error)
	GetAnswersByScenario(scenarioID int, userID *int) ([]model.Answer, error)
	GetAnswersByTopic(topicID int, userID *int) ([]model.Answer, error)
	DeleteAnswer(answerID int) error
}

type VisionServiceInterface interface {
	CreateMood(req dto.CreateMoodRequest) (*model.Mood, error)
	ListMoods() ([]model.Mood, error)
	GetMood(moodID int) (*model.Mood, error)
	UpdateMood(moodID int, req dto.UpdateMoodRequest) (*model.Mood, error)
	DeleteMood(moodID int) error
	CreateVision(userID int, req dto.CreateVisionRequest) (*model.Vision, error)
	GetVision(visionID int) (*model.Vision, error)
	ListVisionsByScenario(scenarioID int, userID *int) ([]model.Vision, error)
	UpdateVision(visionID, userID int, req dto.UpdateVisionRequest) (*model.Vision, error)
	DeleteVision(visionID int) error
}

type GameServiceInterface interface {
	CreateRandomGame(userID, scenarioID int) (*dto.RandomGameResponse, error)
	SubmitGame(gameID, userID int, req dto.SubmitGameRequest) (*model.Game, error)
	SetGameError(gameID, userID int) (*model.Game, error)
	GetGame(gameID int) (*model.Game, error)
	ListGames(userID, visionID *int) ([]model.Game, error)
	DeleteGame(gameID int) error
}

type PhotoServiceInterface interface {
	SearchPhotos(ctx context.Context, query string, page int) ([]byte, error)
	RandomPhoto(ctx context.Context, query string) ([]byte, error)
	TrackDownload(ctx context.Context, downloadLocation string) error
}

type MediaServiceInterface interface {
	UploadImage(ctx context.Context, folder, contentType string, data []byte) (string, error)
	GetImageURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
	DeleteImage(ctx context.Context, objectName string) error
}

// StudyMetrics counts domain events for the metrics endpoint.
type StudyMetrics interface {
	RecordAnswerSubmitted()
	RecordVisionCreated()
}
