package services

import (
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"github.com/periscope-tudelft/periscope_api/middleware"
	"github.com/periscope-tudelft/periscope_api/services/handlers"
	"github.com/periscope-tudelft/periscope_api/shared"
)

// HttpService exposes the study API. GET endpoints are public, submissions
// need a user token and content management needs the admin token.
type HttpService struct {
	context.DefaultService

	jwtSvc        *JWTService
	sqlSvc        *SqlService
	authSvc       *AuthService
	gameSvc       *GameService
	photoSvc      *PhotoService
	mediaSvc      *MediaService
	monitoringSvc *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	svc.jwtSvc = ctx.Service(JWT_SVC).(*JWTService)
	svc.sqlSvc = ctx.Service(SQL_SVC).(*SqlService)
	svc.authSvc = ctx.Service(AUTH_SVC).(*AuthService)
	svc.gameSvc = ctx.Service(GAME_SVC).(*GameService)
	svc.photoSvc = ctx.Service(PHOTO_SVC).(*PhotoService)
	svc.mediaSvc = ctx.Service(MEDIA_SVC).(*MediaService)
	svc.monitoringSvc = ctx.Service(MONITORING_SVC).(*MonitoringService)

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	app := fiber.New(fiber.Config{
		JSONEncoder:  shared.JSONAPI.Marshal,
		JSONDecoder:  shared.JSONAPI.Unmarshal,
		ErrorHandler: shared.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))

	auth := middleware.NewAuthMiddleware(svc.jwtSvc)

	loginHandler := handlers.NewLoginHandler(svc.authSvc)
	topicHandler := handlers.NewTopicHandler(svc.sqlSvc.Surveys())
	scenarioHandler := handlers.NewScenarioHandler(svc.sqlSvc.Surveys())
	questionHandler := handlers.NewQuestionHandler(svc.sqlSvc.Questions())
	answerHandler := handlers.NewAnswerHandler(svc.sqlSvc.Answers(), svc.monitoringSvc)
	moodHandler := handlers.NewMoodHandler(svc.sqlSvc.Visions())
	visionHandler := handlers.NewVisionHandler(svc.sqlSvc.Visions(), svc.monitoringSvc)
	gameHandler := handlers.NewGameHandler(svc.gameSvc)
	photoHandler := handlers.NewPhotoHandler(svc.photoSvc)
	mediaHandler := handlers.NewMediaHandler(svc.mediaSvc)

	app.Get("/ping", svc.ping)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	v1.Post("/login", loginHandler.Login)

	v1.Get("/topics", topicHandler.ListTopics)
	v1.Get("/topics/:id", topicHandler.GetTopic)
	v1.Post("/topics", auth.RequiredAdmin(), topicHandler.CreateTopic)
	v1.Put("/topics/:id", auth.RequiredAdmin(), topicHandler.UpdateTopic)
	v1.Delete("/topics/:id", auth.RequiredAdmin(), topicHandler.DeleteTopic)

	v1.Get("/scenarios", scenarioHandler.ListScenarios)
	v1.Get("/scenarios/:id", scenarioHandler.GetScenario)
	v1.Post("/scenarios", auth.RequiredAdmin(), scenarioHandler.CreateScenario)
	v1.Put("/scenarios/:id", auth.RequiredAdmin(), scenarioHandler.UpdateScenario)
	v1.Delete("/scenarios/:id", auth.RequiredAdmin(), scenarioHandler.DeleteScenario)

	v1.Get("/questions", questionHandler.ListQuestions)
	v1.Get("/questions/:id", questionHandler.GetQuestion)
	v1.Post("/questions", auth.RequiredAdmin(), questionHandler.CreateQuestion)
	v1.Post("/questions/list", auth.RequiredAdmin(), questionHandler.CreateQuestionList)
	v1.Put("/questions/:id", auth.RequiredAdmin(), questionHandler.UpdateQuestion)
	v1.Delete("/questions/:id", auth.RequiredAdmin(), questionHandler.DeleteQuestion)

	v1.Post("/answers/freetext", auth.RequiredUser(), answerHandler.CreateFreeTextAnswer)
	v1.Post("/answers/choice", auth.RequiredUser(), answerHandler.CreateChoiceAnswer)
	v1.Get("/answers", auth.RequiredAdmin(), answerHandler.ListAnswers)
	v1.Get("/answers/:id", auth.RequiredAdmin(), answerHandler.GetAnswer)
	v1.Delete("/answers/:id", auth.RequiredAdmin(), answerHandler.DeleteAnswer)

	v1.Get("/moods", moodHandler.ListMoods)
	v1.Post("/moods", auth.RequiredAdmin(), moodHandler.CreateMood)
	v1.Put("/moods/:id", auth.RequiredAdmin(), moodHandler.UpdateMood)
	v1.Delete("/moods/:id", auth.RequiredAdmin(), moodHandler.DeleteMood)

	v1.Get("/visions", visionHandler.ListVisions)
	v1.Get("/visions/:id", visionHandler.GetVision)
	v1.Post("/visions", auth.RequiredUser(), visionHandler.CreateVision)
	v1.Put("/visions/:id", auth.RequiredUser(), visionHandler.UpdateVision)
	v1.Delete("/visions/:id", auth.RequiredAdmin(), visionHandler.DeleteVision)

	v1.Post("/games/random", auth.RequiredUser(), gameHandler.CreateRandomGame)
	v1.Post("/games/:id/submit", auth.RequiredUser(), gameHandler.SubmitGame)
	v1.Post("/games/:id/error", auth.RequiredUser(), gameHandler.SetGameError)
	v1.Get("/games", auth.RequiredAdmin(), gameHandler.ListGames)
	v1.Get("/games/:id", auth.RequiredAdmin(), gameHandler.GetGame)
	v1.Delete("/games/:id", auth.RequiredAdmin(), gameHandler.DeleteGame)

	v1.Get("/photos", photoHandler.SearchPhotos)
	v1.Get("/photos/random", photoHandler.RandomPhoto)
	v1.Post("/photos/download", auth.RequiredUser(), photoHandler.TrackDownload)

	v1.Post("/media/upload", auth.RequiredAdmin(), mediaHandler.UploadImage)
	v1.Delete("/media", auth.RequiredAdmin(), mediaHandler.DeleteImage)

	svc.server = app

	log.WithField("port", svc.port).Info("HTTP server started")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")
	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}
