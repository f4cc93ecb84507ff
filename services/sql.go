package services

import (
	"fmt"
	"os"

	"github.com/alphabatem/common/context"
	"github.com/periscope-tudelft/periscope_api/model"
	"github.com/periscope-tudelft/periscope_api/services/repositories"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SqlService owns the database connection and the repositories. Postgres is
// used when DATABASE_URL or DB_HOST is set, otherwise the service falls back
// to a local sqlite file for development.
type SqlService struct {
	context.DefaultService
	db *gorm.DB

	databaseURL string
	sqliteFile  string

	users     *repositories.UserRepository
	surveys   *repositories.SurveyRepository
	questions *repositories.QuestionRepository
	answers   *repositories.AnswerRepository
	visions   *repositories.VisionRepository
	games     *repositories.GameRepository
}

const SQL_SVC = "sql_svc"

// Id returns Service ID
func (ds SqlService) Id() string {
	return SQL_SVC
}

// Db Access to raw db handle
func (ds SqlService) Db() *gorm.DB {
	return ds.db
}

// Configure the service
func (ds *SqlService) Configure(ctx *context.Context) error {
	ds.databaseURL = os.Getenv("DATABASE_URL")
	if ds.databaseURL == "" && os.Getenv("DB_HOST") != "" {
		ds.databaseURL = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_DATABASE"),
			os.Getenv("DB_PORT"),
		)
	}

	ds.sqliteFile = os.Getenv("SQLITE_FILE")
	if ds.sqliteFile == "" {
		ds.sqliteFile = "periscope.db"
	}

	return ds.DefaultService.Configure(ctx)
}

// Start the service and open connection to the database
// Migrate any tables that have changed since last runtime
func (ds *SqlService) Start() (err error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	if ds.databaseURL != "" {
		ds.db, err = gorm.Open(postgres.Open(ds.databaseURL), cfg)
	} else {
		ds.db, err = gorm.Open(sqlite.Open(ds.sqliteFile), cfg)
	}
	if err != nil {
		return err
	}

	if err = Migrate(ds.db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	ds.bindRepositories(ds.db)

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *SqlService) Shutdown() {
}

func (ds *SqlService) bindRepositories(db *gorm.DB) {
	ds.users = repositories.NewUserRepository(db)
	ds.surveys = repositories.NewSurveyRepository(db)
	ds.questions = repositories.NewQuestionRepository(db)
	ds.answers = repositories.NewAnswerRepository(db)
	ds.visions = repositories.NewVisionRepository(db)
	ds.games = repositories.NewGameRepository(db)
}

// Migrate creates or updates the full schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Topic{},
		&model.Scenario{},
		&model.Question{},
		&model.Choice{},
		&model.Answer{},
		&model.Mood{},
		&model.Vision{},
		&model.Media{},
		&model.Game{},
		&model.Guess{},
	)
}

func (ds *SqlService) Users() *repositories.UserRepository         { return ds.users }
func (ds *SqlService) Surveys() *repositories.SurveyRepository     { return ds.surveys }
func (ds *SqlService) Questions() *repositories.QuestionRepository { return ds.questions }
func (ds *SqlService) Answers() *repositories.AnswerRepository     { return ds.answers }
func (ds *SqlService) Visions() *repositories.VisionRepository     { return ds.visions }
func (ds *SqlService) Games() *repositories.GameRepository         { return ds.games }
