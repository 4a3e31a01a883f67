package main

import (
	"fmt"
	golog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"newsroom-video/auth"
	"newsroom-video/config"
	"newsroom-video/database"
	"newsroom-video/ffmpeg"
	"newsroom-video/handlers"
	"newsroom-video/intake"
	"newsroom-video/media"
	"newsroom-video/transcode"
)

var db *gorm.DB

func ensureAdminAccount(db *gorm.DB) error {

	var user auth.User
	if err := db.Where("username = ?", "admin").First(&user).Error; err != nil {
		// no such user

		password, err := config.GetAdminInitialPassword()
		if err != nil {
			return err
		}

		err = auth.CreateUser(db, "admin", password, auth.RoleProducer)
		if err != nil {
			return err
		}
	}
	return nil
}

func main() {

	// optional .env for local development
	if err := godotenv.Load(); err == nil {
		fmt.Println("loaded .env")
	}

	initLogger()

	log.Infof("GitSHA: %s", config.GetGitSHA())
	log.Infof("BuildDate: %s", config.GetBuildDate())

	ffmpeg.Init(log)
	auth.Init(log)
	transcode.Init(log)
	intake.Init(log)

	gormLogger := logger.New(
		golog.New(os.Stdout, "\r\n", golog.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             time.Second, // Slow SQL threshold
			LogLevel:                  logger.Warn, // Log level
			IgnoreRecordNotFoundError: true,        // Ignore ErrRecordNotFound error for logger
			ParameterizedQueries:      true,        // Don't include params in the SQL log
			Colorful:                  false,       // Disable color
		},
	)

	// Upload directories must exist before any request comes in
	for _, dir := range []string{config.GetConfigDir(), config.GetRawDir(), config.GetCompressedDir()} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			log.Panicf("failed to create dir %s", dir)
		}
	}

	// Initialize database
	dbPath := filepath.Join(config.GetConfigDir(), "videos.db")
	var err error
	db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Panicf("failed to connect to database %s", dbPath)
	}

	// set only a single connection so we don't actually have concurrent writes
	sqlDB, err := db.DB()
	if err != nil {
		log.Panicln("failed to retrieve database")
	}
	sqlDB.SetMaxOpenConns(1)

	// Migrate the schema
	db.AutoMigrate(&auth.User{}, &media.Asset{}, &media.Tag{}, &media.Timecode{}, &transcode.Job{})

	database.Init(db, log)
	defer database.Fini()

	// create a user
	err = ensureAdminAccount(db)
	if err != nil {
		panic(fmt.Sprintf("failed to create admin user: %v", err))
	}

	secret, err := config.GetJWTSecret()
	if err != nil {
		panic(fmt.Sprintf("%v", err))
	}
	verifier := auth.NewJWTVerifier(secret)

	runner := transcode.NewExecutor()
	mode := config.GetTranscodeMode()
	log.Infof("transcode mode: %s", mode)
	uploads := intake.New(mode, runner)

	handlers.Init(log, uploads, verifier)
	defer handlers.Fini()

	// Initialize Echo
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Routes
	viewing := auth.Require(verifier, auth.ViewingRoles()...)
	editing := auth.Require(verifier, auth.EditingRoles()...)

	api := e.Group("/api")
	api.POST("/auth/register", handlers.RegisterPost)
	api.POST("/auth/login", handlers.LoginPost)
	api.POST("/upload", handlers.UploadPost, auth.Require(verifier, auth.RoleReporter))
	api.GET("/videos", handlers.VideosGet, viewing)
	api.GET("/videos/stream/:assetId", handlers.StreamGet, viewing)
	api.GET("/videos/download/:assetId", handlers.DownloadGet, viewing)
	api.POST("/videos/download", handlers.DownloadBulkPost, viewing)
	api.POST("/videos/:assetId/timecodes", handlers.TimecodePost, editing)
	api.GET("/videos/:assetId/timecodes", handlers.TimecodesGet, viewing)

	// start the transcode worker pool
	if mode == intake.ModeQueued {
		if err := intake.ResetStuck(); err != nil {
			log.Errorf("reset stuck jobs: %v", err)
		}
		startTranscodeWorkers(runner, config.GetWorkerCount())
	}

	// Start server
	e.Logger.Fatal(e.Start(config.GetListenAddr()))
}
