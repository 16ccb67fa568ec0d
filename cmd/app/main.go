package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/dmorales/blogapi/internal/commentservice"
	"github.com/dmorales/blogapi/internal/common"
	"github.com/dmorales/blogapi/internal/postservice"
	"github.com/dmorales/blogapi/internal/userservice"
)

type application struct {
	config         *Config
	logger         *slog.Logger
	accessLog      *accessLogger
	postService    *postservice.PostService
	commentService *commentservice.CommentService
	userService    *userservice.UserService
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := loadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The pool caps out at 10 open connections; extra callers queue.
	db, err := common.NewDB(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, 10, 5, 15*time.Minute)
	if err != nil {
		logger.Error("failed to connect to the database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer common.CloseDB(db)

	accessLog, err := newAccessLogger(cfg.AccessLogFile, logger)
	if err != nil {
		logger.Error("failed to open the access log", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app := &application{
		config:         cfg,
		logger:         logger,
		accessLog:      accessLog,
		postService:    postservice.NewPostService(db),
		commentService: commentservice.NewCommentService(db),
		userService:    userservice.NewUserService(db),
	}

	err = app.serve(cfg.Port)

	// Drain pending access log entries once no more requests can arrive.
	if closeErr := accessLog.Close(); closeErr != nil {
		logger.Error("failed to close the access log", slog.String("error", closeErr.Error()))
	}

	if err != nil {
		logger.Error("failed to start the server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
