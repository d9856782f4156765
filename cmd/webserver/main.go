package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studybuddy"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

func main() {
	studybuddy.LoadEnv()
	cfg := studybuddy.LoadConfig()

	log, err := studybuddy.NewLogger(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.SetVerbose(cfg.Verbose)

	gateway, err := studybuddy.NewGateway(cfg.GatewayConfig(), log)
	if err != nil {
		log.Fatal("GROQ_APIKEY environment variable is required", "error", err)
	}

	quizzes, err := studybuddy.NewQuizStore(cfg.QuizDir)
	if err != nil {
		log.Fatal("Failed to open quiz directory", "dir", cfg.QuizDir, "error", err)
	}

	db, err := studybuddy.OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database", "path", cfg.DBPath, "error", err)
	}
	defer db.CloseDB()

	if err := db.CreateTables(); err != nil {
		log.Fatal("Failed to create tables", "error", err)
	}

	generator := studybuddy.NewGenerator(gateway, quizzes, db, log)

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	if cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	server, err := NewServer(gateway, generator, quizzes, store, log)
	if err != nil {
		log.Fatal("Failed to load templates", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.QuizRetention > 0 {
		go sweepQuizFiles(ctx, generator, cfg.QuizRetention, log)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting server", "port", cfg.Port, "quiz_dir", quizzes.Dir())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
	}
}

// sweepQuizFiles prunes old quiz files once per retention period until ctx is done
func sweepQuizFiles(ctx context.Context, generator *studybuddy.Generator, retention time.Duration, log *studybuddy.Logger) {
	interval := retention
	if interval > time.Hour {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := generator.Prune(ctx, retention); err != nil {
				log.Error("Quiz file sweep failed", "error", err)
			}
		}
	}
}
