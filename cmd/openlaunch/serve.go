package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"openlaunch/config"
	_ "openlaunch/docs"
	"openlaunch/internal/adapters/auth"
	"openlaunch/internal/adapters/email"
	httpdelivery "openlaunch/internal/delivery/http"
	"openlaunch/internal/delivery/http/controllers"
	"openlaunch/internal/repository/postgres"
	"openlaunch/internal/services"
)

const shutdownTimeout = 10 * time.Second

func cmdServe(cfg *config.Config) *cobra.Command {
	var runMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := config.NewLogger(os.Stdout, cfg)
			slog.SetDefault(logger)

			if runMigrations {
				if err := postgres.Migrate(logger, cfg.DBUrl); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}

	cmd.Flags().BoolVar(&runMigrations, "migrate", false, "Apply pending database migrations before serving")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	pingCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mail.AWSRegion,
			AccessKeyID:        cfg.Mail.AWSAccessKeyID,
			SecretAccessKey:    cfg.Mail.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Mail.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("create mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("load email templates: %w", err)
	}

	projectRepo := postgres.NewProjectRepository(db)
	articleRepo := postgres.NewArticleRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	userRepo := postgres.NewUserRepository(db)

	emailService := services.NewEmailService(mailer, renderer, logger)
	projectService := services.NewProjectService(projectRepo, cfg.RequestTimeout)
	articleService := services.NewArticleService(articleRepo, logger, cfg.RequestTimeout)
	commentService := services.NewCommentService(commentRepo, projectRepo, userRepo, emailService, logger, cfg.AppBaseURL, cfg.RequestTimeout)

	router := httpdelivery.NewRouter(httpdelivery.RouterDeps{
		Logger:            logger,
		TokenVerifier:     auth.NewJWTVerifier(cfg.JWTSecret),
		CORSOrigins:       cfg.CORSOrigins,
		ProjectController: controllers.NewProjectController(logger, projectService),
		ArticleController: controllers.NewArticleController(logger, articleService),
		CommentController: controllers.NewCommentController(logger, commentService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
