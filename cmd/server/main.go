// @title         resumeparser API
// @version       1.0
// @description   Сервис разбора резюме: извлекает контакты, навыки, образование и опыт из PDF/DOCX и сохраняет их для поиска.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:5000
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен администратора: "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/resumeparser/docs"

	// internal imports
	"github.com/artem13815/resumeparser/api/http"
	"github.com/artem13815/resumeparser/api/http/handlers"
	"github.com/artem13815/resumeparser/api/http/presenter"
	"github.com/artem13815/resumeparser/pkg/config"
	"github.com/artem13815/resumeparser/pkg/health"
	"github.com/artem13815/resumeparser/pkg/health/checkers"
	"github.com/artem13815/resumeparser/pkg/nlp"
	pgrepo "github.com/artem13815/resumeparser/pkg/repository/postgres"
	"github.com/artem13815/resumeparser/pkg/resume"
	"github.com/artem13815/resumeparser/pkg/searchcache"
	"github.com/artem13815/resumeparser/pkg/security/jwt"
	"github.com/artem13815/resumeparser/pkg/storage/postgres"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	if err := cfg.ValidateServer(); err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.MaxUploadMB << 20,
		ErrorHandler: presenter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	// Connect to PostgreSQL (migrations run inside Connect)
	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()

	var repo resume.Repository = pgrepo.NewResumeRepository(pool, postgres.Describe(pool))
	readinessCheckers := []health.Checker{
		checkers.NewPostgresChecker(pool),
		checkers.NewUploadDirChecker(cfg.UploadDir),
	}

	// Optional Redis cache in front of search
	if cfg.RedisURL != "" {
		rdb, err := searchcache.Dial(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connect: %v", err)
		}
		defer rdb.Close()
		ttl := time.Duration(cfg.SearchCacheTTLSec) * time.Second
		repo = resume.NewCachedRepository(repo, searchcache.NewRedis(rdb), ttl)
		readinessCheckers = append(readinessCheckers, searchcache.NewChecker(rdb))
		log.Printf("search cache enabled, ttl %s", ttl)
	}

	parser := resume.NewParser(parserOptions(cfg))

	readiness := health.NewService(readinessCheckers...)
	healthHandler := handlers.NewHealthHandler(readiness)
	resumesHandler := handlers.NewResumesHandler(parser, repo, cfg.UploadDir, int64(cfg.MaxUploadMB)<<20)

	if cfg.JWTSecret == "" {
		log.Printf("JWT_SECRET не задан: DELETE /api/v1/resumes/:id доступен без токена")
	}
	adminMW := jwt.NewAdminMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	// Register routes
	http.Register(app, healthHandler, resumesHandler, adminMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func parserOptions(cfg config.Config) resume.ParserOptions {
	return resume.ParserOptions{
		Strict:    cfg.StrictExtraction,
		SkillMode: nlp.MatchMode(cfg.SkillMatchMode),
		Names:     nlp.NewNameRecognizer(nlp.NameMode(cfg.NameRecognizer)),
	}
}
