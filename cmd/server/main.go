package main // Entry point package

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/film-vault/internal/config"
	"github.com/iliyamo/film-vault/internal/database"
	"github.com/iliyamo/film-vault/internal/handler"
	"github.com/iliyamo/film-vault/internal/queue"
	"github.com/iliyamo/film-vault/internal/repository"
	"github.com/iliyamo/film-vault/internal/router"
	"github.com/iliyamo/film-vault/internal/service"
	"github.com/iliyamo/film-vault/internal/session"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Fatal("redis: connection failed; sessions cannot work without it")
	}

	sessions := session.NewManager(
		session.NewRedisStore(rdb),
		time.Duration(cfg.SessionTTLHours)*time.Hour,
	)

	users := repository.NewUserRepo(db)
	films := repository.NewFilmRepo(db)

	authSvc := service.NewAuthService(users, sessions, cfg.BcryptCost)
	catalogSvc := service.NewCatalogService(films)

	// Background consumer writes the catalog audit log from film.added
	// events. It reconnects on broker failures and never stops the server.
	go func() {
		if err := queue.StartFilmConsumer(); err != nil {
			log.Printf("film consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.Register(e,
		sessions,
		handler.NewAuthHandler(authSvc, sessions),
		handler.NewPageHandler(catalogSvc),
		handler.NewFilmHandler(catalogSvc),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
