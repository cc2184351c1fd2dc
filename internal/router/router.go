package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	mem "city-animals/internal/adapters/storage/memory"
	pg "city-animals/internal/adapters/storage/postgres"
	"city-animals/internal/domain/animals"
	"city-animals/internal/domain/cities"
	"city-animals/internal/domain/stats"
	"city-animals/internal/middleware"

	_ "city-animals/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres (ya migrado). Si no, in-memory.
	DB *sql.DB

	Logger zerolog.Logger
}

// NewRouter arma los repos, hace el seed de ciudades y monta las rutas.
// El seed corre acá porque los handlers de ciudad asumen que existen.
func NewRouter(ctx context.Context, opts Options) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(middleware.Recover)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		cityRepo   cities.Repository
		animalRepo animals.Repository
		statsRepo  stats.Repository
	)

	if opts.DB != nil {
		cityRepo = pg.NewCitiesRepo(opts.DB)
		animalRepo = pg.NewAnimalsRepo(opts.DB)
		statsRepo = pg.NewStatsRepo(opts.DB)
	} else {
		memCities := mem.NewCityRepo()
		memAnimals := mem.NewAnimalRepo()

		cityRepo = memCities
		animalRepo = memAnimals
		statsRepo = mem.NewStatsRepo(memCities, memAnimals)
	}

	// Services por módulo
	citiesSvc := cities.NewService(cityRepo)
	animalsSvc := animals.NewService(animalRepo, citiesSvc)
	statsSvc := stats.NewService(statsRepo)

	if err := citiesSvc.Seed(ctx, cities.Predefined); err != nil {
		return nil, fmt.Errorf("seed cities: %w", err)
	}
	opts.Logger.Info().Strs("cities", cities.Predefined).Msg("cities seeded")

	// Rutas por módulo
	cities.RegisterRoutes(r, citiesSvc)
	animals.RegisterRoutes(r, animalsSvc)
	stats.RegisterRoutes(r, statsSvc)

	return r, nil
}
