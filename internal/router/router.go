package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"pet-adoption/internal/adapters/auth/bcrypt"
	mem "pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/config"
	"pet-adoption/internal/docs"
	"pet-adoption/internal/domain/adoptions"
	"pet-adoption/internal/domain/applications"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/sessions"
	"pet-adoption/internal/domain/staff"
	"pet-adoption/internal/domain/stats"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config config.Config
	Logger logger.Logger

	// Opcional: si viene, usa Postgres (y corre migraciones). Si no, in-memory.
	DB *sql.DB

	// Opcional: los tests pasan un hasher barato.
	Hasher auth.PasswordHasher
}

// App es el handler HTTP más lo que main necesita para el ciclo de vida.
type App struct {
	Handler  http.Handler
	Sessions *sessions.Service
}

type repos struct {
	pets         pets.Repository
	applications applications.Repository
	adoptions    adoptions.Repository
	staff        staff.Repository
	sessions     sessions.Repository
}

func NewRouter(ctx context.Context, opts Options) (*App, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	hasher := opts.Hasher
	if hasher == nil {
		hasher = bcrypt.NewHasher(cfg.BcryptCost)
	}

	rp, err := openRepos(ctx, opts.DB)
	if err != nil {
		return nil, err
	}

	// Services por módulo
	petsSvc := pets.NewService(rp.pets)
	appsSvc := applications.NewService(rp.applications, petsSvc)
	adoptionsSvc := adoptions.NewService(rp.adoptions, petsSvc, appsSvc)
	sessionsSvc := sessions.NewService(rp.sessions, rp.staff, hasher, cfg.SessionTTL, log)
	staffSvc := staff.NewService(rp.staff, hasher, sessionsSvc)
	statsSvc := stats.NewService(rp.pets, rp.applications, rp.adoptions, cfg.Location)

	if cfg.SeedData {
		if err := seed(ctx, log, staffSvc, petsSvc); err != nil {
			return nil, err
		}
	}

	cookie := cfg.Cookie()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.AuthContext(sessionsSvc, cookie))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
	))

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		sessions.RegisterRoutes(api, sessionsSvc, cookie)
		pets.RegisterRoutes(api, petsSvc)
		applications.RegisterRoutes(api, appsSvc)
		adoptions.RegisterRoutes(api, adoptionsSvc)
		stats.RegisterRoutes(api, statsSvc)
		staff.RegisterRoutes(api, staffSvc)
	})

	return &App{Handler: r, Sessions: sessionsSvc}, nil
}

func openRepos(ctx context.Context, db *sql.DB) (repos, error) {
	if db == nil {
		st := mem.NewStore()
		return repos{
			pets:         st.Pets(),
			applications: st.Applications(),
			adoptions:    st.Adoptions(),
			staff:        st.Staff(),
			sessions:     st.Sessions(),
		}, nil
	}

	if err := pg.RunMigrations(ctx, db); err != nil {
		return repos{}, err
	}
	st := pg.NewStore(db)
	return repos{
		pets:         st.Pets(),
		applications: st.Applications(),
		adoptions:    st.Adoptions(),
		staff:        st.Staff(),
		sessions:     st.Sessions(),
	}, nil
}

func seed(ctx context.Context, log logger.Logger, staffSvc *staff.Service, petsSvc *pets.Service) error {
	users, err := staffSvc.Seed(ctx, staff.DefaultAccounts)
	if err != nil {
		return fmt.Errorf("seed staff: %w", err)
	}
	petsN, err := petsSvc.Seed(ctx, pets.SamplePets)
	if err != nil {
		return fmt.Errorf("seed pets: %w", err)
	}
	if users > 0 || petsN > 0 {
		log.Info("sample data seeded", map[string]any{"staff_users": users, "pets": petsN})
	}
	return nil
}
