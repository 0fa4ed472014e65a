package router

import (
	"net/http"

	_ "aikiddo-api/docs"
	mem "aikiddo-api/internal/adapters/storage/memory"
	"aikiddo-api/internal/domain/students"
	"aikiddo-api/internal/middleware"
	"aikiddo-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, usa el store in-memory.
	Students students.Repository

	Logger logger.Logger

	// Orígenes permitidos por CORS. Vacío => "*".
	AllowedOrigins []string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		// Con "*" el navegador rechaza credenciales.
		AllowCredentials: !allowsAny(origins),
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	repo := opts.Students
	if repo == nil {
		repo = mem.NewStudentRepo()
	}

	students.RegisterRoutes(r, students.NewService(repo), log)

	return r
}

func allowsAny(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
