package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/dushan456/portfolio-backend/internal/application"
)

// Handler is the HTTP adapter entrypoint for portfolio use-cases.
type Handler struct {
	service        *application.Service
	maxUploadBytes int64
}

// NewHandler constructs an HTTP handler bound to the application service.
// maxUploadBytes bounds multipart request bodies before they reach any use-case.
func NewHandler(service *application.Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &Handler{service: service, maxUploadBytes: maxUploadBytes}
}

// RouterConfig carries the HTTP-surface knobs the router needs.
type RouterConfig struct {
	AllowedOrigins []string
	UploadDir      string
}

// NewRouter registers routes and the middleware stack.
func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", handler.health)

	if cfg.UploadDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
		r.Get("/uploads/*", func(w http.ResponseWriter, req *http.Request) {
			fileServer.ServeHTTP(w, req)
		})
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			// Brute force on top of the account lockout: the limiter bounds
			// per-IP traffic before credentials are even checked.
			r.Use(httprate.LimitByIP(20, time.Minute))

			r.Post("/login", handler.login)
			r.Post("/verify-token", handler.verifyToken)
			r.Get("/verify-token", handler.verifyToken)

			r.Group(func(r chi.Router) {
				r.Use(handler.authMiddleware)
				r.Get("/me", handler.currentAdmin)
				r.Put("/profile", handler.updateProfile)
				r.Put("/change-password", handler.changePassword)
				r.Post("/logout", handler.logout)
				r.Get("/login-history", handler.loginHistory)
			})
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handler.listProjects)
			r.Get("/{id}", handler.getProject)

			r.Group(func(r chi.Router) {
				r.Use(handler.authMiddleware)
				r.Get("/admin/all", handler.listAllProjects)
				r.Post("/", handler.createProject)
				r.Put("/{id}", handler.updateProject)
				r.Delete("/{id}", handler.deleteProject)
				r.Post("/{id}/upload-images", handler.uploadProjectImages)
			})
		})

		r.Route("/skills", func(r chi.Router) {
			r.Get("/", handler.listSkills)
			r.Get("/categories", handler.listSkillCategories)

			r.Group(func(r chi.Router) {
				r.Use(handler.authMiddleware)
				r.Get("/admin/all", handler.listAllSkills)
				r.Post("/", handler.createSkill)
				r.Put("/reorder", handler.reorderSkills)
				r.Put("/{id}", handler.updateSkill)
				r.Delete("/{id}", handler.deleteSkill)
			})
		})

		r.Route("/education", func(r chi.Router) {
			r.Get("/", handler.listEducation)

			r.Group(func(r chi.Router) {
				r.Use(handler.authMiddleware)
				r.Get("/admin/all", handler.listAllEducation)
				r.Post("/", handler.createEducation)
				r.Put("/reorder", handler.reorderEducation)
				r.Put("/{id}", handler.updateEducation)
				r.Delete("/{id}", handler.deleteEducation)
				r.Post("/{id}/upload-logo", handler.uploadEducationLogo)
				r.Post("/{id}/upload-certificate", handler.uploadEducationCertificate)
			})
		})

		r.Route("/personal-details", func(r chi.Router) {
			r.Get("/", handler.getPersonalDetails)

			r.Group(func(r chi.Router) {
				r.Use(handler.authMiddleware)
				r.Put("/", handler.updatePersonalDetails)
				r.Post("/upload-profile-image", handler.uploadProfileImage)
				r.Post("/upload-cv", handler.uploadCV)
			})
		})

		r.Route("/contact", func(r chi.Router) {
			r.With(httprate.LimitByIP(5, time.Minute)).Post("/", handler.submitContactMessage)

			r.Group(func(r chi.Router) {
				r.Use(handler.authMiddleware)
				r.Get("/", handler.listContactMessages)
				r.Get("/stats", handler.contactStats)
				r.Get("/{id}", handler.getContactMessage)
				r.Post("/{id}/reply", handler.replyToContactMessage)
				r.Patch("/{id}/read", handler.markContactMessageRead)
				r.Delete("/{id}", handler.deleteContactMessage)
			})
		})
	})

	return r
}
