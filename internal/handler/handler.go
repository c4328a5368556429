package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/storeops-dev/roster-manager/backend/internal/config"
	"github.com/storeops-dev/roster-manager/backend/internal/domain"
	"github.com/storeops-dev/roster-manager/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// Authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Everything below requires a logged-in user.
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager})).Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo) // every staff member may look up colleagues
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleStoreManager})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleStoreManager})).Delete("/", h.DeleteUser)
				r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager})).Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/shift-templates", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager})).Post("/", h.CreateShiftTemplate)
			r.Get("/", h.GetAllShiftTemplates)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shiftTemplate)
				r.Get("/", h.GetShiftTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager})).Patch("/", h.UpdateShiftTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager})).Delete("/", h.DeleteShiftTemplate)
			})
		})

		r.Route("/schedule-versions", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager})).Post("/", h.CreateScheduleVersion)
			r.Get("/", h.GetAllScheduleVersions)

			// Advisory endpoints backed by the planning engine.
			r.Post("/validate-range", h.ValidateScheduleVersionRange)
			r.Post("/suggestions", h.SuggestForScheduleVersionRange)
			r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager})).Get("/conflicts", h.AnalyzeScheduleVersionConflicts)

			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.scheduleVersion)
				r.Get("/", h.GetScheduleVersionByID)
				r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager})).Patch("/", h.UpdateScheduleVersion)
				r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager})).Delete("/", h.DeleteScheduleVersion)
				r.Get("/metrics", h.GetScheduleVersionMetrics)
				r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager})).Post("/compatibility", h.CheckScheduleVersionCompatibility)

				r.Route("/your-submission", func(r chi.Router) {
					r.Use(h.myInfo)
					r.Use(h.preventInactiveEmployee)
					r.Use(h.preventSubmitToInactiveVersion)
					r.Post("/", h.SubmitYourAvailability)
					r.Get("/", h.GetYourAvailabilitySubmission)
				})
				// Only managers see everyone's submissions.
				r.With(h.RequiredRole([]domain.Role{domain.RoleStoreManager})).Get("/submissions", h.GetScheduleVersionSubmissions)
			})
		})
	})
}
