// Package httpapi exposes the backend over HTTP/JSON: gin router, request
// binding, bearer-token middleware, and the mapping from service errors to
// status codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Sandhya175/GrowlioBackend/internal/common"
	"github.com/Sandhya175/GrowlioBackend/internal/logging"
	"github.com/Sandhya175/GrowlioBackend/internal/server/auth"
	"github.com/Sandhya175/GrowlioBackend/internal/server/config"
	"github.com/Sandhya175/GrowlioBackend/internal/server/models"
	"github.com/Sandhya175/GrowlioBackend/internal/server/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// AccountService is the slice of services.AccountService the handlers use.
type AccountService interface {
	SignUp(ctx context.Context, username, email, password, confirmPassword string) (*services.Session, error)
	Login(ctx context.Context, identifier, password string) (*services.Session, error)
	ValidateToken(ctx context.Context, token string) (*auth.Claims, error)
	Logout(ctx context.Context, token string) error
}

// ResetService is the slice of services.PasswordResetService the handlers use.
type ResetService interface {
	RequestReset(ctx context.Context, email string) error
	Redeem(ctx context.Context, secret, newPassword, confirmPassword string) error
}

// ProfileService is the slice of services.ProfileService the handlers use.
type ProfileService interface {
	SaveMember(ctx context.Context, accountID string, m *models.Member) (*models.Member, error)
	GetMember(ctx context.Context, accountID string) (*models.Member, error)
	MemberID(ctx context.Context, accountID string) (string, error)
	AddNominee(ctx context.Context, accountID string, n *models.Nominee) (*models.Nominee, error)
	AddGuardian(ctx context.Context, accountID string, g *models.Guardian) (*models.Guardian, error)
	ListNominees(ctx context.Context, accountID string) ([]models.Nominee, error)
	DeleteNominee(ctx context.Context, accountID, nomineeID string) error
	SaveInsurance(ctx context.Context, accountID string, info *models.InsuranceInfo) (*models.InsuranceInfo, error)
	GetInsurance(ctx context.Context, accountID string) (*models.InsuranceInfo, error)
	SaveBusinessEntity(ctx context.Context, accountID string, e *models.BusinessEntity, stakeholders []models.Stakeholder) (*models.BusinessEntity, error)
	AddStakeholder(ctx context.Context, accountID string, sh *models.Stakeholder) (*models.Stakeholder, error)
	GetBusinessEntity(ctx context.Context, accountID string) (*models.BusinessEntity, []models.Stakeholder, error)
}

// DashboardService is the slice of services.DashboardService the handlers use.
type DashboardService interface {
	Get(ctx context.Context, accountID string) (*models.Dashboard, error)
}

// Handlers bundles the services behind the HTTP surface.
type Handlers struct {
	accounts  AccountService
	resets    ResetService
	profile   ProfileService
	dashboard DashboardService
	logger    logging.Logger
}

func NewHandlers(accounts AccountService, resets ResetService, profile ProfileService, dashboard DashboardService, logger logging.Logger) *Handlers {
	return &Handlers{
		accounts:  accounts,
		resets:    resets,
		profile:   profile,
		dashboard: dashboard,
		logger:    logger,
	}
}

// NewRouter wires all routes onto a gin engine. Protected routes sit behind
// the bearer-token middleware.
func NewRouter(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowOrigins, ",")
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", h.SignUp)
			authRoutes.POST("/login", h.Login)
			authRoutes.POST("/forgot-password", h.ForgotPassword)
			authRoutes.POST("/reset-password", h.ResetPassword)
			authRoutes.POST("/logout", h.RequireAuth(), h.Logout)
		}

		protected := api.Group("", h.RequireAuth())
		{
			protected.GET("/dashboard", h.Dashboard)

			protected.POST("/members", h.SaveMember)
			protected.GET("/members", h.GetMember)
			protected.GET("/members/:member_id/nominees", h.ListNominees)
			protected.GET("/members/:member_id/insurance", h.GetInsurance)

			protected.POST("/nominees", h.AddNominee)
			protected.DELETE("/nominees/:id", h.DeleteNominee)
			protected.POST("/guardians", h.AddGuardian)
			protected.POST("/insurance", h.SaveInsurance)

			protected.POST("/business-entities", h.SaveBusinessEntity)
			protected.POST("/stakeholders", h.AddStakeholder)
			protected.GET("/users/:user_id/business-entity", h.GetBusinessEntity)
		}
	}

	return router
}

// Health is the liveness endpoint.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps a service error to its HTTP status and writes the JSON
// error body.
func (h *Handlers) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, common.ErrPasswordMismatch):
		status, message = http.StatusBadRequest, "passwords do not match"
	case errors.Is(err, common.ErrInvalidToken):
		status, message = http.StatusBadRequest, "invalid token"
	case errors.Is(err, common.ErrTokenExpired):
		status, message = http.StatusBadRequest, "token expired"
	case errors.Is(err, common.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, common.ErrNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrConflict):
		status, message = http.StatusConflict, "username or email already in use"
	case errors.Is(err, common.ErrDeliveryFailed):
		status, message = http.StatusBadGateway, "failed to send email"
	default:
		h.logger.Error(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	}

	c.JSON(status, gin.H{"error": message})
}
