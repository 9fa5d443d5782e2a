package server

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/x17green/debtledger/internal/config"
	"github.com/x17green/debtledger/internal/handler"
	"github.com/x17green/debtledger/internal/middleware"
	"github.com/x17green/debtledger/pkg/logger"
)

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type Server struct {
	echo          *echo.Echo
	cfg           *config.Config
	logger        *logger.Logger
	debtHandler   *handler.DebtHandler
	importHandler *handler.ImportHandler
	healthHandler *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	debtHandler *handler.DebtHandler,
	importHandler *handler.ImportHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New()}

	return &Server{
		echo:          e,
		cfg:           cfg,
		logger:        log,
		debtHandler:   debtHandler,
		importHandler: importHandler,
		healthHandler: healthHandler,
	}
}

func (s *Server) Start() error {
	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	api := s.echo.Group("", middleware.Identity())

	api.POST("/debts", s.debtHandler.Create)
	api.GET("/debts", s.debtHandler.List)
	api.GET("/debts/:id", s.debtHandler.Get)
	api.POST("/debts/:id/payments", s.debtHandler.RecordPayment)
	api.GET("/debts/:id/payments", s.debtHandler.ListPayments)
	api.GET("/summary", s.debtHandler.Summary)
	api.GET("/activity", s.debtHandler.Activity)

	api.POST("/imports", s.importHandler.Upload)
	api.GET("/imports/:id", s.importHandler.Get)
	api.GET("/imports/:id/issues", s.importHandler.GetIssues)
}

// Handler exposes the configured echo instance for tests.
func (s *Server) Handler() *echo.Echo {
	s.setupMiddleware()
	s.setupRoutes()
	return s.echo
}
