package http

import (
	"context"
	stdhttp "net/http"

	"medizone/internal/auth"
	"medizone/internal/config"
	"medizone/internal/http/handler"
	"medizone/internal/http/middleware"
	"medizone/internal/repository"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	livenessMessage  = "MediZone Server Is Running."
	requestBodyLimit = "1M"
)

type ServerDependencies struct {
	Config         *config.Config
	UserRepo       repository.UserRepository
	MedicineRepo   repository.MedicineRepository
	CartRepo       repository.CartRepository
	PaymentRepo    repository.PaymentRepository
	SliderRepo     repository.SliderRepository
	CategoryRepo   repository.CategoryRepository
	AdvertRepo     repository.AdvertRepository
	TokenService   *auth.TokenService
	AuthMiddleware *auth.Middleware
	Gateway        handler.PaymentGateway
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID middleware (first, so all logs have request ID)
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	globalRateLimiter := middleware.NewGlobalRateLimiter()
	e.Use(globalRateLimiter.Middleware())

	// Strict rate limiting for the token-issuing endpoint
	strictRateLimiter := middleware.NewStrictRateLimiter()

	tokenHandler := handler.NewTokenHandler(deps.TokenService)
	userHandler := handler.NewUserHandler(deps.UserRepo)
	medicineHandler := handler.NewMedicineHandler(deps.MedicineRepo)
	cartHandler := handler.NewCartHandler(deps.CartRepo)
	paymentHandler := handler.NewPaymentHandler(deps.PaymentRepo, deps.CartRepo, deps.Gateway)
	catalogHandler := handler.NewCatalogHandler(deps.SliderRepo, deps.CategoryRepo)
	advertHandler := handler.NewAdvertHandler(deps.AdvertRepo)

	requireToken := deps.AuthMiddleware.RequireToken()
	requireSelf := deps.AuthMiddleware.RequireSelf("email")
	requireAdmin := deps.AuthMiddleware.RequireAdmin()

	e.GET("/", liveness)
	e.POST("/jwt", tokenHandler.IssueToken, strictRateLimiter.Middleware())

	e.POST("/users", userHandler.CreateUser)
	e.GET("/users", userHandler.ListUsers, requireToken, requireAdmin)
	e.PATCH("/users", userHandler.UpdateUserRole, requireToken, requireAdmin)
	e.GET("/users/:email", userHandler.GetUserByEmail, requireToken)
	e.PATCH("/users/:email", userHandler.UpdateUserProfile, requireToken)
	e.GET("/users/admin/:email", userHandler.CheckAdmin, requireToken, requireSelf)

	e.GET("/sliders", catalogHandler.ListSliders)
	e.POST("/sliders", catalogHandler.CreateSlider, requireToken)
	e.PATCH("/sliders/:id", catalogHandler.UpdateSlider, requireToken)
	e.DELETE("/sliders/:id", catalogHandler.DeleteSlider, requireToken)

	e.GET("/categorys", catalogHandler.ListCategories)
	e.POST("/categorys", catalogHandler.CreateCategory, requireToken)
	e.PATCH("/categorys/:id", catalogHandler.UpdateCategory, requireToken)
	e.DELETE("/categorys/:id", catalogHandler.DeleteCategory, requireToken)

	e.GET("/medicines", medicineHandler.ListByCategory)
	e.GET("/all-medicines", medicineHandler.ListAll)
	e.POST("/all-medicines", medicineHandler.Create, requireToken)
	e.GET("/all-medicines/:email", medicineHandler.ListBySeller, requireToken)
	e.GET("/discountProducts", medicineHandler.ListDiscounted)

	e.POST("/carts", cartHandler.AddItem, requireToken)
	e.GET("/carts", cartHandler.ListItems, requireToken)
	e.GET("/cart/:email", cartHandler.ListByBuyer, requireToken)
	e.DELETE("/carts/:id", cartHandler.DeleteItem, requireToken)

	e.POST("/create-payment-intent", paymentHandler.CreatePaymentIntent, requireToken)
	e.POST("/payments", paymentHandler.RecordPayment, requireToken)
	e.GET("/payment", paymentHandler.ListByBuyer, requireToken)
	e.GET("/all-payments", paymentHandler.ListAll, requireToken, requireAdmin)
	e.PATCH("/payments/:id", paymentHandler.MarkPaid, requireToken, requireAdmin)

	e.POST("/advertisements", advertHandler.Create, requireToken)
	e.GET("/advertisement", advertHandler.ListBySeller, requireToken)
	e.GET("/advertisements", advertHandler.ListAll, requireToken, requireAdmin)
	e.PATCH("/advertisements/:id", advertHandler.UpdateSlide, requireToken, requireAdmin)

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func liveness(c echo.Context) error {
	return c.String(stdhttp.StatusOK, livenessMessage)
}
