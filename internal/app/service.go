package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"medizone/internal/auth"
	"medizone/internal/config"
	"medizone/internal/gateway/stripe"
	internalhttp "medizone/internal/http"
	"medizone/internal/repository/mongodb"
)

// Service owns the process-wide dependencies: configuration, the Mongo
// client, and the HTTP server. All of them are built once here and treated
// as read-only for the rest of the process lifetime.
type Service struct {
	config *config.Config
	db     *mongodb.DB
	server *internalhttp.Server
}

func NewService() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		_ = db.Disconnect(ctx)
		return nil, err
	}

	tokenService, err := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpiryDuration)
	if err != nil {
		_ = db.Disconnect(ctx)
		return nil, err
	}

	userRepo := mongodb.NewUserRepository(db)

	server := internalhttp.NewServer(&internalhttp.ServerDependencies{
		Config:         cfg,
		UserRepo:       userRepo,
		MedicineRepo:   mongodb.NewMedicineRepository(db),
		CartRepo:       mongodb.NewCartRepository(db),
		PaymentRepo:    mongodb.NewPaymentRepository(db),
		SliderRepo:     mongodb.NewSliderRepository(db),
		CategoryRepo:   mongodb.NewCategoryRepository(db),
		AdvertRepo:     mongodb.NewAdvertRepository(db),
		TokenService:   tokenService,
		AuthMiddleware: auth.NewMiddleware(tokenService, userRepo),
		Gateway:        stripe.New(cfg.Stripe.SecretKey),
	})

	return &Service{
		config: cfg,
		db:     db,
		server: server,
	}, nil
}

// Start runs the HTTP server until the process receives SIGINT or SIGTERM,
// then drains in-flight requests and disconnects from the document store.
func (s *Service) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Println("Starting MediZone server on port " + s.config.Server.Port)
		errCh <- s.server.Start(":" + s.config.Server.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("Shutting down MediZone server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(shutdownCtx)
	if dbErr := s.db.Disconnect(shutdownCtx); err == nil {
		err = dbErr
	}

	return err
}

// Shutdown stops the server outside of the signal flow, for tests and
// embedding.
func (s *Service) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	return s.db.Disconnect(ctx)
}
