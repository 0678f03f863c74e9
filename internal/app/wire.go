//go:build wireinject
// +build wireinject

package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/wire"
	"github.com/quickcourt/quickcourt/config"
	"github.com/quickcourt/quickcourt/internal/delivery/http"

	authHandler "github.com/quickcourt/quickcourt/internal/domains/auth/handler"
	authService "github.com/quickcourt/quickcourt/internal/domains/auth/service"

	oauthHandler "github.com/quickcourt/quickcourt/internal/domains/oauth/handler"
	oauthService "github.com/quickcourt/quickcourt/internal/domains/oauth/service"

	userHandler "github.com/quickcourt/quickcourt/internal/domains/user/handler"
	userRepository "github.com/quickcourt/quickcourt/internal/domains/user/repository"
	userService "github.com/quickcourt/quickcourt/internal/domains/user/service"

	venueHandler "github.com/quickcourt/quickcourt/internal/domains/venues/handler"
	venueRepository "github.com/quickcourt/quickcourt/internal/domains/venues/repository"
	venueService "github.com/quickcourt/quickcourt/internal/domains/venues/service"

	courtHandler "github.com/quickcourt/quickcourt/internal/domains/courts/handler"
	courtRepository "github.com/quickcourt/quickcourt/internal/domains/courts/repository"
	courtService "github.com/quickcourt/quickcourt/internal/domains/courts/service"

	bookingHandler "github.com/quickcourt/quickcourt/internal/domains/bookings/handler"
	bookingRepository "github.com/quickcourt/quickcourt/internal/domains/bookings/repository"
	bookingService "github.com/quickcourt/quickcourt/internal/domains/bookings/service"

	paymentHandler "github.com/quickcourt/quickcourt/internal/domains/payments/handler"
	paymentRepository "github.com/quickcourt/quickcourt/internal/domains/payments/repository"
	paymentService "github.com/quickcourt/quickcourt/internal/domains/payments/service"

	dashboardHandler "github.com/quickcourt/quickcourt/internal/domains/dashboard/handler"
	dashboardRepository "github.com/quickcourt/quickcourt/internal/domains/dashboard/repository"
	dashboardService "github.com/quickcourt/quickcourt/internal/domains/dashboard/service"

	"github.com/quickcourt/quickcourt/pkg/httpserver"
	"github.com/quickcourt/quickcourt/pkg/jwt"
	"github.com/quickcourt/quickcourt/pkg/logger"
	"github.com/quickcourt/quickcourt/pkg/mail"
	"github.com/quickcourt/quickcourt/pkg/oauth"
	"github.com/quickcourt/quickcourt/pkg/postgres"
	"github.com/quickcourt/quickcourt/pkg/razorpay"
	"github.com/quickcourt/quickcourt/pkg/redis"
	"github.com/quickcourt/quickcourt/pkg/storage"
)

// Application represents the dependency-injected app
type Application struct {
	HTTPServer *httpserver.Server
	Logger     logger.Interface
	PG         *postgres.Postgres
	Redis      *redis.Redis
	JWT        *jwt.JWT
}

func provideUserQuerier() userRepository.Querier {
	return userRepository.New()
}

var userDomain = wire.NewSet(
	provideUserQuerier,
	userService.New,
	userHandler.New,
)

var authDomain = wire.NewSet(
	authService.New,
	authHandler.New,
)

var oauthDomain = wire.NewSet(
	oauthService.New,
	oauthHandler.New,
)

var venueDomain = wire.NewSet(
	venueRepository.New,
	venueService.New,
	venueHandler.New,
	wire.Bind(new(venueRepository.Querier), new(*venueRepository.Queries)),
)

var courtDomain = wire.NewSet(
	courtRepository.New,
	courtService.New,
	courtHandler.New,
	wire.Bind(new(courtRepository.Querier), new(*courtRepository.Queries)),
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	bookingHandler.New,
	wire.Bind(new(bookingRepository.Querier), new(*bookingRepository.Queries)),
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
	paymentHandler.New,
	wire.Bind(new(paymentRepository.Querier), new(*paymentRepository.Queries)),
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
	dashboardHandler.New,
	wire.Bind(new(dashboardRepository.Querier), new(*dashboardRepository.Queries)),
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	oauthDomain,
	venueDomain,
	courtDomain,
	bookingDomain,
	paymentDomain,
	dashboardDomain,
)

func InitializeApp(cfg *config.Config) (*Application, error) {
	wire.Build(
		// Infrastructure providers
		provideLogger,
		providePostgres,
		providePgxIface,
		provideValidator,
		provideRedis,
		provideRedisCache,
		provideJWT,
		provideGoogleOAuth,
		provideStorage,
		provideMail,
		provideRazorpay,

		domains,

		wire.Struct(new(http.Handlers), "*"),

		// HTTP server
		provideRouter,
		provideHTTPServer,

		// Application
		wire.Struct(new(Application), "*"),
	)

	return &Application{}, nil
}

func provideRouter(
	cfg *config.Config,
	l logger.Interface,
	h http.Handlers,
) *fiber.App {
	app := fiber.New()

	http.NewRouter(
		app,
		cfg,
		l,
		h,
	)

	return app
}

func provideLogger(cfg *config.Config) logger.Interface {
	return logger.New(cfg.Log.Level)
}

func provideJWT(cfg *config.Config) *jwt.JWT {
	jwt.Initialize(cfg.App.Name, cfg.JWT.Secret, jwt.ParseDuration(cfg.JWT.AccessTokenExpiry), jwt.ParseDuration(cfg.JWT.RefreshTokenExpiry))
	return jwt.GetInstance()
}

func providePostgres(cfg *config.Config, l logger.Interface) (*postgres.Postgres, error) {
	dsn := postgres.ConnectionBuilder(cfg.Pg.Host, cfg.Pg.Port, cfg.Pg.User, cfg.Pg.Password, cfg.Pg.Dbname, cfg.Pg.SSLMode, cfg.App.Timezone)
	pg, err := postgres.New(dsn, postgres.MaxPoolSize(cfg.Pg.PoolMax))
	if err != nil {
		return nil, err
	}
	return pg, nil
}

func providePgxIface(pg *postgres.Postgres) postgres.PgxIface {
	return pg.Pool
}

func provideRedis(cfg *config.Config) (*redis.Redis, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	return redis.New(addr, cfg.Redis.Password, cfg.Redis.DB)
}

func provideRedisCache(r *redis.Redis, l logger.Interface) redis.IRedisCache {
	return redis.NewRedisCache(r.Client, l)
}

func provideValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func provideGoogleOAuth(cfg *config.Config) oauth.GoogleProviderIface {
	return oauth.NewGoogleProvider(cfg.OAuth.Google.ClientID, cfg.OAuth.Google.ClientSecret, cfg.OAuth.Google.RedirectURL)
}

func provideStorage(cfg *config.Config) (*storage.Client, error) {
	return storage.NewClient(storage.Config{
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		EndpointURL:     cfg.Storage.EndpointURL,
		Region:          cfg.Storage.Region,
		BucketName:      cfg.Storage.BucketName,
	})
}

func provideMail(cfg *config.Config) mail.Service {
	return mail.New(mail.Config{
		SMTPHost:     cfg.Mail.SMTPHost,
		SMTPPort:     cfg.Mail.SMTPPort,
		SMTPUsername: cfg.Mail.SMTPUsername,
		SMTPPassword: cfg.Mail.SMTPPassword,
		FromEmail:    cfg.Mail.FromEmail,
		FromName:     cfg.Mail.FromName,
	})
}

func provideRazorpay(cfg *config.Config) razorpay.Gateway {
	return razorpay.New(cfg)
}

func provideHTTPServer(cfg *config.Config, app *fiber.App) *httpserver.Server {
	return httpserver.New(
		httpserver.Port(cfg.HTTP.Port),
		httpserver.App(app),
	)
}
