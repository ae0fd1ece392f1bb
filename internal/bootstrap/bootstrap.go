package bootstrap

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/learnhub/learnhub/internal/app/authclient"
	"github.com/learnhub/learnhub/internal/app/catalog"
	appControllers "github.com/learnhub/learnhub/internal/app/controllers"
	appRoutes "github.com/learnhub/learnhub/internal/app/routes"
	appServices "github.com/learnhub/learnhub/internal/app/services"
	"github.com/learnhub/learnhub/internal/config"
	pkgAuth "github.com/learnhub/learnhub/internal/pkg/auth"
	"github.com/learnhub/learnhub/internal/pkg/helpers"
	"github.com/learnhub/learnhub/internal/pkg/logger"
	"github.com/learnhub/learnhub/internal/pkg/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogSource    catalog.Source
	AuthClient       authclient.Client
	CatalogService   *appServices.CatalogService
	AuthService      *appServices.AuthService
	CourseController *appControllers.CourseController
	AuthController   *appControllers.AuthController
	JWTService       *pkgAuth.JWTService
	Sessions         session.Store
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies wires the catalog source, auth backend, services and
// controllers according to the configured variants.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Auth.JWTSecret,
		TokenExp:    helpers.ParseDuration(cfg.Session.TokenTTL, 168*time.Hour),
		TokenIssuer: cfg.Auth.TokenIssuer,
	})

	switch cfg.Catalog.Source {
	case config.SourceAPI:
		timeout := helpers.ParseDuration(cfg.Catalog.RequestTimeout, 10*time.Second)
		deps.CatalogSource = catalog.NewHTTPSource(cfg.Catalog.APIBaseURL, timeout, lgr)
		lgr.Info().Str("baseUrl", cfg.Catalog.APIBaseURL).Msg("Catalog source: upstream API")
	default:
		deps.CatalogSource = catalog.NewStaticSource()
		lgr.Info().Msg("Catalog source: bundled dataset")
	}

	switch cfg.Auth.Provider {
	case config.ProviderAPI:
		timeout := helpers.ParseDuration(cfg.Auth.RequestTimeout, 10*time.Second)
		deps.AuthClient = authclient.NewHTTPClient(cfg.Auth.APIBaseURL, timeout, lgr)
		lgr.Info().Str("baseUrl", cfg.Auth.APIBaseURL).Msg("Auth provider: upstream API")
	default:
		deps.AuthClient = authclient.NewMockProvider(deps.JWTService, lgr)
		lgr.Info().Msg("Auth provider: in-memory mock")
	}

	resendCooldown := helpers.ParseDuration(cfg.Session.ResendCooldown, 60*time.Second)
	flowTTL := 30 * time.Minute

	deps.Sessions = session.NewCookieStore(
		deps.JWTService,
		helpers.ParseDuration(cfg.Session.TokenTTL, 168*time.Hour),
		helpers.ParseDuration(cfg.Session.PendingTTL, 75*time.Second),
		cfg.IsProduction(),
	)

	deps.CatalogService = appServices.NewCatalogService(deps.CatalogSource, lgr)
	deps.AuthService = appServices.NewAuthService(deps.AuthClient, resendCooldown, flowTTL, lgr)

	deps.CourseController = appControllers.NewCourseController(deps.CatalogService, lgr)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Sessions, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.AuthController,
		deps.Sessions,
		lgr,
	)

	return router
}
