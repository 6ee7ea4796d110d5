package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jrmferreira/construcoes-backend/api"
	"github.com/jrmferreira/construcoes-backend/config"
	"github.com/jrmferreira/construcoes-backend/database"
	"github.com/jrmferreira/construcoes-backend/errs"
	"github.com/jrmferreira/construcoes-backend/models"
	"github.com/jrmferreira/construcoes-backend/services"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	ctx := context.Background()
	c := config.New()

	var awsCfg *aws.Config
	if path := config.GetString(c, "SSM_PARAMETER_PATH", ""); path != "" {
		cfg, err := loadAWSConfig(ctx, c)
		if err != nil {
			log.Fatal().Err(err).Msg("Error loading AWS configuration")
		}
		awsCfg = &cfg

		n, err := config.LoadSSMParameters(ctx, ssm.NewFromConfig(cfg), path, c)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Error loading SSM parameters")
		}
		log.Info().Int("parameters", n).Str("path", path).Msg("Loaded SSM parameters")
	}

	setLogLevel(config.GetString(c, "LOG_LEVEL", "info"))

	repo, db, err := openRepository(ctx, c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error opening repository")
	}

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		if db == nil {
			log.Fatal().Msg("GENERATE_MODELS needs a database DB_TYPE")
		}
		if err := models.GenerateModels(db, config.GetString(c, "GENERATE_MODELS_PATH", "./query")); err != nil {
			log.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	businessNumber := config.GetString(c, "BUSINESS_WHATSAPP_NUMBER", services.DefaultBusinessNumber)
	emailNotifier := newEmailNotifier(c)
	quoteNotifiers := services.MultiNotifier{}
	if sid := config.GetString(c, "TWILIO_ACCOUNT_SID", ""); sid != "" {
		quoteNotifiers = append(quoteNotifiers, services.NewTwilioNotifier(
			sid,
			config.GetString(c, "TWILIO_AUTH_TOKEN", ""),
			config.GetString(c, "TWILIO_WHATSAPP_FROM", ""),
			businessNumber,
		))
	}
	if emailNotifier != nil {
		quoteNotifiers = append(quoteNotifiers, emailNotifier)
	}

	deps := api.Dependencies{
		Repo: repo,
		Contact: services.NewContactService(services.ContactFormConfig{
			BusinessNumber: businessNumber,
			CountryCode:    config.GetString(c, "WHATSAPP_COUNTRY_CODE", services.DefaultCountryCode),
			// Request-scoped forms are closed before any notice could expire.
			NoticeTTL: -1,
		}, quoteNotifiers),
	}
	if emailNotifier != nil {
		deps.CommentNotifier = emailNotifier
	}

	if bucket := config.GetString(c, "GALLERY_BUCKET", ""); bucket != "" {
		if awsCfg == nil {
			cfg, err := loadAWSConfig(ctx, c)
			if err != nil {
				log.Fatal().Err(err).Msg("Error loading AWS configuration")
			}
			awsCfg = &cfg
		}
		deps.Gallery = services.NewGalleryService(
			s3.NewFromConfig(*awsCfg),
			bucket,
			config.GetString(c, "GALLERY_PREFIX", ""),
			config.GetDuration(c, "GALLERY_URL_TTL_MINUTES", time.Minute, 15),
		)
		log.Info().Str("bucket", bucket).Msg("Serving gallery images from S3")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(c, deps)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// openRepository picks the store from DB_TYPE. The gorm handle is nil for the
// in-memory store.
func openRepository(ctx context.Context, c map[string]string) (database.Repository, *gorm.DB, error) {
	dbType := config.GetString(c, "DB_TYPE", "memory")
	log.Info().Str("dbType", dbType).Msg("Selecting repository")

	var connStr string
	switch dbType {
	case "memory":
		latency := database.DefaultLatency
		if !config.GetBool(c, "SIMULATED_LATENCY", true) {
			latency = database.Latency{}
		}
		return database.NewMemoryRepo(database.WithLatency(latency)), nil, nil
	case "supa":
		connStr = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(c, "SUPABASE_DB_HOST", ""),
			config.GetString(c, "SUPABASE_DB_USER", ""),
			config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(c, "SUPABASE_DB_NAME", ""),
			config.GetString(c, "SUPABASE_DB_PORT", "5432"),
		)
		log.Info().Msg("Connecting to Supabase database...")
	case "postgres":
		connStr = config.GetString(c, "DATABASE_URL", "")
		if connStr == "" {
			return nil, nil, errs.NewConfigMissingError("DATABASE_URL")
		}
		log.Info().Msg("Connecting to Postgres database...")
	default:
		return nil, nil, fmt.Errorf("unsupported DB_TYPE %q", dbType)
	}

	newLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, nil, fmt.Errorf("testing database connection: %w", err)
	}

	if err := models.Migrate(db); err != nil {
		return nil, nil, err
	}
	report, err := models.ColumnMismatches(db)
	if err != nil {
		return nil, nil, err
	}
	for table, columns := range report {
		log.Warn().Str("table", table).Strs("columns", columns).Msg("Columns not accounted for in model")
	}

	if config.GetBool(c, "SEED_DATA", false) {
		if err := database.Seed(ctx, db); err != nil {
			return nil, nil, err
		}
	}

	return database.New(db), db, nil
}

func loadAWSConfig(ctx context.Context, c map[string]string) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.GetString(c, "AWS_REGION", "sa-east-1")))
}

// newEmailNotifier returns nil when Resend is not configured.
func newEmailNotifier(c map[string]string) *services.EmailNotifier {
	n, err := services.NewEmailNotifier(
		config.GetString(c, "RESEND_API_KEY", ""),
		config.GetString(c, "RESEND_FROM_EMAIL", ""),
		config.GetStrings(c, "COMMENT_NOTIFY_EMAILS"),
	)
	if err != nil {
		log.Info().Err(err).Msg("Email notifications disabled")
		return nil
	}
	return n
}

func setLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-sig)
}
