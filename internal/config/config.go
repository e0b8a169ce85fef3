package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	Log    LogConfig
	Queue  QueueConfig
	Engine EngineConfig
	Parse  ParseConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// QueueConfig holds parse queue worker settings.
type QueueConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	MaxRetries       int `mapstructure:"max_retries"`
	Concurrency      int `mapstructure:"concurrency"`
}

// EngineConfig holds text acquisition engine settings.
type EngineConfig struct {
	QualityThreshold  float64       `mapstructure:"quality_threshold"`
	MinTextChars      int           `mapstructure:"min_text_chars"`
	StructuralEnabled bool          `mapstructure:"structural_enabled"`
	TableEnabled      bool          `mapstructure:"table_enabled"`
	OCREnabled        bool          `mapstructure:"ocr_enabled"`
	OCRTimeout        time.Duration `mapstructure:"ocr_timeout"`
	OCRDPI            int           `mapstructure:"ocr_dpi"`
	OCRMaxPages       int           `mapstructure:"ocr_max_pages"`
	TesseractBin      string        `mapstructure:"tesseract_bin"`
	PdftoppmBin       string        `mapstructure:"pdftoppm_bin"`
}

// ParseConfig holds extraction and scoring settings.
type ParseConfig struct {
	DefaultCurrency    string  `mapstructure:"default_currency"`
	OCRCeiling         float64 `mapstructure:"ocr_ceiling"`
	UnknownIssuerCap   float64 `mapstructure:"unknown_issuer_cap"`
	MissingRequiredCap float64 `mapstructure:"missing_required_cap"`

	// Per-field weights for the overall confidence score.
	WeightCardNumber     float64 `mapstructure:"weight_card_number"`
	WeightStatementDate  float64 `mapstructure:"weight_statement_date"`
	WeightBillingPeriod  float64 `mapstructure:"weight_billing_period"`
	WeightPaymentDueDate float64 `mapstructure:"weight_payment_due_date"`
	WeightTotalAmountDue float64 `mapstructure:"weight_total_amount_due"`
}

// Load reads configuration from environment variables with the CARDLENS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CARDLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "cardlens")
	v.SetDefault("db.password", "cardlens_secret")
	v.SetDefault("db.name", "cardlens_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "cardlens-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Queue defaults
	v.SetDefault("queue.poll_interval_secs", 5)
	v.SetDefault("queue.max_retries", 3)
	v.SetDefault("queue.concurrency", 4)

	// Engine defaults
	v.SetDefault("engine.quality_threshold", 0.6)
	v.SetDefault("engine.min_text_chars", 100)
	v.SetDefault("engine.structural_enabled", true)
	v.SetDefault("engine.table_enabled", true)
	v.SetDefault("engine.ocr_enabled", true)
	v.SetDefault("engine.ocr_timeout", "60s")
	v.SetDefault("engine.ocr_dpi", 300)
	v.SetDefault("engine.ocr_max_pages", 10)
	v.SetDefault("engine.tesseract_bin", "tesseract")
	v.SetDefault("engine.pdftoppm_bin", "pdftoppm")

	// Parse defaults
	v.SetDefault("parse.default_currency", "INR")
	v.SetDefault("parse.ocr_ceiling", 0.9)
	v.SetDefault("parse.unknown_issuer_cap", 0.4)
	v.SetDefault("parse.missing_required_cap", 0.5)
	v.SetDefault("parse.weight_card_number", 1.0)
	v.SetDefault("parse.weight_statement_date", 1.0)
	v.SetDefault("parse.weight_billing_period", 0.5)
	v.SetDefault("parse.weight_payment_due_date", 1.0)
	v.SetDefault("parse.weight_total_amount_due", 1.0)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                   "CARDLENS_SERVER_PORT",
		"server.read_timeout":           "CARDLENS_SERVER_READ_TIMEOUT",
		"server.write_timeout":          "CARDLENS_SERVER_WRITE_TIMEOUT",
		"server.environment":            "CARDLENS_SERVER_ENVIRONMENT",
		"db.host":                       "CARDLENS_DB_HOST",
		"db.port":                       "CARDLENS_DB_PORT",
		"db.user":                       "CARDLENS_DB_USER",
		"db.password":                   "CARDLENS_DB_PASSWORD",
		"db.name":                       "CARDLENS_DB_NAME",
		"db.sslmode":                    "CARDLENS_DB_SSLMODE",
		"db.max_open":                   "CARDLENS_DB_MAX_OPEN",
		"db.max_idle":                   "CARDLENS_DB_MAX_IDLE",
		"s3.region":                     "CARDLENS_S3_REGION",
		"s3.bucket":                     "CARDLENS_S3_BUCKET",
		"s3.endpoint":                   "CARDLENS_S3_ENDPOINT",
		"s3.access_key":                 "CARDLENS_S3_ACCESS_KEY",
		"s3.secret_key":                 "CARDLENS_S3_SECRET_KEY",
		"s3.max_file_size_mb":           "CARDLENS_S3_MAX_FILE_SIZE_MB",
		"log.level":                     "CARDLENS_LOG_LEVEL",
		"log.format":                    "CARDLENS_LOG_FORMAT",
		"queue.poll_interval_secs":      "CARDLENS_QUEUE_POLL_INTERVAL_SECS",
		"queue.max_retries":             "CARDLENS_QUEUE_MAX_RETRIES",
		"queue.concurrency":             "CARDLENS_QUEUE_CONCURRENCY",
		"engine.quality_threshold":      "CARDLENS_ENGINE_QUALITY_THRESHOLD",
		"engine.min_text_chars":         "CARDLENS_ENGINE_MIN_TEXT_CHARS",
		"engine.structural_enabled":     "CARDLENS_ENGINE_STRUCTURAL_ENABLED",
		"engine.table_enabled":          "CARDLENS_ENGINE_TABLE_ENABLED",
		"engine.ocr_enabled":            "CARDLENS_ENGINE_OCR_ENABLED",
		"engine.ocr_timeout":            "CARDLENS_ENGINE_OCR_TIMEOUT",
		"engine.ocr_dpi":                "CARDLENS_ENGINE_OCR_DPI",
		"engine.ocr_max_pages":          "CARDLENS_ENGINE_OCR_MAX_PAGES",
		"engine.tesseract_bin":          "CARDLENS_ENGINE_TESSERACT_BIN",
		"engine.pdftoppm_bin":           "CARDLENS_ENGINE_PDFTOPPM_BIN",
		"parse.default_currency":        "CARDLENS_PARSE_DEFAULT_CURRENCY",
		"parse.ocr_ceiling":             "CARDLENS_PARSE_OCR_CEILING",
		"parse.unknown_issuer_cap":      "CARDLENS_PARSE_UNKNOWN_ISSUER_CAP",
		"parse.missing_required_cap":    "CARDLENS_PARSE_MISSING_REQUIRED_CAP",
		"parse.weight_card_number":      "CARDLENS_PARSE_WEIGHT_CARD_NUMBER",
		"parse.weight_statement_date":   "CARDLENS_PARSE_WEIGHT_STATEMENT_DATE",
		"parse.weight_billing_period":   "CARDLENS_PARSE_WEIGHT_BILLING_PERIOD",
		"parse.weight_payment_due_date": "CARDLENS_PARSE_WEIGHT_PAYMENT_DUE_DATE",
		"parse.weight_total_amount_due": "CARDLENS_PARSE_WEIGHT_TOTAL_AMOUNT_DUE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CARDLENS_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CARDLENS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Queue = QueueConfig{
		PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
		MaxRetries:       v.GetInt("queue.max_retries"),
		Concurrency:      v.GetInt("queue.concurrency"),
	}
	cfg.Engine = EngineConfig{
		QualityThreshold:  v.GetFloat64("engine.quality_threshold"),
		MinTextChars:      v.GetInt("engine.min_text_chars"),
		StructuralEnabled: v.GetBool("engine.structural_enabled"),
		TableEnabled:      v.GetBool("engine.table_enabled"),
		OCREnabled:        v.GetBool("engine.ocr_enabled"),
		OCRTimeout:        v.GetDuration("engine.ocr_timeout"),
		OCRDPI:            v.GetInt("engine.ocr_dpi"),
		OCRMaxPages:       v.GetInt("engine.ocr_max_pages"),
		TesseractBin:      v.GetString("engine.tesseract_bin"),
		PdftoppmBin:       v.GetString("engine.pdftoppm_bin"),
	}
	cfg.Parse = ParseConfig{
		DefaultCurrency:      v.GetString("parse.default_currency"),
		OCRCeiling:           v.GetFloat64("parse.ocr_ceiling"),
		UnknownIssuerCap:     v.GetFloat64("parse.unknown_issuer_cap"),
		MissingRequiredCap:   v.GetFloat64("parse.missing_required_cap"),
		WeightCardNumber:     v.GetFloat64("parse.weight_card_number"),
		WeightStatementDate:  v.GetFloat64("parse.weight_statement_date"),
		WeightBillingPeriod:  v.GetFloat64("parse.weight_billing_period"),
		WeightPaymentDueDate: v.GetFloat64("parse.weight_payment_due_date"),
		WeightTotalAmountDue: v.GetFloat64("parse.weight_total_amount_due"),
	}

	return cfg, nil
}
