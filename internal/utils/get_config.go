package utils

import (
	"gopkg.in/yaml.v2"
	"log"
	"os"
	"strings"
)

type Config struct {
	// Application
	AppPort            string `yaml:"APP_PORT"`
	AppLocale          string `yaml:"APP_LOCALE"`
	LogTimeZone        string `yaml:"LOG_TIMEZONE"`
	RateLimitPerSecond string `yaml:"RATE_LIMIT_PER_SECOND"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// JWT
	JWTSecret    string `yaml:"JWT_SECRET"`
	AuthDisabled bool   `yaml:"AUTH_DISABLED"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Object storage
	StorageDriver string `yaml:"STORAGE_DRIVER"`
	AWSS3Bucket   string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region   string `yaml:"AWS_S3_REGION"`
	AWSAccessKey  string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey  string `yaml:"AWS_SECRET_KEY"`
	GCSBucket     string `yaml:"GCS_BUCKET"`

	// Extraction
	Extractor    string `yaml:"EXTRACTOR"`
	GeminiAPIKey string `yaml:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err = yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	applyEnv()
	applyDefaults()

	// keys read through os.Getenv by the cloud SDKs
	os.Setenv("JWT_SECRET", config.JWTSecret)
	os.Setenv("AWS_S3_BUCKET", config.AWSS3Bucket)
	os.Setenv("AWS_S3_REGION", config.AWSS3Region)
	os.Setenv("AWS_ACCESS_KEY", config.AWSAccessKey)
	os.Setenv("AWS_SECRET_KEY", config.AWSSecretKey)
	os.Setenv("GEMINI_API_KEY", config.GeminiAPIKey)
}

// applyEnv lets environment variables win over config.yaml.
func applyEnv() {
	fields := map[string]*string{
		"APP_PORT":              &config.AppPort,
		"APP_LOCALE":            &config.AppLocale,
		"LOG_TIMEZONE":          &config.LogTimeZone,
		"RATE_LIMIT_PER_SECOND": &config.RateLimitPerSecond,
		"DB_USER":               &config.DBUser,
		"DB_NAME":               &config.DBName,
		"DB_PASSWORD":           &config.DBPassword,
		"DB_PORT":               &config.DBPort,
		"DB_HOST":               &config.DBHost,
		"JWT_SECRET":            &config.JWTSecret,
		"APP_URL":               &config.AppURL,
		"SMTP_HOST":             &config.SMTPHost,
		"SMTP_PORT":             &config.SMTPPort,
		"SMTP_SENDER_NAME":      &config.SMTPSenderName,
		"SMTP_AUTH_EMAIL":       &config.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD":    &config.SMTPAuthPassword,
		"STORAGE_DRIVER":        &config.StorageDriver,
		"AWS_S3_BUCKET":         &config.AWSS3Bucket,
		"AWS_S3_REGION":         &config.AWSS3Region,
		"AWS_ACCESS_KEY":        &config.AWSAccessKey,
		"AWS_SECRET_KEY":        &config.AWSSecretKey,
		"GCS_BUCKET":            &config.GCSBucket,
		"EXTRACTOR":             &config.Extractor,
		"GEMINI_API_KEY":        &config.GeminiAPIKey,
		"GEMINI_MODEL":          &config.GeminiModel,
	}
	for key, field := range fields {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*field = v
		}
	}
	if v, ok := os.LookupEnv("AUTH_DISABLED"); ok && v != "" {
		config.AuthDisabled = strings.EqualFold(v, "true") || v == "1"
	}
}

func applyDefaults() {
	setDefault(&config.AppPort, "8080")
	setDefault(&config.AppLocale, "fr-MA")
	setDefault(&config.LogTimeZone, "Africa/Casablanca")
	setDefault(&config.RateLimitPerSecond, "10")
	setDefault(&config.StorageDriver, "s3")
	setDefault(&config.Extractor, "static")
	setDefault(&config.GeminiModel, "gemini-2.5-flash")
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_LOCALE":
		return config.AppLocale
	case "LOG_TIMEZONE":
		return config.LogTimeZone
	case "RATE_LIMIT_PER_SECOND":
		return config.RateLimitPerSecond
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "AUTH_DISABLED":
		return getBoolString(config.AuthDisabled)
	case "APP_URL":
		return config.AppURL
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "STORAGE_DRIVER":
		return config.StorageDriver
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "GCS_BUCKET":
		return config.GCSBucket
	case "EXTRACTOR":
		return config.Extractor
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		return config.GeminiModel
	default:
		return ""
	}
}
