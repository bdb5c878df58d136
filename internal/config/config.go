package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Signup   SignupConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

type SignupConfig struct {
	TokenSecret        string
	TokenIssuer        string
	VerificationTTL    time.Duration
	RateLimitPerMinute int
	RateLimitBurst     int
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	BaseURL  string
	Timeout  time.Duration
}

// Load загружает конфигурацию приложения из окружения и .env.
func Load() (Config, error) {
	cfg := Config{}

	if err := loadEnv(); err != nil {
		return cfg, err
	}

	cfg.Env = getEnv("APP_ENV", "local")

	serverPort, err := parseIntEnv("SERVER_PORT", 8080)
	if err != nil {
		return cfg, err
	}

	readTimeout, err := parseDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return cfg, err
	}

	writeTimeout, err := parseDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return cfg, err
	}

	idleTimeout, err := parseDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return cfg, err
	}

	cfg.Server = ServerConfig{
		Host:         getEnv("SERVER_HOST", "0.0.0.0"),
		Port:         serverPort,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	dbPort, err := parseIntEnv("DB_PORT", 5432)
	if err != nil {
		return cfg, err
	}

	maxOpenConns, err := parseIntEnv("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return cfg, err
	}

	maxIdleConns, err := parseIntEnv("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return cfg, err
	}

	connMaxIdleTime, err := parseDurationEnv("DB_CONN_MAX_IDLE_TIME", 5*time.Minute)
	if err != nil {
		return cfg, err
	}

	connMaxLifetime, err := parseDurationEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	if err != nil {
		return cfg, err
	}

	cfg.Database = DatabaseConfig{
		Host:            getEnv("DB_HOST", "localhost"),
		Port:            dbPort,
		User:            getEnv("DB_USER", "budget"),
		Password:        getEnv("DB_PASSWORD", "budget"),
		Name:            getEnv("DB_NAME", "budget_tracker"),
		SSLMode:         getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxIdleTime: connMaxIdleTime,
		ConnMaxLifetime: connMaxLifetime,
	}

	verificationTTL, err := parseDurationEnv("SIGNUP_VERIFICATION_TTL", 48*time.Hour)
	if err != nil {
		return cfg, err
	}

	rateLimitPerMinute, err := parseIntEnv("SIGNUP_RATE_LIMIT_PER_MINUTE", 30)
	if err != nil {
		return cfg, err
	}

	rateLimitBurst, err := parseIntEnv("SIGNUP_RATE_LIMIT_BURST", 10)
	if err != nil {
		return cfg, err
	}

	cfg.Signup = SignupConfig{
		TokenSecret:        getEnv("SIGNUP_TOKEN_SECRET", ""),
		TokenIssuer:        getEnv("SIGNUP_TOKEN_ISSUER", "budget-tracker"),
		VerificationTTL:    verificationTTL,
		RateLimitPerMinute: rateLimitPerMinute,
		RateLimitBurst:     rateLimitBurst,
	}

	mailPort, err := parseIntEnv("MAIL_PORT", 587)
	if err != nil {
		return cfg, err
	}

	mailTimeout, err := parseDurationEnv("MAIL_TIMEOUT", 15*time.Second)
	if err != nil {
		return cfg, err
	}

	cfg.Mail = MailConfig{
		Host:     getEnv("MAIL_HOST", ""),
		Port:     mailPort,
		Username: getEnv("MAIL_USER", ""),
		Password: getEnv("MAIL_PASS", ""),
		From:     getEnv("MAIL_FROM", ""),
		BaseURL:  getEnv("MAIL_BASE_URL", "http://localhost:8080"),
		Timeout:  mailTimeout,
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// DSN возвращает строку подключения к базе данных.
func (c DatabaseConfig) DSN() string {
	user := url.UserPassword(c.User, c.Password)
	dsn := url.URL{
		Scheme: "postgres",
		User:   user,
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Name,
	}

	query := url.Values{}
	query.Set("sslmode", c.SSLMode)
	return dsn.String() + "?" + query.Encode()
}

// Enabled сообщает, настроена ли отправка почты. Без SMTP-хоста
// приветственные письма пропускаются, регистрация при этом работает.
func (c MailConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

func (c Config) validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("SERVER_PORT must be greater than 0")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	if c.Database.User == "" {
		return fmt.Errorf("DB_USER is required")
	}

	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	if c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("DB_MAX_IDLE_CONNS cannot exceed DB_MAX_OPEN_CONNS")
	}

	if c.Signup.TokenSecret == "" {
		return fmt.Errorf("SIGNUP_TOKEN_SECRET is required")
	}

	if c.Signup.VerificationTTL <= 0 {
		return fmt.Errorf("SIGNUP_VERIFICATION_TTL must be greater than 0")
	}

	if c.Signup.RateLimitPerMinute <= 0 {
		return fmt.Errorf("SIGNUP_RATE_LIMIT_PER_MINUTE must be greater than 0")
	}

	if c.Signup.RateLimitBurst <= 0 {
		return fmt.Errorf("SIGNUP_RATE_LIMIT_BURST must be greater than 0")
	}

	if c.Mail.Enabled() && c.Mail.Port <= 0 {
		return fmt.Errorf("MAIL_PORT must be greater than 0")
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}

	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func loadEnv() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}
