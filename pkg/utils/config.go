package utils

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Email    EmailConfig
	Stripe   StripeConfig
}

type AppConfig struct {
	Name                string
	Port                string
	AuthPort            string
	Debug               bool
	LogPath             string
	FrontendURL         string
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int
	ShutdownSeconds     int
}

// DatabaseConfig covers every booking store driver: postgres, mongo or memory.
type DatabaseConfig struct {
	Driver        string
	Host          string
	Port          string
	Name          string
	User          string
	Password      string
	MaxConns      int32
	MongoURI      string
	MongoDatabase string
}

type JWTConfig struct {
	Secret           string
	AccessTTLMinutes int
	RefreshTTLHours  int
}

type EmailConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	From           string
	SupportInbox   string
	TimeoutSeconds int
}

type StripeConfig struct {
	SecretKey      string
	Currency       string
	APIURL         string
	TimeoutSeconds int
}

// AllowedOrigins returns the CORS origins derived from the frontend URL.
func (c AppConfig) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.FrontendURL, ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// PrimaryFrontendURL is the first configured frontend origin, used for redirects.
func (c AppConfig) PrimaryFrontendURL() string {
	origin := c.AllowedOrigins()[0]
	if origin == "*" {
		return ""
	}
	return origin
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "hotel-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("AUTH_PORT", "8081")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("HTTP_READ_TIMEOUT_SECONDS", 15)
	viper.SetDefault("HTTP_WRITE_TIMEOUT_SECONDS", 30)
	viper.SetDefault("HTTP_IDLE_TIMEOUT_SECONDS", 60)
	viper.SetDefault("HTTP_SHUTDOWN_SECONDS", 10)
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "hotel-booking")
	viper.SetDefault("JWT_ACCESS_TTL_MINUTES", 15)
	viper.SetDefault("JWT_REFRESH_TTL_HOURS", 24*7)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_TIMEOUT_SECONDS", 15)
	viper.SetDefault("STRIPE_CURRENCY", "usd")
	viper.SetDefault("STRIPE_TIMEOUT_SECONDS", 30)

	// .env is optional; the process environment always wins
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:                viper.GetString("APP_NAME"),
			Port:                viper.GetString("PORT"),
			AuthPort:            viper.GetString("AUTH_PORT"),
			Debug:               viper.GetBool("DEBUG"),
			LogPath:             viper.GetString("LOG_PATH"),
			FrontendURL:         viper.GetString("FRONTEND_URL"),
			ReadTimeoutSeconds:  viper.GetInt("HTTP_READ_TIMEOUT_SECONDS"),
			WriteTimeoutSeconds: viper.GetInt("HTTP_WRITE_TIMEOUT_SECONDS"),
			IdleTimeoutSeconds:  viper.GetInt("HTTP_IDLE_TIMEOUT_SECONDS"),
			ShutdownSeconds:     viper.GetInt("HTTP_SHUTDOWN_SECONDS"),
		},
		Database: DatabaseConfig{
			Driver:        strings.ToLower(viper.GetString("DB_DRIVER")),
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			Name:          viper.GetString("DB_NAME"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASS"),
			MaxConns:      viper.GetInt32("DB_MAX_CONNS"),
			MongoURI:      viper.GetString("MONGO_URI"),
			MongoDatabase: viper.GetString("MONGO_DATABASE"),
		},
		JWT: JWTConfig{
			Secret:           viper.GetString("JWT_SECRET"),
			AccessTTLMinutes: viper.GetInt("JWT_ACCESS_TTL_MINUTES"),
			RefreshTTLHours:  viper.GetInt("JWT_REFRESH_TTL_HOURS"),
		},
		Email: EmailConfig{
			Host:           viper.GetString("SMTP_HOST"),
			Port:           viper.GetInt("SMTP_PORT"),
			User:           viper.GetString("SMTP_USER"),
			Password:       viper.GetString("SMTP_PASS"),
			From:           viper.GetString("EMAIL_FROM"),
			SupportInbox:   viper.GetString("SUPPORT_INBOX"),
			TimeoutSeconds: viper.GetInt("SMTP_TIMEOUT_SECONDS"),
		},
		Stripe: StripeConfig{
			SecretKey:      viper.GetString("STRIPE_SECRET_KEY"),
			Currency:       strings.ToLower(viper.GetString("STRIPE_CURRENCY")),
			APIURL:         viper.GetString("STRIPE_API_URL"),
			TimeoutSeconds: viper.GetInt("STRIPE_TIMEOUT_SECONDS"),
		},
	}

	return config, nil
}
