package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, intervals, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Mail   MailConfig
	Admin  AdminConfig
	Hero   HeroConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// MailConfig carries the EmailJS delivery channel settings.
// ContactTemplateID defaults to the booking template; while the two are equal,
// contact messages reuse the booking template with the message text carried in
// the phone field.
type MailConfig struct {
	Endpoint          string        `envconfig:"MAIL_ENDPOINT" default:"https://api.emailjs.com/api/v1.0/email/send"`
	ServiceID         string        `envconfig:"MAIL_SERVICE_ID" default:"service_gmx0l6n"`
	TemplateID        string        `envconfig:"MAIL_TEMPLATE_ID" default:"template_oqt7v55"`
	ContactTemplateID string        `envconfig:"MAIL_CONTACT_TEMPLATE_ID" default:"template_oqt7v55"`
	PublicKey         string        `envconfig:"MAIL_PUBLIC_KEY" default:"ZUW_svgen2b3a2GG2"`
	Destination       string        `envconfig:"MAIL_DESTINATION" default:"gidzdaquan@gmail.com"`
	SendTimeout       time.Duration `envconfig:"MAIL_SEND_TIMEOUT" default:"30s"`
}

// AdminConfig drives both the mock dashboard session and the seeded
// administrator account. Seeding is skipped while Password is empty.
type AdminConfig struct {
	Email       string `envconfig:"ADMIN_EMAIL" default:"admin@azulhomes.com"`
	DisplayName string `envconfig:"ADMIN_DISPLAY_NAME" default:"Admin User"`
	Password    string `envconfig:"ADMIN_PASSWORD" default:""`
}

type HeroConfig struct {
	RotateInterval time.Duration `envconfig:"HERO_ROTATE_INTERVAL" default:"2s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Mail: MailConfig{
			Endpoint:          "http://localhost:0",
			ServiceID:         "service_test",
			TemplateID:        "template_test",
			ContactTemplateID: "template_test",
			PublicKey:         "public_test",
			Destination:       "owner@example.com",
			SendTimeout:       time.Second,
		},
		Admin: AdminConfig{
			Email:       "admin@azulhomes.com",
			DisplayName: "Admin User",
			Password:    "test-password",
		},
		Hero: HeroConfig{
			RotateInterval: 2 * time.Second,
		},
	}
}
