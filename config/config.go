package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DataDir string `envconfig:"DATA_DIR" default:"data"`
	Persist bool   `envconfig:"PERSIST" default:"true"`
	Port    string `envconfig:"PORT" default:"8080"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	// An empty JWTSecret leaves the API open.
	JWTSecret         string   `envconfig:"JWT_SECRET"`
	JWTExpiryHours    int      `envconfig:"JWT_EXPIRY_HOURS" default:"24"`
	OwnerEmail        string   `envconfig:"OWNER_EMAIL"`
	OwnerPasswordHash string   `envconfig:"OWNER_PASSWORD_HASH"`
	CORSOrigins       []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`

	SampleData       bool   `envconfig:"SAMPLE_DATA" default:"false"`
	RemindersEnabled bool   `envconfig:"REMINDERS_ENABLED" default:"false"`
	ReminderSchedule string `envconfig:"REMINDER_SCHEDULE" default:"0 9 * * *"`
	BackupSchedule   string `envconfig:"BACKUP_SCHEDULE" default:"0 2 * * *"`
	ReminderTemplate string `envconfig:"REMINDER_TEMPLATE"`

	TwilioAccountSID     string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken      string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber    string `envconfig:"TWILIO_PHONE_NUMBER"`
	TwilioWhatsAppNumber string `envconfig:"TWILIO_WHATSAPP_NUMBER"`

	DBURL string `envconfig:"DB_URL"`
}

// Load reads envFile, if present, into the environment and then fills a
// Config from it. An empty envFile means ".env".
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return Config{}, errors.Wrapf(err, "load %s", envFile)
		}
		logrus.WithField("file", envFile).Debug("no env file found")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "read environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return errors.New("DATA_DIR must not be empty")
	}
	if len(c.CORSOrigins) == 0 {
		return errors.New("CORS_ORIGINS must list at least one origin")
	}
	if c.JWTExpiryHours <= 0 {
		return errors.Errorf("JWT_EXPIRY_HOURS must be positive, got %d", c.JWTExpiryHours)
	}
	if c.JWTSecret != "" && (c.OwnerEmail == "" || c.OwnerPasswordHash == "") {
		return errors.New("OWNER_EMAIL and OWNER_PASSWORD_HASH are required when JWT_SECRET is set")
	}
	return nil
}

func (c Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryHours) * time.Hour
}

// AuthEnabled reports whether the API requires a token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// TwilioConfigured reports whether reminders can be sent at all.
func (c Config) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioPhoneNumber != ""
}
