package types

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort  uint   `envconfig:"PORT" default:"8000"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// Uploads carry base64 media inline, so bodies run large. The read
	// timeout covers the whole body and has to leave room for a full
	// sync batch over a slow mobile link. The write deadline starts when the
	// headers are read, so it must outlast the read timeout.
	MaxBodyBytes    int64 `envconfig:"MAX_BODY_BYTES" default:"33554432"`
	ReadTimeoutSec  uint  `envconfig:"READ_TIMEOUT_SEC" default:"120"`
	WriteTimeoutSec uint  `envconfig:"WRITE_TIMEOUT_SEC" default:"150"`

	// Document store. An empty DatabaseURL runs the service without persistence.
	DatabaseURL  string `envconfig:"DATABASE_URL"`
	DatabaseName string `envconfig:"DATABASE_NAME"`

	// OTP demo flow
	OTPDemoCode string `envconfig:"OTP_DEMO_CODE" default:"123456"`
	OTPTTLSec   uint   `envconfig:"OTP_TTL_SEC" default:"0"` // 0 never expires

	// Token signing key (base64 encoded)
	// openssl rand -base64 32
	// to generate a value. Unset means a random key per process.
	TokenHashKey string `envconfig:"TOKEN_HASH_KEY"`
}

// DefaultDatabaseName is the schema documents live in when DATABASE_NAME is unset.
const DefaultDatabaseName = "loantracker"

// SchemaName returns the postgres schema used as the search path.
func (c *Config) SchemaName() string {
	if c.DatabaseName == "" {
		return DefaultDatabaseName
	}
	return c.DatabaseName
}
