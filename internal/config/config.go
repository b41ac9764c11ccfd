// Package config defines process configuration and how it is loaded.
//
// Conventions:
// - New() returns defaults; Load(ctx) layers file and environment on top.
// - Validation failures wrap ErrInvalidConfig, loader failures wrap ErrLoadConfig.
package config

// Run modes.
const (
	ModeLambda = "lambda"
	ModeHTTP   = "http"
)

// Store backends.
const (
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

// DefaultTableName is the DynamoDB table that receives ActionRecords.
const DefaultTableName = "lasttimei_events"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat is text or json. Lambda deployments should use json.
	LogFormat string `koanf:"log_format"`

	// Mode is lambda (serve the Lambda runtime API) or http (local listener).
	Mode string `koanf:"mode"`

	// Addr is the HTTP listen address used in http mode.
	Addr string `koanf:"addr"`

	// Store selects the record backend: dynamodb or memory.
	Store string `koanf:"store"`

	// TableName is the DynamoDB table for ActionRecords.
	TableName string `koanf:"table_name"`

	// AWSRegion overrides the region resolved by the SDK default chain.
	AWSRegion string `koanf:"aws_region"`

	// DynamoDBEndpoint points the client at DynamoDB Local or another emulator.
	DynamoDBEndpoint string `koanf:"dynamodb_endpoint"`

	// Actions adds serial-number -> action entries to the built-in registry.
	Actions map[string]string `koanf:"actions"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "json",
		Mode:      ModeLambda,
		Addr:      ":9080",
		Store:     StoreDynamoDB,
		TableName: DefaultTableName,
	}
}
