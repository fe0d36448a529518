package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	domainErrors "github.com/polkiloo/autoservice/internal/domain/errors"
)

// Storage drivers supported by the repository mirror.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	ShutdownTimeout time.Duration
	LogLevel        string

	StorageDriver     string
	DatabaseURI       string
	DynamoEndpoint    string
	AWSRegion         string
	DynamoTablePrefix string
	KafkaBrokers      []string
	EventsTopic       string
	RelayInterval     time.Duration
	RelayBatchSize    int
	WorkerPoolSize    int
	OutboxCapacity    int
	SeedOrders        int
	Seed              uint64
	GridStartHour     int
	GridEndHour       int
	GridUnitHeight    float64
	GridMinExtent     float64
	WeekStart         time.Weekday
	Location          *time.Location
}

const (
	defaultRunAddress      = ":8080"
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
	defaultStorageDriver   = DriverMemory
	defaultAWSRegion       = "us-east-1"
	defaultTablePrefix     = "autoservice_"
	defaultEventsTopic     = "autoservice.events"
	defaultRelayInterval   = time.Second
	defaultRelayBatchSize  = 64
	defaultWorkerPoolSize  = 2
	defaultOutboxCapacity  = 4096
	defaultSeedOrders      = 1200
	defaultSeed            = 1
	defaultGridStartHour   = 9
	defaultGridEndHour     = 19
	defaultGridUnitHeight  = 80
	defaultGridMinExtent   = 40
	defaultWeekStart       = "monday"
	defaultTimeZone        = "Local"
)

// Module provides *Config to fx graphs.
var Module = fx.Provide(Load)

// Load reads optional .env file, then parses configuration from flags and environment variables.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	return load(os.Args[1:], os.LookupEnv)
}

// loadDotEnv exports variables from env files without overriding the environment.
// Missing files are not an error.
func loadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:        getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		ShutdownTimeout:   getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:          getString(lookup, "LOG_LEVEL", defaultLogLevel),
		StorageDriver:     getString(lookup, "STORAGE_DRIVER", defaultStorageDriver),
		DatabaseURI:       getString(lookup, "DATABASE_URI", ""),
		DynamoEndpoint:    getString(lookup, "DYNAMODB_ENDPOINT", ""),
		AWSRegion:         getString(lookup, "AWS_REGION", defaultAWSRegion),
		DynamoTablePrefix: getString(lookup, "DYNAMODB_TABLE_PREFIX", defaultTablePrefix),
		EventsTopic:       getString(lookup, "EVENTS_TOPIC", defaultEventsTopic),
		RelayInterval:     getDuration(lookup, "RELAY_INTERVAL", defaultRelayInterval),
		RelayBatchSize:    getInt(lookup, "RELAY_BATCH_SIZE", defaultRelayBatchSize),
		WorkerPoolSize:    getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		OutboxCapacity:    getInt(lookup, "OUTBOX_CAPACITY", defaultOutboxCapacity),
		SeedOrders:        getInt(lookup, "SEED_ORDERS", defaultSeedOrders),
		GridStartHour:     getInt(lookup, "GRID_START_HOUR", defaultGridStartHour),
		GridEndHour:       getInt(lookup, "GRID_END_HOUR", defaultGridEndHour),
		GridUnitHeight:    getFloat(lookup, "GRID_UNIT_HEIGHT", defaultGridUnitHeight),
		GridMinExtent:     getFloat(lookup, "GRID_MIN_EXTENT", defaultGridMinExtent),
	}

	var (
		kafkaBrokers       = getString(lookup, "KAFKA_BROKERS", "")
		seedStr            = getString(lookup, "SEED", strconv.Itoa(defaultSeed))
		weekStartStr       = getString(lookup, "WEEK_START", defaultWeekStart)
		timeZone           = getString(lookup, "TIME_ZONE", defaultTimeZone)
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		relayIntervalStr   = cfg.RelayInterval.String()
	)

	fs := flag.NewFlagSet("autoservice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.StorageDriver, "storage", cfg.StorageDriver, "Repository driver: memory, postgres, dynamodb")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.DynamoEndpoint, "dynamo-endpoint", cfg.DynamoEndpoint, "DynamoDB endpoint override")
	fs.StringVar(&cfg.AWSRegion, "aws-region", cfg.AWSRegion, "AWS region")
	fs.StringVar(&cfg.DynamoTablePrefix, "dynamo-prefix", cfg.DynamoTablePrefix, "DynamoDB table name prefix")
	fs.StringVar(&kafkaBrokers, "kafka", kafkaBrokers, "Comma separated Kafka brokers")
	fs.StringVar(&cfg.EventsTopic, "events-topic", cfg.EventsTopic, "Kafka topic for domain events")
	fs.StringVar(&relayIntervalStr, "relay-interval", relayIntervalStr, "Interval between outbox relay passes")
	fs.IntVar(&cfg.RelayBatchSize, "relay-batch", cfg.RelayBatchSize, "Maximum events per relay pass")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent relay workers")
	fs.IntVar(&cfg.OutboxCapacity, "outbox-capacity", cfg.OutboxCapacity, "Maximum buffered events")
	fs.IntVar(&cfg.SeedOrders, "seed-orders", cfg.SeedOrders, "Number of generated orders")
	fs.StringVar(&seedStr, "seed", seedStr, "Random seed for generated data")
	fs.IntVar(&cfg.GridStartHour, "grid-start", cfg.GridStartHour, "First hour of the calendar grid")
	fs.IntVar(&cfg.GridEndHour, "grid-end", cfg.GridEndHour, "Hour the calendar grid ends at")
	fs.Float64Var(&cfg.GridUnitHeight, "grid-unit", cfg.GridUnitHeight, "Grid units per hour")
	fs.Float64Var(&cfg.GridMinExtent, "grid-min", cfg.GridMinExtent, "Minimum rendered appointment extent")
	fs.StringVar(&weekStartStr, "week-start", weekStartStr, "First day of the week")
	fs.StringVar(&timeZone, "tz", timeZone, "IANA time zone of the shop")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.RelayInterval, err = time.ParseDuration(relayIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid relay interval: %w", err)
	}

	if cfg.Seed, err = strconv.ParseUint(seedStr, 10, 64); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	if cfg.WeekStart, err = parseWeekday(weekStartStr); err != nil {
		return nil, err
	}

	if cfg.Location, err = time.LoadLocation(timeZone); err != nil {
		return nil, fmt.Errorf("invalid time zone: %w", err)
	}

	cfg.KafkaBrokers = splitList(kafkaBrokers)
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.RelayInterval <= 0 {
		cfg.RelayInterval = defaultRelayInterval
	}

	if cfg.RelayBatchSize <= 0 {
		cfg.RelayBatchSize = defaultRelayBatchSize
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.OutboxCapacity <= 0 {
		cfg.OutboxCapacity = defaultOutboxCapacity
	}

	if cfg.SeedOrders < 0 {
		cfg.SeedOrders = defaultSeedOrders
	}

	if cfg.GridUnitHeight <= 0 {
		cfg.GridUnitHeight = defaultGridUnitHeight
	}

	if cfg.GridMinExtent < 0 {
		cfg.GridMinExtent = defaultGridMinExtent
	}

	if cfg.GridStartHour < 0 || cfg.GridEndHour > 24 || cfg.GridStartHour >= cfg.GridEndHour {
		return nil, fmt.Errorf("invalid grid window %d-%d", cfg.GridStartHour, cfg.GridEndHour)
	}

	switch cfg.StorageDriver {
	case DriverMemory, DriverDynamoDB:
	case DriverPostgres:
		if cfg.DatabaseURI == "" {
			return nil, fmt.Errorf("database URI must be provided for postgres storage")
		}
	default:
		return nil, fmt.Errorf("%w: %q", domainErrors.ErrUnknownDriver, cfg.StorageDriver)
	}

	return cfg, nil
}

func parseWeekday(raw string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid week start %q", raw)
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getFloat(lookup envLookup, key string, def float64) float64 {
	if v, ok := lookup(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
