package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnvKey  = "TRACKER_CONFIG"
	defaultConfigFile = "data/config.yaml"
)

type config struct {
	App      AppConfig      `yaml:"app"`
	Storage  StorageConfig  `yaml:"storage"`
	Telegram TelegramConfig `yaml:"telegram"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Reporter MetricsConfig  `yaml:"reporter-metrics"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

type Service struct {
	config config
}

// New loads the configuration from the file named by TRACKER_CONFIG
// (data/config.yaml by default). A .env file in the working directory is
// applied to the environment first.
func New() (*Service, error) {
	_ = godotenv.Load()

	path := os.Getenv(configPathEnvKey)
	if path == "" {
		path = defaultConfigFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

// Parse builds the configuration from raw YAML, applying defaults and
// validating the result.
func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{config: defaults()}

	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if err = s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func defaults() config {
	return config{
		App: AppConfig{
			LocationName: "UTC",
			ChartsDir:    "charts",
		},
		Storage: StorageConfig{
			DriverName: DriverSQLite,
			SQLite:     SQLiteConfig{DBPath: "data/expenses.db"},
		},
		Kafka: KafkaConfig{
			Consumer: "reporter",
			RepTopic: "expense-reports",
		},
		Metrics:  MetricsConfig{ListenAddr: ":9090"},
		Reporter: MetricsConfig{ListenAddr: ":9091"},
		Tracing: TracingConfig{
			Service:   "expense-tracker",
			AgentAddr: "127.0.0.1:6831",
		},
	}
}

// Validate checks the settings that depend on each other.
func (s *Service) Validate() error {
	var problems []string

	switch s.config.Storage.DriverName {
	case DriverSQLite:
		if strings.TrimSpace(s.config.Storage.SQLite.DBPath) == "" {
			problems = append(problems, "storage.sqlite.path is required for the sqlite driver")
		}
	case DriverPostgres:
		if s.config.Storage.Postgres.Hostname == "" || s.config.Storage.Postgres.Db == "" {
			problems = append(problems, "storage.postgres.host and storage.postgres.db are required for the postgres driver")
		}
	case DriverMemory:
	default:
		problems = append(problems, fmt.Sprintf("unknown storage driver %q", s.config.Storage.DriverName))
	}

	if _, err := s.config.App.loadLocation(); err != nil {
		problems = append(problems, fmt.Sprintf("unknown app.location %q", s.config.App.LocationName))
	}

	if s.config.Kafka.Enabled {
		if len(s.config.Kafka.BrokerList) == 0 {
			problems = append(problems, "kafka.brokers is required when kafka is enabled")
		}
		if s.config.Kafka.RepTopic == "" {
			problems = append(problems, "kafka.reports-topic is required when kafka is enabled")
		}
	}

	if addr := s.config.Metrics.ListenAddr; addr != "" && addr == s.config.Reporter.ListenAddr {
		problems = append(problems, fmt.Sprintf("metrics.addr and reporter-metrics.addr both use %q", addr))
	}

	if len(problems) > 0 {
		return errors.Errorf("invalid configuration:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

// ReporterMetrics is the metrics endpoint of the report worker.
func (s *Service) ReporterMetrics() *MetricsConfig {
	return &s.config.Reporter
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
