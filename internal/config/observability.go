package config

type MetricsConfig struct {
	ListenAddr string `yaml:"addr"`
}

func (s *MetricsConfig) Addr() string {
	return s.ListenAddr
}

type TracingConfig struct {
	Enabled   bool   `yaml:"enabled"`
	AgentAddr string `yaml:"agent-addr"`
	Service   string `yaml:"service-name"`
}

func (s *TracingConfig) IsEnabled() bool {
	return s.Enabled
}

func (s *TracingConfig) AgentHostPort() string {
	return s.AgentAddr
}

func (s *TracingConfig) ServiceName() string {
	return s.Service
}
