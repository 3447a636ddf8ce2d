package config

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type StorageConfig struct {
	DriverName string         `yaml:"driver"`
	SQLite     SQLiteConfig   `yaml:"sqlite"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

func (s *StorageConfig) Driver() string {
	return s.DriverName
}

func (s *StorageConfig) Path() string {
	return s.SQLite.DBPath
}

func (s *StorageConfig) Host() string {
	return s.Postgres.Hostname
}

func (s *StorageConfig) Database() string {
	return s.Postgres.Db
}

func (s *StorageConfig) Username() string {
	return s.Postgres.User
}

func (s *StorageConfig) Password() string {
	return s.Postgres.Pswd
}

type SQLiteConfig struct {
	DBPath string `yaml:"path"`
}

type PostgresConfig struct {
	Hostname string `yaml:"host"`
	Db       string `yaml:"db"`
	User     string `yaml:"username"`
	Pswd     string `yaml:"password"`
}
