package config

import "time"

type AppConfig struct {
	LocationName string `yaml:"location"`
	ChartsDir    string `yaml:"charts-dir"`
}

// Location is the time zone used to decide what "today" is.
func (s *AppConfig) Location() *time.Location {
	loc, err := s.loadLocation()
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *AppConfig) ChartsDirectory() string {
	return s.ChartsDir
}

func (s *AppConfig) loadLocation() (*time.Location, error) {
	if s.LocationName == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(s.LocationName)
}
