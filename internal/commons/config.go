package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"cortado/internal/config"
)

// fileConfig mirrors config.Config with durations as strings, since YAML
// has no native duration scalar.
type fileConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		Name            string `yaml:"name"`
		MaxOpenConns    int    `yaml:"maxOpenConns"`
		MaxIdleConns    int    `yaml:"maxIdleConns"`
		ConnMaxLifetime string `yaml:"connMaxLifetime"`
	} `yaml:"database"`
	Order struct {
		CheckoutTxTimeout string `yaml:"checkoutTxTimeout"`
	} `yaml:"order"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(fc.Database.ConnMaxLifetime)
	if err != nil {
		return nil, fmt.Errorf("parsing database.connMaxLifetime: %w", err)
	}

	checkoutTxTimeout, err := time.ParseDuration(fc.Order.CheckoutTxTimeout)
	if err != nil {
		return nil, fmt.Errorf("parsing order.checkoutTxTimeout: %w", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: fc.Server.Port,
		},
		Database: config.DatabaseConfig{
			Host:            fc.Database.Host,
			Port:            fc.Database.Port,
			User:            fc.Database.User,
			Password:        fc.Database.Password,
			Name:            fc.Database.Name,
			MaxOpenConns:    fc.Database.MaxOpenConns,
			MaxIdleConns:    fc.Database.MaxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
		},
		Order: config.OrderConfig{
			CheckoutTxTimeout: checkoutTxTimeout,
		},
		Log: config.LogConfig{
			Level: fc.Log.Level,
		},
	}

	return cfg, nil
}
