package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type RateConfig struct {
	Env        string `yaml:"env"`
	HTTPServer `yaml:"http_server"`
	RateDB     `yaml:"rate_db"`
	LogConfig  `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	RateEngine `yaml:"rate_engine"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RateDB struct {
	Dsn string `yaml:"dsn"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RateEngine struct {
	CoolingMinutes     int `yaml:"cooling_minutes" env-default:"15"`
	SweepIntervalHours int `yaml:"sweep_interval_hours" env-default:"1"`
}

func MustLoad() *RateConfig {

	// Processing env config variable and file
	configPath := os.Getenv("RATE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("RATE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg RateConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
