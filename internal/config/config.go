package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type EscrowConfig struct {
	Env string `yaml:"env"`
	HTTPServer       `yaml:"http_server"`
	OrderDB          `yaml:"order_db"`
	LogConfig        `yaml:"log_config"`
	LedgerNode       `yaml:"ledger_node"`
	ReasoningService `yaml:"reasoning-service"`
	KafkaService     `yaml:"kafka-service"`
	Signer           `yaml:"signer"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type OrderDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"text"`
	LogOutput string `yaml:"log_output"`
}

type LedgerNode struct {
	URL            string        `yaml:"url"`
	RequestTimeout time.Duration `yaml:"request_timeout" env-default:"10s"`
	ConfirmWait    time.Duration `yaml:"confirm_wait" env-default:"30s"`
	PollInterval   time.Duration `yaml:"poll_interval" env-default:"500ms"`
}

type ReasoningService struct {
	URL     string        `yaml:"url"`
	Model   string        `yaml:"model"`
	APIKey  string        `yaml:"api_key" env:"REASONING_API_KEY"`
	Timeout time.Duration `yaml:"timeout" env-default:"15s"`
}

type KafkaService struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password" env:"KAFKA_PASSWORD"`
	Mechanism  string `yaml:"mechanism"`
	TLSEnabled bool   `yaml:"tls_enabled"`
}

type Signer struct {
	Address string `yaml:"address" env:"ESCROW_SIGNER_ADDRESS"`
}

func MustLoad() *EscrowConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ESCROW_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ESCROW_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg EscrowConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
