package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Line     LineConfig     `yaml:"line"`
	Board    BoardConfig    `yaml:"board"`
	Schedule ScheduleConfig `yaml:"schedule"`
	AutoMail AutoMailConfig `yaml:"auto_mail"`
	API      APIConfig      `yaml:"api"`
	LogLevel string         `yaml:"log_level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RabbitMQConfig configures the new-article event publisher. Leaving URL
// empty disables publishing.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type LineConfig struct {
	ChannelToken string        `yaml:"channel_token"`
	Endpoint     string        `yaml:"endpoint"`
	Timeout      time.Duration `yaml:"timeout"`
}

type BoardConfig struct {
	URL       string        `yaml:"url"`
	Keywords  []string      `yaml:"keywords"`
	Timeout   time.Duration `yaml:"timeout"`
	FetchRate float64       `yaml:"fetch_rate"` // article page fetches per second
}

type ScheduleConfig struct {
	Timezone       string        `yaml:"timezone"`
	IntakeInterval time.Duration `yaml:"intake_interval"`
	StartHour      int           `yaml:"start_hour"`
	EndHour        int           `yaml:"end_hour"`
	DigestSpec     string        `yaml:"digest_spec"`
	PurgeSpec      string        `yaml:"purge_spec"`
	RetentionDays  int           `yaml:"retention_days"`
	DigestMaxItems int           `yaml:"digest_max_items"`
}

type AutoMailConfig struct {
	Enabled      bool          `yaml:"enabled"`
	BridgeURL    string        `yaml:"bridge_url"`
	Username     string        `yaml:"username"`
	Password     string        `yaml:"password"`
	GeminiAPIKey string        `yaml:"gemini_api_key"`
	GeminiModel  string        `yaml:"gemini_model"`
	DailyLimit   int           `yaml:"daily_limit"`
	MinDelay     time.Duration `yaml:"min_delay"`
	MaxDelay     time.Duration `yaml:"max_delay"`
	LedgerPath   string        `yaml:"ledger_path"`
}

type APIConfig struct {
	Port      string `yaml:"port"`
	AccessKey string `yaml:"access_key"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Board.URL == "" {
		c.Board.URL = "https://www.ptt.cc/bbs/Loan/index.html"
	}
	if len(c.Board.Keywords) == 0 {
		c.Board.Keywords = []string{"信貸", "個人信貸"}
	}
	if c.Board.Timeout == 0 {
		c.Board.Timeout = 10 * time.Second
	}
	if c.Board.FetchRate == 0 {
		c.Board.FetchRate = 1
	}
	if c.Line.Endpoint == "" {
		c.Line.Endpoint = "https://api.line.me/v2/bot/message/push"
	}
	if c.Line.Timeout == 0 {
		c.Line.Timeout = 10 * time.Second
	}
	if c.Schedule.Timezone == "" {
		c.Schedule.Timezone = "Asia/Taipei"
	}
	if c.Schedule.IntakeInterval == 0 {
		c.Schedule.IntakeInterval = time.Minute
	}
	if c.Schedule.StartHour == 0 && c.Schedule.EndHour == 0 {
		c.Schedule.StartHour = 7
		c.Schedule.EndHour = 20
	}
	if c.Schedule.DigestSpec == "" {
		c.Schedule.DigestSpec = "0 * * * *"
	}
	if c.Schedule.PurgeSpec == "" {
		c.Schedule.PurgeSpec = "0 3 * * *"
	}
	if c.Schedule.RetentionDays == 0 {
		c.Schedule.RetentionDays = 180
	}
	if c.Schedule.DigestMaxItems == 0 {
		c.Schedule.DigestMaxItems = 10
	}
	if c.AutoMail.GeminiModel == "" {
		c.AutoMail.GeminiModel = "gemini-2.0-flash"
	}
	if c.AutoMail.DailyLimit == 0 {
		c.AutoMail.DailyLimit = 30
	}
	if c.AutoMail.MinDelay == 0 {
		c.AutoMail.MinDelay = 3 * time.Minute
	}
	if c.AutoMail.MaxDelay == 0 {
		c.AutoMail.MaxDelay = 5 * time.Minute
	}
	if c.AutoMail.LedgerPath == "" {
		c.AutoMail.LedgerPath = "data/dispatch.db"
	}
	if c.API.Port == "" {
		c.API.Port = "8000"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
