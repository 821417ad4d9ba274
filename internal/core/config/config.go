package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
	// File 非空时同时写文件并按大小切割
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int
}

// Store 本地 JSON 持久化的落盘位置
type Store struct {
	DataPath    string `mapstructure:"data_path"`
	SessionPath string `mapstructure:"session_path"`
}

// Demo 演示相关的旋钮：模拟网络延迟、提示消息存活时长
type Demo struct {
	SimulatedLatencyMs int `mapstructure:"simulated_latency_ms"`
	NotifyTTLSec       int `mapstructure:"notify_ttl_sec"`
}

type Config struct {
	App   App
	Log   Log
	JWT   JWT
	Store Store `mapstructure:"store"`
	Demo  Demo  `mapstructure:"demo"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	applyDefaults(&c)
	return &c
}

func applyDefaults(c *Config) {
	if c.Store.DataPath == "" {
		c.Store.DataPath = "data/studentrent.json"
	}
	if c.Store.SessionPath == "" {
		c.Store.SessionPath = "data/session.json"
	}
	if c.Demo.NotifyTTLSec <= 0 {
		c.Demo.NotifyTTLSec = 5
	}
}
