package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Pg             Pg            `yaml:"pg"`
	IndexDir       string        `yaml:"index_dir"` // created on first run if absent
	TokenTTL       time.Duration `yaml:"token_ttl"`
	MaxDbConns     int           `yaml:"max_db_conns"` // bounded pool; exhaustion blocks the caller
	ListenAddr     string        `yaml:"listen_addr"`
	LogLevel       string        `yaml:"log_level"`
	LogJSON        bool          `yaml:"log_json"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Dbname   string `yaml:"dbname"`
	Password string `yaml:"password"` // private.yaml only
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key"`
}

// New assembles a config in code; used by tests and tooling that do
// not load yaml files.
func New(public Public, private Private) *Config {
	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) JwtKey() string {
	return c.private.JwtKey
}

func (c *Config) PgPassword() string {
	return c.private.Pg.Password
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.TokenTTL == 0 {
		c.Public.TokenTTL = 48 * time.Hour
	}
	if c.Public.MaxDbConns == 0 {
		c.Public.MaxDbConns = 16
	}
	if c.Public.ListenAddr == "" {
		c.Public.ListenAddr = ":8080"
	}
	if c.Public.IndexDir == "" {
		c.Public.IndexDir = "search_index"
	}
}
