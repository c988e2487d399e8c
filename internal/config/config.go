package config

import (
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	IsDebug *bool `yaml:"is_debug"`
	Log     struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	} `yaml:"log"`
	CentralSystem struct {
		HeartbeatInterval  int  `yaml:"heartbeat_interval" env:"HEARTBEAT_INTERVAL" env-default:"600"`
		LocalListMaxLength int  `yaml:"local_list_max_length" env:"LOCAL_LIST_MAX_LENGTH" env-default:"0"`
		AcceptUnknownTag   bool `yaml:"accept_unknown_tag" env:"ACCEPT_UNKNOWN_TAG" env-default:"false"`
	} `yaml:"central_system"`
	Replay struct {
		Input         string `yaml:"input" env:"REPLAY_INPUT" env-default:"frames.jsonl"`
		ChargePointId string `yaml:"charge_point_id" env:"CHARGE_POINT_ID" env-default:"replay"`
	} `yaml:"replay"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"false"`
		BindIP  string `yaml:"bind_ip" env:"METRICS_BIND_IP" env-default:"127.0.0.1"`
		Port    string `yaml:"port" env:"METRICS_PORT" env-default:"9100"`
	} `yaml:"metrics"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:""`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:""`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"ocpp"`
	} `yaml:"mongo"`
}

var instance *Config
var once sync.Once

// GetConfig reads config.yml once; environment variables override the file.
func GetConfig() (*Config, error) {
	var err error
	once.Do(func() {
		log.Println("reading config")
		instance, err = ReadConfig("config.yml")
	})
	return instance, err
}

func ReadConfig(path string) (*Config, error) {
	conf := &Config{}
	if err := cleanenv.ReadConfig(path, conf); err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		log.Println(desc)
		return nil, err
	}
	return conf, nil
}

func (c *Config) Debug() bool {
	return c.IsDebug != nil && *c.IsDebug
}
