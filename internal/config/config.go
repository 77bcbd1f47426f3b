package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string         `env-default:"local" yaml:"env"`                          // Env is the current environment: local, dev, prod.
	Postgres PostgresConfig `                    yaml:"postgres" env-required:"true"` // Postgres holds the database configuration
	HTTP     HTTPConfig     `                    yaml:"http"`                         // HTTP holds the REST API server configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Dbname   string `yaml:"db_name"`                     // Dbname is the name of the database.
}

// HTTPConfig struct holds the configuration details for the REST API listener.
type HTTPConfig struct {
	Host string `yaml:"host" env-default:"0.0.0.0"` // Host is the interface the API listens on.
	Port int    `yaml:"port" env-default:"8080"`    // Port is the API server port.
}

// MustLoad loads the configuration from a YAML file and returns a Config struct.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		panic("config path is empty")
	}

	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		panic("config error: " + err.Error())
	}

	defHTTPPort := 8080

	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("http.host", "0.0.0.0")
	viper.SetDefault("http.port", defHTTPPort)

	return &Config{
		Env: viper.GetString("env"),
		Postgres: PostgresConfig{
			Host:     viper.GetString("postgres.host"),
			Port:     viper.GetString("postgres.port"),
			User:     viper.GetString("postgres.user"),
			Password: viper.GetString("postgres.password"),
			Dbname:   viper.GetString("postgres.db_name"),
		},
		HTTP: HTTPConfig{
			Host: viper.GetString("http.host"),
			Port: viper.GetInt("http.port"),
		},
	}
}
