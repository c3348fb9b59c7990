/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/tomoncle/contact/database"
)

// EnvPrefix prefixes every environment override, with dots in keys replaced
// by underscores: CONTACT_DATABASE_CONNECTION_TYPE sets database.connection.type.
const EnvPrefix = "CONTACT"

type ServerConfig struct {
	Addr            string        `json:"addr" yaml:"addr" mapstructure:"addr" validate:"required"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level" mapstructure:"level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=console json"`
}

type MetricsConfig struct {
	Namespace string `json:"namespace" yaml:"namespace" mapstructure:"namespace" validate:"required"`
}

// Config is the application configuration.
type Config struct {
	Server   ServerConfig    `json:"server" yaml:"server" mapstructure:"server"`
	Log      LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
	Database database.Config `json:"database" yaml:"database" mapstructure:"database"`
	Metrics  MetricsConfig   `json:"metrics" yaml:"metrics" mapstructure:"metrics"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads the configuration. Sources, lowest priority first: defaults,
// the YAML file at path (or ./config.yaml when path is empty and the file
// exists), the env files, then the process environment. Env files never
// override variables already set; missing env files are skipped.
func Load(path string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every key, which AutomaticEnv needs to see it
// during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 15*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("metrics.namespace", "contact")

	def := database.DefaultConnectionConfig()
	conn := map[string]any{
		"type":               def.Type,
		"host":               def.Host,
		"port":               def.Port,
		"username":           def.Username,
		"password":           def.Password,
		"dbname":             def.DBName,
		"sslmode":            def.SSLMode,
		"max_idle_conns":     def.MaxIdleConns,
		"max_open_conns":     def.MaxOpenConns,
		"conn_max_lifetime":  def.ConnMaxLifetime,
		"conn_max_idle_time": def.ConnMaxIdleTime,
		"connect_timeout":    def.ConnectTimeout,
		"read_timeout":       def.ReadTimeout,
		"write_timeout":      def.WriteTimeout,
		"enable_query_log":   def.EnableQueryLog,
		"slow_query_time":    def.SlowQueryTime,
	}
	for key, value := range conn {
		v.SetDefault("database.connection."+key, value)
	}
	v.SetDefault("database.migrate.enable_migrate_on_startup", true)
}
