package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Init loads config.yaml (or config.<env>.yaml) for servicePath into cfg.
// Environment variables override file values, with dots in keys written as
// underscores: BACKEND_QUERY_URL overrides backend.query_url.
func Init(env, servicePath string, cfg any) (string, error) {
	if env == "" {
		env = os.Getenv("ENV")
	}

	v := viper.New()
	if env == "" {
		v.SetConfigName("config")
	} else {
		v.SetConfigName("config." + env)
	}

	v.SetConfigType("yaml")

	v.AddConfigPath(fmt.Sprintf("./config/%s", servicePath))
	v.AddConfigPath(fmt.Sprintf("/app/config/%s", servicePath))
	v.AddConfigPath(".")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("reading config file: %w", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(cfg); err != nil {
		return "", fmt.Errorf("decoding config: %w", err)
	}

	return v.ConfigFileUsed(), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.service_name", "policy-chat-gateway")
	v.SetDefault("backend.query_url", "http://localhost:5000/query")
	v.SetDefault("directory.listen", ":9090")
	v.SetDefault("directory.lookup_timeout_ms", 500)
	v.SetDefault("server.read_timeout_ms", 5000)
	v.SetDefault("server.write_timeout_ms", 10000)
	v.SetDefault("server.idle_timeout_ms", 120000)
	v.SetDefault("server.shutdown_timeout_ms", 30000)
}

func (c *ServiceConfig) GetDirectoryLookupTimeout() time.Duration {
	return time.Duration(c.Directory.LookupTimeoutMs) * time.Millisecond
}

func (c *ServiceConfig) GetReadTimeout() time.Duration {
	return time.Duration(c.Server.ReadTimeoutMs) * time.Millisecond
}

func (c *ServiceConfig) GetWriteTimeout() time.Duration {
	return time.Duration(c.Server.WriteTimeoutMs) * time.Millisecond
}

func (c *ServiceConfig) GetIdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutMs) * time.Millisecond
}

func (c *ServiceConfig) GetShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutMs) * time.Millisecond
}
