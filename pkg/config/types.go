package config

type ServiceConfig struct {
	App struct {
		Env         string `mapstructure:"env"`
		Port        string `mapstructure:"port"`
		LogLevel    string `mapstructure:"log_level"`
		ServiceName string `mapstructure:"service_name"`
	} `mapstructure:"app"`
	Backend struct {
		QueryURL string `mapstructure:"query_url"`
	} `mapstructure:"backend"`
	Directory struct {
		Address         string `mapstructure:"address"`
		Listen          string `mapstructure:"listen"`
		LookupTimeoutMs int    `mapstructure:"lookup_timeout_ms"`
	} `mapstructure:"directory"`
	Server struct {
		ReadTimeoutMs     int `mapstructure:"read_timeout_ms"`
		WriteTimeoutMs    int `mapstructure:"write_timeout_ms"`
		IdleTimeoutMs     int `mapstructure:"idle_timeout_ms"`
		ShutdownTimeoutMs int `mapstructure:"shutdown_timeout_ms"`
	} `mapstructure:"server"`
}
