package constants

const (
	// ConfigName is the base name of the config file read by viper.
	ConfigName = "config"
	// ConfigFormat is the config file format.
	ConfigFormat = "yaml"
)
