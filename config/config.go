package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	JWT struct {
		// SecretKey is the base64-encoded HMAC signing key.
		SecretKey          string `mapstructure:"secret_key"`
		AccessTokenTTLSecs int64  `mapstructure:"access_token_ttl_seconds"`
	} `mapstructure:"jwt"`
	RefreshToken struct {
		Password   string `mapstructure:"password"`
		Salt       string `mapstructure:"salt"`
		TTLSeconds int64  `mapstructure:"ttl_seconds"`
	} `mapstructure:"refresh_token"`
	OTP struct {
		TTLSeconds              int64 `mapstructure:"ttl_seconds"`
		MinRetryIntervalSeconds int64 `mapstructure:"min_retry_interval_seconds"`
	} `mapstructure:"otp"`
	S3 struct {
		Endpoint  string `mapstructure:"endpoint"`
		Region    string `mapstructure:"region"`
		Bucket    string `mapstructure:"bucket"`
		AccessKey string `mapstructure:"access_key"`
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"s3"`
	Vault struct {
		Address    string `mapstructure:"address"`
		Token      string `mapstructure:"token"`
		TransitKey string `mapstructure:"transit_key"`
	} `mapstructure:"vault"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()

	viper.SetDefault("jwt.access_token_ttl_seconds", 86400)
	viper.SetDefault("refresh_token.ttl_seconds", 86400*90)
	viper.SetDefault("otp.ttl_seconds", 300)
	viper.SetDefault("otp.min_retry_interval_seconds", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
