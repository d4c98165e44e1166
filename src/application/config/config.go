package config

import (
	"play-release-tools/src/lib/cerr"
	"play-release-tools/src/lib/env"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "PLAY"

	DefaultPackageName   = "com.cradleVSA.neptune"
	DefaultClientSecrets = "client_secrets.json"
	DefaultAWSRegion     = "us-east-2"
	DefaultQueueName     = "release-events"
	DefaultLogLevel      = "info"
)

// Keys as they appear in a config file. Environment variables are the upper
// cased key with the PLAY_ prefix, e.g. PLAY_PACKAGE_NAME.
const (
	PackageNameKey       = "package_name"
	ClientSecretsKey     = "client_secrets"
	RedirectURLKey       = "redirect_url"
	ServiceAccountKeyKey = "service_account_key"
	EnvironmentKey       = "environment"
	LogLevelKey          = "log_level"
	GoogleCloudKeyKey    = "google_cloud_key"
	AWSRegionKey         = "aws_region"
	S3EndpointKey        = "s3_endpoint"
	RabbitMQURLKey       = "rabbitmq_url"
	RabbitMQQueueNameKey = "rabbitmq_queue_name"
)

type Config struct {
	PackageName string

	ClientSecrets     string
	RedirectURL       string
	ServiceAccountKey string

	Environment env.Environment
	LogLevel    string

	GoogleCloudKey string
	AWSRegion      string
	S3Endpoint     string

	RabbitMQURL       string
	RabbitMQQueueName string
}

func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(PackageNameKey, DefaultPackageName)
	v.SetDefault(ClientSecretsKey, DefaultClientSecrets)
	v.SetDefault(RedirectURLKey, "")
	v.SetDefault(ServiceAccountKeyKey, "")
	v.SetDefault(EnvironmentKey, string(env.Production))
	v.SetDefault(LogLevelKey, DefaultLogLevel)
	v.SetDefault(GoogleCloudKeyKey, "")
	v.SetDefault(AWSRegionKey, DefaultAWSRegion)
	v.SetDefault(S3EndpointKey, "")
	v.SetDefault(RabbitMQURLKey, "")
	v.SetDefault(RabbitMQQueueNameKey, DefaultQueueName)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file and resolves every setting with viper's
// precedence: flag, environment, file, default.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, cerr.Field("config_file", configFile).
				Wrap(err).Error("Failed to read config file")
		}
	}

	environment, err := env.Parse(v.GetString(EnvironmentKey))
	if err != nil {
		return Config{}, cerr.Wrap(err).Error("Failed to parse environment")
	}

	cfg := Config{
		PackageName:       v.GetString(PackageNameKey),
		ClientSecrets:     v.GetString(ClientSecretsKey),
		RedirectURL:       v.GetString(RedirectURLKey),
		ServiceAccountKey: v.GetString(ServiceAccountKeyKey),
		Environment:       environment,
		LogLevel:          v.GetString(LogLevelKey),
		GoogleCloudKey:    v.GetString(GoogleCloudKeyKey),
		AWSRegion:         v.GetString(AWSRegionKey),
		S3Endpoint:        v.GetString(S3EndpointKey),
		RabbitMQURL:       v.GetString(RabbitMQURLKey),
		RabbitMQQueueName: v.GetString(RabbitMQQueueNameKey),
	}

	if cfg.PackageName == "" {
		return Config{}, cerr.Error("A package name is required")
	}

	return cfg, nil
}
