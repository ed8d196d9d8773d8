package configs

// AWS holds settings for the AWS SDK. It is only used when a Search Console
// service account has to be read from Secrets Manager.
type AWS struct {
	Region string `env:"REGION" envDefault:"eu-central-1"`
}
