package s3

import "time"

// Config holds S3 connection settings, loaded from the environment.
// AccessKeyID and SecretKey are optional; when empty the SDK falls back
// to IAM roles or the standard AWS environment variables.
type Config struct {
	Bucket         string        `env:"S3_BUCKET,required"`
	Region         string        `env:"S3_REGION,required"`
	AccessKeyID    string        `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string        `env:"S3_SECRET_KEY"`
	Endpoint       string        `env:"S3_ENDPOINT"`
	BaseURL        string        `env:"S3_BASE_URL"`
	ForcePathStyle bool          `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
	UploadTimeout  time.Duration `env:"S3_UPLOAD_TIMEOUT" envDefault:"30s"`
}
