package database

import (
	"context"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBSettings collects the environment knobs for the client backing the
// treatment plan and annotation tables.
type DynamoDBSettings struct {
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint overrides the AWS endpoint, e.g. http://dynamodb:8000 for a
	// local container. Empty means the real AWS endpoint for Region.
	Endpoint string
}

func SettingsFromEnv() DynamoDBSettings {
	return DynamoDBSettings{
		Region:    getenvDefault("AWS_REGION", "us-east-1"),
		AccessKey: getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		SecretKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
	}
}

// ConnectDynamoDB creates the DynamoDB client from environment settings. It is
// called once at startup; a misconfigured environment is fatal.
func ConnectDynamoDB() *dynamodb.Client {
	cfg, err := NewDynamoDBConfig(context.Background(), SettingsFromEnv())
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoDBConfig(ctx context.Context, settings DynamoDBSettings) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(settings.AccessKey, settings.SecretKey, "")

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(settings.Region),
		config.WithCredentialsProvider(creds),
	}
	if settings.Endpoint != "" {
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(localEndpointResolver(settings.Endpoint)))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func localEndpointResolver(endpoint string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if service == dynamodb.ServiceID {
			return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
