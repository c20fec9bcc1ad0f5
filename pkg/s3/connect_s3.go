package store

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Uploader stores an image body under a key and returns the persisted
// storage key. The controllers only see this interface.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body []byte) (string, error)
}

var Client *s3.Client

var CourseImageBucketName = "course-image"

func ConnectS3() {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(os.Getenv("S3_ACCESS_KEY_ID"), os.Getenv("S3_SECRET_KEY"), "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		log.Fatal(err)
	}

	usePathStyle := os.Getenv("S3_PATH_STYLE") == "true"

	Client = s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(os.Getenv("S3_ENDPOINT"))
		o.HTTPClient = &http.Client{}
		o.UsePathStyle = usePathStyle // Enable path-style URLs for MinIO
	})

	// Create the image bucket on first run
	_, err = Client.HeadBucket(context.TODO(), &s3.HeadBucketInput{
		Bucket: &CourseImageBucketName,
	})
	if err != nil {
		var notFoundErr *types.NotFound
		if !errors.As(err, &notFoundErr) {
			log.Fatalf("Failed to check bucket %s: %v", CourseImageBucketName, err)
		}
		if _, createErr := Client.CreateBucket(context.TODO(), &s3.CreateBucketInput{
			Bucket: &CourseImageBucketName,
		}); createErr != nil {
			log.Fatalf("Failed to create bucket %s: %v", CourseImageBucketName, createErr)
		}
		log.Printf("Bucket %s created successfully.", CourseImageBucketName)
	}
}

// S3Uploader implements Uploader over the shared S3 client.
type S3Uploader struct{}

func (S3Uploader) Upload(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &CourseImageBucketName,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
	})
	if err != nil {
		return "", err
	}
	return key, nil
}
