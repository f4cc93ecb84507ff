package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/periscope-tudelft/periscope_api/shared"
	log "github.com/sirupsen/logrus"
)

// MediaService stores uploaded images (scenario and mood artwork) in object
// storage and hands out presigned URLs.
type MediaService struct {
	appContext.DefaultService

	client     *minio.Client
	bucketName string
	endpoint   string
	accessKey  string
	secretKey  string
	useSSL     bool
}

const MEDIA_SVC = "media_svc"

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *appContext.Context) error {
	svc.endpoint = os.Getenv("MINIO_ENDPOINT")
	if svc.endpoint == "" {
		svc.endpoint = "localhost:9000"
	}

	svc.accessKey = os.Getenv("MINIO_ACCESS_KEY")
	svc.secretKey = os.Getenv("MINIO_SECRET_KEY")
	svc.useSSL = os.Getenv("MINIO_USE_SSL") == "true"

	svc.bucketName = os.Getenv("MINIO_BUCKET_NAME")
	if svc.bucketName == "" {
		svc.bucketName = "periscope-media"
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	client, err := minio.New(svc.endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(svc.accessKey, svc.secretKey, ""),
		Secure: svc.useSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to create MinIO client: %v", err)
	}
	svc.client = client

	if err := svc.ensureBucket(); err != nil {
		return fmt.Errorf("failed to ensure bucket exists: %v", err)
	}

	log.Printf("Media storage started with endpoint: %s", svc.endpoint)
	return nil
}

func (svc *MediaService) ensureBucket() error {
	ctx := context.Background()

	exists, err := svc.client.BucketExists(ctx, svc.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %v", err)
	}
	if !exists {
		err = svc.client.MakeBucket(ctx, svc.bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("Created bucket: %s", svc.bucketName)
	}
	return nil
}

// UploadImage stores an image under a fresh object name and returns the name.
func (svc *MediaService) UploadImage(ctx context.Context, folder, contentType string, data []byte) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", shared.NewTypeMismatchError("unsupported content type '" + contentType + "'")
	}

	objectName := path.Join(folder, uuid.New().String()+ext)
	_, err := svc.client.PutObject(ctx, svc.bucketName, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}
	return objectName, nil
}

// GetImageURL returns a presigned URL for a stored object.
func (svc *MediaService) GetImageURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := svc.client.PresignedGetObject(ctx, svc.bucketName, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %v", err)
	}
	return presignedURL.String(), nil
}

// DeleteImage removes a stored object.
func (svc *MediaService) DeleteImage(ctx context.Context, objectName string) error {
	err := svc.client.RemoveObject(ctx, svc.bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete image: %v", err)
	}
	return nil
}
