package database

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PhotoStore keeps profile photos in a MinIO bucket.
type PhotoStore struct {
	client *minio.Client
	bucket string
}

// NewPhotoStore creates the MinIO client and ensures the bucket exists.
func NewPhotoStore(endpoint, accessKey, secretKey, bucket string) (*PhotoStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	slog.Info("connected to MinIO", "endpoint", endpoint, "bucket", bucket)
	return &PhotoStore{client: client, bucket: bucket}, nil
}

// UploadPhoto stores the uploaded file under a random object name and returns
// its public URL. The caller is responsible for size limits.
func (p *PhotoStore) UploadPhoto(ctx context.Context, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	objectName := fmt.Sprintf("photos/%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	_, err = p.client.PutObject(ctx, p.bucket, objectName, src, file.Size, minio.PutObjectOptions{
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return fmt.Sprintf("http://%s/%s/%s", p.client.EndpointURL().Host, p.bucket, objectName), nil
}
