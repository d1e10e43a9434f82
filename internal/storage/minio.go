package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// QRStore keeps uploaded payment-QR images in a MinIO bucket and hands back
// the public object URL that gets written into the QR config document.
type QRStore struct {
	client   *minio.Client
	endpoint string
	bucket   string
	scheme   string
}

// NewQRStore connects to MinIO and makes sure the bucket exists.
func NewQRStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*QRStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Printf("Warning: failed to check bucket existence: %v", err)
	} else if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Printf("Warning: failed to create bucket: %v", err)
		} else {
			log.Printf("Created bucket: %s", bucket)
		}
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	log.Println("Connected to MinIO")
	return &QRStore{client: client, endpoint: endpoint, bucket: bucket, scheme: scheme}, nil
}

// Put stores one image object and returns its public URL.
func (s *QRStore) Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("minio put: %w", err)
	}
	return fmt.Sprintf("%s://%s/%s/%s", s.scheme, s.endpoint, s.bucket, objectName), nil
}
