package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aulaplus/adminpanel/internal/models"
	"github.com/aulaplus/adminpanel/internal/storage"
)

// Doer issues HTTP requests; *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// QRService maintains the singleton payment-QR document. Candidate URLs must
// answer with an image content type before any write happens; uploaded files
// are sniffed, stored in object storage, and referenced by URL.
type QRService struct {
	config *mongo.Collection
	store  *storage.QRStore
	http   Doer
}

func NewQRService(db *mongo.Database, store *storage.QRStore, client Doer) *QRService {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &QRService{config: db.Collection("config"), store: store, http: client}
}

// Get returns the current QR config, empty when never set.
func (s *QRService) Get(ctx context.Context) (models.QRConfig, error) {
	var cfg models.QRConfig
	err := s.config.FindOne(ctx, bson.M{"_id": models.QRConfigID}).Decode(&cfg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.QRConfig{ID: models.QRConfigID}, nil
	}
	if err != nil {
		return models.QRConfig{}, err
	}
	return cfg, nil
}

// SetURL points the QR config at an externally hosted image. The URL is
// probed first and rejected unless it serves an image content type.
func (s *QRService) SetURL(ctx context.Context, url string) error {
	if err := s.checkImageURL(ctx, url); err != nil {
		return err
	}
	return s.saveURL(ctx, url)
}

func (s *QRService) checkImageURL(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return ErrNotAnImage
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("probe qr url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrNotAnImage
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "image/") {
		return ErrNotAnImage
	}
	return nil
}

// Upload stores an uploaded QR image in object storage and points the config
// at it. Content is sniffed; non-images are rejected without a write.
func (s *QRService) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}

	objectName := fmt.Sprintf("%s_%s", primitive.NewObjectID().Hex(), filename)
	url, err := s.store.Put(ctx, objectName, data, contentType)
	if err != nil {
		return "", err
	}
	if err := s.saveURL(ctx, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *QRService) saveURL(ctx context.Context, url string) error {
	_, err := s.config.UpdateByID(ctx, models.QRConfigID,
		bson.M{"$set": bson.M{"url": url}},
		options.Update().SetUpsert(true))
	return err
}
