package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ssx_solar/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// RestyImageStore uploads request photos to the blob-storage HTTP API.
// Blobs live under serviceRequests/{requestID}/{filename}; the storage
// service answers with the retrievable URL for the uploaded object.
//
// The store does not retry; the caller bounds the upload with its own
// context deadline.

type RestyImageStore struct {
	client *resty.Client
	logger *zap.Logger
}

var _ interfaces.IImageStore = (*RestyImageStore)(nil)

type uploadResponse struct {
	URL string `json:"url"`
}

func NewRestyImageStore(baseURL string, logger *zap.Logger) (*RestyImageStore, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("storage base url not configured")
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")

	return &RestyImageStore{client: client, logger: logger}, nil
}

func (s *RestyImageStore) Upload(ctx context.Context, requestID, filename string, data []byte) (string, error) {
	path := fmt.Sprintf("/serviceRequests/%s/%s", requestID, filename)

	var out uploadResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(data).
		SetResult(&out).
		Put(path)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		s.logger.Warn("blob storage rejected upload",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()))
		return "", fmt.Errorf("blob storage returned status %d", resp.StatusCode())
	}
	if out.URL == "" {
		// Some storage deployments answer 201 with a Location header only.
		if loc := resp.Header().Get("Location"); loc != "" {
			return loc, nil
		}
		return "", errors.New("blob storage returned no url")
	}
	return out.URL, nil
}
