package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/periscope-tudelft/periscope_api/shared"
	log "github.com/sirupsen/logrus"
)

// PhotoService proxies Unsplash search so the access key never reaches the
// client. Results are cached in redis per query and page.
type PhotoService struct {
	appContext.DefaultService

	redisSvc *RedisService

	accessKey  string
	httpClient *http.Client
	cacheTTL   time.Duration
}

const PHOTO_SVC = "photo_svc"

const (
	unsplashSearchURL = "https://api.unsplash.com/search/photos"
	unsplashRandomURL = "https://api.unsplash.com/photos/random"
)

func (svc PhotoService) Id() string {
	return PHOTO_SVC
}

func (svc *PhotoService) Configure(ctx *appContext.Context) error {
	svc.redisSvc = ctx.Service(REDIS_SVC).(*RedisService)
	svc.accessKey = os.Getenv("UNSPLASH_ACCESS_KEY")
	svc.httpClient = &http.Client{Timeout: 10 * time.Second}
	svc.cacheTTL = time.Hour
	return svc.DefaultService.Configure(ctx)
}

func (svc *PhotoService) Start() error {
	if svc.accessKey == "" {
		log.Warn("UNSPLASH_ACCESS_KEY not set, photo search disabled")
	}
	return nil
}

// SearchPhotos returns the raw Unsplash search payload for query and page.
func (svc *PhotoService) SearchPhotos(ctx context.Context, query string, page int) ([]byte, error) {
	if query == "" {
		return nil, shared.NewMissingFieldError("query")
	}
	if svc.accessKey == "" {
		return nil, errors.New("photo search is not configured")
	}
	if page < 1 {
		page = 1
	}

	cacheKey := fmt.Sprintf("unsplash:search:%s:%d", query, page)
	reqURL := fmt.Sprintf("%s?query=%s&page=%d", unsplashSearchURL, url.QueryEscape(query), page)
	return svc.cachedGet(ctx, reqURL, cacheKey, svc.cacheTTL)
}

// RandomPhoto returns one random Unsplash photo for the query. The cache TTL
// is short, the endpoint is meant to vary between visits.
func (svc *PhotoService) RandomPhoto(ctx context.Context, query string) ([]byte, error) {
	if query == "" {
		return nil, shared.NewMissingFieldError("query")
	}
	if svc.accessKey == "" {
		return nil, errors.New("photo search is not configured")
	}

	cacheKey := "unsplash:random:" + query
	reqURL := fmt.Sprintf("%s?query=%s", unsplashRandomURL, url.QueryEscape(query))
	return svc.cachedGet(ctx, reqURL, cacheKey, time.Minute)
}

func (svc *PhotoService) cachedGet(ctx context.Context, reqURL, cacheKey string, ttl time.Duration) ([]byte, error) {
	if cached, err := svc.redisSvc.Get(ctx, cacheKey); err == nil && cached != "" {
		return []byte(cached), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+svc.accessKey)

	resp, err := svc.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if err := svc.redisSvc.Set(ctx, cacheKey, body, ttl); err != nil {
		log.WithError(err).Warn("Failed to cache photo response")
	}
	return body, nil
}

// TrackDownload pings the Unsplash download endpoint, required by their API
// guidelines whenever a returned photo is actually used.
func (svc *PhotoService) TrackDownload(ctx context.Context, downloadLocation string) error {
	if downloadLocation == "" {
		return shared.NewMissingFieldError("download_location")
	}
	if svc.accessKey == "" {
		return errors.New("photo search is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadLocation, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Client-ID "+svc.accessKey)

	resp, err := svc.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unsplash returned status %d", resp.StatusCode)
	}
	return nil
}
