package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"kpi_tracker_backend/internal/config"
	"kpi_tracker_backend/internal/util"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider abstracts the image store behind upload/delete/URL.
type StorageProvider interface {
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, ref string) error
	GetURL(ref string) string
}

// LocalStorageProvider keeps files on disk, served from /uploads.
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	dst := filepath.Join(p.Config.LocalPath, filename)
	dir := filepath.Dir(dst)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	_, err = io.Copy(out, reader)
	if err != nil {
		return "", err
	}

	return p.GetURL(filename), nil
}

func (p *LocalStorageProvider) Delete(ctx context.Context, ref string) error {
	return os.Remove(filepath.Join(p.Config.LocalPath, ref))
}

func (p *LocalStorageProvider) GetURL(ref string) string {
	return "/uploads/" + ref
}

// MinioStorageProvider stores files in a MinIO bucket.
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Config.MinioBucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return p.GetURL(filename), nil
}

func (p *MinioStorageProvider) Delete(ctx context.Context, ref string) error {
	return p.Client.RemoveObject(ctx, p.Config.MinioBucket, ref, minio.RemoveObjectOptions{})
}

func (p *MinioStorageProvider) GetURL(ref string) string {
	return fmt.Sprintf("http://%s/%s/%s", p.Config.MinioEndpoint, p.Config.MinioBucket, ref)
}

// PhotoCloudProvider proxies to the university's PhotoCloud HTTP API. The
// ref it works with is the host-side numeric id found in the image URL's
// "id" query parameter.
type PhotoCloudProvider struct {
	Config *config.StorageConfig
	HTTP   *http.Client
}

func NewPhotoCloudProvider(cfg *config.StorageConfig) *PhotoCloudProvider {
	return &PhotoCloudProvider{
		Config: cfg,
		HTTP:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *PhotoCloudProvider) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, reader); err != nil {
		return "", err
	}
	if err := writer.WriteField("api_key", p.Config.PhotoCloudKey); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Config.PhotoCloudURL+"/api/upload.php", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("photocloud upload failed: %s: %s", resp.Status, raw)
	}

	var result struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.URL != "" {
		return result.URL, nil
	}
	return p.GetURL(result.ID), nil
}

func (p *PhotoCloudProvider) Delete(ctx context.Context, ref string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("id", ref)
	writer.WriteField("api_key", p.Config.PhotoCloudKey)
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Config.PhotoCloudURL+"/api/delete.php", &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("photocloud delete failed: %s: %s", resp.Status, raw)
	}
	return nil
}

func (p *PhotoCloudProvider) GetURL(ref string) string {
	return fmt.Sprintf("%s/image.php?id=%s", p.Config.PhotoCloudURL, ref)
}

// ExtractPublicID pulls the host-side id out of an image URL, returning ""
// for URLs that do not carry one.
func ExtractPublicID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Query().Get("id")
}

// StorageService picks the provider from configuration.
type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg *config.Config) *StorageService {
	var provider StorageProvider
	switch cfg.Storage.Type {
	case util.StorageMinio:
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err == nil {
			provider = p
		} else {
			provider = &LocalStorageProvider{Config: &cfg.Storage}
		}
	case util.StoragePhotoCloud:
		provider = NewPhotoCloudProvider(&cfg.Storage)
	default:
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}
	return &StorageService{Provider: provider}
}

func (s *StorageService) Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	return s.Provider.Upload(ctx, filename, reader, size, contentType)
}

func (s *StorageService) Delete(ctx context.Context, ref string) error {
	return s.Provider.Delete(ctx, ref)
}
