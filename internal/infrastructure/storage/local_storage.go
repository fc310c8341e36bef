package storage

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"storehub-server/internal/config"
	"storehub-server/internal/domain/media"
	"storehub-server/utils/entityid"
)

// LocalStorage stores media blobs on the local filesystem. Intended for
// development and tests.
type LocalStorage struct {
	root    string
	baseURL string
	log     zerolog.Logger
}

func NewLocalStorage(cfg *config.Config, log zerolog.Logger) (*LocalStorage, error) {
	root := strings.TrimSpace(cfg.LocalStoragePath)
	if root == "" {
		return nil, fmt.Errorf("MEDIA_LOCAL_STORAGE_PATH must be set for the local backend")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &LocalStorage{
		root:    root,
		baseURL: strings.TrimRight(cfg.LocalStorageBaseURL, "/"),
		log:     log.With().Str("component", "local-storage").Logger(),
	}, nil
}

func (s *LocalStorage) Upload(_ context.Context, data []byte, kindTag string) (media.UploadResult, error) {
	mtype := mimetype.Detect(data)
	name := entityid.New("blob") + mtype.Extension()

	dir := filepath.Join(s.root, kindTag)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return media.UploadResult{}, fmt.Errorf("create kind directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return media.UploadResult{}, fmt.Errorf("write blob: %w", err)
	}

	return media.UploadResult{
		Location:  fmt.Sprintf("%s/%s/%s", s.baseURL, kindTag, name),
		Format:    mtype.String(),
		Bytes:     int64(len(data)),
		CreatedAt: time.Now(),
	}, nil
}

// Delete removes the blob file. A file that is already gone is treated as
// deleted.
func (s *LocalStorage) Delete(_ context.Context, location string) error {
	u, err := url.Parse(location)
	if err != nil {
		return fmt.Errorf("parse location %q: %w", location, err)
	}
	rel := strings.TrimPrefix(u.Path, "/")
	if s.baseURL != "" {
		if base, err := url.Parse(s.baseURL); err == nil {
			rel = strings.TrimPrefix(rel, strings.TrimPrefix(base.Path, "/"))
			rel = strings.TrimPrefix(rel, "/")
		}
	}

	if err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel))); err != nil {
		if os.IsNotExist(err) {
			s.log.Debug().Str("location", location).Msg("blob already gone")
			return nil
		}
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}
