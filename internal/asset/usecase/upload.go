package usecase

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/creatorconnect/server/internal/asset/entity"
	"github.com/creatorconnect/server/internal/pkg/goerror"
	"github.com/creatorconnect/server/internal/pkg/storage"
)

// defaultMaxUploadBytes caps uploads at 15 MiB unless configured otherwise.
const defaultMaxUploadBytes = 15 << 20

var allowedMimeTypes = map[string]struct{}{
	"image/png":       {},
	"image/jpg":       {},
	"image/jpeg":      {},
	"video/mp4":       {},
	"video/webm":      {},
	"video/ogg":       {},
	"video/quicktime": {},
}

type UploadInput struct {
	OwnerID    string `validate:"required"`
	OwnerName  string
	Title      string
	Visibility string
	FileName   string
	MimeType   string
	Size       int64
	File       io.Reader
}

type UploadOutput struct {
	Asset entity.Asset
}

// Upload stores the file in object storage and records its metadata. The
// owner's name is denormalized onto the record at upload time.
func (s *Usecase) Upload(ctx context.Context, in UploadInput) (*UploadOutput, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, goerror.NewInvalidFormat("Title is required")
	}

	if in.Visibility == "" {
		return nil, goerror.NewInvalidFormat("Visibility is required")
	}

	visibility := entity.Visibility(in.Visibility)
	if !visibility.Valid() {
		return nil, goerror.NewInvalidFormat("Visibility must be public or private")
	}

	if in.File == nil {
		return nil, goerror.NewInvalidFormat("File is required")
	}

	if _, ok := allowedMimeTypes[in.MimeType]; !ok {
		return nil, goerror.NewInvalidFormat("Unsupported file type. Allowed: PNG, JPG, JPEG, MP4, WEBM, OGG, MOV")
	}

	maxBytes := s.cfg.GetInt64("modules.asset.max_upload_bytes")
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	if in.Size > maxBytes {
		return nil, goerror.NewInvalidFormat("File size cannot exceed 15MB")
	}

	id := s.oid.Generate()
	key := storageKeyPrefix + id

	obj, err := s.storage.Upload(ctx, key, in.File, storage.UploadOptions{
		Size:        in.Size,
		ContentType: in.MimeType,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to upload asset to storage", "key", key, "error", err)
		return nil, goerror.NewServer(err)
	}

	asset := entity.Asset{
		ID:         id,
		Title:      title,
		FileName:   in.FileName,
		FileURL:    obj.URL,
		StorageKey: key,
		MimeType:   in.MimeType,
		Visibility: visibility,
		OwnerID:    in.OwnerID,
		OwnerName:  in.OwnerName,
		CreatedAt:  s.clock.Now(),
	}

	if err := s.repoDB.CreateAsset(ctx, asset); err != nil {
		slog.ErrorContext(ctx, "failed to repo create asset", "asset_id", id, "error", err)

		// Best effort: do not leave an orphaned object behind the failed record.
		if derr := s.storage.Delete(ctx, key); derr != nil {
			slog.WarnContext(ctx, "failed to clean up stored object", "key", key, "error", derr)
		}

		return nil, goerror.NewServer(err)
	}

	return &UploadOutput{Asset: asset}, nil
}
