package media

import (
	"github.com/gabriel-vasile/mimetype"

	"storehub-server/internal/domain/apperrors"
)

var allowedImageMIMEs = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

var allowedVideoMIMEs = map[string]struct{}{
	"video/mp4":       {},
	"video/webm":      {},
	"video/quicktime": {},
}

// Limits holds the kind-independent size and count constraints, sourced from
// configuration.
type Limits struct {
	MaxImageBytes   int64
	MaxVideoBytes   int64
	MaxGalleryFiles int
}

// validatePayloads enforces the kind-specific constraints before anything is
// enqueued: payload count, per-file size and sniffed MIME type.
func validatePayloads(kind Kind, payloads [][]byte, limits Limits) error {
	if len(payloads) == 0 {
		return apperrors.New(apperrors.KindValidation, "no files provided")
	}
	if !kind.IsGallery() && len(payloads) > 1 {
		return apperrors.Newf(apperrors.KindValidation, "%s accepts a single file", kind)
	}
	if kind.IsGallery() && len(payloads) > limits.MaxGalleryFiles {
		return apperrors.Newf(apperrors.KindValidation,
			"too many files: %d exceeds the limit of %d", len(payloads), limits.MaxGalleryFiles)
	}

	maxBytes := limits.MaxImageBytes
	allowed := allowedImageMIMEs
	if kind.IsVideo() {
		maxBytes = limits.MaxVideoBytes
		allowed = allowedVideoMIMEs
	}

	for i, data := range payloads {
		if len(data) == 0 {
			return apperrors.Newf(apperrors.KindValidation, "file %d is empty", i+1)
		}
		if int64(len(data)) > maxBytes {
			return apperrors.Newf(apperrors.KindValidation,
				"file %d exceeds max size of %d bytes", i+1, maxBytes)
		}
		mime := mimetype.Detect(data).String()
		if _, ok := allowed[mime]; !ok {
			return apperrors.Newf(apperrors.KindValidation,
				"file %d has unsupported type %s", i+1, mime)
		}
	}
	return nil
}
