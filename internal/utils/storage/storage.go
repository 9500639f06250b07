package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"receipt-ledger/internal/utils"

	"github.com/gabriel-vasile/mimetype"
)

const (
	DriverS3  = "s3"
	DriverGCS = "gcs"
)

var (
	AllowImage = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrEmptyFile          = errors.New("file is empty")
	ErrUnknownDriver      = errors.New("unknown storage driver")
)

// Storage keeps uploaded receipt images in an object store.
//
//go:generate mockgen -destination=mocks/mock_storage.go -source=storage.go Storage
type Storage interface {
	// UploadFile stores data under folder/fileName plus the sniffed
	// extension and returns the object key.
	UploadFile(ctx context.Context, fileName string, data []byte, folder string, allowExt ...string) (string, error)
	DeleteFile(ctx context.Context, objectKey string) error
	GetPublicLinkKey(objectKey string) string
	GetObjectKeyFromLink(link string) string
}

// Detected is the sniffed content type of an upload.
type Detected struct {
	MIMEType  string
	Extension string
}

// DetectFile sniffs data and checks its extension against allowExt. An empty
// allow list accepts anything.
func DetectFile(data []byte, allowExt ...string) (Detected, error) {
	if len(data) == 0 {
		return Detected{}, ErrEmptyFile
	}
	mt := mimetype.Detect(data)
	ext := strings.ToLower(mt.Extension())
	if len(allowExt) > 0 && !slices.Contains(allowExt, ext) {
		return Detected{}, fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, mt.String())
	}
	return Detected{MIMEType: mt.String(), Extension: ext}, nil
}

func objectKey(folder, fileName, ext string) string {
	key := fileName + ext
	if folder == "" {
		return key
	}
	return strings.TrimSuffix(folder, "/") + "/" + key
}

// New picks the backend named by STORAGE_DRIVER.
func New(ctx context.Context) (Storage, error) {
	switch utils.GetConfig("STORAGE_DRIVER") {
	case DriverS3, "":
		return NewAwsS3(ctx)
	case DriverGCS:
		return NewGCS(ctx)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, utils.GetConfig("STORAGE_DRIVER"))
	}
}
