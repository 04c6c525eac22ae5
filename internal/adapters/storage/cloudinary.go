package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Folder names used for stored media
const (
	FolderReceipts = "comprovantes"
	FolderProfiles = "perfil_membros"
)

// ErrDisabled is returned by stores that have no credentials configured
var ErrDisabled = errors.New("storage is not configured")

type preset struct {
	formats        api.CldAPIArray
	transformation string
	keepName       bool
}

var presets = map[string]preset{
	FolderReceipts: {
		formats:        api.CldAPIArray{"jpg", "png", "pdf", "jpeg"},
		transformation: "c_limit,w_1000,q_auto",
		keepName:       true,
	},
	FolderProfiles: {
		formats:        api.CldAPIArray{"jpg", "png", "jpeg"},
		transformation: "c_fill,g_face,h_300,w_300,q_auto",
	},
}

// CloudinaryStore stores receipts and profile photos on Cloudinary
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStore creates a new Cloudinary media store
func NewCloudinaryStore(cloudName, apiKey, apiSecret string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

// Upload stores r under folder and returns its public URL
func (s *CloudinaryStore) Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error) {
	p := presets[folder]

	publicID := uuid.New().String()
	if p.keepName {
		publicID = fmt.Sprintf("%s_%d", SanitizeName(filename), time.Now().UnixMilli())
	}

	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		AllowedFormats: p.formats,
		Transformation: p.transformation,
	})
	if err != nil {
		return "", err
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return res.SecureURL, nil
}

// Delete removes the object a previously returned URL points to
func (s *CloudinaryStore) Delete(ctx context.Context, folder, url string) error {
	publicID := PublicIDFromURL(folder, url)
	if publicID == "" {
		return nil
	}
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if res.Error.Message != "" {
		return errors.New(res.Error.Message)
	}
	return nil
}

// PublicIDFromURL derives "<folder>/<name>" from a delivery URL
func PublicIDFromURL(folder, url string) string {
	if url == "" {
		return ""
	}
	base := path.Base(url)
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[:i]
	}
	if base == "" || base == "." || base == "/" {
		return ""
	}
	return folder + "/" + base
}

// SanitizeName drops the extension, replaces whitespace with underscores and
// removes diacritics so the result is safe as a public id
func SanitizeName(filename string) string {
	name := filename
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	name = strings.Join(strings.Fields(name), "_")
	// transformers are stateful; build one per call
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(stripMarks, name); err == nil {
		name = out
	}
	if name == "" {
		name = "arquivo"
	}
	return name
}

// DisabledMediaStore rejects every upload
type DisabledMediaStore struct{}

func (DisabledMediaStore) Upload(context.Context, string, string, io.Reader) (string, error) {
	return "", ErrDisabled
}

func (DisabledMediaStore) Delete(context.Context, string, string) error {
	return nil
}
