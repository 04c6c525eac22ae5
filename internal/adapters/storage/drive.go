package storage

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const oauthPlaygroundRedirect = "https://developers.google.com/oauthplayground"

// DriveUploader writes backup artifacts to a Google Drive folder using a
// long-lived refresh token
type DriveUploader struct {
	files    *drive.FilesService
	folderID string
}

// NewDriveUploader creates a new Drive backup uploader
func NewDriveUploader(ctx context.Context, clientID, clientSecret, refreshToken, folderID string) (*DriveUploader, error) {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		RedirectURL:  oauthPlaygroundRedirect,
		Scopes:       []string{drive.DriveFileScope},
	}
	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	srv, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to init drive client: %w", err)
	}
	return &DriveUploader{files: srv.Files, folderID: folderID}, nil
}

// Upload creates a JSON file and returns its id and web link
func (u *DriveUploader) Upload(ctx context.Context, name string, content []byte) (string, string, error) {
	meta := &drive.File{
		Name:     name,
		MimeType: "application/json",
	}
	if u.folderID != "" {
		meta.Parents = []string{u.folderID}
	}

	f, err := u.files.Create(meta).
		Media(bytes.NewReader(content), googleapi.ContentType("application/json")).
		Fields("id", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return "", "", err
	}
	return f.Id, f.WebViewLink, nil
}

// DisabledUploader rejects every backup
type DisabledUploader struct{}

func (DisabledUploader) Upload(context.Context, string, []byte) (string, string, error) {
	return "", "", ErrDisabled
}
