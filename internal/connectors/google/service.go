package google

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// NewDriveService creates a read-only Google Drive API service from
// a service-account credentials file.
func NewDriveService(ctx context.Context, credentialsFile string) (*drive.Service, error) {
	return drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveReadonlyScope),
	)
}

// NewDriveServiceWithTokenSource creates a Drive service from an
// existing token source. Used when credentials are managed outside
// the service-account file, e.g. workload identity.
func NewDriveServiceWithTokenSource(ctx context.Context, ts oauth2.TokenSource) (*drive.Service, error) {
	return drive.NewService(ctx, option.WithTokenSource(ts))
}
