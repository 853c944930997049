package imagehost

import "context"

// Image is a hosted image reference as stored on posts and profiles.
type Image struct {
	URL string
	ID  string
}

// Host is the external image-hosting capability. Remove and RemoveMany must
// succeed when given ids that no longer exist, so interrupted cascade deletes
// can be retried safely.
type Host interface {
	Upload(ctx context.Context, localPath string) (Image, error)
	Remove(ctx context.Context, id string) error
	RemoveMany(ctx context.Context, ids []string) error
}
