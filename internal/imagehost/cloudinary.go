package imagehost

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary implements Host on top of the Cloudinary upload/admin APIs.
type Cloudinary struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinary builds a client from a cloudinary:// URL.
func NewCloudinary(url, folder string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init failed: %w", err)
	}
	return &Cloudinary{cld: cld, folder: folder}, nil
}

func (c *Cloudinary) Upload(ctx context.Context, localPath string) (Image, error) {
	res, err := c.cld.Upload.Upload(ctx, localPath, uploader.UploadParams{Folder: c.folder})
	if err != nil {
		return Image{}, err
	}
	return Image{URL: res.SecureURL, ID: res.PublicID}, nil
}

// Remove deletes one hosted image. Cloudinary reports "not found" as a
// successful destroy, which keeps cascade deletes idempotent.
func (c *Cloudinary) Remove(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: id})
	return err
}

func (c *Cloudinary) RemoveMany(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := c.cld.Admin.DeleteAssets(ctx, admin.DeleteAssetsParams{
		PublicIDs: api.CldAPIArray(ids),
	})
	return err
}
