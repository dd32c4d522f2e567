package photo

import (
	"context"

	"github.com/muhammadheryan/el-rastro/repository/rest"
)

type REST struct {
	client *rest.Client
}

// PhotoRepository resolves the image URL of a user or a product.
type PhotoRepository interface {
	GetURL(ctx context.Context, id string) (string, error)
}

func NewPhotoRepository(client *rest.Client) PhotoRepository {
	return &REST{client: client}
}

func (s *REST) GetURL(ctx context.Context, id string) (string, error) {
	var photoURL string
	if err := s.client.Call(ctx, rest.Request{Path: rest.Path("api", "v1", "photo", id)}, &photoURL); err != nil {
		return "", err
	}
	return photoURL, nil
}
