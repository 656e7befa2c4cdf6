package ports

import (
	"context"

	"github.com/Huspam/personal-website/internal/models"
)

type PhotoCatalog interface {
	Load(ctx context.Context) (*models.PhotoTable, error)
}

type PhotoLocator interface {
	Nearby(ctx context.Context, table *models.PhotoTable, click models.ClickEvent) ([]models.NearbyPhoto, error)
}

// PhotoDisplay turns a blob into image bytes ready for the browser.
type PhotoDisplay interface {
	Render(ctx context.Context, key string) (*models.RenderedImage, error)
}
