package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/internal/core/port"
)

var _ port.ProductCatalog = (*Catalog)(nil)

// Catalog is the read-only product list loaded from products.json.
type Catalog struct {
	products []domain.Product
}

func NewCatalog(ps []domain.Product) Catalog {
	return Catalog{ps}
}

// LoadCatalogFile reads the product list at path. When staticDir is set,
// products whose image file is absent get the placeholder image.
func LoadCatalogFile(path, staticDir string) (Catalog, error) {
	const op = "LoadCatalogFile"
	log := slog.With("op", op)

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", op, err)
	}

	var ps []domain.Product
	if err := json.Unmarshal(data, &ps); err != nil {
		return Catalog{}, fmt.Errorf("%s: invalid catalog: %w", op, err)
	}

	var nMissing int
	for i := range ps {
		if !imageExists(staticDir, ps[i].Img) {
			ps[i].Img = domain.PlaceholderImage
			nMissing++
		}
	}

	log.Info("catalog loaded", "nProducts", len(ps), "nMissingImages", nMissing)
	return Catalog{ps}, nil
}

func (c Catalog) Products() []domain.Product {
	return c.products
}

func imageExists(staticDir, img string) bool {
	if img == "" {
		return false
	}
	if staticDir == "" {
		return true
	}
	rel := filepath.FromSlash(strings.TrimPrefix(img, "/"))
	_, err := os.Stat(filepath.Join(staticDir, rel))
	return !errors.Is(err, fs.ErrNotExist)
}
