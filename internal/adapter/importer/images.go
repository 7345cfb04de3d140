package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kanoha/storefront/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultWorkers = 10
	DefaultTimeout = 3 * time.Second
)

// Downloader fetches product images into Dir.
type Downloader struct {
	Client  *http.Client
	Dir     string
	Workers int
	Timeout time.Duration
}

// Download fetches every task and reports per task whether the image is
// on disk afterwards. Images already present are not fetched again.
// Failed downloads are logged and never abort the others.
func (d Downloader) Download(ctx context.Context, tasks []ImageTask) ([]bool, error) {
	const op = "Downloader.Download"
	log := slog.With("op", op)

	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	workers := d.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}

	ok := make([]bool, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, task := range tasks {
		g.Go(func() error {
			if err := d.fetch(gctx, task); err != nil {
				log.Warn("failed to download image", "url", task.URL, "err", err)
				return nil
			}
			ok[i] = true
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ok, nil
}

func (d Downloader) fetch(ctx context.Context, task ImageTask) error {
	dst := filepath.Join(d.Dir, task.Filename)
	if fileExists(dst) {
		return nil
	}

	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.URL, nil)
	if err != nil {
		return err
	}

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	tmp, err := os.CreateTemp(d.Dir, ".download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if !fileExists(tmp.Name()) {
		return errors.New("empty image")
	}
	return os.Rename(tmp.Name(), dst)
}

// ApplyDownloads points every product whose image is missing at the
// placeholder. products and ok are matched by index.
func ApplyDownloads(products []domain.Product, ok []bool) int {
	var n int
	for i := range products {
		if i >= len(ok) || !ok[i] {
			products[i].Img = domain.PlaceholderImage
			n++
		}
	}
	return n
}

// Clean drops products whose image file does not exist under staticDir.
func Clean(products []domain.Product, staticDir string) (kept []domain.Product, removed int) {
	kept = make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Img == "" {
			removed++
			continue
		}
		local := filepath.Join(staticDir, filepath.FromSlash(strings.TrimPrefix(p.Img, "/")))
		if _, err := os.Stat(local); err != nil {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	return kept, removed
}

func ReadCatalog(path string) ([]domain.Product, error) {
	const op = "ReadCatalog"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var ps []domain.Product
	if err := json.Unmarshal(data, &ps); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

// WriteCatalog stores products as indented JSON, replacing path atomically.
func WriteCatalog(path string, products []domain.Product) error {
	const op = "WriteCatalog"

	if products == nil {
		products = []domain.Product{}
	}
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > 0
}
