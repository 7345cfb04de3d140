package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/kanoha/storefront/internal/adapter/importer"
	"github.com/kanoha/storefront/pkg/sigctx"
	"github.com/spf13/pflag"
)

const (
	xmlFlag       = "xml"
	outFlag       = "out"
	staticDirFlag = "static-dir"
)

type flags struct {
	xmlPath   string
	out       string
	staticDir string
	download  bool
	clean     bool
	workers   int
	timeout   time.Duration
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	f := getFlagsValues()
	validateFlags(f)

	var err error
	if f.clean {
		err = cleanCatalog(f)
	} else {
		err = importCatalog(f)
	}
	if err != nil {
		slog.Error("catalog import failed", "err", err)
		fallDown()
	}
}

func getFlagsValues() flags {
	var f flags
	pflag.StringVarP(&f.xmlPath, xmlFlag, "x", "", "WordPress export file")
	pflag.StringVarP(&f.out, outFlag, "o", "data/products.json", "catalog file to write")
	pflag.StringVarP(&f.staticDir, staticDirFlag, "s", "",
		"static root holding images/products")
	pflag.BoolVar(&f.download, "download", false, "download product images")
	pflag.BoolVar(&f.clean, "clean", false,
		"drop products with missing images from the catalog file and exit")
	pflag.IntVar(&f.workers, "workers", importer.DefaultWorkers, "parallel downloads")
	pflag.DurationVar(&f.timeout, "timeout", importer.DefaultTimeout, "per image timeout")
	pflag.Parse()
	return f
}

func validateFlags(f flags) {
	var errs []error

	if !f.clean && f.xmlPath == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", xmlFlag))
	}
	if (f.clean || f.download) && f.staticDir == "" {
		errs = append(errs, fmt.Errorf("--%s flag: required", staticDirFlag))
	}

	if len(errs) != 0 {
		slog.Error("too few args", "err", errors.Join(errs...))
		fallDown()
	}
}

func importCatalog(f flags) error {
	file, err := os.Open(f.xmlPath)
	if err != nil {
		return err
	}
	defer file.Close()

	products, tasks, err := importer.ParseWordPress(file)
	if err != nil {
		return err
	}
	slog.Info("export parsed", "nProducts", len(products))

	if f.download {
		ctx, cancel := sigctx.NotifyContext()
		defer cancel()

		d := importer.Downloader{
			Client:  &http.Client{},
			Dir:     filepath.Join(f.staticDir, "images", "products"),
			Workers: f.workers,
			Timeout: f.timeout,
		}
		ok, err := d.Download(ctx, tasks)
		if err != nil {
			return err
		}
		nMissing := importer.ApplyDownloads(products, ok)
		slog.Info("images downloaded", "nMissing", nMissing)
	}

	if err := importer.WriteCatalog(f.out, products); err != nil {
		return err
	}
	slog.Info("catalog written", "path", f.out, "nProducts", len(products))
	return nil
}

func cleanCatalog(f flags) error {
	products, err := importer.ReadCatalog(f.out)
	if err != nil {
		return err
	}

	kept, removed := importer.Clean(products, f.staticDir)
	if err := importer.WriteCatalog(f.out, kept); err != nil {
		return err
	}
	slog.Info("catalog cleaned",
		"nBefore", len(products), "nRemoved", removed, "nAfter", len(kept))
	return nil
}

func fallDown() {
	os.Exit(2)
}
