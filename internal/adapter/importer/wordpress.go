// Package importer builds the product catalog from a WordPress export.
package importer

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/kanoha/storefront/internal/core/domain"
)

const (
	imagePrefix     = "/images/products/"
	defaultImageExt = ".jpg"
	maxTitleInName  = 30
)

var defaultFeatures = []string{"Authentic", "Fast Shipping"}

type wpExport struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []wpItem `xml:"item"`
	} `xml:"channel"`
}

type wpItem struct {
	Title         string `xml:"title"`
	PostID        string `xml:"http://wordpress.org/export/1.2/ post_id"`
	PostType      string `xml:"http://wordpress.org/export/1.2/ post_type"`
	AttachmentURL string `xml:"http://wordpress.org/export/1.2/ attachment_url"`
}

// An ImageTask is an image to fetch from URL into the products image
// directory under Filename.
type ImageTask struct {
	URL      string
	Filename string
}

// ParseWordPress turns every attachment with a title and a URL into a
// product. The returned tasks hold the image of each product, in order.
func ParseWordPress(r io.Reader) ([]domain.Product, []ImageTask, error) {
	const op = "ParseWordPress"

	var export wpExport
	if err := xml.NewDecoder(r).Decode(&export); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	var (
		products []domain.Product
		tasks    []ImageTask
	)
	for _, item := range export.Channel.Items {
		if item.PostType != "attachment" {
			continue
		}
		title := strings.TrimSpace(item.Title)
		attachmentURL := strings.TrimSpace(item.AttachmentURL)
		if title == "" || attachmentURL == "" {
			continue
		}

		id := strings.TrimSpace(item.PostID)
		filename := imageFilename(id, title, attachmentURL)

		products = append(products, domain.Product{
			ID:          id,
			Name:        title,
			Price:       domain.ContactForPrice,
			Category:    Categorize(title),
			Img:         imagePrefix + filename,
			Description: fmt.Sprintf("High-quality %s available for wholesale.", title),
			Features:    append([]string(nil), defaultFeatures...),
		})
		tasks = append(tasks, ImageTask{URL: attachmentURL, Filename: filename})
	}
	return products, tasks, nil
}

func imageFilename(id, title, attachmentURL string) string {
	ext := defaultImageExt
	if u, err := url.Parse(attachmentURL); err == nil {
		if e := path.Ext(u.Path); e != "" {
			ext = e
		}
	}

	name := []rune(cleanFilename(title))
	if len(name) > maxTitleInName {
		name = name[:maxTitleInName]
	}
	return cleanFilename(id) + "_" + string(name) + ext
}

var filenameReplacer = strings.NewReplacer(
	`\`, "", "/", "", "*", "", "?", "", ":", "", `"`, "",
	"<", "", ">", "", "|", "", " ", "_",
)

func cleanFilename(s string) string {
	return filenameReplacer.Replace(s)
}

var categoryRules = []struct {
	category string
	keywords []string
}{
	{"Audio", []string{"earbud", "headphone", "speaker", "audio", "sound", "mic", "radio"}},
	{"Electronics Accessories", []string{"adapter", "plug", "cable", "charger", "usb", "power", "battery"}},
	{"Kitchenware", []string{"kitchen", "cook", "pan", "pot", "knife", "blender", "grill", "maker"}},
	{"Toys & Games", []string{"toy", "game", "puzzle", "doll", "car"}},
	{"Bags & Cases", []string{"bag", "case", "backpack", "tote", "luggage"}},
	{"Clocks & Watches", []string{"watch", "clock", "alarm"}},
}

const defaultCategory = "General Merchandise"

// Categorize picks the category of the first rule with a keyword contained
// in the title.
func Categorize(title string) string {
	title = strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(title, kw) {
				return rule.category
			}
		}
	}
	return defaultCategory
}
