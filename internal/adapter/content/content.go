// Package content holds the static copy of the storefront pages.
package content

import (
	"github.com/kanoha/storefront/internal/core/domain"
	"github.com/kanoha/storefront/internal/core/port"
)

var _ port.PageProvider = (*Site)(nil)

type Site struct {
	pages map[string]domain.Page
}

func NewSite() Site {
	pages := make(map[string]domain.Page, len(sitePages))
	for _, p := range sitePages {
		pages[p.Slug] = p
	}
	return Site{pages}
}

func (s Site) Page(slug string) (domain.Page, bool) {
	p, ok := s.pages[slug]
	return p, ok
}

func (Site) Navigation() []domain.NavItem {
	return navigation
}

func (Site) FeaturedCategories() []domain.FeaturedCategory {
	return featuredCategories
}

func (Site) CategoryTags() []string {
	return categoryTags
}

var navigation = []domain.NavItem{
	{Slug: "home", Label: "Home", Path: "/"},
	{Slug: "about", Label: "About", Path: "/about"},
	{Slug: "products", Label: "Products", Path: "/products"},
	{Slug: "services", Label: "Services", Path: "/services"},
	{Slug: "contact", Label: "Contact", Path: "/contact"},
	{Slug: "member", Label: "Member", Path: "/member"},
	{Slug: "policy", Label: "Policy", Path: "/policy"},
}

var featuredCategories = []domain.FeaturedCategory{
	{Name: "Consumer Electronics", Img: "/images/products/product_dvd_player.webp",
		Items: []string{"DVD Players", "Home Theater", "Televisions", "Projectors"}},
	{Name: "Audio Systems", Img: "/images/products/product_pa_system.webp",
		Items: []string{"PA Systems", "Speakers", "Microphones", "DJ Equipment"}},
	{Name: "Gaming & Accessories", Img: "/images/products/product_switch_kit.webp",
		Items: []string{"Consoles", "Controllers", "Headsets", "Cases"}},
	{Name: "Portable Audio", Img: "/images/products/product_speaker_yellow.webp",
		Items: []string{"Bluetooth Speakers", "Radios", "MP3 Players", "Boomboxes"}},
	{Name: "Kitchen Appliances", Img: domain.PlaceholderImage,
		Items: []string{"Air Fryers", "Blenders", "Toasters", "Kettles"}},
	{Name: "Home & Garden", Img: domain.PlaceholderImage,
		Items: []string{"Wall Mounts", "Clocks", "Fans", "Heaters"}},
}

var categoryTags = []string{
	"Air Fryers", "Drinkware", "Dinnerware", "Hello Kitty", "Kitchen Gadgets",
	"Wall Mounts", "Flatware", "Car Audio", "PA Systems", "Cups", "Stovetop Kettles",
	"Alarm Clocks", "Bar Stools", "Bluetooth", "Bulk Accessories", "Canister Storage",
	"Chaffing Dishes", "Cookware", "Cutlery", "Dish Racks", "Gaming Accessories",
	"Health & Beauty", "Home Stereo", "Kids Electronics", "LCD Screens", "Melamine",
	"Musical Instruments", "Nostalgia Systems", "Novelty Products", "Office Supplies",
	"Outdoor Gear", "Personal Care", "Pro Audio", "Tableware",
}
