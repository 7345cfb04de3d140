package domain

// A Page is the static content of one routed page.
type Page struct {
	Slug     string
	Path     string
	Title    string
	Eyebrow  string
	Heading  string
	Lead     string
	Sections []Section
}

type Section struct {
	Title string
	Body  string
	Items []SectionItem
}

type SectionItem struct {
	Title string
	Body  string
	Link  string
}

// A NavItem is one entry of the site navigation.
type NavItem struct {
	Slug  string
	Label string
	Path  string
}
