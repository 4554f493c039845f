package models

// Testimonial is a fixed student quote with a 1-5 star rating
type Testimonial struct {
	Name    string `yaml:"name" json:"name"`
	Country string `yaml:"country" json:"country"`
	Text    string `yaml:"text" json:"text"`
	Rating  int    `yaml:"rating" json:"rating"`
}

// Stat is a headline number in the hero block
type Stat struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Feature is an icon tile with a short description
type Feature struct {
	Icon        string `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Image is an external image reference with its alt text
type Image struct {
	Src string `yaml:"src" json:"src"`
	Alt string `yaml:"alt" json:"alt"`
}

// Link points at a page section
type Link struct {
	Label   string  `yaml:"label" json:"label"`
	Section Section `yaml:"section" json:"section"`
}

// OfficeHours is one row of the office hours card
type OfficeHours struct {
	Days  string `yaml:"days" json:"days"`
	Hours string `yaml:"hours" json:"hours"`
}

type Hero struct {
	Headline  string `yaml:"headline" json:"headline"`
	Highlight string `yaml:"highlight" json:"highlight"`
	Lede      string `yaml:"lede" json:"lede"`
	Stats     []Stat `yaml:"stats" json:"stats"`
	Image     Image  `yaml:"image" json:"image"`
	Badge     Stat   `yaml:"badge" json:"badge"`
}

type About struct {
	Title string `yaml:"title" json:"title"`
	// Body is markdown
	Body     string    `yaml:"body" json:"body"`
	Features []Feature `yaml:"features" json:"features"`
	Image    Image     `yaml:"image" json:"image"`
}

type Documents struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Hint        string   `yaml:"hint" json:"hint"`
	Required    []string `yaml:"required" json:"required"`
}

type ContactInfo struct {
	Email       string        `yaml:"email" json:"email"`
	Phone       string        `yaml:"phone" json:"phone"`
	Address     []string      `yaml:"address" json:"address"`
	OfficeHours []OfficeHours `yaml:"office_hours" json:"office_hours"`
}

type Footer struct {
	Tagline    string   `yaml:"tagline" json:"tagline"`
	QuickLinks []Link   `yaml:"quick_links" json:"quick_links"`
	Programs   []string `yaml:"programs" json:"programs"`
	Socials    []string `yaml:"socials" json:"socials"`
	Copyright  string   `yaml:"copyright" json:"copyright"`
}

// SiteContent is the immutable copy of the landing page, loaded once at startup
type SiteContent struct {
	Brand        string            `yaml:"brand" json:"brand"`
	Hero         Hero              `yaml:"hero" json:"hero"`
	Programs     []ProgramOffering `yaml:"programs" json:"programs"`
	Testimonials []Testimonial     `yaml:"testimonials" json:"testimonials"`
	About        About             `yaml:"about" json:"about"`
	Gallery      []Image           `yaml:"gallery" json:"gallery"`
	Documents    Documents         `yaml:"documents" json:"documents"`
	Contact      ContactInfo       `yaml:"contact" json:"contact"`
	Footer       Footer            `yaml:"footer" json:"footer"`
}
