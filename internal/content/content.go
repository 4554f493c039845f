package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"triptogether_echo/internal/models"
)

//go:embed content.yaml
var embedded []byte

// Default parses the content shipped with the binary
func Default() (*models.SiteContent, error) {
	return Parse(embedded)
}

// Load reads content from path, or the embedded copy when path is empty
func Load(path string) (*models.SiteContent, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a content document
func Parse(data []byte) (*models.SiteContent, error) {
	var site models.SiteContent
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	if err := Validate(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the content for mistakes a page render would hide
func Validate(site *models.SiteContent) error {
	var errs []error

	if site.Brand == "" {
		errs = append(errs, errors.New("brand is empty"))
	}
	if len(site.Programs) == 0 {
		errs = append(errs, errors.New("no programs defined"))
	}
	for i, p := range site.Programs {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("program %d: title is empty", i))
		}
		if p.GroupSizeMin > p.GroupSizeMax {
			errs = append(errs, fmt.Errorf("program %q: group size %d-%d is inverted", p.Slug, p.GroupSizeMin, p.GroupSizeMax))
		}
		if err := p.ValidateDepartures(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, t := range site.Testimonials {
		if t.Rating < 1 || t.Rating > 5 {
			errs = append(errs, fmt.Errorf("testimonial %q: rating %d outside 1-5", t.Name, t.Rating))
		}
	}
	for _, link := range site.Footer.QuickLinks {
		if !link.Section.Known() {
			errs = append(errs, fmt.Errorf("footer link %q: unknown section %q", link.Label, link.Section))
		}
	}

	return errors.Join(errs...)
}
