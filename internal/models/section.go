package models

// Section identifies a scrollable region of the landing page.
// The same string is the anchor id in the rendered document.
type Section string

const (
	SectionHome         Section = "home"
	SectionPrograms     Section = "programs"
	SectionTestimonials Section = "testimonials"
	SectionAbout        Section = "about"
	SectionGallery      Section = "gallery"
	SectionDocuments    Section = "documents"
	SectionContact      Section = "contact"
)

// NavSections is the order of the navigation controls. Documents is
// rendered on the page but has no nav entry.
var NavSections = []Section{
	SectionHome,
	SectionPrograms,
	SectionTestimonials,
	SectionAbout,
	SectionGallery,
	SectionContact,
}

// Sections lists every anchor the page renders, in document order.
var Sections = []Section{
	SectionHome,
	SectionPrograms,
	SectionTestimonials,
	SectionAbout,
	SectionGallery,
	SectionDocuments,
	SectionContact,
}

// Known reports whether the section has an anchor on the page.
func (s Section) Known() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

func (s Section) String() string {
	return string(s)
}
