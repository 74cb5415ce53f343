package scholarfolio

import (
	"regexp"
	"strings"
)

const (
	placeholderPortrait = "https://images.unsplash.com/photo-1507679799987-c73779587ccf?auto=format&fit=crop&q=80&w=800"
	placeholderTeam     = "https://images.unsplash.com/photo-1522071820081-009f0129c71c?auto=format&fit=crop&q=80&w=1200"
	placeholderImage    = "https://via.placeholder.com/800x450.png?text=Image"
)

// DefaultProfile returns the built-in starter document: one page with a
// bio hero, default contact links, and no theme overrides.
func DefaultProfile(ids IDSource) *Profile {
	return &Profile{
		Subdomain: "scholar-portal",
		Name: Item{
			ID:    ids.NewID("name"),
			Text:  "Your Name",
			Style: &ElementStyle{FontSize: "2.5rem", FontWeight: "800", FontFamily: "serif"},
		},
		Pages: []Page{
			{
				ID:    ids.NewID("p"),
				Title: "Home",
				Layout: []Block{
					{
						ID:   ids.NewID("b"),
						Type: BlockBioHero,
						Title: Item{
							ID:   ids.NewID("t"),
							Text: "Academic Director & Principal Investigator",
						},
						Items: []Item{
							{
								ID:    ids.NewID("i"),
								Text:  "Dedicated to pushing the boundaries of Computer Vision and Artificial Intelligence. Leading a world-class team of researchers at the intersection of theory and application.",
								Image: placeholderPortrait,
							},
						},
						LayoutConfig: &LayoutConfig{ImagePosition: "right", Width: WidthWide},
					},
				},
			},
		},
		Contact: Contact{
			Email: Item{ID: ids.NewID("c"), Text: "contact@university.edu", URL: "mailto:contact@university.edu", Icon: IconEmail, Label: "Email"},
			Links: []Item{
				{ID: ids.NewID("l"), Label: "Google Scholar", URL: "#", Icon: IconScholar},
				{ID: ids.NewID("l"), Label: "GitHub", URL: "#", Icon: IconGitHub},
				{ID: ids.NewID("l"), Label: "ORCID", URL: "#", Icon: IconORCID},
			},
		},
		ThemeSettings: map[ThemeID]*ThemeSettings{},
	}
}

// NewPage returns an empty titled page.
func NewPage(ids IDSource) Page {
	return Page{ID: ids.NewID("p"), Title: "New Page", Layout: []Block{}}
}

// NewItemForBlock returns the default item for the given block type.
// The type→defaults table mirrors what each block renders: contact
// cards get an icon and platform placeholder, skill rows carry no
// date, photo blocks start with a placeholder image.
func NewItemForBlock(ids IDSource, t BlockType) Item {
	it := Item{
		ID:      ids.NewID("i"),
		Text:    "New Item",
		Subtext: "Additional details",
		Date:    "2024",
		Icon:    IconNone,
	}
	switch t {
	case BlockContactGrid:
		it.Text = "PLATFORM"
		it.Subtext = "Username/Link"
		it.Icon = IconEmail
	case BlockTechnicalSkills:
		it.Date = ""
	case BlockGroupPhoto, BlockLabTeam:
		it.Image = placeholderImage
	}
	return it
}

// NewInlineLink returns an unstyled, unlinked segment for matchText.
func NewInlineLink(ids IDSource, matchText string) InlineLink {
	if matchText == "" {
		matchText = "Text to match"
	}
	return InlineLink{
		ID:        ids.NewID("link"),
		MatchText: matchText,
		LinkType:  LinkNone,
		Style:     &ElementStyle{},
	}
}

// NewBlock returns a block of the given type seeded with that type's
// default title, items, and layout.
func NewBlock(ids IDSource, t BlockType) Block {
	b := Block{
		ID:           ids.NewID("b"),
		Type:         t,
		Title:        Item{ID: ids.NewID("t"), Text: strings.ToUpper(strings.ReplaceAll(string(t), "-", " "))},
		Items:        []Item{},
		LayoutConfig: &LayoutConfig{Width: WidthWide, Columns: 1},
	}

	switch t {
	case BlockBioHero:
		b.Title.Text = "Principal Investigator"
		b.Items = []Item{{ID: ids.NewID("i"), Text: "Dedicated to research in...", Image: placeholderPortrait}}
	case BlockGroupPhoto:
		b.Title.Text = "Our Research Team"
		b.LayoutConfig.Width = WidthFull
		b.Items = []Item{{
			ID:      ids.NewID("i"),
			Text:    "The lab team at the annual symposium.",
			Subtext: "Summer 2024",
			Image:   placeholderTeam,
		}}
	case BlockGroupSummary:
		b.Title.Text = "About the Laboratory"
		b.Items = []Item{{ID: ids.NewID("i"), Text: "Our lab focuses on the intersection of human-computer interaction and artificial intelligence. We believe in collaborative research that pushes technical boundaries while considering human impact."}}
	case BlockActivities:
		b.Title.Text = "Activities & Professional Service"
		b.Items = []Item{
			{ID: ids.NewID("i"), Text: "Invited Talk: Future of AI", Subtext: "Global Tech Summit 2024", Date: "2024"},
			{ID: ids.NewID("i"), Text: "Fellowship: Outstanding Researcher", Subtext: "Academic Society of Science", Date: "2023"},
		}
	case BlockEducationEmployment:
		b.Title.Text = "Education & Employment"
		b.Items = []Item{
			{ID: ids.NewID("i"), Text: "Postdoctoral Researcher", Subtext: "University of Tech (2020-Present)", Date: "2020-Present"},
			{ID: ids.NewID("i"), Text: "PhD in Computer Science", Subtext: "Science Institute (2015-2020)", Date: "2015-2020"},
		}
	case BlockLabTeam:
		b.Title.Text = "Team Members"
		b.LayoutConfig.Columns = 2
		b.Items = []Item{
			{ID: ids.NewID("i"), Text: "Dr. Smith", Subtext: "Postdoc Researcher\nFocus: Computer Vision", Image: placeholderPortrait},
			{ID: ids.NewID("i"), Text: "Jane Doe", Subtext: "PhD Candidate\nFocus: Natural Language Processing", Image: placeholderPortrait},
		}
	case BlockAboutMe:
		b.Title.Text = "About Me"
		b.Items = []Item{{ID: ids.NewID("i"), Text: "I am a researcher focused on... My background includes..."}}
	case BlockResources:
		b.Title.Text = "Research Resources"
		b.Items = []Item{
			{ID: ids.NewID("i"), Text: "Open Dataset v1.0", Subtext: "Download link available on GitHub", Date: "2023"},
			{ID: ids.NewID("i"), Text: "Algorithm Toolkit", Subtext: "Python library for advanced vision tasks", Date: "2022"},
		}
	case BlockFunding:
		b.Title.Text = "Funding & Projects"
		b.Items = []Item{
			{ID: ids.NewID("i"), Text: "National Science Grant #12345", Subtext: "Lead Investigator (2022-2025)", Date: "2022-2025"},
		}
	case BlockEditorialServices:
		b.Title.Text = "Editorial Services"
		b.Items = []Item{
			{ID: ids.NewID("i"), Text: "Associate Editor", Subtext: "Journal of Artificial Intelligence", Date: "2021-Present"},
			{ID: ids.NewID("i"), Text: "Program Committee Member", Subtext: "CVPR, ICCV, NeurIPS", Date: "Ongoing"},
		}
	case BlockImpactOutreach:
		b.Title.Text = "Impact & Outreach"
		b.Items = []Item{
			{ID: ids.NewID("i"), Text: "Public Lecture Series", Subtext: "Engaging local communities in science", Date: "2023"},
		}
	case BlockTechnicalSkills:
		b.Title.Text = "Technical Skills"
		b.Items = []Item{
			{ID: ids.NewID("i"), Text: "Programming", Subtext: "Python, C++, Java, Rust", Icon: IconNone},
			{ID: ids.NewID("i"), Text: "Machine Learning", Subtext: "PyTorch, TensorFlow, Scikit-learn", Icon: IconNone},
		}
	case BlockContactGrid:
		b.Title.Text = "Contact Information"
		b.LayoutConfig.Columns = 4
		b.Items = []Item{
			{ID: ids.NewID("i"), Text: "Email", Subtext: "contact@university.edu", Icon: IconEmail, URL: "mailto:contact@university.edu"},
			{ID: ids.NewID("i"), Text: "Google Scholar", Subtext: "Scholar Profile", Icon: IconScholar, URL: "#"},
			{ID: ids.NewID("i"), Text: "GitHub", Subtext: "github.com/username", Icon: IconGitHub, URL: "#"},
			{ID: ids.NewID("i"), Text: "ORCID", Subtext: "0000-0000-0000-0000", Icon: IconORCID, URL: "#"},
		}
	case BlockCustom:
		b.Title.Text = "New Section"
		b.Items = []Item{{ID: ids.NewID("i"), Text: "Custom content goes here."}}
	default:
		b.Items = []Item{{ID: ids.NewID("i"), Text: "Add content here.", Subtext: "Secondary info."}}
	}

	return b
}

var subdomainStrip = regexp.MustCompile(`[^a-z0-9-]`)

// SanitizeSubdomain lowercases and strips characters outside [a-z0-9-].
func SanitizeSubdomain(s string) string {
	return subdomainStrip.ReplaceAllString(strings.ToLower(s), "")
}
