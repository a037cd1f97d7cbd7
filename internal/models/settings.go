package models

// HeroBanner is one slide of the home-page hero carousel.
type HeroBanner struct {
	ImageURL      string `json:"imageUrl"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	TitleColor    string `json:"titleColor"`
	SubtitleColor string `json:"subtitleColor"`
	FontFamily    string `json:"fontFamily"`
}

// SiteSettings is the site-wide presentation record: branding, colors,
// banners and footer/contact content. It is replaced wholesale by a site
// administrator and otherwise only read. Stored as a single row.
type SiteSettings struct {
	LogoURL                   string       `json:"logoUrl"`
	LogoText                  string       `json:"logoText"`
	ShowLogoText              bool         `json:"showLogoText"`
	HeroBanners               []HeroBanner `json:"heroBanners"`
	FooterContactEmail        string       `json:"footerContactEmail"`
	FooterContactPhone        string       `json:"footerContactPhone"`
	FooterDescription         string       `json:"footerDescription"`
	FooterCopyright           string       `json:"footerCopyright"`
	FooterFacebookURL         string       `json:"footerFacebookUrl"`
	FooterInstagramURL        string       `json:"footerInstagramUrl"`
	FooterLinkedInURL         string       `json:"footerLinkedInUrl"`
	AboutPageImageURL         string       `json:"aboutPageImageUrl"`
	AboutPageHistory          string       `json:"aboutPageHistory"`
	AboutPageMission          string       `json:"aboutPageMission"`
	AboutPageValues           string       `json:"aboutPageValues"`
	ContactFormRecipientEmail string       `json:"contactFormRecipientEmail"`
	CompanyAddress            string       `json:"companyAddress"`
	MapEmbedCode              string       `json:"mapEmbedCode"`
	BackgroundColor           string       `json:"backgroundColor"`
	BackgroundImageURL        string       `json:"backgroundImageUrl"`
	PageTitleColor            string       `json:"pageTitleColor"`
	SectionTitleColor         string       `json:"sectionTitleColor"`
	BodyTextColor             string       `json:"bodyTextColor"`
	BodyTextMutedColor        string       `json:"bodyTextMutedColor"`
	HeaderBackgroundColor     string       `json:"headerBackgroundColor"`
	HeaderMenuColor           string       `json:"headerMenuColor"`
	HeaderMenuHighlightColor  string       `json:"headerMenuHighlightColor"`
	ButtonColor               string       `json:"buttonColor"`
	FooterBackgroundColor     string       `json:"footerBackgroundColor"`
}

// DefaultSiteSettings returns the settings used until an administrator
// saves their own. Every field has a safe value.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		LogoText:                 "Imovia",
		ShowLogoText:             true,
		HeroBanners:              []HeroBanner{},
		FooterCopyright:          "All rights reserved.",
		BackgroundColor:          "#111827",
		PageTitleColor:           "#ffffff",
		SectionTitleColor:        "#f3f4f6",
		BodyTextColor:            "#d1d5db",
		BodyTextMutedColor:       "#9ca3af",
		HeaderBackgroundColor:    "#1f2937",
		HeaderMenuColor:          "#e5e7eb",
		HeaderMenuHighlightColor: "#60a5fa",
		ButtonColor:              "#2563eb",
		FooterBackgroundColor:    "#1f2937",
	}
}
