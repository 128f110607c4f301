package service

// LocalizedText carries one resolved string per supported language.
// Both keys are always present in JSON; an unresolvable language is "".
type LocalizedText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// Empty reports whether the text resolved to nothing in every language.
func (t LocalizedText) Empty() bool {
	return t.En == "" && t.Ar == ""
}

// BilingualView is the normalized, language-agnostic representation of
// one content entity. Localized fields are pointers: a nil field means
// the entity has no key for it, which is different from a key that
// resolved to empty strings.
type BilingualView struct {
	ID          string         `json:"id"`
	Slug        string         `json:"slug,omitempty"`
	Type        string         `json:"type,omitempty"`
	URL         string         `json:"url,omitempty"`
	Title       *LocalizedText `json:"title,omitempty"`
	Description *LocalizedText `json:"description,omitempty"`
	Content     *LocalizedText `json:"content,omitempty"`
	Excerpt     *LocalizedText `json:"excerpt,omitempty"`
	WitnessName *LocalizedText `json:"witness_name,omitempty"`
	Location    *LocalizedText `json:"location,omitempty"`
	Subtitle    *LocalizedText `json:"subtitle,omitempty"`
	ButtonText  *LocalizedText `json:"button_text,omitempty"`
	ButtonURL   string         `json:"button_url,omitempty"`
	Date        string         `json:"date,omitempty"`
	Image       string         `json:"image,omitempty"`
	Thumbnail   string         `json:"thumbnail,omitempty"`
	WebsiteURL  string         `json:"website_url,omitempty"`
	DonationURL string         `json:"donation_url,omitempty"`
	Categories  []CategoryView `json:"categories,omitempty"`
	IsFeatured  bool           `json:"is_featured,omitempty"`
}

type CategoryView struct {
	Slug string        `json:"slug"`
	Name LocalizedText `json:"name"`
}
