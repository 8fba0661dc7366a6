package settings

// Platform describes one selectable social platform for the admin UI.
type Platform struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// Platforms returns the selectable platform catalog in display order.
// Instagram is selectable but not part of the default selection.
func Platforms() []Platform {
	return []Platform{
		{ID: "whatsapp", Label: "WhatsApp", Color: "#25D366"},
		{ID: "facebook", Label: "Facebook", Color: "#1877F2"},
		{ID: "twitter", Label: "Twitter/X", Color: "#000000"},
		{ID: "pinterest", Label: "Pinterest", Color: "#BD081C"},
		{ID: "linkedin", Label: "LinkedIn", Color: "#0A66C2"},
		{ID: "instagram", Label: "Instagram", Color: "#E4405F"},
	}
}
