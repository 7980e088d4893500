package dto

// Page payloads. Rendering is the client's concern; these carry everything a
// page needs: site text settings, the active language, and the data itself.

type HomePage struct {
	Settings      map[string]string  `json:"settings"`
	Lang          string             `json:"lang"`
	Selected      string             `json:"selected,omitempty"`
	AllCategories []CategoryResponse `json:"allCategories"`
	Categories    []CategoryView     `json:"categories"`
}

type CategoryPage struct {
	Settings map[string]string `json:"settings"`
	Lang     string            `json:"lang"`
	Category CategoryView      `json:"category"`
}

type UploadPage struct {
	Settings        map[string]string  `json:"settings"`
	Lang            string             `json:"lang"`
	Categories      []CategoryResponse `json:"categories"`
	RequiredHeaders []string           `json:"requiredHeaders"`
}

type SettingsPage struct {
	Settings   map[string]string `json:"settings"`
	Lang       string            `json:"lang"`
	Categories []CategoryInfo    `json:"categories"`
}

type StaticPage struct {
	Settings map[string]string `json:"settings"`
	Lang     string            `json:"lang"`
	Strings  map[string]string `json:"strings"`
}
