package dto

// Form requests. These arrive as multipart or urlencoded form fields, not
// JSON, so handlers fill them from FormValue before validating.

// UploadForm accompanies the results file. Exactly one of CategorySlug and
// CategoryName has to be set: a slug selects an existing category, a name is
// resolved (or created) through slug normalization.
type UploadForm struct {
	CategorySlug string `validate:"omitempty,max=200"`
	CategoryName string `validate:"omitempty,max=300"`
}

// SettingsAction is the single dispatch for the settings page. Action picks
// which of the optional field groups applies.
type SettingsAction struct {
	Action string `validate:"required,oneof=save_settings add_cat rename_cat delete_cat"`

	// save_settings
	Title     string `validate:"omitempty,max=300"`
	Subtitle  string `validate:"omitempty,max=300"`
	EventDate string `validate:"omitempty,max=100"`
	Location  string `validate:"omitempty,max=300"`

	// add_cat
	NewCategory string `validate:"omitempty,max=300"`

	// rename_cat / delete_cat
	Slug    string `validate:"omitempty,max=200"`
	NewName string `validate:"omitempty,max=300"`
}

type DeleteByNameForm struct {
	CategoryName string `validate:"required,max=300"`
}

// === Responses ===

type ImportResult struct {
	Imported int               `json:"imported"`
	Category *CategoryResponse `json:"category"`
}

type DeleteRowsResult struct {
	Deleted  int64             `json:"deleted"`
	Category *CategoryResponse `json:"category"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
