package services

import (
	"context"
	"io"

	"gymrank/domain/models"
)

// RequiredHeaders are the column names every uploaded file must carry in its
// header row. Matching is exact and case-sensitive but order-independent;
// extra columns are ignored.
var RequiredHeaders = []string{
	"POSITION", "COMPETITOR", "CLUB", "EXECUTION", "ARTISTRY",
	"DIFFICULTY", "LINE PENALTY", "CHAIR PENALTY", "DIFF PENALTY", "TOTAL",
}

type ImportService interface {
	// Import parses the uploaded file (CSV or XLSX, chosen by filename
	// extension), validates the header row, and persists one ranking per data
	// row under the category in a single transaction. Returns the number of
	// rows imported, or ErrUnsupportedFileType / *MissingHeadersError without
	// touching existing data.
	Import(ctx context.Context, category *models.Category, filename string, file io.Reader) (int, error)
}
