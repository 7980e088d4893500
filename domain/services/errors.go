package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCategoryNotFound is returned when a slug or name resolves to no
	// category for a read or mutating action.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDuplicateSlug is returned when adding or renaming a category would
	// collide with another category's slug. The original record is unchanged.
	ErrDuplicateSlug = errors.New("a category with this name already exists")

	// ErrUnsupportedFileType is returned for uploads that are neither .csv
	// nor .xlsx.
	ErrUnsupportedFileType = errors.New("unsupported file type, use CSV or XLSX")
)

// MissingHeadersError rejects an import whose header row lacks required
// columns. Nothing is imported when it is returned.
type MissingHeadersError struct {
	Missing []string
}

func (e *MissingHeadersError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}
