package serviceimpl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"gymrank/domain/models"
	"gymrank/domain/repositories"
	"gymrank/domain/services"
	"gymrank/pkg/logger"
	"gymrank/pkg/utils"
)

type ImportServiceImpl struct {
	rankingRepo repositories.RankingRepository
}

func NewImportService(rankingRepo repositories.RankingRepository) services.ImportService {
	return &ImportServiceImpl{rankingRepo: rankingRepo}
}

func (s *ImportServiceImpl) Import(ctx context.Context, category *models.Category, filename string, file io.Reader) (int, error) {
	var (
		header  []string
		records [][]string
		err     error
	)

	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".csv"):
		header, records, err = readCSV(file)
	case strings.HasSuffix(name, ".xlsx"):
		header, records, err = readXLSX(file)
	default:
		logger.WarnContext(ctx, "Unsupported upload extension", "filename", filename)
		return 0, services.ErrUnsupportedFileType
	}
	if err != nil {
		return 0, fmt.Errorf("parse upload %q: %w", filename, err)
	}

	index := headerIndex(header)
	if missing := missingHeaders(index); len(missing) > 0 {
		logger.WarnContext(ctx, "Upload rejected, headers missing",
			"filename", filename, "missing", missing)
		return 0, &services.MissingHeadersError{Missing: missing}
	}

	rows := make([]*models.Ranking, 0, len(records))
	for _, record := range records {
		cell := func(key string) string {
			i, ok := index[key]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}
		rows = append(rows, &models.Ranking{
			Position:     cell("POSITION"),
			Competitor:   cell("COMPETITOR"),
			Club:         cell("CLUB"),
			Execution:    utils.ToNum(cell("EXECUTION")),
			Artistry:     utils.ToNum(cell("ARTISTRY")),
			Difficulty:   utils.ToNum(cell("DIFFICULTY")),
			LinePenalty:  utils.ToNum(cell("LINE PENALTY")),
			ChairPenalty: utils.ToNum(cell("CHAIR PENALTY")),
			DiffPenalty:  utils.ToNum(cell("DIFF PENALTY")),
			Total:        utils.ToNum(cell("TOTAL")),
		})
	}

	if err := s.rankingRepo.BulkInsert(ctx, category.ID, rows); err != nil {
		logger.ErrorContext(ctx, "Failed to persist imported rankings",
			"category_id", category.ID, "rows", len(rows), "error", err)
		return 0, err
	}

	logger.InfoContext(ctx, "Rankings imported",
		"category_id", category.ID, "filename", filename, "rows", len(rows))
	return len(rows), nil
}

// headerIndex maps trimmed header names to their column position. Duplicate
// header names are last-wins: a later column overwrites an earlier one.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	return index
}

func missingHeaders(index map[string]int) []string {
	var missing []string
	for _, required := range services.RequiredHeaders {
		if _, ok := index[required]; !ok {
			missing = append(missing, required)
		}
	}
	return missing
}

func readCSV(file io.Reader) (header []string, records [][]string, err error) {
	reader := csv.NewReader(file)
	// Spreadsheet exports are sloppy about trailing cells; accept ragged rows.
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, nil
	}
	return all[0], all[1:], nil
}

func readXLSX(file io.Reader) (header []string, records [][]string, err error) {
	wb, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, err
	}
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	return rows[0], rows[1:], nil
}
