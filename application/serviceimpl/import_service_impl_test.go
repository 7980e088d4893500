package serviceimpl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"gymrank/domain/models"
	"gymrank/domain/repositories"
	"gymrank/domain/services"
)

type fakeRankingRepo struct {
	rows      map[uuid.UUID][]*models.Ranking
	insertErr error
}

func newFakeRankingRepo() *fakeRankingRepo {
	return &fakeRankingRepo{rows: make(map[uuid.UUID][]*models.Ranking)}
}

func (r *fakeRankingRepo) ListByCategory(_ context.Context, categoryID uuid.UUID, _ repositories.RankingOrder) ([]*models.Ranking, error) {
	return r.rows[categoryID], nil
}

func (r *fakeRankingRepo) BulkInsert(_ context.Context, categoryID uuid.UUID, rows []*models.Ranking) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	for _, row := range rows {
		row.CategoryID = categoryID
	}
	r.rows[categoryID] = append(r.rows[categoryID], rows...)
	return nil
}

func (r *fakeRankingRepo) DeleteAllInCategory(_ context.Context, categoryID uuid.UUID) (int64, error) {
	n := int64(len(r.rows[categoryID]))
	delete(r.rows, categoryID)
	return n, nil
}

func testCategory() *models.Category {
	return &models.Category{
		ID:        uuid.New(),
		Slug:      "individual-men-seniors",
		Name:      "INDIVIDUAL MEN - SENIORS",
		CreatedAt: time.Now(),
	}
}

const csvHeader = "POSITION,COMPETITOR,CLUB,EXECUTION,ARTISTRY,DIFFICULTY,LINE PENALTY,CHAIR PENALTY,DIFF PENALTY,TOTAL"

func TestImportRejectsUnsupportedExtension(t *testing.T) {
	repo := newFakeRankingRepo()
	svc := NewImportService(repo)
	category := testCategory()

	_, err := svc.Import(context.Background(), category, "results.pdf", strings.NewReader("x"))
	if !errors.Is(err, services.ErrUnsupportedFileType) {
		t.Fatalf("err = %v, expected ErrUnsupportedFileType", err)
	}
	if len(repo.rows[category.ID]) != 0 {
		t.Error("rejected upload persisted rows")
	}
}

func TestImportRejectsMissingHeaders(t *testing.T) {
	repo := newFakeRankingRepo()
	svc := NewImportService(repo)
	category := testCategory()

	// CLUB and TOTAL are missing.
	data := "POSITION,COMPETITOR,EXECUTION,ARTISTRY,DIFFICULTY,LINE PENALTY,CHAIR PENALTY,DIFF PENALTY\n1,Ion,8.5,8.0,3.2,0,0,0\n"

	_, err := svc.Import(context.Background(), category, "results.csv", strings.NewReader(data))

	var missing *services.MissingHeadersError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, expected MissingHeadersError", err)
	}
	if len(missing.Missing) != 2 || missing.Missing[0] != "CLUB" || missing.Missing[1] != "TOTAL" {
		t.Errorf("missing = %v, expected [CLUB TOTAL]", missing.Missing)
	}
	if len(repo.rows[category.ID]) != 0 {
		t.Error("header-rejected upload persisted rows")
	}
}

func TestImportCSV(t *testing.T) {
	repo := newFakeRankingRepo()
	svc := NewImportService(repo)
	category := testCategory()

	data := csvHeader + "\n" +
		"1,Ion Popescu,Steaua,8.5,8.0,3.2,0,0,0,15.2\n" +
		"2=,Mihai Ionescu,Dinamo,\"8,1\",7.9,2.9,\"0,1\",,,\"14,85\"\n" +
		"3,Andrei Georgescu,CSM Cluj,,,,,,,\n"

	count, err := svc.Import(context.Background(), category, "results.csv", strings.NewReader(data))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, expected 3", count)
	}

	rows := repo.rows[category.ID]
	if len(rows) != 3 {
		t.Fatalf("persisted %d rows, expected 3", len(rows))
	}

	if rows[0].Total == nil || *rows[0].Total != 15.2 {
		t.Errorf("row 0 total = %v, expected 15.2", rows[0].Total)
	}
	// Tie marker stays free text, comma decimals are normalized.
	if rows[1].Position != "2=" {
		t.Errorf("row 1 position = %q, expected \"2=\"", rows[1].Position)
	}
	if rows[1].Execution == nil || *rows[1].Execution != 8.1 {
		t.Errorf("row 1 execution = %v, expected 8.1", rows[1].Execution)
	}
	if rows[1].Total == nil || *rows[1].Total != 14.85 {
		t.Errorf("row 1 total = %v, expected 14.85", rows[1].Total)
	}
	// Blank cells stay nil, never zero.
	if rows[2].Total != nil {
		t.Errorf("row 2 total = %v, expected nil", *rows[2].Total)
	}
	if rows[2].Competitor != "Andrei Georgescu" {
		t.Errorf("row 2 competitor = %q", rows[2].Competitor)
	}
}

func TestImportCSVDuplicateHeaderLastWins(t *testing.T) {
	repo := newFakeRankingRepo()
	svc := NewImportService(repo)
	category := testCategory()

	// Two CLUB columns; the later one is used.
	data := "POSITION,COMPETITOR,CLUB,CLUB,EXECUTION,ARTISTRY,DIFFICULTY,LINE PENALTY,CHAIR PENALTY,DIFF PENALTY,TOTAL\n" +
		"1,Ion,Old Club,New Club,8.5,8.0,3.2,0,0,0,15.2\n"

	count, err := svc.Import(context.Background(), category, "results.csv", strings.NewReader(data))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, expected 1", count)
	}
	if got := repo.rows[category.ID][0].Club; got != "New Club" {
		t.Errorf("club = %q, expected last duplicate column to win", got)
	}
}

func TestImportCSVRaggedRow(t *testing.T) {
	repo := newFakeRankingRepo()
	svc := NewImportService(repo)
	category := testCategory()

	// Row cut short after CLUB: remaining fields resolve to empty/nil.
	data := csvHeader + "\n1,Ion,Steaua\n"

	count, err := svc.Import(context.Background(), category, "results.csv", strings.NewReader(data))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, expected 1", count)
	}

	row := repo.rows[category.ID][0]
	if row.Club != "Steaua" {
		t.Errorf("club = %q, expected Steaua", row.Club)
	}
	if row.Total != nil {
		t.Errorf("total = %v, expected nil for missing cell", *row.Total)
	}
}

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	wb := excelize.NewFile()
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set sheet row: %v", err)
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

func TestImportXLSXWithExtraColumn(t *testing.T) {
	repo := newFakeRankingRepo()
	svc := NewImportService(repo)
	category := testCategory()

	buf := buildWorkbook(t, [][]interface{}{
		{"POSITION", "COMPETITOR", "CLUB", "EXECUTION", "ARTISTRY", "DIFFICULTY", "LINE PENALTY", "CHAIR PENALTY", "DIFF PENALTY", "TOTAL", "COACH"},
		{"1", "Simona Ionescu", "Dinamo", 8.2, 8.1, 3.0, 0, 0, 0, 14.8, "X"},
		{"2", "Elena Pop", "Steaua", 8.0, 7.9, 2.8, 0.1, 0, 0, 14.3, "Y"},
	})

	count, err := svc.Import(context.Background(), category, "results.xlsx", buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, expected 2", count)
	}

	rows := repo.rows[category.ID]
	if rows[0].Competitor != "Simona Ionescu" {
		t.Errorf("row 0 competitor = %q", rows[0].Competitor)
	}
	if rows[0].Total == nil || *rows[0].Total != 14.8 {
		t.Errorf("row 0 total = %v, expected 14.8", rows[0].Total)
	}
	if rows[1].Total == nil || *rows[1].Total != 14.3 {
		t.Errorf("row 1 total = %v, expected 14.3", rows[1].Total)
	}
}

func TestImportXLSXMissingHeaders(t *testing.T) {
	repo := newFakeRankingRepo()
	svc := NewImportService(repo)
	category := testCategory()

	buf := buildWorkbook(t, [][]interface{}{
		{"POSITION", "COMPETITOR"},
		{"1", "Ion"},
	})

	_, err := svc.Import(context.Background(), category, "results.xlsx", buf)

	var missing *services.MissingHeadersError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, expected MissingHeadersError", err)
	}
	if len(missing.Missing) != 8 {
		t.Errorf("missing %d headers, expected 8: %v", len(missing.Missing), missing.Missing)
	}
}
