package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gymrank/domain/models"
	"gymrank/domain/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func newCategory(t *testing.T, db *gorm.DB, slug, name string) *models.Category {
	t.Helper()
	category := &models.Category{
		ID:        uuid.New(),
		Slug:      slug,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

func TestCategoryRepositoryDeleteCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	catRepo := NewCategoryRepository(db)
	rankRepo := NewRankingRepository(db)

	category := newCategory(t, db, "individual-men", "Individual Men")
	other := newCategory(t, db, "trio-youth", "Trio Youth")

	rows := []*models.Ranking{
		{Position: "1", Competitor: "A", Total: f(15.0)},
		{Position: "2", Competitor: "B", Total: f(14.0)},
	}
	if err := rankRepo.BulkInsert(ctx, category.ID, rows); err != nil {
		t.Fatalf("bulk insert: %v", err)
	}
	if err := rankRepo.BulkInsert(ctx, other.ID, []*models.Ranking{{Position: "1", Competitor: "C"}}); err != nil {
		t.Fatalf("bulk insert other: %v", err)
	}

	if err := catRepo.DeleteCascade(ctx, category.ID); err != nil {
		t.Fatalf("delete cascade: %v", err)
	}

	if _, err := catRepo.GetByID(ctx, category.ID); err == nil {
		t.Error("deleted category still resolves")
	}

	var orphans int64
	db.Model(&models.Ranking{}).Where("category_id = ?", category.ID).Count(&orphans)
	if orphans != 0 {
		t.Errorf("cascade left %d ranking rows behind", orphans)
	}

	// The other category is untouched.
	count, err := catRepo.CountRankings(ctx, other.ID)
	if err != nil {
		t.Fatalf("count rankings: %v", err)
	}
	if count != 1 {
		t.Errorf("other category has %d rankings, expected 1", count)
	}
}

func TestCategoryRepositoryGetRankingCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	catRepo := NewCategoryRepository(db)
	rankRepo := NewRankingRepository(db)

	a := newCategory(t, db, "a", "A")
	b := newCategory(t, db, "b", "B")
	empty := newCategory(t, db, "empty", "Empty")

	rankRepo.BulkInsert(ctx, a.ID, []*models.Ranking{{Position: "1"}, {Position: "2"}, {Position: "3"}})
	rankRepo.BulkInsert(ctx, b.ID, []*models.Ranking{{Position: "1"}})

	counts, err := catRepo.GetRankingCounts(ctx)
	if err != nil {
		t.Fatalf("get ranking counts: %v", err)
	}
	if counts[a.ID] != 3 {
		t.Errorf("count for a = %d, expected 3", counts[a.ID])
	}
	if counts[b.ID] != 1 {
		t.Errorf("count for b = %d, expected 1", counts[b.ID])
	}
	if counts[empty.ID] != 0 {
		t.Errorf("count for empty = %d, expected 0", counts[empty.ID])
	}
}

func TestRankingRepositoryDisplayOrderNullsLast(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	rankRepo := NewRankingRepository(db)

	category := newCategory(t, db, "seniors", "Seniors")
	rows := []*models.Ranking{
		{Position: "1", Competitor: "First", Total: f(15.2)},
		{Position: "-", Competitor: "NoScore", Total: nil},
		{Position: "2", Competitor: "Second", Total: f(14.85)},
	}
	if err := rankRepo.BulkInsert(ctx, category.ID, rows); err != nil {
		t.Fatalf("bulk insert: %v", err)
	}

	got, err := rankRepo.ListByCategory(ctx, category.ID, repositories.OrderDisplay)
	if err != nil {
		t.Fatalf("list display: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d rows, expected 3", len(got))
	}

	expected := []string{"First", "Second", "NoScore"}
	for i, competitor := range expected {
		if got[i].Competitor != competitor {
			t.Errorf("display order[%d] = %q, expected %q", i, got[i].Competitor, competitor)
		}
	}
	if got[2].Total != nil {
		t.Errorf("nulls-last row has total %v, expected nil", *got[2].Total)
	}
}

func TestRankingRepositoryInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	rankRepo := NewRankingRepository(db)

	category := newCategory(t, db, "juniors", "Juniors")
	rows := []*models.Ranking{
		{Position: "3", Competitor: "C", Total: f(10)},
		{Position: "1", Competitor: "A", Total: f(20)},
		{Position: "2=", Competitor: "B", Total: f(15)},
	}
	if err := rankRepo.BulkInsert(ctx, category.ID, rows); err != nil {
		t.Fatalf("bulk insert: %v", err)
	}

	got, err := rankRepo.ListByCategory(ctx, category.ID, repositories.OrderInsertion)
	if err != nil {
		t.Fatalf("list insertion: %v", err)
	}

	expected := []string{"3", "1", "2="}
	for i, position := range expected {
		if got[i].Position != position {
			t.Errorf("insertion order[%d] = %q, expected %q", i, got[i].Position, position)
		}
	}
}

func TestRankingRepositoryDeleteAllInCategory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	rankRepo := NewRankingRepository(db)

	category := newCategory(t, db, "group-youth", "Group Youth")
	rankRepo.BulkInsert(ctx, category.ID, []*models.Ranking{{Position: "1"}, {Position: "2"}})

	deleted, err := rankRepo.DeleteAllInCategory(ctx, category.ID)
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, expected 2", deleted)
	}

	// Second pass finds nothing.
	deleted, err = rankRepo.DeleteAllInCategory(ctx, category.ID)
	if err != nil {
		t.Fatalf("second delete all: %v", err)
	}
	if deleted != 0 {
		t.Errorf("second delete = %d, expected 0", deleted)
	}
}

func TestSettingRepositoryUpsert(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewSettingRepository(db)

	if err := repo.Upsert(ctx, &models.Setting{Key: "title", Value: "First"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Upsert(ctx, &models.Setting{Key: "title", Value: "Second"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	setting, err := repo.GetByKey(ctx, "title")
	if err != nil {
		t.Fatalf("get by key: %v", err)
	}
	if setting.Value != "Second" {
		t.Errorf("value = %q, expected %q", setting.Value, "Second")
	}

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d rows, expected 1 (upsert must not duplicate)", len(all))
	}
}

func TestSeedIfEmpty(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := SeedIfEmpty(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Running again must not duplicate anything.
	if err := SeedIfEmpty(ctx, db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var categories int64
	db.Model(&models.Category{}).Count(&categories)
	if categories != int64(len(defaultCategories)) {
		t.Errorf("seeded %d categories, expected %d", categories, len(defaultCategories))
	}

	var rankings int64
	db.Model(&models.Ranking{}).Count(&rankings)
	if rankings != 3 {
		t.Errorf("seeded %d demo rankings, expected 3", rankings)
	}

	var title models.Setting
	if err := db.Where("key = ?", "title").First(&title).Error; err != nil {
		t.Fatalf("title setting missing: %v", err)
	}
	if title.Value == "" {
		t.Error("title setting seeded empty")
	}
}
