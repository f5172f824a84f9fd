package invoices

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"billing-dashboard-backend/internal/dberr"
	"billing-dashboard-backend/internal/models"
	"billing-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	for _, schema := range []string{
		`CREATE TABLE invoices (
			id TEXT,
			customer_id TEXT,
			amount INTEGER NOT NULL,
			status TEXT NOT NULL,
			date DATE,
			metadata TEXT,
			created_at DATETIME
		)`,
		`CREATE TABLE customers (
			id TEXT,
			name TEXT NOT NULL,
			email TEXT,
			image_url TEXT,
			created_at DATETIME
		)`,
	} {
		if err := db.Exec(schema).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func newTestService(db *gorm.DB) *Service {
	return NewService(repository.NewInvoiceRepository(db, zap.NewNop()), zap.NewNop())
}

func seedCustomer(t *testing.T, db *gorm.DB, name, email string) uuid.UUID {
	t.Helper()
	c := models.Customer{ID: uuid.New(), Name: name, Email: email}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("insert customer: %v", err)
	}
	return c.ID
}

func seedInvoice(t *testing.T, db *gorm.DB, customerID uuid.UUID, amount int64, status string, date time.Time) uuid.UUID {
	t.Helper()
	inv := models.Invoice{ID: uuid.New(), CustomerID: customerID, Amount: amount, Status: status, Date: date}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("insert invoice: %v", err)
	}
	return inv.ID
}

// seedSeven inserts seven invoices on distinct descending-sortable dates.
func seedSeven(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	customer := seedCustomer(t, db, "Amy Burns", "amy@example.com")
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		seedInvoice(t, db, customer, int64(1000*(i+1)), models.StatusPending, base.AddDate(0, 0, i))
	}
	return customer
}

func TestListNeverExceedsPageSize(t *testing.T) {
	db := setupTestDB(t)
	seedSeven(t, db)
	svc := newTestService(db)

	page1, err := svc.List(context.Background(), "", 1)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(page1) != 6 {
		t.Fatalf("expected a full page of 6, got %d", len(page1))
	}
	page2, err := svc.List(context.Background(), "", 2)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(page2) != 1 {
		t.Fatalf("expected the 1-row remainder, got %d", len(page2))
	}
}

func TestPaginationReconstructsFullSet(t *testing.T) {
	db := setupTestDB(t)
	seedSeven(t, db)
	svc := newTestService(db)
	ctx := context.Background()

	pages, err := svc.TotalPages(ctx, "")
	if err != nil {
		t.Fatalf("total pages: %v", err)
	}
	if pages != 2 {
		t.Fatalf("expected ceil(7/6)=2 pages, got %d", pages)
	}

	seen := map[uuid.UUID]bool{}
	var all []ListItem
	for p := int64(1); p <= pages; p++ {
		items, err := svc.List(ctx, "", int(p))
		if err != nil {
			t.Fatalf("page %d: %v", p, err)
		}
		for _, item := range items {
			if seen[item.ID] {
				t.Fatalf("invoice %s returned on two pages", item.ID)
			}
			seen[item.ID] = true
		}
		all = append(all, items...)
	}
	if len(all) != 7 {
		t.Fatalf("concatenated pages hold %d rows, want 7", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Date.After(all[i-1].Date) {
			t.Fatalf("ordering broke across pages at index %d", i)
		}
	}
}

func TestEmptyTermEqualsNoFilter(t *testing.T) {
	db := setupTestDB(t)
	seedSeven(t, db)
	svc := newTestService(db)
	ctx := context.Background()

	blank, err := svc.List(ctx, "", 1)
	if err != nil {
		t.Fatalf("blank term: %v", err)
	}
	spaces, err := svc.List(ctx, "   ", 1)
	if err != nil {
		t.Fatalf("whitespace term: %v", err)
	}
	if len(blank) != len(spaces) {
		t.Fatalf("blank and whitespace terms disagree: %d vs %d", len(blank), len(spaces))
	}
	for i := range blank {
		if blank[i].ID != spaces[i].ID {
			t.Fatalf("row %d differs between blank and whitespace terms", i)
		}
	}
}

func TestTotalPagesZeroWhenNothingMatches(t *testing.T) {
	db := setupTestDB(t)
	seedSeven(t, db)
	svc := newTestService(db)

	pages, err := svc.TotalPages(context.Background(), "no-such-customer")
	if err != nil {
		t.Fatalf("total pages: %v", err)
	}
	if pages != 0 {
		t.Fatalf("expected 0 pages for empty match set, got %d", pages)
	}
}

func TestSearchMatchesByCustomerName(t *testing.T) {
	db := setupTestDB(t)
	lee := seedCustomer(t, db, "Lee Robinson", "lee@example.com")
	amy := seedCustomer(t, db, "Amy Burns", "amy@example.com")
	seedInvoice(t, db, lee, 15000, models.StatusPaid, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC))
	seedInvoice(t, db, lee, 2000, models.StatusPending, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	seedInvoice(t, db, amy, 3000, models.StatusPending, time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC))

	items, err := newTestService(db).List(context.Background(), "lee", 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected only Lee's 2 invoices, got %d", len(items))
	}
	for _, item := range items {
		if item.Name != "Lee Robinson" {
			t.Fatalf("unexpected match %q", item.Name)
		}
	}
	if items[0].Date.Before(items[1].Date) {
		t.Fatalf("expected date-descending order")
	}
	if items[0].Amount != "$150.00" {
		t.Fatalf("expected display-formatted amount, got %q", items[0].Amount)
	}
}

func TestListRejectsNonPositivePages(t *testing.T) {
	db := setupTestDB(t)
	seedSeven(t, db)
	svc := newTestService(db)

	for _, page := range []int{0, -1} {
		_, err := svc.List(context.Background(), "", page)
		if dberr.KindOf(err) != dberr.InvalidInput {
			t.Fatalf("page %d: expected InvalidInput, got %v", page, err)
		}
	}
}

func TestGetByIDConvertsCentsToUnits(t *testing.T) {
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Amy Burns", "amy@example.com")
	id := seedInvoice(t, db, customer, 66666, models.StatusPending, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	form, err := newTestService(db).GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if form.Amount != 666.66 {
		t.Fatalf("expected 666.66 major units, got %v", form.Amount)
	}
	if form.CustomerID != customer || form.Status != models.StatusPending {
		t.Fatalf("unexpected form: %+v", form)
	}
}

func TestGetByIDAbsentIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	_, err := newTestService(db).GetByID(context.Background(), uuid.New())
	if !dberr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
