package sqlite_test

import (
	"context"
	"testing"

	"github.com/msomdec/dagligsvensk/internal/domain"
	"github.com/msomdec/dagligsvensk/internal/repository/sqlite"
)

func TestContactRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewContactRepository(db)
	ctx := context.Background()

	msg := &domain.ContactMessage{Email: "hei@example.com", Message: "Hallo!"}
	if err := repo.Create(ctx, msg); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if msg.ID == 0 {
		t.Fatal("expected ID to be set")
	}

	var stored string
	if err := db.SqlDB.QueryRowContext(ctx, "SELECT message FROM contact_messages WHERE id = ?", msg.ID).Scan(&stored); err != nil {
		t.Fatalf("select message: %v", err)
	}
	if stored != "Hallo!" {
		t.Fatalf("expected stored message, got %q", stored)
	}
}
