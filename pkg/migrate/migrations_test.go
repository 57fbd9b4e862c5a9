package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nextplayhq/nextplay-backend/pkg/migrate"
)

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir failed validation: %v", err)
	}
}

func TestProductsMigrationContainsSchema(t *testing.T) {
	content := readMigration(t, "*_create_products_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS products",
		"images JSONB NOT NULL DEFAULT '[]'::jsonb",
		"colors JSONB NOT NULL DEFAULT '[]'::jsonb",
		"sizes TEXT[]",
		"CREATE INDEX IF NOT EXISTS idx_products_category",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestOrdersMigrationContainsSchema(t *testing.T) {
	content := readMigration(t, "*_create_orders_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS orders",
		"items JSONB NOT NULL",
		"total_price NUMERIC(10,2) NOT NULL",
		"wilaya TEXT NOT NULL",
		"baladia TEXT NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q found", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
