package postgres

import (
	"strings"
	"testing"
)

func tableDDL(t *testing.T, table string) string {
	t.Helper()
	prefix := "CREATE TABLE IF NOT EXISTS " + table + " ("
	for _, stmt := range migrations {
		if strings.HasPrefix(stmt, prefix) {
			return stmt
		}
	}
	t.Fatalf("no CREATE TABLE statement for %s", table)
	return ""
}

// Child rows must go with their parent, so every foreign key in the schema
// has to carry ON DELETE CASCADE.
func TestForeignKeysCascade(t *testing.T) {
	tests := []struct {
		table  string
		column string
	}{
		{"user_profiles", "identity_id"},
		{"vehicles", "model_id"},
		{"vehicles", "owner_id"},
		{"contracts", "vehicle_id"},
		{"contracts", "companion_profile_id"},
	}
	for _, tt := range tests {
		t.Run(tt.table+"."+tt.column, func(t *testing.T) {
			ddl := tableDDL(t, tt.table)
			for _, line := range strings.Split(ddl, "\n") {
				if !strings.Contains(line, tt.column) {
					continue
				}
				if !strings.Contains(line, "REFERENCES") {
					t.Fatalf("%s.%s is not declared as a foreign key", tt.table, tt.column)
				}
				if !strings.Contains(line, "ON DELETE CASCADE") {
					t.Fatalf("%s.%s foreign key does not cascade", tt.table, tt.column)
				}
				return
			}
			t.Fatalf("column %s not found in %s DDL", tt.column, tt.table)
		})
	}
}

func TestMigrationsCoverAllTables(t *testing.T) {
	for _, table := range []string{"identities", "user_profiles", "vehicle_models", "vehicles", "contracts"} {
		tableDDL(t, table)
	}
}
