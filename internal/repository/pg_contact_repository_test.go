package repository

import (
	"testing"

	"github.com/contactbook/backend/internal/model"
)

// TestOrderClause verifies the sort-key to ORDER BY mapping, including
// the newest-first fallback for unrecognized keys.
func TestOrderClause(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{model.SortNewest, "created_at DESC"},
		{model.SortOldest, "created_at ASC"},
		{model.SortName, "name ASC"},
		{model.SortEmail, "email ASC"},
		{"", "created_at DESC"},
		{"bogus", "created_at DESC"},
	}

	for _, tt := range tests {
		if got := orderClause(tt.sort); got != tt.want {
			t.Errorf("orderClause(%q) = %q, want %q", tt.sort, got, tt.want)
		}
	}
}
