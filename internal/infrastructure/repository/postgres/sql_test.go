package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get team: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("pq: relation teams does not exist")) {
		t.Fatalf("expected unrelated error to not be not found")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches 23505", func(t *testing.T) {
		err := fmt.Errorf("insert league: %w", &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
		if !isUniqueViolation(err) {
			t.Fatalf("expected unique violation")
		}
	})

	t.Run("ignores other pq codes", func(t *testing.T) {
		err := &pq.Error{Code: "23503", Message: "insert or update violates foreign key constraint"}
		if isUniqueViolation(err) {
			t.Fatalf("expected foreign key violation to be ignored")
		}
	})

	t.Run("ignores plain errors", func(t *testing.T) {
		if isUniqueViolation(fakeErr("boom")) {
			t.Fatalf("expected plain error to be ignored")
		}
	})
}

func TestNullableID(t *testing.T) {
	if got := nullableID(0); got.Valid {
		t.Fatalf("expected zero id to be NULL, got %+v", got)
	}
	if got := nullableID(7); !got.Valid || got.Int64 != 7 {
		t.Fatalf("unexpected nullable id: %+v", got)
	}
	if got := idFromNull(sql.NullInt64{}); got != 0 {
		t.Fatalf("expected 0 for NULL, got %d", got)
	}
}

func TestNullableIntRoundTrip(t *testing.T) {
	if got := intFromNull(nullableInt(nil)); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
	age := 27
	got := intFromNull(nullableInt(&age))
	if got == nil || *got != 27 {
		t.Fatalf("unexpected age: %v", got)
	}

	weight := 88.5
	gotWeight := floatFromNull(nullableFloat(&weight))
	if gotWeight == nil || *gotWeight != 88.5 {
		t.Fatalf("unexpected weight: %v", gotWeight)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }

func TestRecentGameLogQuery(t *testing.T) {
	query, args, err := recentGameLogQuery(12, 100)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	want := "SELECT * FROM gamelog WHERE game_id = $1 ORDER BY logged_at DESC, id DESC LIMIT 100"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if len(args) != 1 || args[0] != int64(12) {
		t.Fatalf("unexpected args: %v", args)
	}
}
