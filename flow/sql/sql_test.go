package sql

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lguimbarda/seqflow/flow/aggregate"
	"github.com/lguimbarda/seqflow/flow/core"
	"github.com/lguimbarda/seqflow/flow/filter"
	"github.com/lguimbarda/seqflow/flow/transform"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	// Every pooled connection to :memory: would see its own database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			age INTEGER NOT NULL
		)
	`)
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	_, err = db.Exec(`INSERT INTO users (name, age) VALUES ('Alice', 30), ('Bob', 25), ('Charlie', 35)`)
	if err != nil {
		t.Fatalf("failed to insert data: %v", err)
	}
	return db
}

type User struct {
	ID   int
	Name string
	Age  int
}

func scanUser(rows *sql.Rows) (User, error) {
	var u User
	err := rows.Scan(&u.ID, &u.Name, &u.Age)
	return u, err
}

func TestQuery(t *testing.T) {
	db := setupTestDB(t)

	users, err := Query(context.Background(), db, "SELECT id, name, age FROM users ORDER BY id", scanUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := core.Pipe(core.Sequence[User](users), core.Materialize[User]())
	want := []string{"Alice", "Bob", "Charlie"}
	if len(got) != len(want) {
		t.Fatalf("expected %d users, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("user %d: expected %q, got %q", i, name, got[i].Name)
		}
	}
	if users.Direction() != core.Bidirectional {
		t.Errorf("expected a bidirectional view, got %v", users.Direction())
	}
}

func TestQueryWithArgs(t *testing.T) {
	db := setupTestDB(t)

	users, err := Query(context.Background(), db, "SELECT id, name, age FROM users WHERE age > ? ORDER BY age", scanUser, 28)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := core.Pipe(
		core.Pipe(core.Sequence[User](users), transform.Map(func(u User) string { return u.Name })),
		core.Materialize[string](),
	)
	if len(names) != 2 || names[0] != "Alice" || names[1] != "Charlie" {
		t.Errorf("expected [Alice Charlie], got %v", names)
	}
}

func TestQueryInPipeline(t *testing.T) {
	db := setupTestDB(t)

	users, err := Query(context.Background(), db, "SELECT id, name, age FROM users ORDER BY id", scanUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ages := core.Pipe(core.Sequence[User](users), transform.Map(func(u User) int { return u.Age }))
	older := core.Pipe(ages, filter.Where(func(age int) bool { return age >= 30 }))
	if got := core.Pipe(older, aggregate.Sum[int]()); got != 65 {
		t.Errorf("expected 65, got %d", got)
	}
	// The snapshot can be traversed again, in reverse.
	last := core.Pipe(core.Pipe(ages, transform.Reverse[int]()), aggregate.First[int]())
	if v, err := last.Get(); err != nil || v != 35 {
		t.Errorf("expected 35, got %d (%v)", v, err)
	}
}

func TestQueryEmpty(t *testing.T) {
	db := setupTestDB(t)

	users, err := Query(context.Background(), db, "SELECT id, name, age FROM users WHERE age > 100", scanUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !core.IsEmpty[User](users) {
		t.Error("expected an empty view")
	}
}

func TestQueryErrors(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		query   string
		scanner Scanner[User]
	}{
		{
			name:    "invalid query",
			query:   "SELECT * FROM nonexistent",
			scanner: scanUser,
		},
		{
			name:  "scan failure",
			query: "SELECT id, name, age FROM users",
			scanner: func(rows *sql.Rows) (User, error) {
				var u User
				err := rows.Scan(&u.ID)
				return u, err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Query(ctx, db, tt.query, tt.scanner); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestQueryRow(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	res := QueryRow(ctx, db, "SELECT COUNT(*) FROM users", func(row *sql.Row) (int, error) {
		var n int
		err := row.Scan(&n)
		return n, err
	})
	if res.IsError() || res.Value() != 3 {
		t.Errorf("expected 3, got %d (%v)", res.Value(), res.Error())
	}

	missing := QueryRow(ctx, db, "SELECT age FROM users WHERE name = ?", func(row *sql.Row) (int, error) {
		var n int
		err := row.Scan(&n)
		return n, err
	}, "Nobody")
	if !errors.Is(missing.Error(), sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", missing.Error())
	}
}

func TestExec(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	newcomers := core.FromSlice([]User{{Name: "Dave", Age: 40}, {Name: "Eve", Age: 22}})
	res := core.Pipe(core.Sequence[User](newcomers), Exec(ctx, db, "INSERT INTO users (name, age) VALUES (?, ?)", func(u User) []any {
		return []any{u.Name, u.Age}
	}))
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Error())
	}
	if got := res.Value(); got.RowsAffected != 2 || got.Statements != 2 || got.LastInsertId != 5 {
		t.Errorf("unexpected result %+v", got)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("expected 5 users, got %d", count)
	}
}

func TestExecRollsBack(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// The second row violates the UNIQUE constraint on name.
	rows := core.FromSlice([]User{{Name: "Dave", Age: 40}, {Name: "Alice", Age: 22}})
	res := core.Pipe(core.Sequence[User](rows), Exec(ctx, db, "INSERT INTO users (name, age) VALUES (?, ?)", func(u User) []any {
		return []any{u.Name, u.Age}
	}))
	if !res.IsError() {
		t.Fatal("expected error")
	}
	if res.Value().Statements != 1 {
		t.Errorf("expected 1 successful statement before the failure, got %d", res.Value().Statements)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("expected the transaction to roll back to 3 users, got %d", count)
	}
}

func TestExecStageKind(t *testing.T) {
	db := setupTestDB(t)
	stage := Exec(context.Background(), db, "DELETE FROM users WHERE id = ?", func(id int) []any { return []any{id} })
	if stage.Kind() != core.Terminator {
		t.Errorf("expected terminator, got %v", stage.Kind())
	}
}
