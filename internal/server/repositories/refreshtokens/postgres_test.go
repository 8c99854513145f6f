package refreshtokens

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopcore/authsvc/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestStore_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+refresh_tokens\b.*ON\s+CONFLICT\s*\(user_id\)\s+DO\s+UPDATE`

	expires := time.Now().Add(time.Hour).Unix()
	rows := sqlmock.NewRows([]string{"user_id", "token", "active", "expires_at", "created_at"}).
		AddRow("18c5a4f2d1e/u", "tok123", true, expires, time.Now())

	mock.ExpectQuery(q).
		WithArgs("18c5a4f2d1e/u", "tok123", expires).
		WillReturnRows(rows)

	record, err := repo.Store(context.Background(), "18c5a4f2d1e/u", "tok123", expires)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.UserID != "18c5a4f2d1e/u" || record.Token != "tok123" || !record.Active || record.ExpiresAt != expires {
		t.Fatalf("unexpected record: %+v", record)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStore_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+refresh_tokens\b`

	mock.ExpectQuery(q).WillReturnError(errors.New("db down"))

	_, err := repo.Store(context.Background(), "u1", "tok", 1)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestFindByUser_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*FROM\s+refresh_tokens\s+WHERE\s+user_id\s*=\s*\$1`

	expires := time.Now().Add(time.Hour).Unix()
	rows := sqlmock.NewRows([]string{"user_id", "token", "active", "expires_at", "created_at"}).
		AddRow("18c5a4f2d1e/u", "tok123", true, expires, time.Now())

	mock.ExpectQuery(q).WithArgs("18c5a4f2d1e/u").WillReturnRows(rows)

	got, err := repo.FindByUser(context.Background(), "18c5a4f2d1e/u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Token != "tok123" || got.ExpiresAt != expires {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestFindByUser_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*FROM\s+refresh_tokens\s+WHERE\s+user_id\s*=\s*\$1`

	mock.ExpectQuery(q).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByUser(context.Background(), "missing")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDeleteAllForUser_ReturnsCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+user_id\s*=\s*\$1`

	mock.ExpectExec(q).WithArgs("18c5a4f2d1e/u").WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := repo.DeleteAllForUser(context.Background(), "18c5a4f2d1e/u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("count: got %d want 1", count)
	}
}

func TestDeleteAllForUser_NoRecords(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+refresh_tokens\s+WHERE\s+user_id\s*=\s*\$1`

	mock.ExpectExec(q).WithArgs("nobody").WillReturnResult(sqlmock.NewResult(0, 0))

	count, err := repo.DeleteAllForUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("deleting with no records must not error, got %v", err)
	}
	if count != 0 {
		t.Fatalf("count: got %d want 0", count)
	}
}

func TestDeactivate_ReturnsCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+refresh_tokens\s+SET\s+active\s*=\s*FALSE\s+WHERE\s+user_id\s*=\s*\$1`

	mock.ExpectExec(q).WithArgs("18c5a4f2d1e/u").WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := repo.Deactivate(context.Background(), "18c5a4f2d1e/u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("count: got %d want 1", count)
	}
}

func TestDeactivate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+refresh_tokens\b`

	mock.ExpectExec(q).WillReturnError(errors.New("db err"))

	_, err := repo.Deactivate(context.Background(), "u1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
