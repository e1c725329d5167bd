package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/dmitrijs2005/samba/internal/common"
	"github.com/dmitrijs2005/samba/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sqlx.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	dbx := sqlx.NewDb(db, "sqlmock")
	return NewPostgresRepository(dbx), mock, dbx
}

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*hashed_password\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"id", "username", "hashed_password"}).
		AddRow(int64(7), "alice", "salty-hash")
	mock.ExpectQuery(q).WithArgs("alice").WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.ID != 7 || got.Username != "alice" || got.HashedPassword != "salty-hash" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*hashed_password\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*hashed_password\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetAll(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*hashed_password\s+FROM\s+users\s*$`

	rows := sqlmock.NewRows([]string{"id", "username", "hashed_password"}).
		AddRow(int64(1), "alice", "h1").
		AddRow(int64(2), "bob", "h2")
	mock.ExpectQuery(q).WillReturnRows(rows)

	got, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(got) != 2 || got[0].Username != "alice" || got[1].Username != "bob" {
		t.Fatalf("unexpected users: %+v", got)
	}
}

func TestSave_InsertAssignsID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*hashed_password\)\s*VALUES\s*\(\$1,\s*\$2\)\s*RETURNING\s+id\s*$`

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(42))
	mock.ExpectQuery(q).WithArgs("alice", "salty-hash").WillReturnRows(rows)

	u := models.NewUser("alice")
	u.HashedPassword = "salty-hash"
	if err := repo.Save(context.Background(), u); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if u.ID != 42 {
		t.Fatalf("want id 42 assigned back, got %d", u.ID)
	}
}

func TestSave_InsertUniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*`

	mock.ExpectQuery(q).
		WithArgs("alice", "salty-hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	u := models.NewUser("alice")
	u.HashedPassword = "salty-hash"
	err := repo.Save(context.Background(), u)
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
	if u.Saved() {
		t.Fatalf("id must stay unassigned after failed insert, got %d", u.ID)
	}
}

func TestSave_UpdateKeepsID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+username\s*=\s*\$1,\s*hashed_password\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3\s*$`

	mock.ExpectExec(q).
		WithArgs("alice", "new-hash", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	u := &models.User{ID: 7, Username: "alice", HashedPassword: "new-hash"}
	if err := repo.Save(context.Background(), u); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if u.ID != 7 {
		t.Fatalf("update must not touch id, got %d", u.ID)
	}
}

func TestDelete_ResetsID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 1))

	u := &models.User{ID: 7, Username: "alice"}
	if err := repo.Delete(context.Background(), u); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if u.Saved() {
		t.Fatalf("id must be reset after delete, got %d", u.ID)
	}
}

func TestDelete_UnsavedIsNoop(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	u := models.NewUser("alice")
	if err := repo.Delete(context.Background(), u); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no statements expected: %v", err)
	}
}

func TestDelete_ForeignKeyViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).
		WithArgs(int64(7)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "messages_from_id_fkey"})

	u := &models.User{ID: 7, Username: "alice"}
	err := repo.Delete(context.Background(), u)
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("want common.ErrorConflict, got %v", err)
	}
	if !u.Saved() {
		t.Fatalf("id must stay assigned after failed delete")
	}
}

func TestGetByUsername_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,\s*hashed_password\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).WithArgs("alice").WillReturnError(errors.New("db down"))

	_, err := repo.GetByUsername(context.Background(), "alice")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
