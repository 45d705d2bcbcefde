package memories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/memoria/internal/common"
	"github.com/dmitrijs2005/memoria/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleMemory() *models.Memory {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return &models.Memory{
		ID:           "m1",
		OwnerUID:     "u1",
		Tenant:       "acme",
		Title:        "Grandma",
		Status:       models.MemoryDraft,
		StorageUsed:  10,
		StorageLimit: models.DefaultStorageLimit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestInsert_OK(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	m := sampleMemory()
	mock.ExpectExec(`(?s)INSERT INTO memories \(id, tenant, owner_uid`).
		WithArgs("m1", "acme", "u1", "", int64(10), models.DefaultStorageLimit, m.CreatedAt, m.UpdatedAt, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Insert(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsert_Duplicate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT INTO memories`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Insert(context.Background(), sampleMemory())
	if !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want ErrorValidation, got %v", err)
	}
}

func TestGet_OK(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"storage_used", "doc"}).
		AddRow(int64(42), []byte(`{"id":"m1","tenant":"acme","ownerUid":"u1","title":"T","storageUsed":1,"status":"draft","blocks":[{"id":"b1","type":"text","text":"hi"}]}`))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT storage_used, doc FROM memories WHERE id = $1`)).
		WithArgs("m1").
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), "m1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "m1" || got.Tenant != "acme" || got.StorageUsed != 42 {
		t.Fatalf("unexpected memory: %+v", got)
	}
	if len(got.Blocks) != 1 || got.Blocks[0].Kind != models.BlockText {
		t.Fatalf("unexpected blocks: %+v", got.Blocks)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT storage_used, doc FROM memories`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.Get(context.Background(), "nope"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestGet_BadDocument(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"storage_used", "doc"}).AddRow(int64(0), []byte(`{`))
	mock.ExpectQuery(`SELECT storage_used, doc FROM memories`).WillReturnRows(rows)

	_, err := repo.Get(context.Background(), "m1")
	if err == nil || !regexp.MustCompile(`decode memory`).MatchString(err.Error()) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	m := sampleMemory()
	m.PublicPageID = "p1"
	mock.ExpectExec(`(?s)UPDATE memories SET public_page_id = \$2, storage_limit = \$3, updated_at = \$4, doc = \$5\s+WHERE id = \$1`).
		WithArgs("m1", "p1", models.DefaultStorageLimit, m.UpdatedAt, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Update(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec(`UPDATE memories`).WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Update(context.Background(), m); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}

	mock.ExpectExec(`UPDATE memories`).WillReturnResult(sqlmock.NewErrorResult(errors.New("rows-err")))
	if err := repo.Update(context.Background(), m); err == nil || !regexp.MustCompile(`rows affected error: .*rows-err`).MatchString(err.Error()) {
		t.Fatalf("expected rows affected error, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM memories WHERE id = $1`)).
		WithArgs("m1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(context.Background(), "m1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec(`DELETE FROM memories`).WillReturnError(errors.New("db err"))
	if err := repo.Delete(context.Background(), "m1"); err == nil || !regexp.MustCompile(`failed to delete memory: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestListByOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"storage_used", "doc"}).
		AddRow(int64(1), []byte(`{"id":"a","tenant":"t1","ownerUid":"u1"}`)).
		AddRow(int64(2), []byte(`{"id":"b","tenant":"t2","ownerUid":"u1"}`))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT storage_used, doc FROM memories WHERE owner_uid = $1`)).
		WithArgs("u1").
		WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Tenant != "t1" || got[1].Tenant != "t2" || got[1].StorageUsed != 2 {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestListByTenantOwner_Sorted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"storage_used", "doc"}).
		AddRow(int64(0), []byte(`{"id":"a"}`))
	mock.ExpectQuery(`WHERE tenant = \$1 AND owner_uid = \$2 ORDER BY updated_at DESC`).
		WithArgs("acme", "u1").
		WillReturnRows(rows)

	got, err := repo.ListByTenantOwner(context.Background(), "acme", "u1", true)
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result: %v %v", got, err)
	}
}

func TestListByTenantOwner_IndexUnavailable(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`ORDER BY updated_at DESC`).
		WithArgs("acme", "u1").
		WillReturnError(&pgconn.PgError{Code: "42704", Message: "index does not exist"})

	_, err := repo.ListByTenantOwner(context.Background(), "acme", "u1", true)
	if !errors.Is(err, common.ErrIndexUnavailable) {
		t.Fatalf("want ErrIndexUnavailable, got %v", err)
	}
}

func TestListByTenantOwner_UnsortedPassesErrorThrough(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)WHERE tenant = \$1 AND owner_uid = \$2$`).
		WithArgs("acme", "u1").
		WillReturnError(&pgconn.PgError{Code: "57014"})

	_, err := repo.ListByTenantOwner(context.Background(), "acme", "u1", false)
	if err == nil || errors.Is(err, common.ErrIndexUnavailable) {
		t.Fatalf("want plain error, got %v", err)
	}
}

func TestList_RowsErr(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"storage_used", "doc"}).
		AddRow(int64(0), []byte(`{"id":"a"}`)).
		AddRow(int64(0), []byte(`{"id":"b"}`)).
		RowError(1, errors.New("row-err"))
	mock.ExpectQuery(`FROM memories WHERE owner_uid`).WillReturnRows(rows)

	_, err := repo.ListByOwner(context.Background(), "u1")
	if err == nil || err.Error() != "row-err" {
		t.Fatalf("expected rows.Err 'row-err', got %v", err)
	}
}

func TestAddStorageUsed(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)UPDATE memories SET storage_used = GREATEST\(storage_used \+ \$2, 0\).*RETURNING storage_used`).
		WithArgs("m1", int64(-5)).
		WillReturnRows(sqlmock.NewRows([]string{"storage_used"}).AddRow(int64(0)))

	used, err := repo.AddStorageUsed(context.Background(), "m1", -5)
	if err != nil || used != 0 {
		t.Fatalf("unexpected result: %d %v", used, err)
	}

	mock.ExpectQuery(`UPDATE memories SET storage_used`).WillReturnError(sql.ErrNoRows)
	if _, err := repo.AddStorageUsed(context.Background(), "x", 1); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
