package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"
	"time"

	"autoquiz/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("CREATE TABLE a (id INT);\n\nCREATE INDEX i ON a (id);\n  ")
	assert.Equal(t, []string{"CREATE TABLE a (id INT)", "CREATE INDEX i ON a (id)"}, stmts)
	assert.Empty(t, splitStatements(" ;\n; "))
}

func TestUpMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"m/000010_later.up.sql":    {Data: []byte("x")},
		"m/000002_second.up.sql":   {Data: []byte("x")},
		"m/000002_second.down.sql": {Data: []byte("x")},
		"m/README.md":              {Data: []byte("x")},
	}

	files, err := upMigrations(fsys, "m")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, uint64(2), files[0].version)
	assert.Equal(t, "000002_second.up.sql", files[0].name)
	assert.Equal(t, uint64(10), files[1].version)

	_, err = upMigrations(fstest.MapFS{"m/first.up.sql": {Data: []byte("x")}}, "m")
	assert.Error(t, err)
}

func TestEmbeddedMigrationsPerDriver(t *testing.T) {
	for _, driver := range []string{DriverSQLite, DriverPostgres, DriverOracle} {
		files, err := upMigrations(migrationsFS, "migrations/"+driver)
		require.NoError(t, err, driver)
		assert.NotEmpty(t, files, driver)
	}
}

func TestMigrate_UnknownDriver(t *testing.T) {
	err := Migrate(context.Background(), nil, "mysql")
	assert.Error(t, err)
}

func TestRunOracleMigrations_FreshSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(oracleVersionTableExists)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(oracleCreateVersionTable)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(oracleAppliedVersions)).
		WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectExec(`CREATE TABLE documents`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE INDEX idx_documents_upload_date`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(oracleRecordVersion)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, Migrate(context.Background(), db, DriverOracle))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunOracleMigrations_AlreadyApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(oracleVersionTableExists)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(oracleAppliedVersions)).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(1))

	require.NoError(t, runOracleMigrations(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunOracleMigrations_StatementFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(oracleVersionTableExists)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(oracleAppliedVersions)).
		WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectExec(`CREATE TABLE documents`).WillReturnError(errors.New("ORA-00955"))

	err = runOracleMigrations(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "000001_create_documents.up.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := NewSQLXDB(ctx, config.DBConfig{Driver: DriverSQLite, DSN: "file::memory:"})
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(ctx, db.DB, DriverSQLite))
	// Second run is a no-op.
	require.NoError(t, Migrate(ctx, db.DB, DriverSQLite))

	_, err = db.ExecContext(ctx,
		`INSERT INTO documents (id, filename, content, file_data, upload_date) VALUES (?, ?, ?, ?, ?)`,
		"01ARZ3NDEKTSV4RRFFQ69G5FAV", "notes.pdf", "text", "ZGF0YQ==", time.Now().UTC())
	require.NoError(t, err)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, `SELECT COUNT(*) FROM documents`))
	assert.Equal(t, 1, count)
}

func TestNewSQLXDB_UnknownDriver(t *testing.T) {
	_, err := NewSQLXDB(context.Background(), config.DBConfig{Driver: "nope", DSN: "x"})
	assert.Error(t, err)
}
