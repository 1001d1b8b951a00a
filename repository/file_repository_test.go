package repository

import (
	"database/sql"
	"member-api/model"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFileRepository(db)
	createdAt := time.Now()

	metadata := &model.FileMetadata{
		Filename:        "report.pdf",
		ContentType:     "application/pdf",
		Size:            2048,
		Checksum:        "abc123",
		StoragePath:     "encrypted/2026/08/uuid_report.pdf",
		VaultKeyVersion: "v1",
		UploadedBy:      "user@example.com",
	}

	mock.ExpectQuery(`INSERT INTO file_metadata`).
		WithArgs(metadata.Filename, metadata.ContentType, metadata.Size, metadata.Checksum,
			metadata.StoragePath, metadata.VaultKeyVersion, metadata.UploadedBy).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), createdAt))

	require.NoError(t, repo.Create(metadata))
	assert.Equal(t, int64(5), metadata.ID)
	assert.Equal(t, createdAt, metadata.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFileRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "filename", "content_type", "size", "checksum",
		"storage_path", "vault_key_version", "uploaded_by", "created_at",
	}).AddRow(int64(5), "report.pdf", "application/pdf", int64(2048), "abc123",
		"encrypted/2026/08/uuid_report.pdf", "v1", "user@example.com", time.Now())

	mock.ExpectQuery(`SELECT id, filename, content_type, size, checksum, storage_path, vault_key_version, uploaded_by, created_at`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	metadata, err := repo.GetByID(5)
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", metadata.Filename)
	assert.Equal(t, "v1", metadata.VaultKeyVersion)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_GetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFileRepository(db)

	mock.ExpectQuery(`SELECT id, filename`).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	metadata, err := repo.GetByID(404)
	assert.Nil(t, metadata)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFileRepository_GetByUploader(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFileRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "filename", "content_type", "size", "checksum",
		"storage_path", "vault_key_version", "uploaded_by", "created_at",
	}).
		AddRow(int64(2), "b.txt", "text/plain", int64(10), "c2", "encrypted/2026/08/b", "v2", "user@example.com", time.Now()).
		AddRow(int64(1), "a.txt", "text/plain", int64(20), "c1", "encrypted/2026/07/a", "v1", "user@example.com", time.Now().Add(-time.Hour))

	mock.ExpectQuery(`FROM file_metadata WHERE uploaded_by = \$1 ORDER BY created_at DESC`).
		WithArgs("user@example.com").
		WillReturnRows(rows)

	files, err := repo.GetByUploader("user@example.com")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "b.txt", files[0].Filename)
	assert.Equal(t, "a.txt", files[1].Filename)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileRepository_GetByUploaderEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFileRepository(db)

	rows := sqlmock.NewRows([]string{
		"id", "filename", "content_type", "size", "checksum",
		"storage_path", "vault_key_version", "uploaded_by", "created_at",
	})
	mock.ExpectQuery(`FROM file_metadata WHERE uploaded_by = \$1`).
		WithArgs("nobody@example.com").
		WillReturnRows(rows)

	files, err := repo.GetByUploader("nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, files)
}
