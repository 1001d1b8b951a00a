// file: repository/file_repository.go

package repository

import (
	"database/sql"
	"member-api/logger"
	"member-api/model"

	"github.com/sirupsen/logrus"
)

// IFileRepository defines the contract for file metadata database operations.
type IFileRepository interface {
	Create(metadata *model.FileMetadata) error
	GetByID(id int64) (*model.FileMetadata, error)
	GetByUploader(uploadedBy string) ([]*model.FileMetadata, error)
}

// FileRepository implements IFileRepository.
type FileRepository struct {
	DB *sql.DB
}

func NewFileRepository(db *sql.DB) *FileRepository {
	return &FileRepository{DB: db}
}

// Create inserts a new file metadata record.
func (r *FileRepository) Create(metadata *model.FileMetadata) error {
	log := logger.Log.WithFields(logrus.Fields{
		"filename":     metadata.Filename,
		"storage_path": metadata.StoragePath,
		"uploaded_by":  metadata.UploadedBy,
	})
	log.Info("Executing query to create file metadata")

	query := `INSERT INTO file_metadata (filename, content_type, size, checksum, storage_path, vault_key_version, uploaded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	err := r.DB.QueryRow(query,
		metadata.Filename, metadata.ContentType, metadata.Size, metadata.Checksum,
		metadata.StoragePath, metadata.VaultKeyVersion, metadata.UploadedBy,
	).Scan(&metadata.ID, &metadata.CreatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create file metadata query")
		return err
	}
	return nil
}

// GetByID retrieves file metadata by its identifier.
func (r *FileRepository) GetByID(id int64) (*model.FileMetadata, error) {
	metadata := &model.FileMetadata{}
	query := `SELECT id, filename, content_type, size, checksum, storage_path, vault_key_version, uploaded_by, created_at
		FROM file_metadata WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&metadata.ID, &metadata.Filename, &metadata.ContentType, &metadata.Size, &metadata.Checksum,
		&metadata.StoragePath, &metadata.VaultKeyVersion, &metadata.UploadedBy, &metadata.CreatedAt,
	)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithError(err).WithField("file_id", id).Error("Failed to execute get file metadata query")
		}
		return nil, err
	}
	return metadata, nil
}

// GetByUploader lists all files uploaded by a member.
func (r *FileRepository) GetByUploader(uploadedBy string) ([]*model.FileMetadata, error) {
	log := logger.Log.WithField("uploaded_by", uploadedBy)
	log.Info("Executing query to list file metadata by uploader")

	query := `SELECT id, filename, content_type, size, checksum, storage_path, vault_key_version, uploaded_by, created_at
		FROM file_metadata WHERE uploaded_by = $1 ORDER BY created_at DESC`
	rows, err := r.DB.Query(query, uploadedBy)
	if err != nil {
		log.WithError(err).Error("Failed to execute list file metadata query")
		return nil, err
	}
	defer rows.Close()

	var files []*model.FileMetadata
	for rows.Next() {
		var metadata model.FileMetadata
		if err := rows.Scan(
			&metadata.ID, &metadata.Filename, &metadata.ContentType, &metadata.Size, &metadata.Checksum,
			&metadata.StoragePath, &metadata.VaultKeyVersion, &metadata.UploadedBy, &metadata.CreatedAt,
		); err != nil {
			log.WithError(err).Error("Failed to scan file metadata row")
			return nil, err
		}
		files = append(files, &metadata)
	}
	return files, rows.Err()
}
