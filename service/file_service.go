// file: service/file_service.go

package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"member-api/logger"
	"member-api/model"
	"member-api/repository"

	"github.com/sirupsen/logrus"
)

var ErrFileNotFound = errors.New("file not found")

// FileService orchestrates secure file storage: encrypt, upload, persist
// metadata; and the reverse on download.
type FileService struct {
	encryptor IEncryptor
	storage   IObjectStorage
	fileRepo  repository.IFileRepository
}

func NewFileService(encryptor IEncryptor, storage IObjectStorage, fileRepo repository.IFileRepository) *FileService {
	return &FileService{
		encryptor: encryptor,
		storage:   storage,
		fileRepo:  fileRepo,
	}
}

// EncryptAndUpload checksums the plaintext, encrypts it, stores the
// ciphertext in object storage, and records the metadata.
func (s *FileService) EncryptAndUpload(ctx context.Context, data []byte, filename, contentType, uploadedBy string) (*model.FileMetadata, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"filename":    filename,
		"uploaded_by": uploadedBy,
	})
	log.Info("Starting secure file upload")

	checksum := sha256.Sum256(data)

	ciphertext, err := s.encryptor.Encrypt(ctx, data)
	if err != nil {
		return nil, err
	}

	storagePath, err := s.storage.Upload(ctx, []byte(ciphertext), filename, contentType)
	if err != nil {
		return nil, err
	}

	metadata := &model.FileMetadata{
		Filename:        filename,
		ContentType:     contentType,
		Size:            int64(len(data)),
		Checksum:        hex.EncodeToString(checksum[:]),
		StoragePath:     storagePath,
		VaultKeyVersion: s.encryptor.ExtractKeyVersion(ciphertext),
		UploadedBy:      uploadedBy,
	}
	if err := s.fileRepo.Create(metadata); err != nil {
		return nil, err
	}

	log.WithField("file_id", metadata.ID).Info("Secure file upload completed")
	return metadata, nil
}

// DownloadAndDecrypt fetches the ciphertext from object storage and returns
// the decrypted plaintext with its metadata.
func (s *FileService) DownloadAndDecrypt(ctx context.Context, fileID int64) ([]byte, *model.FileMetadata, error) {
	metadata, err := s.GetMetadata(fileID)
	if err != nil {
		return nil, nil, err
	}

	ciphertext, err := s.storage.Download(ctx, metadata.StoragePath)
	if err != nil {
		return nil, nil, err
	}

	plaintext, err := s.encryptor.Decrypt(ctx, string(ciphertext))
	if err != nil {
		return nil, nil, err
	}

	logger.Log.WithField("file_id", fileID).Info("Secure file download completed")
	return plaintext, metadata, nil
}

func (s *FileService) GetMetadata(fileID int64) (*model.FileMetadata, error) {
	metadata, err := s.fileRepo.GetByID(fileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return metadata, nil
}

func (s *FileService) ListMemberFiles(uploadedBy string) ([]*model.FileMetadata, error) {
	return s.fileRepo.GetByUploader(uploadedBy)
}
