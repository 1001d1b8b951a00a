package handler

import (
	"encoding/json"
	"errors"
	"io"
	"member-api/common"
	"member-api/logger"
	"member-api/model"
	"member-api/service"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

// maxUploadSize caps multipart uploads at 32 MiB.
const maxUploadSize = 32 << 20

type FileHandler struct {
	fileService *service.FileService
}

func NewFileHandler(fileService *service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// UploadFile godoc
// @Summary      Upload an encrypted file
// @Description  Encrypts the uploaded file server-side and stores it in object storage.
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "File to upload"
// @Success      201  {object}  model.FileMetadata
// @Failure      400  {object}  common.AppError "Missing or unreadable file part"
// @Failure      401  {object}  common.AppError "Unauthorized"
// @Router       /api/files [post]
func (h *FileHandler) UploadFile(w http.ResponseWriter, r *http.Request) *common.AppError {
	member, ok := r.Context().Value(MemberKey).(*model.Member)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid member in token", nil)
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid multipart request", err)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Missing file part", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Could not read file", err)
	}

	log := logger.Log.WithFields(logrus.Fields{
		"member_id": member.ID,
		"filename":  header.Filename,
		"size":      len(data),
	})
	log.Info("File upload request received")

	metadata, err := h.fileService.EncryptAndUpload(r.Context(), data, header.Filename,
		header.Header.Get("Content-Type"), member.Email)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not store file", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(metadata)
	return nil
}

// DownloadFile godoc
// @Summary      Download a decrypted file
// @Description  Fetches the encrypted object from storage, decrypts it, and streams the plaintext back.
// @Tags         files
// @Produce      application/octet-stream
// @Security     BearerAuth
// @Param        id path int true "File ID"
// @Success      200  {file}  binary
// @Failure      401  {object}  common.AppError "Unauthorized"
// @Failure      404  {object}  common.AppError "File not found"
// @Router       /api/files/{id} [get]
func (h *FileHandler) DownloadFile(w http.ResponseWriter, r *http.Request) *common.AppError {
	fileID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid file id", err)
	}

	data, metadata, err := h.fileService.DownloadAndDecrypt(r.Context(), fileID)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve file", err)
	}

	contentType := metadata.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+metadata.Filename+`"`)
	w.Write(data)
	return nil
}

// ListFiles godoc
// @Summary      List the authenticated member's files
// @Tags         files
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  model.FileMetadata
// @Failure      401  {object}  common.AppError "Unauthorized"
// @Router       /api/files [get]
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) *common.AppError {
	member, ok := r.Context().Value(MemberKey).(*model.Member)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid member in token", nil)
	}

	files, err := h.fileService.ListMemberFiles(member.Email)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not list files", err)
	}
	if files == nil {
		files = []*model.FileMetadata{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(files)
	return nil
}
