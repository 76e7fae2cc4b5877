package upload_image

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SURA-RentalService/internal/api/handlers"
	"github.com/m04kA/SURA-RentalService/internal/api/middleware"
	"github.com/m04kA/SURA-RentalService/internal/service/media"
)

const (
	msgInvalidFile  = "некорректный файл изображения"
	msgUnauthorized = "требуется аутентификация"
	msgAccessDenied = "операция доступна только администратору"
	msgUploadFailed = "не удалось загрузить изображение"

	// multipart-поле с файлом
	fileField = "image"
)

type Handler struct {
	mediaService MediaService
	logger       Logger
}

func NewHandler(mediaService MediaService, logger Logger) *Handler {
	return &Handler{
		mediaService: mediaService,
		logger:       logger,
	}
}

// Handle POST /api/v1/images
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(media.MaxImageSize); err != nil {
		h.logger.Warn("POST /images - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFile)
		return
	}

	file, header, err := r.FormFile(fileField)
	if err != nil {
		h.logger.Warn("POST /images - Missing file field %q: %v", fileField, err)
		handlers.RespondBadRequest(w, msgInvalidFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, media.MaxImageSize+1))
	if err != nil {
		h.logger.Warn("POST /images - Failed to read file: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFile)
		return
	}

	url, err := h.mediaService.UploadCarImage(r.Context(), session, header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrAccessDenied):
			h.logger.Warn("POST /images - Access denied: user=%s", session.Email)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, media.ErrInvalidInput):
			h.logger.Warn("POST /images - Invalid file: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFile)

		case errors.Is(err, media.ErrUploadFailed):
			h.logger.Warn("POST /images - Upload failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgUploadFailed)

		default:
			h.logger.Error("POST /images - Failed to upload: user=%s, error=%v", session.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /images - Uploaded: user=%s, file=%s", session.Email, header.Filename)
	handlers.RespondJSON(w, http.StatusCreated, UploadImageResponse{URL: url})
}
