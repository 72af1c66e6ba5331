package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"

	"tweetfeed/internal/apperror"
	"tweetfeed/internal/models"
)

const multipartOverhead = 1 << 20

type MediaResponse struct {
	Result  bool  `json:"result"`
	MediaID int64 `json:"media_id"`
}

func (h *Handlers) UploadMedia(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+multipartOverhead)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, apperror.InvalidInput(fmt.Sprintf("file exceeds the %s limit",
				humanize.IBytes(uint64(h.Cfg.MaxUploadSize)))))
			return
		}
		WriteError(w, apperror.Wrap(apperror.KindInvalidInput, "invalid multipart form", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, apperror.Wrap(apperror.KindInvalidInput, "file field is required", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		WriteError(w, fmt.Errorf("read uploaded file: %w", err))
		return
	}

	media, err := h.MediaService.Upload(r.Context(), models.UploadMediaRequest{
		Filename:    header.Filename,
		ContentType: uploadContentType(header.Header.Get("Content-Type"), data),
		Data:        data,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	writeSuccess(w, MediaResponse{Result: true, MediaID: media.ID}, http.StatusCreated)
}

// uploadContentType trusts the declared part type unless it is missing or generic,
// in which case the bytes are sniffed.
func uploadContentType(declared string, data []byte) string {
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil || mediaType == "" || mediaType == "application/octet-stream" {
		mediaType, _, _ = mime.ParseMediaType(mimetype.Detect(data).String())
	}
	return mediaType
}

func (h *Handlers) GetMedia(w http.ResponseWriter, r *http.Request) {
	mediaID, err := pathID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	media, err := h.MediaService.Get(r.Context(), mediaID)
	if err != nil {
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", media.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(media.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(media.Data); err != nil {
		logrus.WithError(err).WithField("media_id", mediaID).Warn("failed to write media")
	}
}
