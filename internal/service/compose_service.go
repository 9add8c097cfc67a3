package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/postdeck/internal/gateway"
	"github.com/maheshrc27/postdeck/internal/models"
	"github.com/maheshrc27/postdeck/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	MsgFieldsRequired    = "All fields are required."
	MsgScheduled         = "Post scheduled successfully!"
	MsgScheduleFailed    = "Failed to schedule post."
	MsgSearchTermMissing = "Enter a search term."
	MsgSearchDisabled    = "Image search is not configured."
	MsgSearchFailed      = "Failed to search images."
	MsgUploadDisabled    = "Image upload is not configured."
	MsgUploadFailed      = "Failed to upload image."
	MsgUploadType        = "Only JPEG, PNG, GIF or WebP images can be attached."
)

// maxUploadSize caps image attachments at 10 MB.
const maxUploadSize = 10 << 20

var errUnsupportedImage = errors.New("unsupported image type")

// FormState is the post creation form: one draft plus its submit messages.
type FormState struct {
	Draft   models.Draft
	Error   string
	Success string
}

// SearchState is the image search sub-flow. Its error is independent of the form's.
type SearchState struct {
	Term   string
	Images []models.Image
	Error  string
}

type ComposeService interface {
	Submit(ctx context.Context, gw gateway.Gateway, form *FormState) bool
	SearchImages(ctx context.Context, term string) SearchState
	AttachUpload(ctx context.Context, form *FormState, file *multipart.FileHeader) bool
}

type composeService struct {
	images   ImageSearchService
	uploader ObjectUploader
}

func NewComposeService(images ImageSearchService, uploader ObjectUploader) ComposeService {
	return &composeService{images: images, uploader: uploader}
}

// Submit validates the draft and schedules it. Validation failures never
// reach the API and leave the draft untouched; so does a failed create.
func (s *composeService) Submit(ctx context.Context, gw gateway.Gateway, form *FormState) bool {
	d := &form.Draft
	if !d.Complete() {
		form.Error = MsgFieldsRequired
		form.Success = ""
		return false
	}
	form.Error = ""

	_, err := gw.CreatePost(ctx, &transfer.PostCreation{
		Content:       d.Content,
		ScheduledDate: d.ScheduledDate,
		ScheduledTime: fmt.Sprintf("%sT%s", d.ScheduledDate, d.ScheduledTime),
		Location:      d.Location,
		ImageURL:      d.ImageURL,
	})
	if err != nil {
		slog.Error("Error scheduling post", "error", err)
		form.Error = MsgScheduleFailed
		form.Success = ""
		return false
	}

	form.Success = MsgScheduled
	d.Reset()
	return true
}

func (s *composeService) SearchImages(ctx context.Context, term string) SearchState {
	state := SearchState{Term: term}
	term = strings.TrimSpace(term)
	if term == "" {
		state.Error = MsgSearchTermMissing
		return state
	}

	images, err := s.images.Search(ctx, term)
	switch {
	case errors.Is(err, ErrImageSearchDisabled):
		state.Error = MsgSearchDisabled
	case err != nil:
		slog.Error("Error searching images", "term", term, "error", err)
		state.Error = MsgSearchFailed
	default:
		state.Images = images
	}
	return state
}

// AttachUpload stores an uploaded image and makes it the draft's image.
func (s *composeService) AttachUpload(ctx context.Context, form *FormState, file *multipart.FileHeader) bool {
	url, err := s.upload(ctx, file)
	switch {
	case errors.Is(err, ErrUploadDisabled):
		form.Error = MsgUploadDisabled
	case errors.Is(err, errUnsupportedImage):
		form.Error = MsgUploadType
	case err != nil:
		slog.Error("Error uploading image", "error", err)
		form.Error = MsgUploadFailed
	default:
		form.Draft.ImageURL = url
		return true
	}
	form.Success = ""
	return false
}

func (s *composeService) upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if s.uploader == nil || !s.uploader.Enabled() {
		return "", ErrUploadDisabled
	}
	if file.Size > maxUploadSize {
		return "", fmt.Errorf("%w: file is larger than %d bytes", errUnsupportedImage, maxUploadSize)
	}

	f, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	fileBytes, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("error reading file content: %w", err)
	}

	kind, err := filetype.Match(fileBytes)
	if err != nil || kind == types.Unknown {
		return "", errUnsupportedImage
	}
	switch kind.Extension {
	case "jpg", "png", "gif", "webp":
	default:
		return "", fmt.Errorf("%w: %s", errUnsupportedImage, kind.Extension)
	}

	id, err := gonanoid.New()
	if err != nil {
		return "", err
	}

	return s.uploader.Upload(ctx, id+"."+kind.Extension, fileBytes, kind.MIME.Value)
}
