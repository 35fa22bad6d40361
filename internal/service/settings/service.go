package settings

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shiftops/workforce-backend-go/internal/domain/settings"
	"github.com/shiftops/workforce-backend-go/internal/pkg/storage"
)

// maxUploadBytes caps logo and attachment uploads.
const maxUploadBytes = 10 << 20

type SettingsServiceImpl struct {
	repo    settings.Repository
	storage storage.FileStorage
}

func NewSettingsService(repo settings.Repository, fileStorage storage.FileStorage) settings.Service {
	return &SettingsServiceImpl{
		repo:    repo,
		storage: fileStorage,
	}
}

// Get implements settings.Service.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.Response, error) {
	appSettings, err := s.repo.Get(ctx)
	if err != nil {
		return settings.Response{}, err
	}
	return s.toResponse(ctx, appSettings), nil
}

// Update implements settings.Service. Logo files are stored first so a
// failed upload never leaves the row pointing at a missing file.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateRequest) (settings.Response, error) {
	if err := req.Validate(); err != nil {
		return settings.Response{}, err
	}

	appSettings, err := s.repo.Get(ctx)
	if err != nil {
		return settings.Response{}, err
	}

	if req.AppTitle != nil {
		appSettings.AppTitle = *req.AppTitle
	}
	if req.PrimaryColor != nil {
		appSettings.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		appSettings.SecondaryColor = *req.SecondaryColor
	}
	if req.MaxWageRate != nil {
		appSettings.MaxWageRate = *req.MaxWageRate
	}
	if req.PDFFooter != nil {
		appSettings.PDFFooter = req.PDFFooter
	}
	if req.WhatsAppToken != nil {
		appSettings.WhatsAppToken = req.WhatsAppToken
	}

	if req.Logo != nil {
		path, err := s.storeUpload(ctx, req.Logo, "branding")
		if err != nil {
			return settings.Response{}, err
		}
		appSettings.LogoPath = &path
	}
	if req.PDFLogo != nil {
		path, err := s.storeUpload(ctx, req.PDFLogo, "branding")
		if err != nil {
			return settings.Response{}, err
		}
		appSettings.PDFLogoPath = &path
	}

	if err := s.repo.Update(ctx, appSettings); err != nil {
		return settings.Response{}, err
	}

	return s.Get(ctx)
}

// UploadAttachment implements settings.Service.
func (s *SettingsServiceImpl) UploadAttachment(ctx context.Context, header *multipart.FileHeader, uploadedBy int64) (settings.AttachmentResponse, error) {
	if header.Size > maxUploadBytes {
		return settings.AttachmentResponse{}, settings.ErrFileTooLarge
	}

	path, err := s.storeUpload(ctx, header, "attachments")
	if err != nil {
		return settings.AttachmentResponse{}, err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	created, err := s.repo.CreateAttachment(ctx, settings.Attachment{
		FileName:    header.Filename,
		StoredPath:  path,
		ContentType: contentType,
		SizeBytes:   header.Size,
		UploadedBy:  uploadedBy,
	})
	if err != nil {
		return settings.AttachmentResponse{}, err
	}

	url, err := s.storage.GetURL(ctx, path, 0)
	if err != nil {
		return settings.AttachmentResponse{}, err
	}
	return settings.AttachmentResponse{
		ID:       created.ID,
		FileName: created.FileName,
		URL:      url,
	}, nil
}

// OpenAttachment implements settings.Service.
func (s *SettingsServiceImpl) OpenAttachment(ctx context.Context, id int64) (settings.Attachment, io.ReadCloser, error) {
	attachment, err := s.repo.GetAttachment(ctx, id)
	if err != nil {
		return settings.Attachment{}, nil, err
	}

	reader, err := s.storage.Download(ctx, attachment.StoredPath)
	if err != nil {
		return settings.Attachment{}, nil, err
	}
	return attachment, reader, nil
}

func (s *SettingsServiceImpl) storeUpload(ctx context.Context, header *multipart.FileHeader, dir string) (string, error) {
	if header.Size > maxUploadBytes {
		return "", settings.ErrFileTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	name := fmt.Sprintf("%s/%s%s", dir, uuid.NewString(), filepath.Ext(header.Filename))
	return s.storage.Upload(ctx, file, name, header.Header.Get("Content-Type"))
}

func (s *SettingsServiceImpl) toResponse(ctx context.Context, appSettings settings.AppSettings) settings.Response {
	resp := settings.Response{
		ID:             appSettings.ID,
		AppTitle:       appSettings.AppTitle,
		PrimaryColor:   appSettings.PrimaryColor,
		SecondaryColor: appSettings.SecondaryColor,
		MaxWageRate:    appSettings.MaxWageRate,
		PDFFooter:      appSettings.PDFFooter,
	}
	resp.LogoURL = s.urlOf(ctx, appSettings.LogoPath)
	resp.PDFLogoURL = s.urlOf(ctx, appSettings.PDFLogoPath)
	return resp
}

func (s *SettingsServiceImpl) urlOf(ctx context.Context, path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	url, err := s.storage.GetURL(ctx, *path, time.Hour)
	if err != nil {
		return nil
	}
	return &url
}
