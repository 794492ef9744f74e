package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/storage"

	"github.com/google/uuid"
)

type FileService interface {
	// Profile image uploads
	UploadProfileImage(ctx context.Context, userID string, file io.Reader, filename string) (string, error)

	// Task attachment uploads (assignment and submission PDFs)
	UploadTaskAttachment(ctx context.Context, taskOwnerID string, file io.Reader, filename string) (string, error)

	// Diary attachment uploads
	UploadDiaryAttachment(ctx context.Context, userID string, date time.Time, file io.Reader, filename string) (string, error)

	// Course image uploads
	UploadCourseImage(ctx context.Context, file io.Reader, filename string) (string, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadProfileImage uploads a user profile picture
func (s *fileServiceImpl) UploadProfileImage(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowedExts := []string{".jpg", ".jpeg", ".png"}

	isValid := false
	for _, allowed := range allowedExts {
		if ext == allowed {
			isValid = true
			break
		}
	}

	if !isValid {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("%s-%s%s", userID, uniqueID, ext)
	path := filepath.Join("profiles", userID, newFilename)

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile image: %w", err)
	}

	return uploadedPath, nil
}

// UploadTaskAttachment uploads a task assignment or submission PDF
func (s *fileServiceImpl) UploadTaskAttachment(ctx context.Context, taskOwnerID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" {
		return "", fmt.Errorf("invalid file type: only pdf allowed")
	}

	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("%s-%s%s", uniqueID, sanitizeBase(filename), ext)
	path := filepath.Join("tasks", taskOwnerID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, "application/pdf")
	if err != nil {
		return "", fmt.Errorf("failed to upload task attachment: %w", err)
	}

	return uploadedPath, nil
}

// UploadDiaryAttachment uploads a daily diary attachment
func (s *fileServiceImpl) UploadDiaryAttachment(ctx context.Context, userID string, date time.Time, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	uniqueID := uuid.New().String()
	dateStr := date.Format("2006-01-02")
	newFilename := fmt.Sprintf("%s-%s%s", dateStr, uniqueID, ext)
	path := filepath.Join("diaries", userID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, "application/octet-stream")
	if err != nil {
		return "", fmt.Errorf("failed to upload diary attachment: %w", err)
	}

	return uploadedPath, nil
}

// UploadCourseImage uploads a course cover image
func (s *fileServiceImpl) UploadCourseImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowedExts := []string{".jpg", ".jpeg", ".png"}

	isValid := false
	for _, allowed := range allowedExts {
		if ext == allowed {
			isValid = true
			break
		}
	}

	if !isValid {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("course-%s%s", uniqueID, ext)
	path := filepath.Join("courses", newFilename)

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload course image: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// sanitizeBase strips the extension and path separators from an uploaded
// filename so it can be embedded in a stored name.
func sanitizeBase(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	if base == "" {
		base = "file"
	}
	return base
}
