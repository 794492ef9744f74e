package diary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/diary"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/file"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/notification"
)

type DiaryService interface {
	// Submit files a daily diary entry for the user.
	Submit(ctx context.Context, req diary.SubmitRequest) (diary.DiaryResponse, error)

	// ListAll returns every diary with author identities. Admin only.
	ListAll(ctx context.Context) ([]diary.DiaryResponse, error)

	// MyDiaries lists the caller's entries, newest first.
	MyDiaries(ctx context.Context, userID string) ([]diary.DiaryResponse, error)

	// UpdateStatus applies an admin decision. Only a Replied decision writes
	// the reply fields and notifies the author; Approved and Rejected stamp
	// the decision date and author only.
	UpdateStatus(ctx context.Context, req diary.UpdateStatusRequest) (diary.DiaryResponse, error)

	// Delete removes any entry. Admin only.
	Delete(ctx context.Context, id string) error

	// DeleteOwn removes an entry belonging to the caller. Someone else's
	// entry reads as not found.
	DeleteOwn(ctx context.Context, id, userID string) error
}

type diaryServiceImpl struct {
	diaryRepo       diary.Repository
	fileService     file.FileService
	notificationSvc notification.NotificationService

	now func() time.Time
}

func NewDiaryService(
	diaryRepo diary.Repository,
	fileService file.FileService,
	notificationSvc notification.NotificationService,
) DiaryService {
	return &diaryServiceImpl{
		diaryRepo:       diaryRepo,
		fileService:     fileService,
		notificationSvc: notificationSvc,
		now:             time.Now,
	}
}

// Submit implements DiaryService.
func (s *diaryServiceImpl) Submit(ctx context.Context, req diary.SubmitRequest) (diary.DiaryResponse, error) {
	if err := req.Validate(); err != nil {
		return diary.DiaryResponse{}, err
	}

	now := s.now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if req.Date != nil && *req.Date != "" {
		date, _ = validator.IsValidDate(*req.Date)
	}

	entry := diary.DailyDiary{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		FileLink:    req.FileLink,
		Date:        date,
		Time:        now.Format("03:04 PM"),
		Status:      diary.StatusPending,
	}

	if req.File != nil && req.FileHeader != nil {
		stored, err := s.fileService.UploadDiaryAttachment(ctx, req.UserID, date, req.File, req.FileHeader.Filename)
		if err != nil {
			return diary.DiaryResponse{}, err
		}
		entry.FilePath = &stored
	}

	created, err := s.diaryRepo.Create(ctx, entry)
	if err != nil {
		return diary.DiaryResponse{}, fmt.Errorf("failed to create diary: %w", err)
	}

	return diary.ToDiaryResponse(created), nil
}

// ListAll implements DiaryService.
func (s *diaryServiceImpl) ListAll(ctx context.Context) ([]diary.DiaryResponse, error) {
	diaries, err := s.diaryRepo.ListAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list diaries: %w", err)
	}

	return diary.ToDiaryResponses(diaries), nil
}

// MyDiaries implements DiaryService.
func (s *diaryServiceImpl) MyDiaries(ctx context.Context, userID string) ([]diary.DiaryResponse, error) {
	diaries, err := s.diaryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list diaries: %w", err)
	}

	return diary.ToDiaryResponses(diaries), nil
}

// UpdateStatus implements DiaryService.
func (s *diaryServiceImpl) UpdateStatus(ctx context.Context, req diary.UpdateStatusRequest) (diary.DiaryResponse, error) {
	if err := req.Validate(); err != nil {
		return diary.DiaryResponse{}, err
	}

	found, err := s.diaryRepo.GetByID(ctx, req.DiaryID)
	if err != nil {
		return diary.DiaryResponse{}, err
	}

	status := diary.Status(req.Status)
	now := s.now()
	found.Status = status

	switch status {
	case diary.StatusReplied:
		found.ReplyMessage = &req.ReplyMessage
		found.ReplyDate = &now
		found.RepliedBy = &req.AdminID

		if req.File != nil && req.FileHeader != nil {
			stored, err := s.fileService.UploadDiaryAttachment(ctx, req.AdminID, now, req.File, req.FileHeader.Filename)
			if err != nil {
				return diary.DiaryResponse{}, err
			}
			found.ReplyFilePath = &stored
			found.ReplyFileName = &req.FileHeader.Filename
		}
	case diary.StatusApproved, diary.StatusRejected:
		found.ReplyDate = &now
		found.RepliedBy = &req.AdminID
	}

	if err := s.diaryRepo.Update(ctx, found); err != nil {
		return diary.DiaryResponse{}, fmt.Errorf("failed to update diary: %w", err)
	}

	if status == diary.StatusReplied {
		title := "Diary Reply"
		message := fmt.Sprintf("Your diary %q received a reply: %s", found.Name, req.ReplyMessage)
		if err := s.notificationSvc.Notify(ctx, found.UserID, &req.AdminID, title, message); err != nil {
			slog.Warn("Failed to send diary reply notification", "diary_id", found.ID, "error", err)
		}
	}

	return diary.ToDiaryResponse(found), nil
}

// Delete implements DiaryService.
func (s *diaryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.diaryRepo.Delete(ctx, id)
}

// DeleteOwn implements DiaryService.
func (s *diaryServiceImpl) DeleteOwn(ctx context.Context, id, userID string) error {
	return s.diaryRepo.DeleteByUser(ctx, id, userID)
}
