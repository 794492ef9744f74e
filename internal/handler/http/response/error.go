package response

import (
	"errors"
	"net/http"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/attendance"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/auth"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/course"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/diary"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/leave"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/jobrole"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/master/team"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/notification"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/task"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/user"
	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrPasswordMismatch):
		BadRequest(w, "Passwords do not match", nil)
	case errors.Is(err, auth.ErrInvalidResetCode):
		BadRequest(w, "Invalid or expired reset code", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrNICExists):
		Conflict(w, "NIC already registered")
	case errors.Is(err, user.ErrUserCodeConflict):
		Conflict(w, "User code conflict, please retry")
	case errors.Is(err, user.ErrAccountDeactivated):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, user.ErrInvalidTeam):
		BadRequest(w, "Invalid team", nil)
	case errors.Is(err, user.ErrInvalidJobRole):
		BadRequest(w, "Invalid job role", nil)
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already recorded for today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Invalid leave status", nil)

	// Task domain errors
	case errors.Is(err, task.ErrNotAssignedToUser):
		NotFound(w, "Task not found or not assigned to you")
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrAssigneeNotFound):
		NotFound(w, "Assigned user not found")
	case errors.Is(err, task.ErrInvalidStatus):
		BadRequest(w, "Invalid task status", nil)
	case errors.Is(err, task.ErrInvalidFileURL):
		BadRequest(w, "File path must be a valid PDF URL", nil)
	case errors.Is(err, task.ErrInvalidFileType):
		BadRequest(w, "Only PDF files are allowed", nil)
	case errors.Is(err, task.ErrDeadlineInThePast):
		BadRequest(w, "Deadline cannot be in the past", nil)

	// Diary domain errors
	case errors.Is(err, diary.ErrDiaryNotFound):
		NotFound(w, "Diary not found")
	case errors.Is(err, diary.ErrInvalidStatus):
		BadRequest(w, "Invalid diary status", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Course domain errors
	case errors.Is(err, course.ErrCourseNotFound):
		NotFound(w, "Course not found")

	// Master data errors
	case errors.Is(err, team.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, team.ErrTeamNameExists):
		Conflict(w, "A team with this name already exists")
	case errors.Is(err, team.ErrTeamInUse):
		Conflict(w, err.Error())
	case errors.Is(err, jobrole.ErrJobRoleNotFound):
		NotFound(w, "Job role not found")
	case errors.Is(err, jobrole.ErrJobRoleNameExists):
		Conflict(w, "A job role with this name already exists")
	case errors.Is(err, jobrole.ErrJobRoleInUse):
		Conflict(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
