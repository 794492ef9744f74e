package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hiringgamagerecruiters-sys/EMS-BE/internal/domain/leave"
	leaveservice "github.com/hiringgamagerecruiters-sys/EMS-BE/internal/service/leave"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeActiveLeaves overrides only ActiveOn; the embedded interface panics on
// anything else a test would not expect to reach.
type fakeActiveLeaves struct {
	leaveservice.LeaveService

	gotDate time.Time
	result  []leave.LeaveResponse
}

func (f *fakeActiveLeaves) ActiveOn(ctx context.Context, date time.Time) ([]leave.LeaveResponse, error) {
	f.gotDate = date
	return f.result, nil
}

func TestLeaveHandler_ActiveOn_ListsLeavesForDate(t *testing.T) {
	// Setup
	svc := &fakeActiveLeaves{
		result: []leave.LeaveResponse{
			{ID: "leave-1", UserID: "user-1", LeaveDate: "2026-03-09", EndDate: "2026-03-11", Status: leave.StatusApproved, Days: 3},
		},
	}
	handler := NewLeaveHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaves/active?date=2026-03-10", nil)
	rec := httptest.NewRecorder()

	// Act
	handler.ActiveOn(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), svc.gotDate)

	var body struct {
		Success bool                  `json:"success"`
		Data    []leave.LeaveResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "leave-1", body.Data[0].ID)
}

func TestLeaveHandler_ActiveOn_MissingDate(t *testing.T) {
	handler := NewLeaveHandler(&fakeActiveLeaves{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaves/active", nil)
	rec := httptest.NewRecorder()

	handler.ActiveOn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaveHandler_ActiveOn_MalformedDate(t *testing.T) {
	handler := NewLeaveHandler(&fakeActiveLeaves{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaves/active?date=10-03-2026", nil)
	rec := httptest.NewRecorder()

	handler.ActiveOn(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
