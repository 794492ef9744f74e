package attendance

import "time"

type MarkResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status Status `json:"status"`
}

type TodayResponse struct {
	Attendance *MarkResponse `json:"attendance"`
	Message    string        `json:"message"`
}

type RecordResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Status       Status  `json:"status"`
	FirstName    *string `json:"first_name,omitempty"`
	LastName     *string `json:"last_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
	TeamName     *string `json:"team_name,omitempty"`
}

func ToMarkResponse(a Attendance) MarkResponse {
	return MarkResponse{
		ID:     a.ID,
		Date:   a.Date.Format("2006-01-02"),
		Time:   a.CheckIn,
		Status: a.Status,
	}
}

func ToRecordResponse(a Attendance) RecordResponse {
	return RecordResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		Date:         a.Date.Format("2006-01-02"),
		Time:         a.CheckIn,
		Status:       a.Status,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Email:        a.Email,
		ProfileImage: a.ProfileImage,
		TeamName:     a.TeamName,
	}
}

func ToRecordResponses(list []Attendance) []RecordResponse {
	out := make([]RecordResponse, 0, len(list))
	for _, a := range list {
		out = append(out, ToRecordResponse(a))
	}
	return out
}

// Truncate to the local calendar date used as the one-record-per-day key.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
