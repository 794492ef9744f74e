package course

import "time"

type Course struct {
	ID           string
	Title        string
	Description  string
	Requirements []string
	Learn        []string
	Image        *string
	CreatedAt    time.Time
}
