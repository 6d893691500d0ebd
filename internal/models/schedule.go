package models

// Schedule is one working block of a barber. Times are "HH:MM:SS".
type Schedule struct {
	ID        int64   `json:"id"`
	Day       string  `json:"day"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Available bool    `json:"available"`
	Barber    *Barber `json:"barber,omitempty"`
}
