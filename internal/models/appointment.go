package models

import "time"

// DateLayout is the zone-less local timestamp the API exchanges.
const DateLayout = "2006-01-02T15:04:05"

type Appointment struct {
	ID         int64       `json:"id"`
	Date       string      `json:"date"`
	Status     string      `json:"status"`
	Service    *Service    `json:"service,omitempty"`
	Barber     *Barber     `json:"barber,omitempty"`
	Client     *Client     `json:"client,omitempty"`
	Barbershop *Barbershop `json:"barbershop,omitempty"`
}

// Time parses Date in loc. Offsets and fractional seconds sent by the
// server are accepted too.
func (a Appointment) Time(loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, a.Date, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, a.Date)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}

type Ref struct {
	ID int64 `json:"id"`
}

type CreateAppointmentRequest struct {
	Date       string `json:"date"`
	Status     string `json:"status"`
	Barber     Ref    `json:"barber"`
	Service    Ref    `json:"service"`
	Barbershop Ref    `json:"barbershop"`
	Client     Ref    `json:"client"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
