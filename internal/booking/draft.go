package booking

import (
	"time"

	"github.com/Kaleth2216/FadeApp/internal/apiclient"
	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/models"
)

const (
	IncompleteTitle   = "Falta información"
	TimeRequiredTitle = "Hora requerida"
	SubmitFailedTitle = "No se pudo crear la cita"
	SubmitFailedMsg   = "Intenta nuevamente."
	SuccessTitle      = "¡Listo!"
	SuccessMsg        = "Tu cita fue creada correctamente."
)

var (
	ErrIncompleteSelection = httperr.ErrValidation("incomplete_selection", "Vuelve y elige barbería, servicio y barbero.")
	ErrTimeRequired        = httperr.ErrValidation("time_required", "Elige una hora para continuar.")
	ErrLoginRequired       = httperr.ErrValidation(apiclient.CodeLoginRequired, apiclient.LoginRequiredMessage)
	ErrInvalidDate         = httperr.ErrValidation("invalid_date", "Elige una fecha válida.")
	ErrInvalidTime         = httperr.ErrValidation("invalid_time", "Elige una hora válida.")
)

// Selection is what the detail screen hands over.
type Selection struct {
	BarbershopID int64
	ServiceID    int64
	BarberID     int64
}

func (s Selection) Complete() bool {
	return s.BarbershopID > 0 && s.ServiceID > 0 && s.BarberID > 0
}

// Draft is the unpersisted state of one booking in progress.
type Draft struct {
	Selection
	SelectedDate string
	SelectedTime string

	offered map[string]struct{}
}

// NewDraft preselects today and no time. Only the dates Dates(today)
// offers can be selected later.
func NewDraft(sel Selection, today time.Time) *Draft {
	offered := make(map[string]struct{}, DayCount)
	for _, opt := range Dates(today) {
		offered[opt.Key] = struct{}{}
	}
	return &Draft{Selection: sel, SelectedDate: today.Format(DayLayout), offered: offered}
}

func (d *Draft) SelectDate(key string) error {
	if _, ok := d.offered[key]; !ok {
		return ErrInvalidDate
	}
	d.SelectedDate = key
	return nil
}

func (d *Draft) SelectTime(hhmm string) error {
	if !isSlot(hhmm) {
		return ErrInvalidTime
	}
	d.SelectedTime = hhmm
	return nil
}

// Validate checks the ids before the time, so a draft missing both reports
// the ids.
func (d *Draft) Validate() error {
	if d == nil || !d.Complete() {
		return ErrIncompleteSelection
	}
	if d.SelectedTime == "" {
		return ErrTimeRequired
	}
	return nil
}

// Timestamp renders the chosen slot as local wall time with zero seconds.
func (d *Draft) Timestamp(loc *time.Location) (string, error) {
	t, err := time.ParseInLocation(DayLayout+" 15:04", d.SelectedDate+" "+d.SelectedTime, loc)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(models.DateLayout), nil
}
