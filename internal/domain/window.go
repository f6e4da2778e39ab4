package domain

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var (
	ErrInvalidMonth = errors.New("month must be a two digit string between '01' and '12'")
	ErrInvalidYear  = errors.New("year must be a four digit string")
)

// Meses aceitos, sempre com dois dígitos
var validMonths = map[string]int{
	"01": 1, "02": 2, "03": 3, "04": 4, "05": 5, "06": 6,
	"07": 7, "08": 8, "09": 9, "10": 10, "11": 11, "12": 12,
}

// Window delimita um mês/ano de referência para as consultas agregadas.
// Só existe em estado válido: use NewWindow.
type Window struct {
	month int
	year  int
}

func NewWindow(month, year string) (Window, error) {
	m, ok := validMonths[month]
	if !ok {
		return Window{}, ErrInvalidMonth
	}

	if len(year) != 4 {
		return Window{}, ErrInvalidYear
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return Window{}, ErrInvalidYear
	}

	return Window{month: m, year: y}, nil
}

func (w Window) Month() int { return w.month }
func (w Window) Year() int  { return w.year }

// Period formata a janela como mm-yyyy (ex: 01-2024)
func (w Window) Period() string {
	return fmt.Sprintf("%02d-%04d", w.month, w.year)
}

// Bounds retorna o intervalo [início, fim) de datas coberto pela janela
func (w Window) Bounds() (time.Time, time.Time) {
	start := time.Date(w.year, time.Month(w.month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Contains indica se a data cai dentro do mês/ano da janela
func (w Window) Contains(date time.Time) bool {
	return date.Year() == w.year && int(date.Month()) == w.month
}

// PreviousMonthWindow retorna a janela do mês anterior à data de referência
func PreviousMonthWindow(ref time.Time) Window {
	prev := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	return Window{month: int(prev.Month()), year: prev.Year()}
}
