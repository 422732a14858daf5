package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// Default delivery window used when a stored faixa string cannot be
// parsed.
const (
	DefaultHorarioInicio = "13:00"
	DefaultHorarioFim    = "15:00"
)

// SplitFaixaHorario reconstructs the (start, end) pair from a combined
// "start-end" string. Accepts full "HH:MM-HH:MM" (returned unchanged)
// and abbreviated hour-only forms like "13-15" (zero-padded to "HH:00").
// Anything unparseable falls back to the 13:00-15:00 default window.
func SplitFaixaHorario(faixa string) (string, string) {
	parts := strings.Split(strings.TrimSpace(faixa), "-")
	if len(parts) != 2 {
		return DefaultHorarioInicio, DefaultHorarioFim
	}

	inicio, okInicio := normalizeHorario(parts[0])
	fim, okFim := normalizeHorario(parts[1])
	if !okInicio || !okFim {
		return DefaultHorarioInicio, DefaultHorarioFim
	}
	return inicio, fim
}

// JoinFaixaHorario builds the combined string the backend stores.
func JoinFaixaHorario(inicio, fim string) string {
	return inicio + "-" + fim
}

func normalizeHorario(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	if strings.Contains(token, ":") {
		segs := strings.Split(token, ":")
		if len(segs) != 2 {
			return "", false
		}
		hour, errH := strconv.Atoi(segs[0])
		minute, errM := strconv.Atoi(segs[1])
		if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
			return "", false
		}
		// Already "HH:MM"; keep the token as written.
		return token, true
	}

	// Abbreviated hour-only token, e.g. "13".
	hour, err := strconv.Atoi(token)
	if err != nil || hour < 0 || hour > 23 {
		return "", false
	}
	return fmt.Sprintf("%02d:00", hour), true
}
