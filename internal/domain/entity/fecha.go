package entity

import (
	"regexp"
	"strings"
	"time"
)

// Las fechas del libro son siempre fechas calendario en forma textual
// ordenable (YYYY-MM-DD), sin componente horario.
const (
	FormatoFecha = "2006-01-02"
	FormatoMes   = "2006-01"
)

var reMes = regexp.MustCompile(`(\d{4})-(\d{2})`)

// HoyISO devuelve la fecha de hoy como YYYY-MM-DD.
func HoyISO() string { return time.Now().Format(FormatoFecha) }

// MesISO devuelve el mes en curso como YYYY-MM.
func MesISO() string { return time.Now().Format(FormatoMes) }

// EnMes indica si una fecha ISO cae dentro del mes YYYY-MM indicado.
func EnMes(fechaISO, mes string) bool {
	if fechaISO == "" || len(fechaISO) < 7 {
		return false
	}
	return fechaISO[:7] == mes
}

// MesDeNombre extrae el mes YYYY-MM embebido en un nombre de plantilla
// ("2024-05", "Cuentas 2024-05", etc.). Devuelve false si no hay ninguno.
func MesDeNombre(nombre string) (string, bool) {
	m := reMes.FindStringSubmatch(strings.TrimSpace(nombre))
	if m == nil {
		return "", false
	}
	return m[1] + "-" + m[2], true
}

// AhoraMillis devuelve el timestamp actual en milisegundos de época,
// mismo formato que usan createdAt/updatedAt en los respaldos.
func AhoraMillis() int64 { return time.Now().UnixMilli() }
