package importer

// campos.go — Extracción de campos desde filas con encabezados impredecibles.
// Resolución en tres niveles: match exacto → match normalizado (mayúsculas,
// espacios colapsados) → match por substring (el alias contenido en el
// encabezado real, ej. "COSTO" matchea "COSTO UNITARIO").

import (
	"fmt"
	"strconv"
	"strings"
)

// CampoFaltanteError indica que un campo requerido no se pudo ubicar bajo
// ningún alias ni con match difuso. Carga las claves realmente presentes en la
// fila para diagnóstico post-importación.
type CampoFaltanteError struct {
	Campo     string
	Presentes []string
}

func (e *CampoFaltanteError) Error() string {
	return fmt.Sprintf("campo %q no encontrado en la fila (presentes: %s)",
		e.Campo, strings.Join(e.Presentes, ", "))
}

// NumeroInvalidoError indica que el valor existe pero no es numérico ni
// después de limpiar símbolos de moneda y separadores.
type NumeroInvalidoError struct {
	Crudo string
}

func (e *NumeroInvalidoError) Error() string {
	return fmt.Sprintf("valor numérico inválido: %q", e.Crudo)
}

// normalizarClave uppercases and collapses internal whitespace so that
// " Precio  Costo " and "PRECIO COSTO" resolve to the same label.
func normalizarClave(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(strings.TrimSpace(s))), " ")
}

// Extraer resolves a field against the alias list in priority order.
// Returns "" when nothing matches; never fails.
func Extraer(fila *Fila, aliases []string) string {
	// 1. Match exacto contra cada alias en orden
	for _, alias := range aliases {
		if v, ok := fila.Get(alias); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}

	// 2. Match normalizado contra cada clave real de la fila
	claves := fila.Claves()
	normalizadas := make([]string, len(claves))
	for i, c := range claves {
		normalizadas[i] = normalizarClave(c)
	}
	for _, alias := range aliases {
		objetivo := normalizarClave(alias)
		for i, n := range normalizadas {
			if n == objetivo {
				if v, _ := fila.Get(claves[i]); strings.TrimSpace(v) != "" {
					return strings.TrimSpace(v)
				}
			}
		}
	}

	// 3. Match por substring: el alias contenido en el encabezado real
	for _, alias := range aliases {
		objetivo := normalizarClave(alias)
		for i, n := range normalizadas {
			if strings.Contains(n, objetivo) {
				if v, _ := fila.Get(claves[i]); strings.TrimSpace(v) != "" {
					return strings.TrimSpace(v)
				}
			}
		}
	}

	return ""
}

// ExtraerRequerido is Extraer but signals CampoFaltanteError when nothing
// matched. The row normalizer always catches it — it never reaches the caller
// of ParsearHoja.
func ExtraerRequerido(fila *Fila, aliases []string) (string, error) {
	if v := Extraer(fila, aliases); v != "" {
		return v, nil
	}
	campo := ""
	if len(aliases) > 0 {
		campo = aliases[0]
	}
	return "", &CampoFaltanteError{Campo: campo, Presentes: fila.Claves()}
}

// ExtraerNumero resolves a field and parses it as a float after stripping
// currency symbols, thousands separators and surrounding whitespace.
// An absent/empty field resolves to 0 without error.
func ExtraerNumero(fila *Fila, aliases []string) (float64, error) {
	crudo := Extraer(fila, aliases)
	if crudo == "" {
		return 0, nil
	}

	limpio := limpiarNumero(crudo)
	if limpio == "" {
		return 0, &NumeroInvalidoError{Crudo: crudo}
	}
	n, err := strconv.ParseFloat(limpio, 64)
	if err != nil {
		return 0, &NumeroInvalidoError{Crudo: crudo}
	}
	return n, nil
}

// limpiarNumero convierte "$ 1,250.50" en "1250.50".
func limpiarNumero(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		case r == '$' || r == ',' || r == ' ' || r == '\t':
			// símbolos de moneda y separadores de miles
		}
	}
	return b.String()
}
