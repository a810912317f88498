package importer

import (
	"strconv"
	"strings"
)

// Fila is one spreadsheet row as an ordered header→cell mapping.
// Header labels come straight from the supplier file, so casing, whitespace
// and wording are untrusted. Lookups never mutate the row.
type Fila struct {
	claves  []string
	valores map[string]string
}

// NuevaFila builds an empty row.
func NuevaFila() *Fila {
	return &Fila{valores: make(map[string]string)}
}

// FilaDesde builds a row by zipping header labels with cell values.
// Rows shorter than the header are padded with empty cells; cells beyond the
// header are kept under a positional COL_n label so no data is dropped.
func FilaDesde(encabezado, celdas []string) *Fila {
	f := NuevaFila()
	for i, clave := range encabezado {
		valor := ""
		if i < len(celdas) {
			valor = celdas[i]
		}
		if strings.TrimSpace(clave) == "" {
			clave = "COL_" + strconv.Itoa(i)
		}
		f.Set(clave, valor)
	}
	for i := len(encabezado); i < len(celdas); i++ {
		f.Set("COL_"+strconv.Itoa(i), celdas[i])
	}
	return f
}

// Set registers a cell. Duplicate labels keep the first non-empty value.
func (f *Fila) Set(clave, valor string) {
	if existente, ok := f.valores[clave]; ok {
		if strings.TrimSpace(existente) == "" {
			f.valores[clave] = valor
		}
		return
	}
	f.claves = append(f.claves, clave)
	f.valores[clave] = valor
}

// Get returns the cell under the exact label.
func (f *Fila) Get(clave string) (string, bool) {
	v, ok := f.valores[clave]
	return v, ok
}

// Claves returns the header labels in column order.
func (f *Fila) Claves() []string {
	return f.claves
}

// Vacia reports whether every cell is blank.
func (f *Fila) Vacia() bool {
	for _, v := range f.valores {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
