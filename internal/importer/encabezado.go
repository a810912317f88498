package importer

import "strings"

// LocalizarEncabezado scans the first MaxFilasEncabezado rows of the raw sheet
// and returns the 0-based index of the most likely header row, scoring each
// candidate by how many known header keywords appear in its cells.
//
// Filas con menos de MinCeldasEncabezado celdas no vacías puntúan 0: un banner
// de una sola celda ("Lista de precios vigente...") puede contener palabras
// clave pero nunca es el encabezado real.
//
// Never fails: with no keyword hits anywhere it falls back to row 0. Ties keep
// the earliest row. This only locates the offset — the caller re-reads the
// sheet keyed from it.
func (c Config) LocalizarEncabezado(filas [][]string) int {
	limite := c.MaxFilasEncabezado
	if limite <= 0 || limite > len(filas) {
		limite = len(filas)
	}

	mejorFila := 0
	mejorPuntaje := 0

	for i := 0; i < limite; i++ {
		puntaje := c.puntuarFila(filas[i])
		if puntaje > mejorPuntaje {
			mejorPuntaje = puntaje
			mejorFila = i
		}
	}
	return mejorFila
}

func (c Config) puntuarFila(celdas []string) int {
	noVacias := 0
	for _, celda := range celdas {
		if strings.TrimSpace(celda) != "" {
			noVacias++
		}
	}
	if noVacias < c.MinCeldasEncabezado {
		return 0
	}

	puntaje := 0
	for _, palabra := range c.PalabrasEncabezado {
		for _, celda := range celdas {
			if strings.Contains(normalizarClave(celda), palabra) {
				puntaje++
				break
			}
		}
	}
	return puntaje
}
