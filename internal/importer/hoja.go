package importer

// hoja.go — Punto de entrada del importador: bytes de planilla → ítems
// normalizados. La decodificación xlsx corre sobre excelize; los .csv se leen
// directo. El único error duro es la planilla sin filas procesables: toda
// fila individual rota se rescata, nunca se descarta.

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// ErrHojaVacia is the one hard failure of the import pipeline: the decoded
// sheet produced zero processable rows, so there is nothing to rescue.
var ErrHojaVacia = errors.New("la planilla no contiene filas procesables")

// ResultadoHoja is the outcome of parsing one uploaded spreadsheet.
type ResultadoHoja struct {
	Items          []ItemImportado
	FilaEncabezado int // índice 0-based del encabezado detectado
	TotalFilas     int
	Rescatadas     int
	Advertencias   []string
}

// ParsearHoja decodes the spreadsheet bytes (xlsx or csv), locates the header
// row, and normalizes every data row. Exactly one item per data row comes
// back — per-row failures become sentinel records, never missing entries.
func (n *Normalizador) ParsearHoja(data []byte, nombreArchivo string) (*ResultadoHoja, error) {
	filas, err := decodificar(data, nombreArchivo)
	if err != nil {
		return nil, err
	}
	if len(filas) == 0 {
		return nil, ErrHojaVacia
	}

	idx := n.cfg.LocalizarEncabezado(filas)
	encabezado := filas[idx]

	resultado := &ResultadoHoja{FilaEncabezado: idx}
	for i, celdas := range filas[idx+1:] {
		fila := FilaDesde(encabezado, celdas)
		if fila.Vacia() {
			continue
		}

		// número de fila 1-based tal como lo muestra la planilla
		numFila := idx + 2 + i
		item := n.Normalizar(fila, numFila)

		resultado.Items = append(resultado.Items, item)
		resultado.TotalFilas++
		if item.Rescatada {
			resultado.Rescatadas++
		}
		resultado.Advertencias = append(resultado.Advertencias, item.Advertencias...)
	}

	if resultado.TotalFilas == 0 {
		return nil, ErrHojaVacia
	}

	log.Info().
		Str("archivo", nombreArchivo).
		Int("fila_encabezado", idx).
		Int("total", resultado.TotalFilas).
		Int("rescatadas", resultado.Rescatadas).
		Msg("importador: planilla procesada")

	return resultado, nil
}

// decodificar convierte los bytes en una matriz de celdas crudas.
func decodificar(data []byte, nombreArchivo string) ([][]string, error) {
	if strings.HasSuffix(strings.ToLower(nombreArchivo), ".csv") {
		return leerCSV(data)
	}

	filas, errXLSX := leerXLSX(data)
	if errXLSX == nil {
		return filas, nil
	}

	// Algunos proveedores mandan CSV con extensión .xls — se intenta igual
	if filas, errCSV := leerCSV(data); errCSV == nil {
		return filas, nil
	}
	return nil, fmt.Errorf("no se pudo decodificar %q: %w", nombreArchivo, errXLSX)
}

func leerXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, ErrHojaVacia
	}

	filas, err := f.GetRows(hojas[0])
	if err != nil {
		return nil, fmt.Errorf("leyendo filas de %q: %w", hojas[0], err)
	}
	return filas, nil
}

func leerCSV(data []byte) ([][]string, error) {
	lector := csv.NewReader(bytes.NewReader(data))
	lector.FieldsPerRecord = -1 // filas de largo variable son normales acá
	lector.LazyQuotes = true
	return lector.ReadAll()
}
