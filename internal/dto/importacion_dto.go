package dto

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ImportacionResponse resume una planilla procesada: el detalle fila a fila
// queda en las advertencias, los ítems entran directo al inventario.
type ImportacionResponse struct {
	LoteID         string   `json:"lote_id"`
	NombreArchivo  string   `json:"nombre_archivo"`
	FilaEncabezado int      `json:"fila_encabezado"`
	TotalFilas     int      `json:"total_filas"`
	Importadas     int      `json:"importadas"`
	Rescatadas     int      `json:"rescatadas"`
	Advertencias   []string `json:"advertencias"`
}

type LoteResponse struct {
	ID             string   `json:"id"`
	NombreArchivo  string   `json:"nombre_archivo"`
	FilaEncabezado int      `json:"fila_encabezado"`
	TotalFilas     int      `json:"total_filas"`
	Rescatadas     int      `json:"rescatadas"`
	Advertencias   []string `json:"advertencias"`
	CreatedAt      string   `json:"created_at"`
}
