package importer

// Config agrupa las heurísticas del importador. Los alias de encabezados son
// el contrato de entrada semi-formal con las planillas de los proveedores:
// versionarlos acá (y no como strings sueltos en el código) permite sumar un
// proveedor nuevo sin tocar el parser.
type Config struct {
	// MaxFilasEncabezado limita cuántas filas iniciales se inspeccionan al
	// buscar el encabezado real (las planillas suelen traer banners o
	// disclaimers arriba de la tabla).
	MaxFilasEncabezado int

	// MinCeldasEncabezado: una fila candidata con menos celdas no vacías que
	// esto puntúa 0 — evita que una sola celda de banner gane el puntaje.
	MinCeldasEncabezado int

	// CorteSeccionMM: en medidas camión/industrial, una sección mayor a este
	// valor ya viene en milímetros; menor o igual, viene en pulgadas y se
	// convierte. Valor empírico ajustado a los datos de proveedores.
	CorteSeccionMM float64

	// MinAgroSimple: el patrón agro simple (ej. 10x15) solo se acepta si ambos
	// números superan este mínimo, para no matchear "2x4" dentro de texto.
	MinAgroSimple float64

	// Palabras clave que delatan una fila de encabezado.
	PalabrasEncabezado []string

	// Alias por campo, en orden de prioridad.
	AliasDescripcion []string
	AliasMarca       []string
	AliasModelo      []string
	AliasMedida      []string
	AliasSKU         []string
	AliasCosto       []string
	AliasStock       []string
	AliasIndiceCarga []string
	AliasUbicacion   []string

	// PrefijosMarcaCompuesta: marcas de dos palabras — si el primer token de
	// la marca es uno de estos, el token siguiente también pertenece a la marca.
	PrefijosMarcaCompuesta []string
}

// DefaultConfig returns the heuristics tuned against the current supplier
// spreadsheets.
func DefaultConfig() Config {
	return Config{
		MaxFilasEncabezado:  25,
		MinCeldasEncabezado: 2,
		CorteSeccionMM:      50,
		MinAgroSimple:       5,
		PalabrasEncabezado: []string{
			"DESCRIPCION", "DESCRIPTION", "MARCA", "BRAND", "CODIGO", "SKU",
			"COSTO", "PRECIO", "PRICE", "COST", "STOCK", "CANTIDAD",
			"EXISTENCIA", "MEDIDA", "MODELO", "MODEL",
		},
		AliasDescripcion: []string{"DESCRIPCION", "DESCRIPCIÓN", "DESCRIPTION", "DETALLE"},
		AliasMarca:       []string{"MARCA", "BRAND", "FABRICANTE"},
		AliasModelo:      []string{"MODELO", "MODEL", "DISEÑO", "DISENO"},
		AliasMedida:      []string{"MEDIDA", "MEDIDAS", "SIZE", "TAMAÑO", "DIMENSION"},
		AliasSKU:         []string{"SKU", "CODIGO", "CÓDIGO", "CODE", "CLAVE", "ARTICULO"},
		AliasCosto:       []string{"COSTO", "COST", "PRECIO COSTO", "PRECIO", "PRICE", "COSTO UNITARIO"},
		AliasStock:       []string{"STOCK", "EXISTENCIA", "EXISTENCIAS", "CANTIDAD", "QTY", "DISPONIBLE", "INVENTARIO"},
		AliasIndiceCarga: []string{"INDICE", "ÍNDICE", "CARGA", "LOAD", "PLY"},
		AliasUbicacion:   []string{"UBICACION", "UBICACIÓN", "BODEGA", "ALMACEN", "ALMACÉN", "LOCATION"},
		PrefijosMarcaCompuesta: []string{
			"JK", "DOUBLE", "GENERAL", "BLACK", "WEST", "AMERICAN",
		},
	}
}
