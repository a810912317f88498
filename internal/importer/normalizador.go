package importer

// normalizador.go — Convierte una fila cruda en un ítem de inventario.
// Contrato central del pipeline de importación: nunca lanza panic hacia afuera
// y nunca devuelve un ítem vacío. Una fila rota de 5.000 no puede abortar la
// importación de las otras 4.999 — se rescata con centinelas y se marca para
// revisión manual.

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Centinelas que la UI interpreta como "revisar manualmente". No son datos
// válidos: el catálogo los resalta y el resumen de importación los cuenta.
const (
	MarcaSinClasificar   = "SIN CLASIFICAR"
	ModeloRevisar        = "REVISAR MANUALMENTE"
	MedidaNoEspecificada = "NO ESPECIFICADO"
	MarcaErrorFila       = "ERROR DE FILA"
	ModeloErrorFila      = "ERROR AL PROCESAR"
)

// prefijo redundante que traen las planillas con descripción compuesta
var rePrefijoLlanta = regexp.MustCompile(`(?i)^\s*LLANTAS?\s+`)

// token numérico suelto antes de la marca (ej. "175- HIFLY HF201")
var rePrefijoNumerico = regexp.MustCompile(`^\d+-?$`)

// ItemImportado is one normalized inventory record produced per data row.
// Optional fields are nil when the sheet simply does not carry them —
// downstream distinguishes "absent" from "empty".
type ItemImportado struct {
	Descripcion string
	Marca       string
	Modelo      string
	MedidaFull  string
	Ancho       float64
	Perfil      float64
	Rin         float64
	PrecioCosto decimal.Decimal
	Stock       int

	SKU         *string
	IndiceCarga *string
	Ubicacion   *string

	// Rescatada marca que algún camino de fallback se activó en esta fila.
	Rescatada    bool
	Advertencias []string
}

// Normalizador orchestrates field extraction and measure matching per row.
type Normalizador struct {
	cfg Config
}

func NuevoNormalizador(cfg Config) *Normalizador {
	return &Normalizador{cfg: cfg}
}

// Normalizar converts one raw row into exactly one item. Any panic from the
// inner steps is converted into a fully-sentineled record at this boundary.
func (n *Normalizador) Normalizar(fila *Fila, indice int) (item ItemImportado) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Int("fila", indice).Interface("panic", r).
				Msg("importador: fila irrecuperable, se rescata con centinelas")
			item = ItemImportado{
				Descripcion:  MarcaErrorFila,
				Marca:        MarcaErrorFila,
				Modelo:       ModeloErrorFila,
				MedidaFull:   MedidaNoEspecificada,
				PrecioCosto:  decimal.Zero,
				Rescatada:    true,
				Advertencias: []string{fmt.Sprintf("fila %d: error inesperado: %v", indice, r)},
			}
		}
	}()

	if desc := Extraer(fila, n.cfg.AliasDescripcion); desc != "" {
		return n.normalizarCompuesta(desc, fila, indice)
	}
	return n.normalizarColumnas(fila, indice)
}

// normalizarCompuesta handles "Format A" sheets: one free-text description
// cell that mixes measure, brand and model ("LLANTA 175-70-13 HIFLY HF201").
func (n *Normalizador) normalizarCompuesta(desc string, fila *Fila, indice int) ItemImportado {
	item := ItemImportado{
		Descripcion: desc, // verbatim, incluso si el parseo falla
		PrecioCosto: decimal.Zero,
	}

	texto := rePrefijoLlanta.ReplaceAllString(desc, "")
	medida, token := n.cfg.DetectarMedida(texto)

	if medida != nil && medida.Ancho > 0 {
		item.MedidaFull = medida.MedidaFull
		item.Ancho = medida.Ancho
		item.Perfil = medida.Perfil
		item.Rin = medida.Rin

		resto := strings.Replace(texto, token, " ", 1)
		item.Marca, item.Modelo = n.separarMarcaModelo(resto)
		if item.Marca == "" {
			item.Marca = MarcaSinClasificar
			item.Modelo = ModeloRevisar
			n.advertir(&item, indice, "medida detectada pero sin marca/modelo en la descripción")
		}
	} else {
		// Rescate: se conserva el texto crudo como medida para que nada se pierda
		item.Marca = MarcaSinClasificar
		item.Modelo = ModeloRevisar
		item.MedidaFull = desc
		n.advertir(&item, indice, "ningún patrón de medida matcheó la descripción")
	}

	n.extraerCamposComunes(&item, fila, indice)
	return item
}

// normalizarColumnas handles "Format B" sheets: separate columns per field.
// Every extraction is independent — one missing or malformed field never
// blocks the rest of the row.
func (n *Normalizador) normalizarColumnas(fila *Fila, indice int) ItemImportado {
	item := ItemImportado{PrecioCosto: decimal.Zero}

	if marca := Extraer(fila, n.cfg.AliasMarca); marca != "" {
		item.Marca = strings.ToUpper(strings.TrimSpace(marca))
	} else {
		item.Marca = MarcaSinClasificar
		n.advertir(&item, indice, "columna de marca ausente o vacía")
	}

	if modelo := Extraer(fila, n.cfg.AliasModelo); modelo != "" {
		item.Modelo = strings.ToUpper(strings.TrimSpace(modelo))
	} else {
		item.Modelo = ModeloRevisar
		n.advertir(&item, indice, "columna de modelo ausente o vacía")
	}

	medidaTexto := Extraer(fila, n.cfg.AliasMedida)
	if medida, _ := n.cfg.DetectarMedida(medidaTexto); medida != nil {
		item.MedidaFull = medida.MedidaFull
		item.Ancho = medida.Ancho
		item.Perfil = medida.Perfil
		item.Rin = medida.Rin
	} else {
		// Rescate: texto crudo o centinela, dimensiones en cero
		if medidaTexto != "" {
			item.MedidaFull = medidaTexto
			n.advertir(&item, indice, fmt.Sprintf("medida %q no reconocida, se conserva el texto", medidaTexto))
		} else {
			item.MedidaFull = MedidaNoEspecificada
			n.advertir(&item, indice, "columna de medida ausente o vacía")
		}
	}

	n.extraerCamposComunes(&item, fila, indice)

	// Descripción sintética para auditoría
	item.Descripcion = strings.TrimSpace(fmt.Sprintf("%s %s %s", item.Marca, item.Modelo, item.MedidaFull))
	return item
}

// separarMarcaModelo splits the text left over after removing the measure
// token: first token is the brand, the rest the model, with two corrective
// heuristics learned from real supplier sheets.
func (n *Normalizador) separarMarcaModelo(resto string) (string, string) {
	campos := strings.Fields(strings.ToUpper(resto))

	// Un token puramente numérico (con guión colgante opcional) antes de la
	// marca es basura de la planilla, no una marca.
	if len(campos) > 0 && rePrefijoNumerico.MatchString(campos[0]) {
		campos = campos[1:]
	}
	if len(campos) == 0 {
		return "", ""
	}

	marca := campos[0]
	modelo := campos[1:]

	// Marcas de dos palabras: "DOUBLE COIN", "BLACK LION", etc.
	for _, prefijo := range n.cfg.PrefijosMarcaCompuesta {
		if marca == prefijo && len(modelo) > 0 {
			marca = marca + " " + modelo[0]
			modelo = modelo[1:]
			break
		}
	}

	return strings.TrimSpace(marca), strings.TrimSpace(strings.Join(modelo, " "))
}

// extraerCamposComunes pulls SKU, cost, stock and the optional columns.
// Cada extracción numérica se envuelve por separado: un costo ilegible no
// impide leer el stock, y viceversa.
func (n *Normalizador) extraerCamposComunes(item *ItemImportado, fila *Fila, indice int) {
	if costo, err := ExtraerNumero(fila, n.cfg.AliasCosto); err != nil {
		n.advertir(item, indice, fmt.Sprintf("costo ilegible: %v", err))
	} else {
		item.PrecioCosto = decimal.NewFromFloat(costo)
	}

	if stock, err := ExtraerNumero(fila, n.cfg.AliasStock); err != nil {
		n.advertir(item, indice, fmt.Sprintf("stock ilegible: %v", err))
	} else if stock < 0 {
		n.advertir(item, indice, fmt.Sprintf("stock negativo (%g) ajustado a 0", stock))
	} else {
		item.Stock = int(stock)
	}

	if sku := Extraer(fila, n.cfg.AliasSKU); sku != "" {
		item.SKU = &sku
	}
	if indiceCarga := Extraer(fila, n.cfg.AliasIndiceCarga); indiceCarga != "" {
		item.IndiceCarga = &indiceCarga
	}
	if ubicacion := Extraer(fila, n.cfg.AliasUbicacion); ubicacion != "" {
		item.Ubicacion = &ubicacion
	}
}

// advertir registra el fallback en el ítem y en el log estructurado; es una
// advertencia, no un error — la fila siempre produce un registro.
func (n *Normalizador) advertir(item *ItemImportado, indice int, motivo string) {
	item.Rescatada = true
	item.Advertencias = append(item.Advertencias, fmt.Sprintf("fila %d: %s", indice, motivo))
	log.Warn().Int("fila", indice).Str("motivo", motivo).Msg("importador: fila rescatada")
}
