package importer

// medidas.go — Cascada priorizada de patrones de medidas de llanta.
// El orden importa: un texto como "31x10.50R15" también contiene "50R15", así
// que cada formato se intenta en orden estricto y gana el primero que matchea.
// Cuando ningún patrón matchea se devuelve nil y el llamador decide el rescate.

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// pulgadasAMM converts inches to millimetres.
const pulgadasAMM = 25.4

// Medida is the normalized result of matching a tire-size token.
// Perfil is 0 for formats that do not encode an aspect ratio.
type Medida struct {
	Ancho      float64 // mm
	Perfil     float64 // % (aspect ratio)
	Rin        float64 // pulgadas, puede ser fraccional (22.5)
	MedidaFull string  // re-armado canónico del token matcheado
}

var (
	// 31x10.50R15 — flotación: diámetro x sección R rin
	reFlotacion = regexp.MustCompile(`\b(\d{2}(?:\.\d+)?)\s*[xX]\s*(\d{1,2}(?:\.\d+)?)\s*[rR]\s*(\d{2}(?:\.\d)?)\b`)

	// 205/55R16, 205-55-16, 205 55 16 — estándar: ancho / perfil R rin
	reEstandar = regexp.MustCompile(`\b(\d{3})\s*[/\- ]\s*(\d{2})\s*(?:[rR]|[/\- ])\s*(\d{2}(?:\.\d)?)\b`)

	// 11R22.5, 295R22.5, 7.50-16 — camión/industrial: sección R|- rin
	reCamion = regexp.MustCompile(`\b(\d{1,3}(?:\.\d+)?)\s*([rR]|-)\s*(\d{2}(?:\.\d)?)\b`)

	// 26x9-14 — ATV/agro: alto x ancho - rin
	reATV = regexp.MustCompile(`\b(\d{2})\s*[xX]\s*(\d{1,2}(?:\.\d+)?)\s*-\s*(\d{1,2})\b`)

	// 10x15 — agro simple: diámetro x rin, sin sección explícita
	reAgroSimple = regexp.MustCompile(`\b(\d{1,2}(?:\.\d+)?)\s*[xX]\s*(\d{1,2}(?:\.\d+)?)\b`)
)

// DetectarMedida runs the pattern cascade over free text (either a dedicated
// measure cell or a slice of a composite description). Returns the normalized
// measure plus the exact token that matched, or (nil, "") when no pattern
// applies — the caller owns the rescue behavior.
func (c Config) DetectarMedida(texto string) (*Medida, string) {
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return nil, ""
	}

	if m := reFlotacion.FindStringSubmatch(texto); m != nil {
		diametro := aFloat(m[1])
		return &Medida{
			Ancho:      diametro * pulgadasAMM,
			Perfil:     0,
			Rin:        aFloat(m[3]),
			MedidaFull: fmt.Sprintf("%sx%sR%s", m[1], m[2], m[3]),
		}, m[0]
	}

	if m := reEstandar.FindStringSubmatch(texto); m != nil {
		return &Medida{
			Ancho:      aFloat(m[1]),
			Perfil:     aFloat(m[2]),
			Rin:        aFloat(m[3]),
			MedidaFull: fmt.Sprintf("%s/%sR%s", m[1], m[2], m[3]),
		}, m[0]
	}

	if m := reCamion.FindStringSubmatch(texto); m != nil {
		seccion := aFloat(m[1])
		ancho := seccion
		if seccion <= c.CorteSeccionMM {
			// Sección chica: viene en pulgadas (7.50-16), se convierte.
			// Sección grande (295R22.5) ya está en milímetros.
			ancho = seccion * pulgadasAMM
		}
		separador := "R"
		if m[2] == "-" {
			separador = "-"
		}
		return &Medida{
			Ancho:      ancho,
			Perfil:     0,
			Rin:        aFloat(m[3]),
			MedidaFull: fmt.Sprintf("%s%s%s", m[1], separador, m[3]),
		}, m[0]
	}

	if m := reATV.FindStringSubmatch(texto); m != nil {
		alto := aFloat(m[1])
		return &Medida{
			// Ancho aproximado desde el alto, solo para ordenar en catálogo
			Ancho:      alto * pulgadasAMM,
			Perfil:     0,
			Rin:        aFloat(m[3]),
			MedidaFull: fmt.Sprintf("%sx%s-%s", m[1], m[2], m[3]),
		}, m[0]
	}

	if m := reAgroSimple.FindStringSubmatch(texto); m != nil {
		diametro := aFloat(m[1])
		rin := aFloat(m[2])
		if diametro > c.MinAgroSimple && rin > c.MinAgroSimple {
			return &Medida{
				Ancho:      diametro * pulgadasAMM,
				Perfil:     0,
				Rin:        rin,
				MedidaFull: fmt.Sprintf("%sx%s", m[1], m[2]),
			}, m[0]
		}
	}

	return nil, ""
}

func aFloat(s string) float64 {
	n, _ := strconv.ParseFloat(s, 64)
	return n
}
