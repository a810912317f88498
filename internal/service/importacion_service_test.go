package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/frank-vcorp/roda-llantas-sub000/internal/importer"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/model"
	"github.com/frank-vcorp/roda-llantas-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildImportacionSvc() (service.ImportacionService, *stubItemRepo, *stubImportacionRepo) {
	itemRepo := newStubItemRepo()
	loteRepo := newStubImportacionRepo()
	normalizador := importer.NuevoNormalizador(importer.DefaultConfig())
	svc := service.NewImportacionService(normalizador, itemRepo, loteRepo, nil)
	return svc, itemRepo, loteRepo
}

func TestImportar_CSVCompleto(t *testing.T) {
	svc, itemRepo, loteRepo := buildImportacionSvc()

	csv := strings.Join([]string{
		"LLANTAS DEL NORTE - LISTA AGOSTO",
		"",
		"DESCRIPCION,MARCA,PRECIO,STOCK",
		"LLANTA 175-70-13 HIFLY HF201,HIFLY,1250.50,8",
		"LLANTA 205/55R16 FATE AR-440,FATE,2100,4",
	}, "\n")

	resp, err := svc.Importar(context.Background(), uuid.New(), "lista_agosto.csv", []byte(csv))
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalFilas)
	assert.Equal(t, 2, resp.Importadas)
	assert.Equal(t, 0, resp.Rescatadas)
	assert.Equal(t, 2, resp.FilaEncabezado)

	// Todos los ítems quedan ligados al lote
	require.Len(t, itemRepo.items, 2)
	lote, err := loteRepo.FindByID(context.Background(), uuid.MustParse(resp.LoteID))
	require.NoError(t, err)
	assert.Equal(t, "lista_agosto.csv", lote.NombreArchivo)
	for _, item := range itemRepo.items {
		require.NotNil(t, item.LoteID)
		assert.Equal(t, lote.ID, *item.LoteID)
		assert.True(t, item.Activo)
	}
}

func TestImportar_FilasRotasNoSePierden(t *testing.T) {
	svc, itemRepo, _ := buildImportacionSvc()

	csv := strings.Join([]string{
		"DESCRIPCION,MARCA,PRECIO,STOCK",
		"LLANTA 175-70-13 HIFLY HF201,HIFLY,1250.50,8",
		"TEXTO SIN MEDIDA RECONOCIBLE,,CONSULTAR,",
	}, "\n")

	resp, err := svc.Importar(context.Background(), uuid.New(), "lista.csv", []byte(csv))
	require.NoError(t, err)

	// La fila rota entra igual, marcada para revisión
	assert.Equal(t, 2, resp.Importadas)
	assert.Equal(t, 1, resp.Rescatadas)
	assert.NotEmpty(t, resp.Advertencias)

	rescatadas := 0
	for _, item := range itemRepo.items {
		if item.Rescatada {
			rescatadas++
		}
	}
	assert.Equal(t, 1, rescatadas)
}

func TestImportar_ReimportarMismaListaNoDuplica(t *testing.T) {
	svc, itemRepo, _ := buildImportacionSvc()

	agosto := strings.Join([]string{
		"CODIGO,DESCRIPCION,MARCA,PRECIO,STOCK",
		"LL-101,LLANTA 175-70-13 HIFLY HF201,HIFLY,1250.50,8",
		"LL-102,LLANTA 205/55R16 FATE AR-440,FATE,2100,4",
	}, "\n")

	_, err := svc.Importar(context.Background(), uuid.New(), "lista_agosto.csv", []byte(agosto))
	require.NoError(t, err)
	require.Len(t, itemRepo.items, 2)

	// El administrador fija una oferta manual entre lista y lista
	oferta := decimal.NewFromInt(1999)
	for _, item := range itemRepo.items {
		if item.SKU != nil && *item.SKU == "LL-101" {
			item.PrecioManual = &oferta
		}
	}

	// La lista del mes siguiente trae los mismos códigos con costo y stock nuevos
	septiembre := strings.Join([]string{
		"CODIGO,DESCRIPCION,MARCA,PRECIO,STOCK",
		"LL-101,LLANTA 175-70-13 HIFLY HF201,HIFLY,1310,12",
		"LL-102,LLANTA 205/55R16 FATE AR-440,FATE,2250,0",
	}, "\n")

	resp, err := svc.Importar(context.Background(), uuid.New(), "lista_septiembre.csv", []byte(septiembre))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Importadas)

	// Mismo inventario, datos actualizados — nada se duplica
	require.Len(t, itemRepo.items, 2)
	porSKU := make(map[string]*model.ItemInventario)
	for _, item := range itemRepo.items {
		require.NotNil(t, item.SKU)
		porSKU[*item.SKU] = item
	}

	assert.True(t, porSKU["LL-101"].PrecioCosto.Equal(decimal.NewFromInt(1310)))
	assert.Equal(t, 12, porSKU["LL-101"].Stock)
	assert.True(t, porSKU["LL-102"].PrecioCosto.Equal(decimal.NewFromInt(2250)))
	assert.Equal(t, 0, porSKU["LL-102"].Stock)

	// La oferta manual sobrevive a la reimportación
	require.NotNil(t, porSKU["LL-101"].PrecioManual)
	assert.True(t, porSKU["LL-101"].PrecioManual.Equal(oferta))

	// Ambos ítems quedan ligados al lote nuevo
	for _, item := range itemRepo.items {
		require.NotNil(t, item.LoteID)
		assert.Equal(t, resp.LoteID, item.LoteID.String())
	}
}

func TestImportar_ArchivoVacio(t *testing.T) {
	svc, _, _ := buildImportacionSvc()
	_, err := svc.Importar(context.Background(), uuid.New(), "vacio.csv", nil)
	assert.Error(t, err)
}

func TestImportar_SoloEncabezado(t *testing.T) {
	svc, _, _ := buildImportacionSvc()
	_, err := svc.Importar(context.Background(), uuid.New(), "encabezado.csv",
		[]byte("DESCRIPCION,MARCA,PRECIO,STOCK\n"))
	assert.ErrorIs(t, err, importer.ErrHojaVacia)
}

func TestListarLotes(t *testing.T) {
	svc, _, _ := buildImportacionSvc()

	csv := "DESCRIPCION,MARCA,PRECIO,STOCK\nLLANTA 175-70-13 HIFLY HF201,HIFLY,1000,2\n"
	_, err := svc.Importar(context.Background(), uuid.New(), "a.csv", []byte(csv))
	require.NoError(t, err)
	_, err = svc.Importar(context.Background(), uuid.New(), "b.csv", []byte(csv))
	require.NoError(t, err)

	lotes, err := svc.ListarLotes(context.Background())
	require.NoError(t, err)
	assert.Len(t, lotes, 2)
}
