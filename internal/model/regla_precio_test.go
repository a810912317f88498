package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTramosVolumenArrayNativo(t *testing.T) {
	var tramos TramosVolumen
	err := json.Unmarshal([]byte(`[{"min_cantidad":4,"margen_pct":"20"}]`), &tramos)

	require.NoError(t, err)
	require.Len(t, tramos, 1)
	assert.Equal(t, 4, tramos[0].MinCantidad)
	assert.True(t, tramos[0].MargenPct.Equal(decimal.NewFromInt(20)))
}

func TestTramosVolumenStringDoblementeSerializado(t *testing.T) {
	// clientes viejos guardaban el array como string JSON
	crudo := `"[{\"min_cantidad\":8,\"margen_pct\":\"15\"}]"`

	var tramos TramosVolumen
	err := json.Unmarshal([]byte(crudo), &tramos)

	require.NoError(t, err)
	require.Len(t, tramos, 1)
	assert.Equal(t, 8, tramos[0].MinCantidad)
}

func TestTramosVolumenPayloadIlegibleDegrada(t *testing.T) {
	for _, crudo := range []string{`""`, `"no es json"`, `{"x":1}`, `123`} {
		var tramos TramosVolumen
		err := json.Unmarshal([]byte(crudo), &tramos)

		require.NoError(t, err, "payload: %s", crudo)
		assert.Nil(t, tramos, "payload: %s", crudo)
	}
}

func TestTramosVolumenScanDesdeColumna(t *testing.T) {
	var tramos TramosVolumen
	require.NoError(t, tramos.Scan([]byte(`[{"min_cantidad":2,"margen_pct":"25"}]`)))
	require.Len(t, tramos, 1)

	var vacios TramosVolumen
	require.NoError(t, vacios.Scan(nil))
	assert.Nil(t, vacios)

	v, err := TramosVolumen(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}
