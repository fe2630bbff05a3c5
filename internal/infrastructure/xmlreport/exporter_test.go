package xmlreport_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
	"github.com/tu-usuario/pos-comercios/internal/infrastructure/xmlreport"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestExport_DocumentoCompleto(t *testing.T) {
	comercio := &entity.Comercio{ID: "com-1", Name: "Bodega La Esquina", Slug: "la-esquina"}
	cierres := []*entity.CierreCaja{
		{
			ID:           "c1",
			ComercioID:   "com-1",
			TotalVentas:  dec("10.00"),
			TotalGastos:  dec("2.00"),
			TotalSistema: dec("8.00"),
			TotalReal:    dec("7.50"),
			Diferencia:   dec("-0.50"),
			Detalle: []entity.MetodoTotal{
				{MetodoPagoID: "m1", Nombre: "Efectivo", Total: dec("10.00")},
			},
			Observaciones: "faltó medio dólar",
			Fecha:         time.Date(2026, 8, 1, 20, 30, 0, 0, time.UTC),
		},
	}

	out, err := xmlreport.NewEtreeExporter().Export(comercio, cierres)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out), "el documento generado debe ser XML válido")

	root := doc.SelectElement("CierresCaja")
	require.NotNil(t, root)
	assert.Equal(t, "Bodega La Esquina", root.FindElement("Comercio/Nombre").Text())
	assert.Equal(t, "1", root.SelectElement("Cierres").SelectAttrValue("total", ""))

	cierre := root.FindElement("Cierres/Cierre")
	require.NotNil(t, cierre)
	assert.Equal(t, "c1", cierre.SelectAttrValue("id", ""))
	assert.Equal(t, "-0.50", cierre.FindElement("Diferencia").Text())
	assert.Equal(t, "2026-08-01T20:30:00Z", cierre.FindElement("Fecha").Text())
	assert.Equal(t, "Efectivo", cierre.FindElement("Detalle/Metodo/Nombre").Text())
}

// Sin observaciones el elemento se omite; los montos siempre van con dos decimales.
func TestExport_SinObservaciones(t *testing.T) {
	comercio := &entity.Comercio{ID: "com-1", Name: "Bodega", Slug: "bodega"}
	cierres := []*entity.CierreCaja{
		{ID: "c1", ComercioID: "com-1", TotalReal: dec("5"), Fecha: time.Now()},
	}

	out, err := xmlreport.NewEtreeExporter().Export(comercio, cierres)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	cierre := doc.FindElement("CierresCaja/Cierres/Cierre")
	require.NotNil(t, cierre)
	assert.Nil(t, cierre.FindElement("Observaciones"))
	assert.Equal(t, "5.00", cierre.FindElement("TotalReal").Text())
}
