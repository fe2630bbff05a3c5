// Package xmlreport exporta el historial de cierres de caja de un comercio
// como documento XML, pensado para importarse en herramientas contables.
package xmlreport

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/tu-usuario/pos-comercios/internal/domain/entity"
)

// EtreeExporter implementa caja.CierreXMLExporter usando etree.
type EtreeExporter struct{}

// NewEtreeExporter construye el exportador.
func NewEtreeExporter() *EtreeExporter { return &EtreeExporter{} }

// Export serializa todos los cierres del comercio. Los montos van con dos
// decimales y las fechas en RFC 3339.
func (e *EtreeExporter) Export(comercio *entity.Comercio, cierres []*entity.CierreCaja) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("CierresCaja")
	root.CreateAttr("generado", time.Now().Format(time.RFC3339))

	com := root.CreateElement("Comercio")
	com.CreateElement("ID").SetText(comercio.ID)
	com.CreateElement("Nombre").SetText(comercio.Name)
	com.CreateElement("Slug").SetText(comercio.Slug)

	list := root.CreateElement("Cierres")
	list.CreateAttr("total", strconv.Itoa(len(cierres)))
	for _, c := range cierres {
		el := list.CreateElement("Cierre")
		el.CreateAttr("id", c.ID)
		el.CreateElement("Fecha").SetText(c.Fecha.Format(time.RFC3339))
		el.CreateElement("TotalVentas").SetText(c.TotalVentas.StringFixed(2))
		el.CreateElement("TotalGastos").SetText(c.TotalGastos.StringFixed(2))
		el.CreateElement("TotalSistema").SetText(c.TotalSistema.StringFixed(2))
		el.CreateElement("TotalReal").SetText(c.TotalReal.StringFixed(2))
		el.CreateElement("Diferencia").SetText(c.Diferencia.StringFixed(2))
		if c.Observaciones != "" {
			el.CreateElement("Observaciones").SetText(c.Observaciones)
		}

		det := el.CreateElement("Detalle")
		for _, m := range c.Detalle {
			met := det.CreateElement("Metodo")
			met.CreateAttr("id", m.MetodoPagoID)
			met.CreateElement("Nombre").SetText(m.Nombre)
			met.CreateElement("Total").SetText(m.Total.StringFixed(2))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlreport: serializar documento: %w", err)
	}
	return out, nil
}
