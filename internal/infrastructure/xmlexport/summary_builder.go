// Package xmlexport serializa el resumen de una factura aceptada a XML.
//
// Estructura:
//
//	<Factura numero="" fecha="" moneda="EUR">
//	  <Emisor><Nombre/><NIF/><Direccion/></Emisor>
//	  <Cliente tipoDocumento="">...</Cliente>
//	  <Lineas><Linea id="">...</Linea></Lineas>
//	  <Totales><Tramo tipo="21"><Base/><Cuota/></Tramo>...<Total/></Totales>
//	</Factura>
package xmlexport

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	appbilling "github.com/jhoicas/facturador/internal/application/billing"
	"github.com/jhoicas/facturador/internal/domain/entity"
)

// SummaryBuilder implementa billing.SummaryXMLBuilder con etree.
type SummaryBuilder struct{}

// NewSummaryBuilder crea el builder.
func NewSummaryBuilder() *SummaryBuilder { return &SummaryBuilder{} }

// BuildSummaryXML genera el documento con importes de dos decimales.
func (b *SummaryBuilder) BuildSummaryXML(summary *appbilling.InvoiceSummary, issuer appbilling.Issuer) ([]byte, error) {
	if summary == nil {
		return nil, fmt.Errorf("xmlexport: resumen vacío")
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Factura")
	root.CreateAttr("numero", summary.Client.Number)
	root.CreateAttr("fecha", summary.Client.Date)
	root.CreateAttr("moneda", "EUR")
	root.CreateAttr("enviada", summary.SubmittedAt.Format("2006-01-02T15:04:05Z07:00"))

	em := root.CreateElement("Emisor")
	addText(em, "Nombre", issuer.Name)
	addText(em, "NIF", issuer.NIF)
	addText(em, "Direccion", issuer.Address)

	writeClient(root, summary)
	writeLines(root, summary.Lines)
	writeTotals(root, summary.Totals)

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlexport: serializar: %w", err)
	}
	return out, nil
}

func writeClient(root *etree.Element, s *appbilling.InvoiceSummary) {
	c := s.Client
	cl := root.CreateElement("Cliente")
	if s.DocumentType != "" {
		cl.CreateAttr("tipoDocumento", string(s.DocumentType))
	}
	addText(cl, "Nombre", c.Name)
	addText(cl, "Documento", c.Document)
	addText(cl, "Telefono", c.Phone)
	addText(cl, "Email", c.Email)
	dir := cl.CreateElement("Direccion")
	addText(dir, "CodigoPostal", c.PostalCode)
	addText(dir, "Localidad", c.Locality)
	addText(dir, "Provincia", c.Province)
}

func writeLines(root *etree.Element, lines []entity.LineItem) {
	ls := root.CreateElement("Lineas")
	for _, l := range lines {
		el := ls.CreateElement("Linea")
		el.CreateAttr("id", strconv.Itoa(l.ID))
		addText(el, "Descripcion", l.Description)
		addText(el, "Cantidad", strconv.Itoa(l.Quantity))
		addText(el, "PrecioUnitario", l.UnitPrice.StringFixed(2))
		addText(el, "TipoIVA", strconv.Itoa(l.TaxRate))
		addText(el, "Importe", l.NetAmount.StringFixed(2))
		addText(el, "CuotaIVA", l.TaxAmount.StringFixed(2))
		addText(el, "Total", l.GrossAmount.StringFixed(2))
	}
}

func writeTotals(root *etree.Element, t entity.InvoiceTotals) {
	tot := root.CreateElement("Totales")
	for _, br := range t.Brackets {
		tr := tot.CreateElement("Tramo")
		tr.CreateAttr("tipo", strconv.Itoa(br.Rate))
		addText(tr, "Base", br.Net.StringFixed(2))
		addText(tr, "Cuota", br.Tax.StringFixed(2))
	}
	addText(tot, "Total", t.GrandTotal.StringFixed(2))
}

func addText(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}
