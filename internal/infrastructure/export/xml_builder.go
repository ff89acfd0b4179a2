// Package export genera el documento XML de una factura con estructura UBL 2.1
// (Invoice). El documento refleja las cifras persistidas por el motor de
// facturación sin recalcular nada.
package export

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	appbilling "github.com/tu-usuario/gestion-pyme/internal/application/billing"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// Namespaces UBL 2.1.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"

	currencyCode = "COP"
)

var _ appbilling.InvoiceXMLGenerator = (*XMLBuilderService)(nil)

// XMLBuilderService construye el XML UBL 2.1 de la factura.
type XMLBuilderService struct{}

// NewXMLBuilderService crea el servicio.
func NewXMLBuilderService() *XMLBuilderService {
	return &XMLBuilderService{}
}

// GenerateInvoiceXML genera el []byte del documento Invoice.
func (s *XMLBuilderService) GenerateInvoiceXML(
	invoice *entity.Invoice,
	company *entity.Company,
	customer *entity.Customer,
	details []*entity.InvoiceDetail,
) ([]byte, error) {
	if invoice == nil || company == nil || customer == nil {
		return nil, fmt.Errorf("export: faltan invoice, company o customer")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	invoiceID := invoice.Prefix + invoice.Number
	if invoice.Prefix == "" {
		invoiceID = invoice.Number
	}

	cbcText(root, "UBLVersionID", "2.1")
	cbcText(root, "ID", invoiceID)
	cbcText(root, "IssueDate", invoice.Date.Format("2006-01-02"))
	cbcText(root, "DueDate", invoice.DueDate.Format("2006-01-02"))
	cbcText(root, "DocumentCurrencyCode", currencyCode)
	cbcText(root, "LineCountNumeric", strconv.Itoa(len(details)))

	writeParty(root, "AccountingSupplierParty", company.Name, company.TaxID, company.Address)
	writeParty(root, "AccountingCustomerParty", customer.Name, customer.TaxID, "")

	writeTaxTotal(root, invoice)
	writeMonetaryTotal(root, invoice)

	for i, d := range details {
		writeInvoiceLine(root, i+1, d)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serializar XML: %w", err)
	}
	return out, nil
}

func cbcText(parent *etree.Element, local, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + local)
	el.SetText(value)
	return el
}

func cbcAmount(parent *etree.Element, local string, d decimal.Decimal) {
	el := cbcText(parent, local, formatDecimal(d))
	el.CreateAttr("currencyID", currencyCode)
}

// writeParty escribe un cac:AccountingSupplierParty o cac:AccountingCustomerParty.
func writeParty(root *etree.Element, local, name, taxID, address string) {
	party := root.CreateElement("cac:" + local).CreateElement("cac:Party")

	if taxID != "" {
		ident := party.CreateElement("cac:PartyIdentification")
		cbcText(ident, "ID", digitsOnly(taxID))
	}

	partyName := party.CreateElement("cac:PartyName")
	cbcText(partyName, "Name", name)

	if address != "" {
		postal := party.CreateElement("cac:PostalAddress")
		cbcText(postal, "StreetName", address)
	}
}

func writeTaxTotal(root *etree.Element, invoice *entity.Invoice) {
	taxable := invoice.Subtotal.Sub(invoice.DiscountTotal)

	taxTotal := root.CreateElement("cac:TaxTotal")
	cbcAmount(taxTotal, "TaxAmount", invoice.TaxTotal)

	sub := taxTotal.CreateElement("cac:TaxSubtotal")
	cbcAmount(sub, "TaxableAmount", taxable)
	cbcAmount(sub, "TaxAmount", invoice.TaxTotal)
}

func writeMonetaryTotal(root *etree.Element, invoice *entity.Invoice) {
	taxExclusive := invoice.Subtotal.Sub(invoice.DiscountTotal)

	total := root.CreateElement("cac:LegalMonetaryTotal")
	cbcAmount(total, "LineExtensionAmount", invoice.Subtotal)
	cbcAmount(total, "AllowanceTotalAmount", invoice.DiscountTotal)
	cbcAmount(total, "TaxExclusiveAmount", taxExclusive)
	cbcAmount(total, "TaxInclusiveAmount", invoice.GrandTotal)
	cbcAmount(total, "PayableAmount", invoice.GrandTotal)
}

func writeInvoiceLine(root *etree.Element, lineNum int, d *entity.InvoiceDetail) {
	line := root.CreateElement("cac:InvoiceLine")
	cbcText(line, "ID", strconv.Itoa(lineNum))

	qty := cbcText(line, "InvoicedQuantity", formatDecimal(d.Quantity))
	qty.CreateAttr("unitCode", "EA")
	cbcAmount(line, "LineExtensionAmount", d.Total)

	item := line.CreateElement("cac:Item")
	cbcText(item, "Description", d.Description)

	price := line.CreateElement("cac:Price")
	cbcAmount(price, "PriceAmount", d.UnitPrice)
}

func digitsOnly(s string) string {
	var out []byte
	for _, b := range []byte(s) {
		if b >= '0' && b <= '9' {
			out = append(out, b)
		}
	}
	return string(out)
}

func formatDecimal(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}
