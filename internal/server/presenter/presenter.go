// Package presenter turns domain records into ordered label/value pairs for
// display surfaces such as the CSV export. It performs no I/O.
package presenter

import (
	"fmt"
	"strconv"

	"github.com/fdiazguiza/almacen/internal/domain/models"
)

const dateLayout = "2006-01-02"

// Field is one display cell; slices of Field preserve declaration order.
type Field struct {
	Label string
	Value string
}

// ArticleFields maps every article column to its display form.
func ArticleFields(a models.Article) []Field {
	photo := ""
	if a.Photo != nil {
		photo = *a.Photo
	}
	return []Field{
		{Label: "codigo_articulo", Value: a.Code},
		{Label: "seccion", Value: a.Section},
		{Label: "nombre_articulo", Value: a.Name},
		{Label: "precio", Value: fmt.Sprintf("%.2f", a.Price)},
		{Label: "fecha", Value: a.AddedOn.Format(dateLayout)},
		{Label: "importado", Value: strconv.Itoa(a.Imported)},
		{Label: "pais_origen", Value: a.Origin},
		{Label: "foto", Value: photo},
	}
}

// ClientFields maps every client column to its display form.
func ClientFields(c models.Client) []Field {
	return []Field{
		{Label: "codigoCliente", Value: c.Code},
		{Label: "empresa", Value: c.Company},
		{Label: "direccion", Value: c.Address},
		{Label: "poblacion", Value: c.City},
		{Label: "telefono", Value: c.Phone},
		{Label: "responsable", Value: c.Contact},
		{Label: "historial", Value: c.Notes},
	}
}

// OrderFields maps every order column to its display form.
func OrderFields(o models.Order) []Field {
	return []Field{
		{Label: "id_pedido", Value: strconv.FormatUint(uint64(o.ID), 10)},
		{Label: "codigoCliente", Value: o.ClientCode},
		{Label: "codigo_articulo", Value: o.ArticleCode},
		{Label: "cantidad", Value: strconv.Itoa(o.Quantity)},
		{Label: "fecha_pedido", Value: o.OrderedOn.Format(dateLayout)},
	}
}

// Header extracts the label row from a field slice, for CSV-style outputs.
func Header(fields []Field) []string {
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.Label
	}
	return labels
}

// Values extracts the value row from a field slice.
func Values(fields []Field) []string {
	values := make([]string, len(fields))
	for i, f := range fields {
		values[i] = f.Value
	}
	return values
}
