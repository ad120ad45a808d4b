package presenter

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdiazguiza/almacen/internal/domain/models"
)

func TestArticleFieldsCoverEveryColumn(t *testing.T) {
	photo := "martillo.jpg"
	a := models.Article{
		Code:     "A1",
		Section:  "Tools",
		Name:     "Hammer",
		Price:    9.9,
		AddedOn:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Imported: 1,
		Origin:   "ES",
		Photo:    &photo,
	}

	fields := ArticleFields(a)
	require.Len(t, fields, reflect.TypeOf(a).NumField())

	assert.Equal(t, []string{
		"codigo_articulo", "seccion", "nombre_articulo", "precio",
		"fecha", "importado", "pais_origen", "foto",
	}, Header(fields))
	assert.Equal(t, []string{"A1", "Tools", "Hammer", "9.90", "2025-01-01", "1", "ES", "martillo.jpg"}, Values(fields))
}

func TestArticleFieldsNilPhoto(t *testing.T) {
	fields := ArticleFields(models.Article{Code: "A1"})
	values := Values(fields)
	assert.Equal(t, "", values[len(values)-1])
}

func TestClientFieldsCoverEveryColumn(t *testing.T) {
	c := models.Client{
		Code:    "C1",
		Company: "Ferretería Sur",
		Address: "Calle Mayor 1",
		City:    "Sevilla",
		Phone:   "954000000",
		Contact: "Ana",
		Notes:   "puntual",
	}

	fields := ClientFields(c)
	require.Len(t, fields, reflect.TypeOf(c).NumField())

	assert.Equal(t, []string{
		"codigoCliente", "empresa", "direccion", "poblacion",
		"telefono", "responsable", "historial",
	}, Header(fields))
	assert.Equal(t, []string{"C1", "Ferretería Sur", "Calle Mayor 1", "Sevilla", "954000000", "Ana", "puntual"}, Values(fields))
}

func TestOrderFieldsCoverEveryColumn(t *testing.T) {
	o := models.Order{
		ID:          7,
		ClientCode:  "C1",
		ArticleCode: "A1",
		Quantity:    3,
		OrderedOn:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	fields := OrderFields(o)
	// Every persisted column appears; the two relation pointers are not columns.
	require.Len(t, fields, 5)

	assert.Equal(t, []string{"id_pedido", "codigoCliente", "codigo_articulo", "cantidad", "fecha_pedido"}, Header(fields))
	assert.Equal(t, []string{"7", "C1", "A1", "3", "2025-02-01"}, Values(fields))
}
