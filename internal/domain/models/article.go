package models

import "time"

// Article is a catalog item. Column names follow the legacy "articulos"
// schema, which the API also exposes verbatim.
type Article struct {
	Code     string    `json:"codigo_articulo" gorm:"column:codigo_articulo;type:varchar(10);primaryKey"`
	Section  string    `json:"seccion" gorm:"column:seccion;type:varchar(50);not null"`
	Name     string    `json:"nombre_articulo" gorm:"column:nombre_articulo;type:varchar(100);not null"`
	Price    float64   `json:"precio" gorm:"column:precio;not null"`
	AddedOn  time.Time `json:"fecha" gorm:"column:fecha;type:date;not null"`
	Imported int       `json:"importado" gorm:"column:importado;not null"`
	Origin   string    `json:"pais_origen" gorm:"column:pais_origen;type:varchar(50);not null"`
	Photo    *string   `json:"foto,omitempty" gorm:"column:foto;type:varchar(100)"`
}

// TableName maps the model onto the legacy table.
func (Article) TableName() string {
	return "articulos"
}
