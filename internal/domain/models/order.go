package models

import "time"

// Order links one client to one article with a quantity on a date. Orders are
// immutable once created; the related rows are loaded only when a caller asks
// for the detailed listing.
type Order struct {
	ID          uint      `json:"id_pedido" gorm:"column:id_pedido;primaryKey;autoIncrement"`
	ClientCode  string    `json:"codigoCliente" gorm:"column:codigoCliente;type:varchar(10);not null;index"`
	ArticleCode string    `json:"codigo_articulo" gorm:"column:codigo_articulo;type:varchar(10);not null;index"`
	Quantity    int       `json:"cantidad" gorm:"column:cantidad;not null;default:1"`
	OrderedOn   time.Time `json:"fecha_pedido" gorm:"column:fecha_pedido;type:date;not null"`

	// Belongs-to relations, populated via Preload only. RESTRICT keeps
	// deletes of referenced clients/articles fail-closed at the engine level.
	Client  *Client  `json:"cliente,omitempty" gorm:"foreignKey:ClientCode;references:Code;constraint:OnDelete:RESTRICT"`
	Article *Article `json:"articulo,omitempty" gorm:"foreignKey:ArticleCode;references:Code;constraint:OnDelete:RESTRICT"`
}

// TableName maps the model onto the legacy table.
func (Order) TableName() string {
	return "pedidos"
}
