package models

// Client is a customer identified by a short company code. Only Code and
// Company are mandatory; the remaining contact fields are free-form.
type Client struct {
	Code    string `json:"codigoCliente" gorm:"column:codigoCliente;type:varchar(10);primaryKey"`
	Company string `json:"empresa" gorm:"column:empresa;type:varchar(100);not null"`
	Address string `json:"direccion" gorm:"column:direccion;type:varchar(200)"`
	City    string `json:"poblacion" gorm:"column:poblacion;type:varchar(100)"`
	Phone   string `json:"telefono" gorm:"column:telefono;type:varchar(20)"`
	Contact string `json:"responsable" gorm:"column:responsable;type:varchar(100)"`
	Notes   string `json:"historial" gorm:"column:historial;type:varchar(255)"`
}

// TableName maps the model onto the legacy table.
func (Client) TableName() string {
	return "clientes"
}
