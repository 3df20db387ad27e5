package models

import "time"

// Vendedor represents a seller. Email must be unique.
type Vendedor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null" validate:"required,email"`
	Telefone  *string   `json:"telefone"`
	CreatedAt time.Time `json:"created_at"`
}

func (Vendedor) TableName() string { return "vendedores" }

// VendedorDetalhe is a Vendedor joined with its sales figures.
type VendedorDetalhe struct {
	Vendedor
	TotalVendas      int     `json:"total_vendas"`
	ValorTotalVendas float64 `json:"valor_total_vendas"`
}

// VendedorPatch enumerates the fields a partial update may change.
type VendedorPatch struct {
	Nome     *string `json:"nome"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
}

// IsEmpty reports whether the patch changes nothing.
func (p VendedorPatch) IsEmpty() bool {
	return p.Nome == nil && p.Email == nil && p.Telefone == nil
}

// Columns returns the non-nil fields as a column→value set for the ORM.
func (p VendedorPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Nome != nil {
		cols["nome"] = *p.Nome
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.Telefone != nil {
		cols["telefone"] = *p.Telefone
	}
	return cols
}
