package models

import "time"

// Produto represents a catalog product. Estoque is the number of sellable
// units on hand and must never go negative after a committed transaction.
type Produto struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Nome        string    `json:"nome" gorm:"type:varchar(255);not null" validate:"required,min=1,max=255"`
	Descricao   *string   `json:"descricao" validate:"omitempty,max=500"`
	Preco       float64   `json:"preco" gorm:"not null" validate:"gte=0"`
	Custo       float64   `json:"custo" gorm:"not null;default:0" validate:"gte=0"`
	Estoque     int       `json:"estoque" gorm:"not null;default:0" validate:"gte=0"`
	CategoriaID *uint     `json:"categoria_id"`
	Imagem      *string   `json:"imagem"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName keeps the original schema's table name.
func (Produto) TableName() string { return "produtos" }

// ProdutoPatch enumerates the fields a partial update may change. A nil
// field is left untouched; the patch is applied as a typed column set, never
// as concatenated SQL.
type ProdutoPatch struct {
	Nome        *string  `json:"nome"`
	Descricao   *string  `json:"descricao"`
	Preco       *float64 `json:"preco"`
	Estoque     *int     `json:"estoque"`
	CategoriaID *uint    `json:"categoria_id"`
	Custo       *float64 `json:"custo"`
	Imagem      *string  `json:"imagem"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ProdutoPatch) IsEmpty() bool {
	return p.Nome == nil && p.Descricao == nil && p.Preco == nil &&
		p.Estoque == nil && p.CategoriaID == nil && p.Custo == nil && p.Imagem == nil
}

// Columns returns the non-nil fields as a column→value set for the ORM.
func (p ProdutoPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Nome != nil {
		cols["nome"] = *p.Nome
	}
	if p.Descricao != nil {
		cols["descricao"] = *p.Descricao
	}
	if p.Preco != nil {
		cols["preco"] = *p.Preco
	}
	if p.Estoque != nil {
		cols["estoque"] = *p.Estoque
	}
	if p.CategoriaID != nil {
		cols["categoria_id"] = *p.CategoriaID
	}
	if p.Custo != nil {
		cols["custo"] = *p.Custo
	}
	if p.Imagem != nil {
		cols["imagem"] = *p.Imagem
	}
	return cols
}
