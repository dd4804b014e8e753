package banner

import "gorm.io/gorm"

// Banner é conteúdo puro da vitrine, sem regra de negócio.
type Banner struct {
	gorm.Model
	Titulo string `gorm:"size:180;not null" json:"titulo"`
	Texto  string `json:"texto"`
	Imagem string `json:"imagem"`
	Link   string `json:"link"`
	Ativo  bool   `gorm:"default:true" json:"ativo"`
	Ordem  int    `gorm:"default:0" json:"ordem"`
}
