package cliente

import (
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Cliente) error {
	return r.DB.Create(c).Error
}

func (r *Repository) FindByID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) FindByDocumento(doc string) (*Cliente, error) {
	var c Cliente
	if err := r.DB.Where("documento = ?", doc).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) ListAll() ([]Cliente, error) {
	var clientes []Cliente
	err := r.DB.Order("nome").Find(&clientes).Error
	return clientes, err
}

func (r *Repository) Update(c *Cliente) error {
	return r.DB.Save(c).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Cliente{}, id).Error
}

// Upsert cria ou atualiza o cliente pelo documento, carimbando a última
// compra. Usado dentro da transação de venda; tx é a transação corrente.
func Upsert(tx *gorm.DB, nome, doc, telefone, email string, quando time.Time) (*Cliente, error) {
	var c Cliente
	err := tx.Where("documento = ?", doc).First(&c).Error
	switch {
	case err == nil:
		if nome != "" {
			c.Nome = nome
		}
		if telefone != "" {
			c.Telefone = telefone
		}
		if email != "" {
			c.Email = email
		}
		c.UltimaCompra = &quando
		if err := tx.Save(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	case err == gorm.ErrRecordNotFound:
		c = Cliente{Nome: nome, Documento: doc, Telefone: telefone, Email: email, UltimaCompra: &quando}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	default:
		return nil, err
	}
}
