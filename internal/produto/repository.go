package produto

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Produto) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindByID(id uint) (*Produto, error) {
	var p Produto
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) ListAll() ([]Produto, error) {
	var produtos []Produto
	err := r.DB.Order("nome").Find(&produtos).Error
	return produtos, err
}

// Search filtra por nome, categoria ou marca (case-insensitive).
func (r *Repository) Search(q string) ([]Produto, error) {
	var produtos []Produto
	like := "%" + q + "%"
	err := r.DB.
		Where("LOWER(nome) LIKE LOWER(?) OR LOWER(categoria) LIKE LOWER(?) OR LOWER(marca) LIKE LOWER(?)", like, like, like).
		Order("nome").
		Find(&produtos).Error
	return produtos, err
}

func (r *Repository) Update(p *Produto) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Produto{}, id).Error
}
