package banner

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(b *Banner) error {
	return r.DB.Create(b).Error
}

func (r *Repository) FindByID(id uint) (*Banner, error) {
	var b Banner
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repository) ListAll(somenteAtivos bool) ([]Banner, error) {
	var banners []Banner
	q := r.DB.Order("ordem")
	if somenteAtivos {
		q = q.Where("ativo = ?", true)
	}
	err := q.Find(&banners).Error
	return banners, err
}

func (r *Repository) Update(b *Banner) error {
	return r.DB.Save(b).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Banner{}, id).Error
}
