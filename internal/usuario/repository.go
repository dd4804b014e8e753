package usuario

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, u *Usuario) error
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error)
	BuscarPorTokenRecuperacao(db *gorm.DB, token string) (*Usuario, error)
	ListarTodos(db *gorm.DB) ([]Usuario, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, u *Usuario) error {
	return db.Save(u).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	err := db.First(&u, id).Error
	return &u, err
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	err := db.Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *repositoryImpl) BuscarPorTokenRecuperacao(db *gorm.DB, token string) (*Usuario, error) {
	var u Usuario
	err := db.Where("token_recuperacao = ?", token).First(&u).Error
	return &u, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Order("nome").Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Usuario{}, id).Error
}
