package model

type User struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	// Хранится bcrypt-хэш, наружу не отдаем
	Password string `db:"password" json:"-"`
}
