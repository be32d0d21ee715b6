package entity

type User struct {
	Base
	Username     string `db:"username" json:"username"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password" json:"-"`
}
