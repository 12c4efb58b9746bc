package domain

type Credential struct {
	Username string `db:"username"`
	Hash     string `db:"password_hash"`
}
