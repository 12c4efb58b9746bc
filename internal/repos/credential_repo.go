package repos

import (
	"circular/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CredentialRepo struct{ db *sqlx.DB }

func NewCredentialRepo(db *sqlx.DB) *CredentialRepo { return &CredentialRepo{db: db} }

// Get returns the single stored credential.
func (r *CredentialRepo) Get() (*domain.Credential, error) {
	var c domain.Credential
	err := r.db.Get(&c, `SELECT username,password_hash FROM credentials LIMIT 1`)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Rotate replaces the stored credential as a single transaction
// (delete-and-reinsert, so at most one row ever exists).
func (r *CredentialRepo) Rotate(username, hash string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM credentials`); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO credentials(username,password_hash) VALUES(?,?)`, username, hash); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *CredentialRepo) BindSession(sid, username string) error {
	_, err := r.db.Exec(`INSERT INTO sessions(id,username,last_seen)
	                     VALUES(?,?,CURRENT_TIMESTAMP)
	                     ON CONFLICT(id) DO UPDATE SET username=excluded.username,last_seen=CURRENT_TIMESTAMP`,
		sid, username)
	return err
}

// SessionUser returns the username bound to a session, or sql.ErrNoRows.
func (r *CredentialRepo) SessionUser(sid string) (string, error) {
	var username string
	err := r.db.Get(&username, `SELECT username FROM sessions WHERE id = ? AND username IS NOT NULL`, sid)
	return username, err
}

func (r *CredentialRepo) UnbindSession(sid string) error {
	_, err := r.db.Exec(`UPDATE sessions SET username=NULL,last_seen=CURRENT_TIMESTAMP WHERE id = ?`, sid)
	return err
}
