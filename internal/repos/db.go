package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Customers (insert-only; no update or delete path exists)
CREATE TABLE IF NOT EXISTS customers(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  whatsapp TEXT NOT NULL,
  gender_interest TEXT NOT NULL CHECK (gender_interest IN ('Feminino','Masculino','Ambos')),
  clothing_size TEXT NOT NULL,
  shoe_size TEXT NOT NULL DEFAULT '',
  favorite_categories TEXT NOT NULL DEFAULT '',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Inventory items
CREATE TABLE IF NOT EXISTS items(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  size TEXT NOT NULL,
  category TEXT NOT NULL,
  gender TEXT NOT NULL CHECK (gender IN ('Feminino','Masculino','Unissex')),
  price NUMERIC NOT NULL CHECK (price >= 0),
  intake_at TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'available' CHECK (status IN ('available','sold'))
);
CREATE INDEX IF NOT EXISTS idx_items_status_size ON items(status, size);
CREATE INDEX IF NOT EXISTS idx_items_intake_at   ON items(intake_at);

-- Sales (immutable once written)
CREATE TABLE IF NOT EXISTS sales(
  id TEXT PRIMARY KEY,
  customer_id TEXT NOT NULL REFERENCES customers(id),
  item_id TEXT NOT NULL REFERENCES items(id),
  sold_at TEXT NOT NULL,
  final_price NUMERIC NOT NULL CHECK (final_price >= 0)
);
CREATE INDEX IF NOT EXISTS idx_sales_customer ON sales(customer_id);
CREATE INDEX IF NOT EXISTS idx_sales_item     ON sales(item_id);

-- Single stored login credential (rotation replaces the row)
CREATE TABLE IF NOT EXISTS credentials(
  username TEXT PRIMARY KEY,
  password_hash TEXT NOT NULL
);

-- Login sessions keyed by the 'sid' cookie
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  username TEXT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
`
	_, err := db.Exec(schema)
	return err
}

// SeedCredential inserts the admin credential when none exists yet
// (idempotent; safe to run every start).
func SeedCredential(db *sqlx.DB, username, password string) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM credentials`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if password == "" {
		log.Println("[seed] ADMIN_PASS not set; skipping credential seed, login disabled until rotation")
		return nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	log.Printf("[seed] inserting admin credential for %s", username)
	_, err = db.Exec(`INSERT INTO credentials(username,password_hash) VALUES(?,?)`, username, string(h))
	return err
}
