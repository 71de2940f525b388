package repos

import (
	"encoding/json"
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"heartdrop/internal/store"
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
	// Seed the demo catalog if the DB starts empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure the admin account exists (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Products
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price INTEGER NOT NULL CHECK (price >= 0),
  image_url TEXT NOT NULL,
  gallery_json TEXT,
  description TEXT,
  condition TEXT CHECK (condition IN ('NEAR_NEW','USED','WORN') OR condition IS NULL),
  donor TEXT,
  favorites_seed INTEGER NOT NULL DEFAULT 0,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_name       ON products(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at);

-- Session like overlay (only read when LIKES_PERSISTENCE=store)
CREATE TABLE IF NOT EXISTS likes(
  session_id TEXT NOT NULL,
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY (session_id, product_id)
);
CREATE INDEX IF NOT EXISTS idx_likes_session ON likes(session_id);

-- Announcement banner (single row)
CREATE TABLE IF NOT EXISTS announcement(
  id INTEGER PRIMARY KEY CHECK (id = 1),
  message TEXT NOT NULL DEFAULT '',
  visible INTEGER NOT NULL DEFAULT 0,
  updated_at TEXT
);
INSERT OR IGNORE INTO announcement(id, message, visible) VALUES (1, '', 0);

-- Users & Sessions (admin panel)
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, p := range store.DemoCatalog() {
		gallery := p.GalleryJSON
		if gallery == "" {
			// Every demo product gets a three-slide gallery derived from its
			// primary image so the story carousel has something to play.
			b, _ := json.Marshal([]string{p.ImageURL, p.ImageURL + "&v=2", p.ImageURL + "&v=3"})
			gallery = string(b)
		}
		if _, err := tx.Exec(`
			INSERT INTO products(id, name, price, image_url, gallery_json, description, condition, donor, favorites_seed, active)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 1)
		`, p.ID, p.Name, p.Price, p.ImageURL, gallery, p.Description, p.Condition, p.Donor, p.FavoritesSeed); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// seedUsers ensures the admin account exists (idempotent).
func seedUsers(db *sqlx.DB) error {
	h, err := bcrypt.GenerateFromPassword([]byte("Summer123!"), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO users(id,email,name,password_hash,role)
		VALUES('u-admin','admin@heartdrop.test','Admin',?,'ADMIN')
		ON CONFLICT(email) DO NOTHING
	`, string(h))
	return err
}
