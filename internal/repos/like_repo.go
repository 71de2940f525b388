package repos

import "github.com/jmoiron/sqlx"

// LikeRepo persists the per-session like overlay. It satisfies
// store.LikeSink so collections can flush toggles straight through.
type LikeRepo struct{ db *sqlx.DB }

func NewLikeRepo(db *sqlx.DB) *LikeRepo { return &LikeRepo{db: db} }

func (r *LikeRepo) Load(sessionID string) (map[int64]bool, error) {
	var ids []int64
	err := r.db.Select(&ids, `SELECT product_id FROM likes WHERE session_id=?`, sessionID)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *LikeRepo) Set(sessionID string, productID int64, liked bool) error {
	if liked {
		_, err := r.db.Exec(`
      INSERT INTO likes(session_id, product_id) VALUES(?, ?)
      ON CONFLICT(session_id, product_id) DO NOTHING`, sessionID, productID)
		return err
	}
	_, err := r.db.Exec(`DELETE FROM likes WHERE session_id=? AND product_id=?`, sessionID, productID)
	return err
}

func (r *LikeRepo) CountForProduct(productID int64) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM likes WHERE product_id=?`, productID)
	return n, err
}
