package repos

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"heartdrop/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
    id, name, price, image_url,
    COALESCE(gallery_json,'') AS gallery_json,
    COALESCE(description,'')  AS description,
    COALESCE(condition,'')    AS condition,
    COALESCE(donor,'')        AS donor,
    favorites_seed, active,
    created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
  SELECT`+productCols+`
  FROM products
  WHERE active = 1
  ORDER BY id ASC
`)
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
  SELECT`+productCols+`
  FROM products
  WHERE id = ?
`, id)
	return p, err
}

func (r *ProductRepo) Search(q string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
  SELECT`+productCols+`
  FROM products
  WHERE active = 1
    AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)
  ORDER BY id ASC
`, "%"+q+"%", "%"+q+"%")
	return out, err
}

func galleryJSON(in domain.ProductInput) string {
	if len(in.Gallery) == 0 {
		return ""
	}
	b, _ := json.Marshal(in.Gallery)
	return string(b)
}

func (r *ProductRepo) Create(in domain.ProductInput) (int64, error) {
	res, err := r.db.Exec(`
  INSERT INTO products(name, price, image_url, gallery_json, description, condition, donor, favorites_seed, active)
  VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1)
`, in.Name, in.Price, in.ImageURL, galleryJSON(in), in.Description, in.Condition, in.Donor, in.FavoritesSeed)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ProductRepo) Update(id int64, in domain.ProductInput) error {
	_, err := r.db.Exec(`
  UPDATE products
  SET name=?, price=?, image_url=?, gallery_json=?, description=?, condition=?, donor=?, favorites_seed=?, updated_at=?
  WHERE id=?
`, in.Name, in.Price, in.ImageURL, galleryJSON(in), in.Description, in.Condition, in.Donor, in.FavoritesSeed,
		time.Now().UTC().Format(time.RFC3339), id)
	return err
}

// Delete deactivates rather than removing so like rows keep a valid target.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.db.Exec(`UPDATE products SET active=0, updated_at=? WHERE id=?`,
		time.Now().UTC().Format(time.RFC3339), id)
	return err
}
