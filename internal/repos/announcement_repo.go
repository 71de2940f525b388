package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"heartdrop/internal/domain"
)

type AnnouncementRepo struct{ db *sqlx.DB }

func NewAnnouncementRepo(db *sqlx.DB) *AnnouncementRepo { return &AnnouncementRepo{db: db} }

func (r *AnnouncementRepo) Get() (domain.Announcement, error) {
	var a domain.Announcement
	err := r.db.Get(&a, `
      SELECT message, visible, COALESCE(updated_at,'') AS updated_at
      FROM announcement WHERE id=1`)
	return a, err
}

func (r *AnnouncementRepo) Set(message string, visible bool) error {
	_, err := r.db.Exec(`
      UPDATE announcement SET message=?, visible=?, updated_at=? WHERE id=1`,
		message, visible, time.Now().UTC().Format(time.RFC3339))
	return err
}
