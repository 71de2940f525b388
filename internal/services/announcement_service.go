package services

import (
	"heartdrop/internal/domain"
	"heartdrop/internal/repos"
)

// Broadcaster pushes an updated banner to connected clients. The websocket
// hub satisfies it; nil is fine for tests.
type Broadcaster interface {
	BroadcastAnnouncement(domain.Announcement)
}

type AnnouncementService struct {
	Repo *repos.AnnouncementRepo
	Hub  Broadcaster
}

func NewAnnouncementService(r *repos.AnnouncementRepo, hub Broadcaster) *AnnouncementService {
	return &AnnouncementService{Repo: r, Hub: hub}
}

func (s *AnnouncementService) Get() (domain.Announcement, error) {
	return s.Repo.Get()
}

func (s *AnnouncementService) Set(message string, visible bool) (domain.Announcement, error) {
	if err := s.Repo.Set(message, visible); err != nil {
		return domain.Announcement{}, err
	}
	a, err := s.Repo.Get()
	if err != nil {
		return domain.Announcement{}, err
	}
	if s.Hub != nil {
		s.Hub.BroadcastAnnouncement(a)
	}
	return a, nil
}
