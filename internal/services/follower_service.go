package services

import (
	"github.com/google/uuid"

	"github.com/hoangtv-dev/studenthub-backend/internal/models"
	"github.com/hoangtv-dev/studenthub-backend/internal/repositories"
)

// FollowerWithStudent is a follow edge shaped for responses, with the
// followed student's public projection attached.
type FollowerWithStudent struct {
	models.Follower
	Following *models.Sender `json:"following"`
}

// FollowerService enforces the follow-edge rules on top of the repository.
type FollowerService struct {
	followers repositories.FollowerRepository
}

// NewFollowerService creates a new FollowerService
func NewFollowerService(followers repositories.FollowerRepository) *FollowerService {
	return &FollowerService{followers: followers}
}

// Follow creates an edge from follower to following with the bell enabled.
// Self-follows and duplicate edges are rejected.
func (s *FollowerService) Follow(followerID, followingID uuid.UUID) (*FollowerWithStudent, error) {
	if followerID == followingID {
		return nil, ErrSelfFollow
	}

	exists, err := s.followers.Exists(followerID, followingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateFollow
	}

	edge := &models.Follower{
		FollowerID:  followerID,
		FollowingID: followingID,
		BellEnabled: true,
	}
	if err := s.followers.Create(edge); err != nil {
		return nil, err
	}

	created, err := s.followers.GetByPair(followerID, followingID)
	if err != nil {
		return nil, err
	}
	return wrapFollower(*created), nil
}

// Unfollow removes the edge. Deleting an edge that does not exist is treated
// as success, so repeated unfollows are idempotent.
func (s *FollowerService) Unfollow(followerID, followingID uuid.UUID) error {
	_, err := s.followers.Delete(followerID, followingID)
	return err
}

// ToggleBell updates bell_enabled on an existing edge.
func (s *FollowerService) ToggleBell(followerID, followingID uuid.UUID, enabled bool) (*FollowerWithStudent, error) {
	rows, err := s.followers.UpdateBell(followerID, followingID, enabled)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrNotFound
	}

	edge, err := s.followers.GetByPair(followerID, followingID)
	if err != nil {
		return nil, err
	}
	return wrapFollower(*edge), nil
}

// ListFollowing returns the follower's edges newest-first.
func (s *FollowerService) ListFollowing(followerID uuid.UUID) ([]FollowerWithStudent, error) {
	edges, err := s.followers.GetFollowing(followerID)
	if err != nil {
		return nil, err
	}

	following := make([]FollowerWithStudent, len(edges))
	for i, edge := range edges {
		following[i] = *wrapFollower(edge)
	}
	return following, nil
}

func wrapFollower(edge models.Follower) *FollowerWithStudent {
	wrapped := &FollowerWithStudent{Follower: edge}
	if edge.Following != nil {
		sender := edge.Following.ToSender()
		wrapped.Following = &sender
	}
	return wrapped
}
