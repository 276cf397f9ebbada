package services

import (
	"context"
	"sort"

	"github.com/path-finder-in/roadmap-service/internal/models"
	"github.com/path-finder-in/roadmap-service/internal/repositories"
)

// fakeRepository is an in-memory repositories.Repository for service tests.
type fakeRepository struct {
	users    map[string]*models.User
	roadmaps map[string]*models.Roadmap
	progress map[string]*models.Progress
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		users:    make(map[string]*models.User),
		roadmaps: make(map[string]*models.Roadmap),
		progress: make(map[string]*models.Progress),
	}
}

func (r *fakeRepository) User() repositories.UserRepository         { return &fakeUserRepo{r} }
func (r *fakeRepository) Roadmap() repositories.RoadmapRepository   { return &fakeRoadmapRepo{r} }
func (r *fakeRepository) Progress() repositories.ProgressRepository { return &fakeProgressRepo{r} }
func (r *fakeRepository) Ping(ctx context.Context) error            { return nil }
func (r *fakeRepository) Close() error                              { return nil }

func progressKey(userID, roadmapID string) string {
	return userID + "|" + roadmapID
}

type fakeUserRepo struct {
	r *fakeRepository
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	copied := *user
	f.r.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := f.r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateStream(ctx context.Context, id string, stream models.Stream) error {
	user, ok := f.r.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	user.SelectedStream = &stream
	return nil
}

type fakeRoadmapRepo struct {
	r *fakeRepository
}

func (f *fakeRoadmapRepo) CreateBatch(ctx context.Context, roadmaps []*models.Roadmap) error {
	for _, roadmap := range roadmaps {
		copied := *roadmap
		f.r.roadmaps[roadmap.ID] = &copied
	}
	return nil
}

func (f *fakeRoadmapRepo) GetByID(ctx context.Context, id string) (*models.Roadmap, error) {
	roadmap, ok := f.r.roadmaps[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *roadmap
	return &copied, nil
}

func (f *fakeRoadmapRepo) List(ctx context.Context, stream *models.Stream) ([]*models.Roadmap, error) {
	var out []*models.Roadmap
	for _, roadmap := range f.r.roadmaps {
		if stream != nil && roadmap.Stream != *stream {
			continue
		}
		copied := *roadmap
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (f *fakeRoadmapRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.r.roadmaps)), nil
}

type fakeProgressRepo struct {
	r *fakeRepository
}

func (f *fakeProgressRepo) GetByUserAndRoadmap(ctx context.Context, userID, roadmapID string) (*models.Progress, error) {
	record, ok := f.r.progress[progressKey(userID, roadmapID)]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *record
	return &copied, nil
}

func (f *fakeProgressRepo) ListByUser(ctx context.Context, userID string) ([]*models.Progress, error) {
	var out []*models.Progress
	for _, record := range f.r.progress {
		if record.UserID == userID {
			copied := *record
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastUpdated.After(out[j].LastUpdated) })
	return out, nil
}

func (f *fakeProgressRepo) Upsert(ctx context.Context, record *models.Progress) error {
	copied := *record
	f.r.progress[progressKey(record.UserID, record.RoadmapID)] = &copied
	return nil
}
