package service

import (
	"bytes"
	"math"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/tobenna/animon/config"
	"github.com/tobenna/animon/data"
	"github.com/tobenna/animon/internal/jsonlog"
	"github.com/tobenna/animon/repository"
)

type voteKey struct {
	reviewID int64
	userID   string
}

// fakeRepo is an in-memory Repository with the same write semantics as the
// real one: one review per (user, item), one vote per (review, user), and
// recompute deriving the aggregate from the live review set.
type fakeRepo struct {
	mu           sync.Mutex
	items        map[string]*data.Item // keyed by table + "/" + uid
	reviews      map[int64]*data.Review
	votes        map[voteKey]data.VoteType
	nextReviewID int64
	recomputeErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items:   make(map[string]*data.Item),
		reviews: make(map[int64]*data.Review),
		votes:   make(map[voteKey]data.VoteType),
	}
}

func (f *fakeRepo) addItem(partition data.Partition, uid string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[partition.Table+"/"+uid] = &data.Item{
		UID:      uid,
		Category: partition.Category,
		Version:  1,
	}
}

func (f *fakeRepo) GetItem(partition data.Partition, uid string) (*data.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[partition.Table+"/"+uid]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeRepo) RecomputeItemRating(partition data.Partition, itemUID string) (float64, int32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recomputeErr != nil {
		return 0, 0, f.recomputeErr
	}
	item, ok := f.items[partition.Table+"/"+itemUID]
	if !ok {
		return 0, 0, repository.ErrRecordNotFound
	}
	var sum, count int64
	for _, review := range f.reviews {
		if review.ItemUID == itemUID && review.ItemCategory == partition.Category {
			sum += int64(review.Rating)
			count++
		}
	}
	rating := 0.0
	if count > 0 {
		rating = math.Round(float64(sum)/float64(count)*100) / 100
	}
	item.Rating = rating
	item.ReviewCount = int32(count)
	item.Version++
	return rating, int32(count), nil
}

func (f *fakeRepo) UpsertReview(review *data.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.reviews {
		if existing.UserID == review.UserID && existing.ItemUID == review.ItemUID {
			existing.Rating = review.Rating
			existing.ReviewText = review.ReviewText
			existing.ItemCategory = review.ItemCategory
			existing.Version++
			review.ID = existing.ID
			review.CreatedAt = existing.CreatedAt
			review.Version = existing.Version
			return nil
		}
	}
	f.nextReviewID++
	review.ID = f.nextReviewID
	review.CreatedAt = time.Now()
	review.Version = 1
	copied := *review
	f.reviews[review.ID] = &copied
	return nil
}

func (f *fakeRepo) GetReview(reviewID int64) (*data.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	review, ok := f.reviews[reviewID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	copied := *review
	return &copied, nil
}

func (f *fakeRepo) DeleteReview(reviewID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.reviews[reviewID]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(f.reviews, reviewID)
	for key := range f.votes {
		if key.reviewID == reviewID {
			delete(f.votes, key)
		}
	}
	return nil
}

func (f *fakeRepo) GetAllReviews(itemUID string, category data.Category, filters data.Filters) ([]*data.Review, data.Metadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []*data.Review{}
	for _, review := range f.reviews {
		if review.ItemUID == itemUID && review.ItemCategory == category {
			copied := *review
			for key, voteType := range f.votes {
				if key.reviewID == review.ID {
					if voteType == data.VoteLike {
						copied.Likes++
					} else {
						copied.Dislikes++
					}
				}
			}
			matched = append(matched, &copied)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })
	metadata := data.CalculateMetadata(len(matched), filters.Page, filters.PageSize)
	return matched, metadata, nil
}

func (f *fakeRepo) CastVote(vote *data.Vote) (data.VoteOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := voteKey{reviewID: vote.ReviewID, userID: vote.UserID}
	existing, ok := f.votes[key]
	switch {
	case !ok:
		f.votes[key] = vote.VoteType
		return data.VoteApplied, nil
	case existing == vote.VoteType:
		delete(f.votes, key)
		return data.VoteRemoved, nil
	default:
		f.votes[key] = vote.VoteType
		return data.VoteReplaced, nil
	}
}

func (f *fakeRepo) GetVoteTally(reviewID int64) (data.VoteTally, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var tally data.VoteTally
	for key, voteType := range f.votes {
		if key.reviewID == reviewID {
			if voteType == data.VoteLike {
				tally.Likes++
			} else {
				tally.Dislikes++
			}
		}
	}
	return tally, nil
}

func (f *fakeRepo) GetVotesForUser(userID string) (map[int64]data.VoteType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	votes := make(map[int64]data.VoteType)
	for key, voteType := range f.votes {
		if key.userID == userID {
			votes[key.reviewID] = voteType
		}
	}
	return votes, nil
}

// newTestService wires a service onto a fakeRepo. Tests must call wg.Wait()
// after a mutating call before asserting on aggregates, since recomputes run
// in background goroutines.
func newTestService(t *testing.T) (*service, *fakeRepo, *sync.WaitGroup, *bytes.Buffer) {
	t.Helper()
	repo := newFakeRepo()
	var wg sync.WaitGroup
	var logBuf bytes.Buffer
	logger := jsonlog.New(&logBuf, jsonlog.LevelError)
	svc := New(config.Config{}, &wg, logger, repo)
	return svc, repo, &wg, &logBuf
}
