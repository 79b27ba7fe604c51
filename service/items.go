package service

import (
	"errors"

	"github.com/tobenna/animon/data"
	"github.com/tobenna/animon/repository"
)

type items interface {
	GetItem(uid string) (*data.Item, error)
}

// GetItem retrieves an item by uid, routing the read through the partition
// that the uid's category discriminant resolves to.
func (s *service) GetItem(uid string) (*data.Item, error) {
	partition, err := data.ResolvePartition(uid)
	if err != nil {
		return nil, ErrUnknownCategory
	}
	item, err := s.repo.GetItem(partition, uid)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return item, nil
}
