package service

import (
	"github.com/google/uuid"

	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/ashchan-dev/ashchan/internal/errors"
	"github.com/ashchan-dev/ashchan/internal/search"
)

type ThreadPostService interface {
	Create(actor string, threadUuid uuid.UUID, body string) (domain.ThreadPost, error)
	Get(postUuid uuid.UUID) (domain.ThreadPost, error)
	Delete(actor string, postUuid uuid.UUID) error
}

type ThreadPost struct {
	storage ThreadPostStorage
	users   UserReader
	index   *search.Index
}

type ThreadPostStorage interface {
	CreateThreadPost(data domain.ThreadPostCreationData, w *search.Writer) (domain.ThreadPost, error)
	ThreadPostByUuid(postUuid uuid.UUID) (domain.ThreadPost, error)
	DeleteThreadPost(postUuid uuid.UUID, w *search.Writer) error
}

func NewThreadPost(storage ThreadPostStorage, users UserReader, index *search.Index) *ThreadPost {
	return &ThreadPost{storage: storage, users: users, index: index}
}

// Create rejects empty bodies before any lock or transaction is
// touched. Numbering and the capacity cap are enforced inside the
// storage transaction.
func (p *ThreadPost) Create(actor string, threadUuid uuid.UUID, body string) (domain.ThreadPost, error) {
	if body == "" {
		return domain.ThreadPost{}, errors.Validation("Empty post")
	}

	data := domain.ThreadPostCreationData{
		PosterUserId:   actor,
		ParentThreadId: threadUuid,
		BodyText:       body,
	}

	var post domain.ThreadPost
	err := p.index.Update(func(w *search.Writer) error {
		var err error
		post, err = p.storage.CreateThreadPost(data, w)
		return err
	})
	if err != nil {
		return domain.ThreadPost{}, err
	}
	return post, nil
}

func (p *ThreadPost) Get(postUuid uuid.UUID) (domain.ThreadPost, error) {
	return p.storage.ThreadPostByUuid(postUuid)
}

// Delete requires an Admin or Moderator actor.
func (p *ThreadPost) Delete(actor string, postUuid uuid.UUID) error {
	if _, err := requireType(p.users, actor, domain.TypeAdmin, domain.TypeModerator); err != nil {
		return err
	}

	return p.index.Update(func(w *search.Writer) error {
		return p.storage.DeleteThreadPost(postUuid, w)
	})
}
