package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/ashchan-dev/ashchan/internal/errors"
	"github.com/ashchan-dev/ashchan/internal/search"
)

// defaultPostRangeEnd bounds open-ended post range queries; a thread
// never holds more posts than this anyway.
const defaultPostRangeEnd = domain.MaxThreadPosts

type ThreadService interface {
	Create(actor, title string, parentBoardId uuid.UUID, firstPostBody string) (domain.Thread, error)
	Get(threadUuid uuid.UUID) (domain.Thread, error)
	Delete(actor string, threadUuid uuid.UUID) error
	Posts(threadUuid uuid.UUID, start, end *int) ([]domain.ThreadPost, error)
	CountPosts(threadUuid uuid.UUID) (int, error)
}

type Thread struct {
	storage ThreadStorage
	users   UserReader
	index   *search.Index
	audit   LogStorage
}

type ThreadStorage interface {
	CreateThread(data domain.ThreadCreationData, w *search.Writer) (domain.Thread, domain.ThreadPost, error)
	ThreadByUuid(threadUuid uuid.UUID) (domain.Thread, error)
	DeleteThread(threadUuid uuid.UUID, w *search.Writer) error
	ThreadPostRange(threadUuid uuid.UUID, start, end int) ([]domain.ThreadPost, error)
	CountThreadPosts(threadUuid uuid.UUID) (int, error)
}

func NewThread(storage ThreadStorage, users UserReader, index *search.Index, audit LogStorage) *Thread {
	return &Thread{storage: storage, users: users, index: index, audit: audit}
}

// Create inserts the thread with its first post and indexes both,
// inside one exclusive write section: the relational transaction and
// the index commit succeed together or the attempt leaves no trace.
func (t *Thread) Create(actor, title string, parentBoardId uuid.UUID, firstPostBody string) (domain.Thread, error) {
	if title == "" {
		return domain.Thread{}, errors.Validation("Thread title must not be empty")
	}
	if firstPostBody == "" {
		return domain.Thread{}, errors.Validation("Empty post")
	}

	data := domain.ThreadCreationData{
		Title:         title,
		ParentBoardId: parentBoardId,
		CreatorUserId: actor,
		FirstPostBody: firstPostBody,
	}

	var thread domain.Thread
	err := t.index.Update(func(w *search.Writer) error {
		var err error
		thread, _, err = t.storage.CreateThread(data, w)
		return err
	})
	if err != nil {
		return domain.Thread{}, err
	}

	// Best-effort audit after the transactional unit succeeded.
	link := fmt.Sprintf("/thread/%s", thread.Uuid)
	writeAudit(t.audit, fmt.Sprintf("%s created a new thread.", actor), &link, &thread.Title)
	return thread, nil
}

func (t *Thread) Get(threadUuid uuid.UUID) (domain.Thread, error) {
	return t.storage.ThreadByUuid(threadUuid)
}

// Delete requires an Admin or Moderator actor.
func (t *Thread) Delete(actor string, threadUuid uuid.UUID) error {
	if _, err := requireType(t.users, actor, domain.TypeAdmin, domain.TypeModerator); err != nil {
		return err
	}

	err := t.index.Update(func(w *search.Writer) error {
		return t.storage.DeleteThread(threadUuid, w)
	})
	if err != nil {
		return err
	}

	writeAudit(t.audit, fmt.Sprintf("%s deleted a thread.", actor), nil, nil)
	return nil
}

func (t *Thread) Posts(threadUuid uuid.UUID, start, end *int) ([]domain.ThreadPost, error) {
	s, e := 0, defaultPostRangeEnd
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	if s < 0 || e < s {
		return nil, errors.Validation("Invalid range")
	}
	return t.storage.ThreadPostRange(threadUuid, s, e)
}

func (t *Thread) CountPosts(threadUuid uuid.UUID) (int, error) {
	return t.storage.CountThreadPosts(threadUuid)
}
