package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/ashchan-dev/ashchan/internal/errors"
	"github.com/ashchan-dev/ashchan/internal/pagination"
	"github.com/ashchan-dev/ashchan/internal/search"
)

// boardSearchLimit caps fuzzy keyword matches before relational
// re-fetch.
const boardSearchLimit = 20

type BoardService interface {
	Create(actor, name, description string) (domain.Board, error)
	Get(boardUuid uuid.UUID) (domain.Board, error)
	List(after, before, first, last *int) (pagination.Connection[domain.Board], error)
	SearchByKeyword(keyword string) ([]domain.Board, error)
	ChildThreads(boardUuid uuid.UUID) ([]domain.Thread, error)
}

type Board struct {
	storage BoardStorage
	users   UserReader
	index   *search.Index
	audit   LogStorage
}

type BoardStorage interface {
	CreateBoard(data domain.BoardCreationData, w *search.Writer) (domain.Board, error)
	BoardByUuid(boardUuid uuid.UUID) (domain.Board, error)
	BoardRange(limit, offset int) ([]domain.Board, error)
	CountBoards() (int, error)
	ChildThreads(parentBoardUuid uuid.UUID) ([]domain.Thread, error)
}

func NewBoard(storage BoardStorage, users UserReader, index *search.Index, audit LogStorage) *Board {
	return &Board{storage: storage, users: users, index: index, audit: audit}
}

func (b *Board) Create(actor, name, description string) (domain.Board, error) {
	actorUser, err := requireType(b.users, actor, domain.TypeAdmin)
	if err != nil {
		return domain.Board{}, err
	}
	if name == "" {
		return domain.Board{}, errors.Validation("Board name must not be empty")
	}

	var board domain.Board
	err = b.index.Update(func(w *search.Writer) error {
		board, err = b.storage.CreateBoard(domain.BoardCreationData{Name: name, Description: description}, w)
		return err
	})
	if err != nil {
		return domain.Board{}, err
	}

	link := fmt.Sprintf("/board/%s", board.Uuid)
	writeAudit(b.audit, fmt.Sprintf("%s created a new board.", actorUser.Id), &link, &board.Name)
	return board, nil
}

func (b *Board) Get(boardUuid uuid.UUID) (domain.Board, error) {
	return b.storage.BoardByUuid(boardUuid)
}

func (b *Board) List(after, before, first, last *int) (pagination.Connection[domain.Board], error) {
	for _, arg := range []*int{after, before, first, last} {
		if arg != nil && *arg < 0 {
			return pagination.Connection[domain.Board]{}, errors.Validation("Pagination arguments must not be negative")
		}
	}

	total, err := b.storage.CountBoards()
	if err != nil {
		return pagination.Connection[domain.Board]{}, err
	}

	w := pagination.ComputeWindow(after, before, first, last, total)
	if w.Empty {
		return pagination.NewConnection[domain.Board](w, nil), nil
	}

	boards, err := b.storage.BoardRange(w.Limit, w.Offset)
	if err != nil {
		return pagination.Connection[domain.Board]{}, err
	}
	return pagination.NewConnection(w, boards), nil
}

// SearchByKeyword fuzzy-matches against board names, then re-fetches
// every hit from the relational store. The index is advisory: a hit
// whose row has since vanished is silently skipped.
func (b *Board) SearchByKeyword(keyword string) ([]domain.Board, error) {
	if keyword == "" {
		return nil, errors.Validation("Search keyword must not be empty")
	}

	hits, err := b.index.FuzzyBoards(keyword, boardSearchLimit)
	if err != nil {
		return nil, err
	}

	boards := make([]domain.Board, 0, len(hits))
	for _, hit := range hits {
		board, err := b.storage.BoardByUuid(hit.Uuid)
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, nil
}

func (b *Board) ChildThreads(boardUuid uuid.UUID) ([]domain.Thread, error) {
	return b.storage.ChildThreads(boardUuid)
}
