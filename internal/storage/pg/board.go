package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ashchan-dev/ashchan/internal/domain"
	internal_errors "github.com/ashchan-dev/ashchan/internal/errors"
	"github.com/ashchan-dev/ashchan/internal/search"
)

// CreateBoard inserts the board row and stages its name into the
// search index, committing both together. Must run inside the index's
// exclusive write section.
func (s *Storage) CreateBoard(data domain.BoardCreationData, w *search.Writer) (domain.Board, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Board{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	board := domain.Board{
		Uuid:        uuid.New(),
		CreatedAt:   time.Now().UTC(),
		Name:        data.Name,
		Description: data.Description,
	}
	if _, err = tx.Exec(`
        INSERT INTO boards (uuid, created_at, name, description)
        VALUES ($1, $2, $3, $4)
    `, board.Uuid, board.CreatedAt, board.Name, board.Description); err != nil {
		return domain.Board{}, fmt.Errorf("failed to insert board: %w", err)
	}

	if err = w.AddBoard(board.Uuid, board.Name); err != nil {
		return domain.Board{}, fmt.Errorf("failed to stage board document: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return domain.Board{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	if err = w.Commit(); err != nil {
		return domain.Board{}, err
	}
	return board, nil
}

func (s *Storage) BoardByUuid(boardUuid uuid.UUID) (domain.Board, error) {
	var board domain.Board
	err := s.db.QueryRow(`
        SELECT uuid, created_at, name, description
        FROM boards
        WHERE uuid = $1
    `, boardUuid).Scan(&board.Uuid, &board.CreatedAt, &board.Name, &board.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Board{}, internal_errors.NotFound("Board not found")
		}
		return domain.Board{}, fmt.Errorf("failed to fetch board: %w", err)
	}
	return board, nil
}

// BoardRange fetches limit boards at offset in primary key order.
func (s *Storage) BoardRange(limit, offset int) ([]domain.Board, error) {
	rows, err := s.db.Query(`
        SELECT uuid, created_at, name, description
        FROM boards
        ORDER BY primary_key
        LIMIT $1 OFFSET $2
    `, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boards: %w", err)
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var board domain.Board
		if err := rows.Scan(&board.Uuid, &board.CreatedAt, &board.Name, &board.Description); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards = append(boards, board)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return boards, nil
}

func (s *Storage) CountBoards() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM boards`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count boards: %w", err)
	}
	return count, nil
}

func (s *Storage) ChildThreads(parentBoardUuid uuid.UUID) ([]domain.Thread, error) {
	rows, err := s.db.Query(`
        SELECT uuid, created_at, parent_board_id, title, creator_user_id
        FROM threads
        WHERE parent_board_id = $1
        ORDER BY primary_key
    `, parentBoardUuid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch child threads: %w", err)
	}
	defer rows.Close()

	var threads []domain.Thread
	for rows.Next() {
		var thread domain.Thread
		if err := rows.Scan(&thread.Uuid, &thread.CreatedAt, &thread.ParentBoardId, &thread.Title, &thread.CreatorUserId); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, thread)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, nil
}
