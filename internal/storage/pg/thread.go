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

// CreateThread inserts the thread row together with its first post
// (number = 1) in one transaction and stages both index documents.
// The relational commit happens first; the staged batch is committed
// only afterwards, so a failed transaction never leaves index entries
// behind. Must run inside the index's exclusive write section.
func (s *Storage) CreateThread(data domain.ThreadCreationData, w *search.Writer) (domain.Thread, domain.ThreadPost, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Thread{}, domain.ThreadPost{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Verify board exists
	var boardUuid uuid.UUID
	err = tx.QueryRow(`SELECT uuid FROM boards WHERE uuid = $1`, data.ParentBoardId).Scan(&boardUuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, domain.ThreadPost{}, internal_errors.NotFound("Board not found")
		}
		return domain.Thread{}, domain.ThreadPost{}, fmt.Errorf("failed to validate board: %w", err)
	}

	now := time.Now().UTC()
	thread := domain.Thread{
		Uuid:          uuid.New(),
		CreatedAt:     now,
		ParentBoardId: data.ParentBoardId,
		Title:         data.Title,
		CreatorUserId: data.CreatorUserId,
	}
	if _, err = tx.Exec(`
        INSERT INTO threads (uuid, created_at, parent_board_id, title, creator_user_id)
        VALUES ($1, $2, $3, $4, $5)
    `, thread.Uuid, thread.CreatedAt, thread.ParentBoardId, thread.Title, thread.CreatorUserId); err != nil {
		return domain.Thread{}, domain.ThreadPost{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	post := domain.ThreadPost{
		Uuid:           uuid.New(),
		Number:         1,
		PostedAt:       now,
		PosterUserId:   data.CreatorUserId,
		ParentThreadId: thread.Uuid,
		BodyText:       data.FirstPostBody,
	}
	if _, err = tx.Exec(`
        INSERT INTO threadposts (uuid, number, posted_at, poster_user_id, parent_thread_id, body_text)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, post.Uuid, post.Number, post.PostedAt, post.PosterUserId, post.ParentThreadId, post.BodyText); err != nil {
		return domain.Thread{}, domain.ThreadPost{}, fmt.Errorf("failed to insert first post: %w", err)
	}

	if err = w.AddThread(thread.Uuid, thread.Title); err != nil {
		return domain.Thread{}, domain.ThreadPost{}, fmt.Errorf("failed to stage thread document: %w", err)
	}
	if err = w.AddPost(post.Uuid, post.BodyText); err != nil {
		return domain.Thread{}, domain.ThreadPost{}, fmt.Errorf("failed to stage post document: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return domain.Thread{}, domain.ThreadPost{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	if err = w.Commit(); err != nil {
		return domain.Thread{}, domain.ThreadPost{}, err
	}
	return thread, post, nil
}

func (s *Storage) ThreadByUuid(threadUuid uuid.UUID) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRow(`
        SELECT uuid, created_at, parent_board_id, title, creator_user_id
        FROM threads
        WHERE uuid = $1
    `, threadUuid).Scan(&thread.Uuid, &thread.CreatedAt, &thread.ParentBoardId, &thread.Title, &thread.CreatorUserId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound("Thread not found")
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return thread, nil
}

// DeleteThread removes the thread row (child posts cascade) and stages
// index deletes for the thread and every cascaded post. Must run
// inside the index's exclusive write section.
func (s *Storage) DeleteThread(threadUuid uuid.UUID, w *search.Writer) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Collect child post uuids before the cascade wipes them.
	rows, err := tx.Query(`SELECT uuid FROM threadposts WHERE parent_thread_id = $1`, threadUuid)
	if err != nil {
		return fmt.Errorf("failed to fetch child post uuids: %w", err)
	}
	var postUuids []uuid.UUID
	for rows.Next() {
		var postUuid uuid.UUID
		if err := rows.Scan(&postUuid); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan post uuid: %w", err)
		}
		postUuids = append(postUuids, postUuid)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("rows iteration error: %w", err)
	}
	rows.Close()

	res, err := tx.Exec(`DELETE FROM threads WHERE uuid = $1`, threadUuid)
	if err != nil {
		return fmt.Errorf("failed to delete thread: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Thread not found")
	}

	w.DeleteThread(threadUuid)
	for _, postUuid := range postUuids {
		w.DeletePost(postUuid)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return w.Commit()
}
