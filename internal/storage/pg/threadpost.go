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

// CreateThreadPost counts existing posts inside the same transaction
// that inserts the new one, so numbers stay gapless under concurrent
// posting. Fails once the thread holds domain.MaxThreadPosts. Must run
// inside the index's exclusive write section.
func (s *Storage) CreateThreadPost(data domain.ThreadPostCreationData, w *search.Writer) (domain.ThreadPost, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.ThreadPost{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Verify thread exists
	var threadUuid uuid.UUID
	err = tx.QueryRow(`SELECT uuid FROM threads WHERE uuid = $1`, data.ParentThreadId).Scan(&threadUuid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadPost{}, internal_errors.NotFound("Thread not found")
		}
		return domain.ThreadPost{}, fmt.Errorf("failed to validate thread: %w", err)
	}

	// The count must happen in this transaction; FOR UPDATE on the
	// thread row serializes concurrent posts to the same thread.
	if _, err = tx.Exec(`SELECT 1 FROM threads WHERE uuid = $1 FOR UPDATE`, data.ParentThreadId); err != nil {
		return domain.ThreadPost{}, fmt.Errorf("failed to lock thread: %w", err)
	}
	var count int
	err = tx.QueryRow(`
        SELECT COUNT(*) FROM threadposts WHERE parent_thread_id = $1
    `, data.ParentThreadId).Scan(&count)
	if err != nil {
		return domain.ThreadPost{}, fmt.Errorf("failed to count posts: %w", err)
	}
	if count >= domain.MaxThreadPosts {
		return domain.ThreadPost{}, internal_errors.Capacity("Thread is full")
	}

	post := domain.ThreadPost{
		Uuid:           uuid.New(),
		Number:         count + 1,
		PostedAt:       time.Now().UTC(),
		PosterUserId:   data.PosterUserId,
		ParentThreadId: data.ParentThreadId,
		BodyText:       data.BodyText,
	}
	if _, err = tx.Exec(`
        INSERT INTO threadposts (uuid, number, posted_at, poster_user_id, parent_thread_id, body_text)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, post.Uuid, post.Number, post.PostedAt, post.PosterUserId, post.ParentThreadId, post.BodyText); err != nil {
		return domain.ThreadPost{}, fmt.Errorf("failed to insert post: %w", err)
	}

	if err = w.AddPost(post.Uuid, post.BodyText); err != nil {
		return domain.ThreadPost{}, fmt.Errorf("failed to stage post document: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return domain.ThreadPost{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	if err = w.Commit(); err != nil {
		return domain.ThreadPost{}, err
	}
	return post, nil
}

func (s *Storage) ThreadPostByUuid(postUuid uuid.UUID) (domain.ThreadPost, error) {
	var post domain.ThreadPost
	err := s.db.QueryRow(`
        SELECT uuid, number, posted_at, poster_user_id, parent_thread_id, body_text
        FROM threadposts
        WHERE uuid = $1
    `, postUuid).Scan(&post.Uuid, &post.Number, &post.PostedAt, &post.PosterUserId, &post.ParentThreadId, &post.BodyText)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadPost{}, internal_errors.NotFound("Post not found")
		}
		return domain.ThreadPost{}, fmt.Errorf("failed to fetch post: %w", err)
	}
	return post, nil
}

// DeleteThreadPost removes the post row and its index entry together.
// Must run inside the index's exclusive write section.
func (s *Storage) DeleteThreadPost(postUuid uuid.UUID, w *search.Writer) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`DELETE FROM threadposts WHERE uuid = $1`, postUuid)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("Post not found")
	}

	w.DeletePost(postUuid)

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return w.Commit()
}

// ThreadPostRange fetches posts [start, end] (0-based, inclusive) for
// a thread, in posting order.
func (s *Storage) ThreadPostRange(threadUuid uuid.UUID, start, end int) ([]domain.ThreadPost, error) {
	if end < start {
		return nil, internal_errors.Validation("Invalid range")
	}
	rows, err := s.db.Query(`
        SELECT uuid, number, posted_at, poster_user_id, parent_thread_id, body_text
        FROM threadposts
        WHERE parent_thread_id = $1
        ORDER BY primary_key
        LIMIT $2 OFFSET $3
    `, threadUuid, end-start+1, start)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.ThreadPost
	for rows.Next() {
		var post domain.ThreadPost
		if err := rows.Scan(&post.Uuid, &post.Number, &post.PostedAt, &post.PosterUserId, &post.ParentThreadId, &post.BodyText); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return posts, nil
}

func (s *Storage) CountThreadPosts(threadUuid uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`
        SELECT COUNT(*) FROM threadposts WHERE parent_thread_id = $1
    `, threadUuid).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}
