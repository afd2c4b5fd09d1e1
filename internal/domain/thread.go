package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxThreadPosts caps posts per thread. The insert that would become
// post number MaxThreadPosts+1 fails.
const MaxThreadPosts = 1000

type Thread struct {
	Uuid          uuid.UUID `json:"uuid"`
	CreatedAt     time.Time `json:"created_at"`
	ParentBoardId uuid.UUID `json:"parent_board_id"`
	Title         string    `json:"title"`
	CreatorUserId string    `json:"creator_user_id"`
}

type ThreadCreationData struct {
	Title         string
	ParentBoardId uuid.UUID
	CreatorUserId string
	FirstPostBody string
}

// ThreadPost number is contiguous from 1 within its parent thread.
type ThreadPost struct {
	Uuid           uuid.UUID `json:"uuid"`
	Number         int       `json:"number"`
	PostedAt       time.Time `json:"posted_at"`
	PosterUserId   string    `json:"poster_user_id"`
	ParentThreadId uuid.UUID `json:"parent_thread_id"`
	BodyText       string    `json:"body_text"`
}

type ThreadPostCreationData struct {
	PosterUserId   string
	ParentThreadId uuid.UUID
	BodyText       string
}
