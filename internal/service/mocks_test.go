package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/ashchan-dev/ashchan/internal/search"
)

func memIndex(t *testing.T) *search.Index {
	t.Helper()
	idx, err := search.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

// MockAuthStorage mocks the AuthStorage interface.
type MockAuthStorage struct {
	saveUserFunc         func(user domain.User) error
	userByIdFunc         func(userId string) (domain.User, error)
	updateUserTypeFunc   func(userId string, newType domain.UserType) error
	updateUserStatusFunc func(userId string, newStatus domain.UserStatus) error
}

func (m *MockAuthStorage) SaveUser(user domain.User) error {
	if m.saveUserFunc != nil {
		return m.saveUserFunc(user)
	}
	return nil
}

func (m *MockAuthStorage) UserById(userId string) (domain.User, error) {
	if m.userByIdFunc != nil {
		return m.userByIdFunc(userId)
	}
	return domain.User{}, nil
}

func (m *MockAuthStorage) UpdateUserType(userId string, newType domain.UserType) error {
	if m.updateUserTypeFunc != nil {
		return m.updateUserTypeFunc(userId, newType)
	}
	return nil
}

func (m *MockAuthStorage) UpdateUserStatus(userId string, newStatus domain.UserStatus) error {
	if m.updateUserStatusFunc != nil {
		return m.updateUserStatusFunc(userId, newStatus)
	}
	return nil
}

// MockUserReader mocks the UserReader interface.
type MockUserReader struct {
	userByIdFunc func(userId string) (domain.User, error)
}

func (m *MockUserReader) UserById(userId string) (domain.User, error) {
	if m.userByIdFunc != nil {
		return m.userByIdFunc(userId)
	}
	return domain.User{}, nil
}

// MockLogStorage mocks the LogStorage interface.
type MockLogStorage struct {
	saveLogFunc func(message string, link, linkTitle *string) (domain.Log, error)
	entries     []string
}

func (m *MockLogStorage) SaveLog(message string, link, linkTitle *string) (domain.Log, error) {
	m.entries = append(m.entries, message)
	if m.saveLogFunc != nil {
		return m.saveLogFunc(message, link, linkTitle)
	}
	return domain.Log{Message: message, Link: link, LinkTitle: linkTitle}, nil
}

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	createThreadFunc     func(data domain.ThreadCreationData, w *search.Writer) (domain.Thread, domain.ThreadPost, error)
	threadByUuidFunc     func(threadUuid uuid.UUID) (domain.Thread, error)
	deleteThreadFunc     func(threadUuid uuid.UUID, w *search.Writer) error
	threadPostRangeFunc  func(threadUuid uuid.UUID, start, end int) ([]domain.ThreadPost, error)
	countThreadPostsFunc func(threadUuid uuid.UUID) (int, error)
}

func (m *MockThreadStorage) CreateThread(data domain.ThreadCreationData, w *search.Writer) (domain.Thread, domain.ThreadPost, error) {
	if m.createThreadFunc != nil {
		return m.createThreadFunc(data, w)
	}
	return domain.Thread{Uuid: uuid.New(), Title: data.Title}, domain.ThreadPost{Uuid: uuid.New(), Number: 1}, nil
}

func (m *MockThreadStorage) ThreadByUuid(threadUuid uuid.UUID) (domain.Thread, error) {
	if m.threadByUuidFunc != nil {
		return m.threadByUuidFunc(threadUuid)
	}
	return domain.Thread{Uuid: threadUuid}, nil
}

func (m *MockThreadStorage) DeleteThread(threadUuid uuid.UUID, w *search.Writer) error {
	if m.deleteThreadFunc != nil {
		return m.deleteThreadFunc(threadUuid, w)
	}
	return nil
}

func (m *MockThreadStorage) ThreadPostRange(threadUuid uuid.UUID, start, end int) ([]domain.ThreadPost, error) {
	if m.threadPostRangeFunc != nil {
		return m.threadPostRangeFunc(threadUuid, start, end)
	}
	return nil, nil
}

func (m *MockThreadStorage) CountThreadPosts(threadUuid uuid.UUID) (int, error) {
	if m.countThreadPostsFunc != nil {
		return m.countThreadPostsFunc(threadUuid)
	}
	return 0, nil
}

// MockThreadPostStorage mocks the ThreadPostStorage interface.
type MockThreadPostStorage struct {
	createThreadPostFunc func(data domain.ThreadPostCreationData, w *search.Writer) (domain.ThreadPost, error)
	threadPostByUuidFunc func(postUuid uuid.UUID) (domain.ThreadPost, error)
	deleteThreadPostFunc func(postUuid uuid.UUID, w *search.Writer) error
}

func (m *MockThreadPostStorage) CreateThreadPost(data domain.ThreadPostCreationData, w *search.Writer) (domain.ThreadPost, error) {
	if m.createThreadPostFunc != nil {
		return m.createThreadPostFunc(data, w)
	}
	return domain.ThreadPost{Uuid: uuid.New(), Number: 1, BodyText: data.BodyText}, nil
}

func (m *MockThreadPostStorage) ThreadPostByUuid(postUuid uuid.UUID) (domain.ThreadPost, error) {
	if m.threadPostByUuidFunc != nil {
		return m.threadPostByUuidFunc(postUuid)
	}
	return domain.ThreadPost{Uuid: postUuid}, nil
}

func (m *MockThreadPostStorage) DeleteThreadPost(postUuid uuid.UUID, w *search.Writer) error {
	if m.deleteThreadPostFunc != nil {
		return m.deleteThreadPostFunc(postUuid, w)
	}
	return nil
}

// MockBoardStorage mocks the BoardStorage interface.
type MockBoardStorage struct {
	createBoardFunc  func(data domain.BoardCreationData, w *search.Writer) (domain.Board, error)
	boardByUuidFunc  func(boardUuid uuid.UUID) (domain.Board, error)
	boardRangeFunc   func(limit, offset int) ([]domain.Board, error)
	countBoardsFunc  func() (int, error)
	childThreadsFunc func(parentBoardUuid uuid.UUID) ([]domain.Thread, error)
}

func (m *MockBoardStorage) CreateBoard(data domain.BoardCreationData, w *search.Writer) (domain.Board, error) {
	if m.createBoardFunc != nil {
		return m.createBoardFunc(data, w)
	}
	return domain.Board{Uuid: uuid.New(), Name: data.Name, Description: data.Description}, nil
}

func (m *MockBoardStorage) BoardByUuid(boardUuid uuid.UUID) (domain.Board, error) {
	if m.boardByUuidFunc != nil {
		return m.boardByUuidFunc(boardUuid)
	}
	return domain.Board{Uuid: boardUuid}, nil
}

func (m *MockBoardStorage) BoardRange(limit, offset int) ([]domain.Board, error) {
	if m.boardRangeFunc != nil {
		return m.boardRangeFunc(limit, offset)
	}
	return nil, nil
}

func (m *MockBoardStorage) CountBoards() (int, error) {
	if m.countBoardsFunc != nil {
		return m.countBoardsFunc()
	}
	return 0, nil
}

func (m *MockBoardStorage) ChildThreads(parentBoardUuid uuid.UUID) ([]domain.Thread, error) {
	if m.childThreadsFunc != nil {
		return m.childThreadsFunc(parentBoardUuid)
	}
	return nil, nil
}

func adminReader(adminId string) *MockUserReader {
	return &MockUserReader{userByIdFunc: func(userId string) (domain.User, error) {
		if userId == adminId {
			return domain.User{Id: userId, Type: domain.TypeAdmin, Status: domain.StatusNormal}, nil
		}
		return domain.User{Id: userId, Type: domain.TypeNormal, Status: domain.StatusNormal}, nil
	}}
}
