package handler

import (
	"github.com/google/uuid"

	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/ashchan-dev/ashchan/internal/pagination"
	"github.com/ashchan-dev/ashchan/internal/search"
)

type MockAuthService struct {
	MockRegister         func(password string) (domain.User, error)
	MockLogin            func(userId, password string) (string, error)
	MockVerify           func(tokenStr string) (string, error)
	MockUser             func(userId string) (domain.User, error)
	MockChangeUserType   func(actor, targetUserId string, newType domain.UserType) error
	MockChangeUserStatus func(actor, targetUserId string, newStatus domain.UserStatus) error
}

func (m *MockAuthService) Register(password string) (domain.User, error) {
	if m.MockRegister != nil {
		return m.MockRegister(password)
	}
	return domain.User{}, nil
}

func (m *MockAuthService) Login(userId, password string) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(userId, password)
	}
	return "", nil
}

func (m *MockAuthService) Verify(tokenStr string) (string, error) {
	if m.MockVerify != nil {
		return m.MockVerify(tokenStr)
	}
	return "", nil
}

func (m *MockAuthService) User(userId string) (domain.User, error) {
	if m.MockUser != nil {
		return m.MockUser(userId)
	}
	return domain.User{}, nil
}

func (m *MockAuthService) ChangeUserType(actor, targetUserId string, newType domain.UserType) error {
	if m.MockChangeUserType != nil {
		return m.MockChangeUserType(actor, targetUserId, newType)
	}
	return nil
}

func (m *MockAuthService) ChangeUserStatus(actor, targetUserId string, newStatus domain.UserStatus) error {
	if m.MockChangeUserStatus != nil {
		return m.MockChangeUserStatus(actor, targetUserId, newStatus)
	}
	return nil
}

type MockBoardService struct {
	MockCreate          func(actor, name, description string) (domain.Board, error)
	MockGet             func(boardUuid uuid.UUID) (domain.Board, error)
	MockList            func(after, before, first, last *int) (pagination.Connection[domain.Board], error)
	MockSearchByKeyword func(keyword string) ([]domain.Board, error)
	MockChildThreads    func(boardUuid uuid.UUID) ([]domain.Thread, error)
}

func (m *MockBoardService) Create(actor, name, description string) (domain.Board, error) {
	if m.MockCreate != nil {
		return m.MockCreate(actor, name, description)
	}
	return domain.Board{}, nil
}

func (m *MockBoardService) Get(boardUuid uuid.UUID) (domain.Board, error) {
	if m.MockGet != nil {
		return m.MockGet(boardUuid)
	}
	return domain.Board{}, nil
}

func (m *MockBoardService) List(after, before, first, last *int) (pagination.Connection[domain.Board], error) {
	if m.MockList != nil {
		return m.MockList(after, before, first, last)
	}
	return pagination.Connection[domain.Board]{}, nil
}

func (m *MockBoardService) SearchByKeyword(keyword string) ([]domain.Board, error) {
	if m.MockSearchByKeyword != nil {
		return m.MockSearchByKeyword(keyword)
	}
	return nil, nil
}

func (m *MockBoardService) ChildThreads(boardUuid uuid.UUID) ([]domain.Thread, error) {
	if m.MockChildThreads != nil {
		return m.MockChildThreads(boardUuid)
	}
	return nil, nil
}

type MockThreadService struct {
	MockCreate     func(actor, title string, parentBoardId uuid.UUID, firstPostBody string) (domain.Thread, error)
	MockGet        func(threadUuid uuid.UUID) (domain.Thread, error)
	MockDelete     func(actor string, threadUuid uuid.UUID) error
	MockPosts      func(threadUuid uuid.UUID, start, end *int) ([]domain.ThreadPost, error)
	MockCountPosts func(threadUuid uuid.UUID) (int, error)
}

func (m *MockThreadService) Create(actor, title string, parentBoardId uuid.UUID, firstPostBody string) (domain.Thread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(actor, title, parentBoardId, firstPostBody)
	}
	return domain.Thread{}, nil
}

func (m *MockThreadService) Get(threadUuid uuid.UUID) (domain.Thread, error) {
	if m.MockGet != nil {
		return m.MockGet(threadUuid)
	}
	return domain.Thread{}, nil
}

func (m *MockThreadService) Delete(actor string, threadUuid uuid.UUID) error {
	if m.MockDelete != nil {
		return m.MockDelete(actor, threadUuid)
	}
	return nil
}

func (m *MockThreadService) Posts(threadUuid uuid.UUID, start, end *int) ([]domain.ThreadPost, error) {
	if m.MockPosts != nil {
		return m.MockPosts(threadUuid, start, end)
	}
	return nil, nil
}

func (m *MockThreadService) CountPosts(threadUuid uuid.UUID) (int, error) {
	if m.MockCountPosts != nil {
		return m.MockCountPosts(threadUuid)
	}
	return 0, nil
}

type MockThreadPostService struct {
	MockCreate func(actor string, threadUuid uuid.UUID, body string) (domain.ThreadPost, error)
	MockGet    func(postUuid uuid.UUID) (domain.ThreadPost, error)
	MockDelete func(actor string, postUuid uuid.UUID) error
}

func (m *MockThreadPostService) Create(actor string, threadUuid uuid.UUID, body string) (domain.ThreadPost, error) {
	if m.MockCreate != nil {
		return m.MockCreate(actor, threadUuid, body)
	}
	return domain.ThreadPost{}, nil
}

func (m *MockThreadPostService) Get(postUuid uuid.UUID) (domain.ThreadPost, error) {
	if m.MockGet != nil {
		return m.MockGet(postUuid)
	}
	return domain.ThreadPost{}, nil
}

func (m *MockThreadPostService) Delete(actor string, postUuid uuid.UUID) error {
	if m.MockDelete != nil {
		return m.MockDelete(actor, postUuid)
	}
	return nil
}

type MockSearchService struct {
	MockTopK func(queryText string, k int, searchThreads, searchPosts bool) ([]search.Hit, error)
}

func (m *MockSearchService) TopK(queryText string, k int, searchThreads, searchPosts bool) ([]search.Hit, error) {
	if m.MockTopK != nil {
		return m.MockTopK(queryText, k, searchThreads, searchPosts)
	}
	return nil, nil
}

type MockLogService struct {
	MockRange func(start, end *int) ([]domain.Log, error)
}

func (m *MockLogService) Range(start, end *int) ([]domain.Log, error) {
	if m.MockRange != nil {
		return m.MockRange(start, end)
	}
	return nil, nil
}
