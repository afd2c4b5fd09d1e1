package service

import (
	"github.com/ashchan-dev/ashchan/internal/errors"
	"github.com/ashchan-dev/ashchan/internal/search"
)

const maxTopK = 100

type SearchService interface {
	TopK(queryText string, k int, searchThreads, searchPosts bool) ([]search.Hit, error)
}

type Search struct {
	index *search.Index
}

func NewSearch(index *search.Index) *Search {
	return &Search{index: index}
}

// TopK answers a ranked query over thread titles and/or post bodies.
func (s *Search) TopK(queryText string, k int, searchThreads, searchPosts bool) ([]search.Hit, error) {
	if queryText == "" {
		return nil, errors.Validation("Search query must not be empty")
	}
	if !searchThreads && !searchPosts {
		return nil, errors.Validation("Invalid search target combination")
	}
	if k <= 0 || k > maxTopK {
		return nil, errors.Validation("Invalid result count")
	}
	return s.index.TopK(queryText, k, searchThreads, searchPosts)
}
