package service

import (
	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/ashchan-dev/ashchan/internal/errors"
)

const defaultLogRangeEnd = 1000

type LogService interface {
	Range(start, end *int) ([]domain.Log, error)
}

type Log struct {
	storage LogRangeStorage
}

type LogRangeStorage interface {
	LogRange(start, end int) ([]domain.Log, error)
}

func NewLog(storage LogRangeStorage) *Log {
	return &Log{storage: storage}
}

func (l *Log) Range(start, end *int) ([]domain.Log, error) {
	s, e := 0, defaultLogRangeEnd
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	if s < 0 || e < s {
		return nil, errors.Validation("Invalid range")
	}
	return l.storage.LogRange(s, e)
}
