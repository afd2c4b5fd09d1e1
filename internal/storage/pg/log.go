package pg

import (
	"fmt"
	"time"

	"github.com/ashchan-dev/ashchan/internal/domain"
	internal_errors "github.com/ashchan-dev/ashchan/internal/errors"
)

// SaveLog appends an audit record. Logs are never updated or deleted.
func (s *Storage) SaveLog(message string, link, linkTitle *string) (domain.Log, error) {
	log := domain.Log{
		Timestamp: time.Now().UTC(),
		Message:   message,
		Link:      link,
		LinkTitle: linkTitle,
	}
	_, err := s.db.Exec(`
        INSERT INTO logs (timestamp, message, link, link_title)
        VALUES ($1, $2, $3, $4)
    `, log.Timestamp, log.Message, log.Link, log.LinkTitle)
	if err != nil {
		return domain.Log{}, fmt.Errorf("failed to insert log: %w", err)
	}
	return log, nil
}

// LogRange fetches logs [start, end] (0-based, inclusive) in append
// order.
func (s *Storage) LogRange(start, end int) ([]domain.Log, error) {
	if end < start {
		return nil, internal_errors.Validation("Invalid range")
	}
	rows, err := s.db.Query(`
        SELECT timestamp, message, link, link_title
        FROM logs
        ORDER BY primary_key
        LIMIT $1 OFFSET $2
    `, end-start+1, start)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.Log
	for rows.Next() {
		var log domain.Log
		if err := rows.Scan(&log.Timestamp, &log.Message, &log.Link, &log.LinkTitle); err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		logs = append(logs, log)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return logs, nil
}
