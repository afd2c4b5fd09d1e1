// Package search owns the on-disk full-text index over board names,
// thread titles and post bodies.
//
// Writes follow a single-writer discipline: every mutation is staged
// into a batch inside an exclusive Update section that also spans the
// relational transaction it accompanies, and becomes visible only on
// Commit. Reads are lock-free; they run against the last committed
// snapshot and never block on a writer.
package search

import (
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/google/uuid"
)

type Kind string

const (
	KindBoard  Kind = "board"
	KindThread Kind = "thread"
	KindPost   Kind = "post"
)

const (
	fieldName  = "name"  // board name; description is deliberately not indexed
	fieldTitle = "title" // thread title
	fieldBody  = "body"  // post body text
)

// Hit is one ranked search result, ordered by descending score.
type Hit struct {
	Kind  Kind      `json:"kind"`
	Uuid  uuid.UUID `json:"uuid"`
	Score float64   `json:"score"`
}

type Index struct {
	mu  sync.Mutex // exclusive writer; see Update
	idx bleve.Index
}

// Open opens the index directory, creating it on first run.
func Open(dir string) (*Index, error) {
	idx, err := bleve.Open(dir)
	if err == bleve.ErrorIndexPathDoesNotExist {
		idx, err = bleve.New(dir, buildMapping())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open search index at %s: %w", dir, err)
	}
	return &Index{idx: idx}, nil
}

// OpenMemory builds an in-memory index with the same schema. Used by
// tests that exercise the write discipline without touching disk.
func OpenMemory() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory search index: %w", err)
	}
	return &Index{idx: idx}, nil
}

func buildMapping() *mapping.IndexMappingImpl {
	m := bleve.NewIndexMapping()
	m.TypeField = "kind"

	board := bleve.NewDocumentMapping()
	board.AddFieldMappingsAt(fieldName, bleve.NewTextFieldMapping())
	m.AddDocumentMapping(string(KindBoard), board)

	thread := bleve.NewDocumentMapping()
	thread.AddFieldMappingsAt(fieldTitle, bleve.NewTextFieldMapping())
	m.AddDocumentMapping(string(KindThread), thread)

	post := bleve.NewDocumentMapping()
	post.AddFieldMappingsAt(fieldBody, bleve.NewTextFieldMapping())
	m.AddDocumentMapping(string(KindPost), post)

	return m
}

func (i *Index) Close() error {
	return i.idx.Close()
}

// DocCount returns the number of committed documents.
func (i *Index) DocCount() (uint64, error) {
	return i.idx.DocCount()
}

// Update runs fn while holding the exclusive writer lock. fn stages
// mutations on the Writer and must call Commit to publish them; a
// batch left uncommitted when fn returns is discarded, leaving the
// index exactly as before. The relational work accompanying the index
// mutation belongs inside fn so both change atomically for observers.
func (i *Index) Update(fn func(w *Writer) error) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	return fn(&Writer{idx: i.idx, batch: i.idx.NewBatch()})
}

// Writer stages index mutations. Valid only within one Update section.
type Writer struct {
	idx   bleve.Index
	batch *bleve.Batch
}

func (w *Writer) AddBoard(id uuid.UUID, name string) error {
	return w.batch.Index(docId(KindBoard, id), map[string]interface{}{
		"kind": string(KindBoard), fieldName: name,
	})
}

func (w *Writer) AddThread(id uuid.UUID, title string) error {
	return w.batch.Index(docId(KindThread, id), map[string]interface{}{
		"kind": string(KindThread), fieldTitle: title,
	})
}

func (w *Writer) AddPost(id uuid.UUID, body string) error {
	return w.batch.Index(docId(KindPost, id), map[string]interface{}{
		"kind": string(KindPost), fieldBody: body,
	})
}

func (w *Writer) DeleteThread(id uuid.UUID) {
	w.batch.Delete(docId(KindThread, id))
}

func (w *Writer) DeletePost(id uuid.UUID) {
	w.batch.Delete(docId(KindPost, id))
}

// Commit publishes every staged mutation to new searchers.
func (w *Writer) Commit() error {
	if err := w.idx.Batch(w.batch); err != nil {
		return fmt.Errorf("failed to commit index batch: %w", err)
	}
	w.batch.Reset()
	return nil
}

// FuzzyBoards matches keyword against board names with edit distance
// up to 2, prefix-aware, returning at most limit hits by descending
// score.
func (i *Index) FuzzyBoards(keyword string, limit int) ([]Hit, error) {
	fuzzy := bleve.NewFuzzyQuery(keyword)
	fuzzy.SetField(fieldName)
	fuzzy.SetFuzziness(2)

	prefix := bleve.NewPrefixQuery(keyword)
	prefix.SetField(fieldName)

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(fuzzy, prefix), limit, 0, false)
	return i.collect(req)
}

// TopK runs a ranked query over thread titles and/or post bodies and
// returns up to k hits by descending score. At least one target must
// be selected.
func (i *Index) TopK(queryText string, k int, searchThreads, searchPosts bool) ([]Hit, error) {
	if !searchThreads && !searchPosts {
		return nil, fmt.Errorf("no search target selected")
	}

	var queries []query.Query
	if searchThreads {
		q := bleve.NewMatchQuery(queryText)
		q.SetField(fieldTitle)
		queries = append(queries, q)
	}
	if searchPosts {
		q := bleve.NewMatchQuery(queryText)
		q.SetField(fieldBody)
		queries = append(queries, q)
	}

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(queries...), k, 0, false)
	return i.collect(req)
}

func (i *Index) collect(req *bleve.SearchRequest) ([]Hit, error) {
	res, err := i.idx.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		kind, id, err := parseDocId(h.ID)
		if err != nil {
			return nil, err
		}
		hits = append(hits, Hit{Kind: kind, Uuid: id, Score: h.Score})
	}
	return hits, nil
}

func docId(kind Kind, id uuid.UUID) string {
	return string(kind) + ":" + id.String()
}

func parseDocId(docId string) (Kind, uuid.UUID, error) {
	kindStr, idStr, ok := strings.Cut(docId, ":")
	if !ok {
		return "", uuid.Nil, fmt.Errorf("malformed index document id: %s", docId)
	}
	kind := Kind(kindStr)
	switch kind {
	case KindBoard, KindThread, KindPost:
	default:
		return "", uuid.Nil, fmt.Errorf("unknown index document kind: %s", kindStr)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("malformed uuid in index document id %s: %w", docId, err)
	}
	return kind, id, nil
}
