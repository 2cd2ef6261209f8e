package memory

import (
	"sync"
	"time"

	model "blogsite-service/internal/domain/models"
)

type state struct {
	posts         map[int64]*model.Post
	comments      map[int64]*model.Comment
	nextPostID    int64
	nextCommentID int64
}

func (s *state) clone() *state {
	c := &state{
		posts:         make(map[int64]*model.Post, len(s.posts)),
		comments:      make(map[int64]*model.Comment, len(s.comments)),
		nextPostID:    s.nextPostID,
		nextCommentID: s.nextCommentID,
	}
	for id, p := range s.posts {
		cp := *p
		c.posts[id] = &cp
	}
	for id, cm := range s.comments {
		cc := *cm
		c.comments[id] = &cc
	}
	return c
}

func (s *state) commentCount(postID int64) int64 {
	var n int64
	for _, c := range s.comments {
		if c.PostID == postID {
			n++
		}
	}
	return n
}

// Store is an in-process relational store. Transactions are serialized and
// work on a private copy that replaces the shared state on commit.
// Every transaction, reads included, holds the global lock and copies the
// whole state, so the store is meant for tests and local runs only.
type Store struct {
	mu    sync.Mutex
	state *state
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		state: &state{
			posts:         make(map[int64]*model.Post),
			comments:      make(map[int64]*model.Comment),
			nextPostID:    1,
			nextCommentID: 1,
		},
		now: time.Now,
	}
}

// timestamp mirrors the microsecond precision of TIMESTAMPTZ.
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *Store) touch(prev time.Time) time.Time {
	ts := s.timestamp()
	if !ts.After(prev) {
		ts = prev.Add(time.Microsecond)
	}
	return ts
}
