// Package cachekey builds deterministic cache keys for listing reads.
//
// Keys have the form <prefix>:<entity>:<operation>:<name>=<value>... with
// params sorted by name and values query-escaped, so a key never depends on
// the order in which a caller supplied its parameters.
package cachekey

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	model "blogsite-service/internal/domain/models"
)

type Entity string

const (
	EntityPosts    Entity = "posts"
	EntityComments Entity = "comments"
)

type Operation string

const (
	OperationList       Operation = "list"
	OperationListByPost Operation = "list_by_post"
)

type Builder struct {
	prefix string
}

func NewBuilder(prefix string) *Builder {
	return &Builder{prefix: strings.TrimSuffix(prefix, ":")}
}

// EntityPrefix matches every key of the entity.
func (b *Builder) EntityPrefix(entity Entity) string {
	return b.join(string(entity)) + ":"
}

func (b *Builder) Key(entity Entity, op Operation, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := []string{string(entity), string(op)}
	for _, name := range names {
		parts = append(parts, name+"="+url.QueryEscape(params[name]))
	}
	return b.join(parts...)
}

func (b *Builder) PostsList(filters model.PostFilters) string {
	params := map[string]string{
		"page":     strconv.Itoa(filters.Page),
		"per_page": strconv.Itoa(filters.PerPage),
	}
	if search := strings.ToLower(strings.TrimSpace(filters.Search)); search != "" {
		params["search"] = search
	}
	return b.Key(EntityPosts, OperationList, params)
}

func (b *Builder) CommentsList(filters model.CommentFilters) string {
	params := map[string]string{
		"page":     strconv.Itoa(filters.Page),
		"per_page": strconv.Itoa(filters.PerPage),
	}
	op := OperationList
	if filters.PostID != nil {
		op = OperationListByPost
		params["post_id"] = strconv.FormatInt(*filters.PostID, 10)
	}
	return b.Key(EntityComments, op, params)
}

func (b *Builder) join(parts ...string) string {
	if b.prefix == "" {
		return strings.Join(parts, ":")
	}
	return b.prefix + ":" + strings.Join(parts, ":")
}
