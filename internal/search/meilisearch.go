// Package search keeps the external title index in step with the
// database. The database stays the source of truth; indexing is best
// effort and callers log failures instead of aborting writes.
package search

import (
	"html"
	"log"
	"strings"

	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"

	"github.com/yamdb-team/yamdb-api/internal/model"
)

const titlesIndex = "titles"

type TitleIndex interface {
	IndexTitle(title *model.Title) error
	IndexAll(titles []*model.Title) error
	DeleteTitle(id string) error
}

type meiliTitleIndex struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewMeiliTitleIndex(client meilisearch.ServiceManager) TitleIndex {
	s := &meiliTitleIndex{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndex()
	return s
}

func (s *meiliTitleIndex) initIndex() {
	filterableAttrs := []string{"category", "genres", "year"}
	filterableInterface := make([]any, len(filterableAttrs))
	for i, v := range filterableAttrs {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index(titlesIndex).UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update titles filterable attributes: %v", err)
	}

	sortableAttrs := []string{"year"}
	if _, err := s.client.Index(titlesIndex).UpdateSortableAttributes(&sortableAttrs); err != nil {
		log.Printf("Failed to update titles sortable attributes: %v", err)
	}

	log.Println("Meilisearch titles index initialized")
}

type meiliTitleDoc struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Year        int      `json:"year"`
	Category    string   `json:"category"`
	Genres      []string `json:"genres"`
}

// cleanForIndex strips markup from free text before it reaches the index.
func (s *meiliTitleIndex) cleanForIndex(content string) string {
	sanitized := s.sanitizer.Sanitize(content)
	clean := html.UnescapeString(sanitized)
	return strings.Join(strings.Fields(clean), " ")
}

func (s *meiliTitleIndex) document(title *model.Title) meiliTitleDoc {
	doc := meiliTitleDoc{
		ID:          title.ID.String(),
		Name:        title.Name,
		Description: s.cleanForIndex(title.Description),
		Year:        title.Year,
		Genres:      make([]string, 0, len(title.Genres)),
	}
	if title.Category != nil {
		doc.Category = title.Category.Slug
	}
	for _, g := range title.Genres {
		doc.Genres = append(doc.Genres, g.Slug)
	}
	return doc
}

func (s *meiliTitleIndex) IndexTitle(title *model.Title) error {
	doc := s.document(title)

	task, err := s.client.Index(titlesIndex).AddDocuments([]meiliTitleDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed title %s, task id: %d", title.ID, task.TaskUID)
	return nil
}

func (s *meiliTitleIndex) IndexAll(titles []*model.Title) error {
	if len(titles) == 0 {
		return nil
	}

	docs := make([]meiliTitleDoc, 0, len(titles))
	for _, t := range titles {
		docs = append(docs, s.document(t))
	}

	_, err := s.client.Index(titlesIndex).AddDocuments(docs, strPtr("id"))
	return err
}

func (s *meiliTitleIndex) DeleteTitle(id string) error {
	_, err := s.client.Index(titlesIndex).DeleteDocument(id)
	return err
}

func strPtr(s string) *string {
	return &s
}
