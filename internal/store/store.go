package store

import (
	"fmt"
	"strings"
	"sync"

	"nexusbot/internal/model"
)

const headerBarWidth = 50

// DocumentStore keeps uploaded documents and the compiled knowledge base in
// memory. Nothing is persisted; a restart starts from a clean slate.
type DocumentStore struct {
	mu            sync.RWMutex
	documents     []model.Document
	knowledgeBase string
	ingested      bool
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Add appends a document and reports whether it was stored. It refuses a
// document whose name is already present. Any successful add invalidates the
// ingested state so the knowledge base must be recompiled.
func (s *DocumentStore) Add(doc model.Document) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.documents {
		if d.Name == doc.Name {
			return false
		}
	}
	s.documents = append(s.documents, doc)
	s.ingested = false
	return true
}

// Remove deletes the named document and reports whether it was present.
// Removing a document also drops the compiled knowledge base.
func (s *DocumentStore) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.documents {
		if d.Name == name {
			s.documents = append(s.documents[:i], s.documents[i+1:]...)
			s.ingested = false
			s.knowledgeBase = ""
			return true
		}
	}
	return false
}

// Ingest compiles every stored document into a single knowledge base string
// and returns the number of documents compiled. An empty store returns 0 and
// leaves all state untouched.
func (s *DocumentStore) Ingest() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.documents) == 0 {
		return 0
	}

	bar := strings.Repeat("━", headerBarWidth)
	parts := make([]string, 0, len(s.documents))
	for i := range s.documents {
		doc := &s.documents[i]
		header := strings.Join([]string{
			bar,
			"DOCUMENT : " + doc.Name,
			fmt.Sprintf("FORMAT   : %s   SIZE: %s", strings.ToUpper(doc.Ext), doc.SizeLabel()),
			bar,
			"",
		}, "\n")
		parts = append(parts, header+doc.Content+"\n")
		doc.Ingested = true
	}
	s.knowledgeBase = strings.Join(parts, "\n")
	s.ingested = true
	return len(s.documents)
}

// Clear drops every document and the compiled knowledge base.
func (s *DocumentStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents = nil
	s.knowledgeBase = ""
	s.ingested = false
}

// Documents returns a copy of the stored documents in upload order.
func (s *DocumentStore) Documents() []model.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Document, len(s.documents))
	copy(out, s.documents)
	return out
}

func (s *DocumentStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

func (s *DocumentStore) IsIngested() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ingested
}

func (s *DocumentStore) KnowledgeBase() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.knowledgeBase
}
