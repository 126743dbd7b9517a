package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	meili "github.com/meilisearch/meilisearch-go"
)

// Meili indexes and queries letters in Meilisearch.
type Meili struct {
	client  meili.ServiceManager
	index   string
	healthy atomic.Bool
	done    chan struct{}
	logger  *slog.Logger
}

// NewMeili creates a Meilisearch client and configures the letter index.
// An unreachable server is not fatal: the health loop reconfigures it once it comes up.
func NewMeili(url, apiKey, index string, logger *slog.Logger) *Meili {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Meili{
		client: meili.New(url, meili.WithAPIKey(apiKey)),
		index:  index,
		done:   make(chan struct{}),
		logger: logger,
	}

	if _, err := m.client.Health(); err != nil {
		logger.Warn("Meilisearch unavailable", slog.String("url", url), slog.String("error", err.Error()))
		m.healthy.Store(false)
	} else {
		m.healthy.Store(true)
		m.configureIndex()
	}

	go m.healthLoop()
	return m
}

func (m *Meili) configureIndex() {
	if _, err := m.client.CreateIndex(&meili.IndexConfig{
		Uid:        m.index,
		PrimaryKey: "id",
	}); err != nil {
		m.logger.Debug("Create index failed (may already exist)", slog.String("index", m.index), slog.String("error", err.Error()))
	}

	index := m.client.Index(m.index)
	filterable := []interface{}{"kind", "status", "creatorId", "isArchived"}
	if _, err := index.UpdateFilterableAttributes(&filterable); err != nil {
		m.logger.Warn("Update filterable attributes failed", slog.String("index", m.index), slog.String("error", err.Error()))
	}
	searchable := []string{"subject", "letterNumber", "sender", "recipient", "summary"}
	if _, err := index.UpdateSearchableAttributes(&searchable); err != nil {
		m.logger.Warn("Update searchable attributes failed", slog.String("index", m.index), slog.String("error", err.Error()))
	}
}

func (m *Meili) healthLoop() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			_, err := m.client.Health()
			wasHealthy := m.healthy.Load()
			m.healthy.Store(err == nil)
			if err == nil && !wasHealthy {
				m.logger.Info("Meilisearch recovered, reconfiguring index", slog.String("index", m.index))
				m.configureIndex()
			}
		}
	}
}

// Close stops the background health monitor.
func (m *Meili) Close() {
	close(m.done)
}

// Healthy reports whether Meilisearch is reachable.
func (m *Meili) Healthy() bool {
	return m.healthy.Load()
}

// IndexLetter adds or replaces a letter document.
func (m *Meili) IndexLetter(doc LetterDocument) error {
	_, err := m.client.Index(m.index).AddDocuments([]LetterDocument{doc}, nil)
	return err
}

// SearchLetterIDs returns the ids of the best matching letters.
func (m *Meili) SearchLetterIDs(ctx context.Context, query string, limit int) ([]string, error) {
	if !m.healthy.Load() {
		return nil, fmt.Errorf("meilisearch unhealthy")
	}
	if limit <= 0 {
		limit = 20
	}
	resp, err := m.client.Index(m.index).Search(query, &meili.SearchRequest{
		Limit:                int64(limit),
		AttributesToRetrieve: []string{"id"},
	})
	if err != nil {
		m.healthy.Store(false)
		return nil, fmt.Errorf("meilisearch search: %w", err)
	}

	ids := make([]string, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		if id := decodeString(hit, "id"); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}
