package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/correspondence_app/internal/adapters/memory"
	"github.com/SscSPs/correspondence_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	creator = domain.UserRef{UserID: "u1", Name: "Ani"}
	at      = time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
)

func TestToDocument(t *testing.T) {
	in, err := domain.NewIncomingLetter(creator, domain.IncomingRegistration{
		LetterNumber: "005/DINKES/2024", Subject: "Permohonan data", Sender: "Dinas Kesehatan",
	}, at)
	require.NoError(t, err)

	doc := ToDocument(in)
	assert.Equal(t, LetterDocument{
		ID:           in.LetterID,
		Kind:         "SURAT_MASUK",
		Subject:      "Permohonan data",
		LetterNumber: "005/DINKES/2024",
		Sender:       "Dinas Kesehatan",
		CreatorID:    "u1",
		CreatedAt:    at.Unix(),
	}, doc)

	out, err := domain.NewOutgoingLetter(creator, domain.OutgoingDraft{Subject: "Balasan", Recipient: "Dinkes", Summary: "data terlampir"}, at)
	require.NoError(t, err)
	doc = ToDocument(out)
	assert.Equal(t, "Draf", doc.Status)
	assert.Equal(t, "Dinkes", doc.Recipient)
	assert.Equal(t, "data terlampir", doc.Summary)
	assert.Empty(t, doc.LetterNumber)
}

func TestService_FallsBackWithoutMeili(t *testing.T) {
	ctx := context.Background()
	store := memory.NewLetterStore()
	in, err := domain.NewIncomingLetter(creator, domain.IncomingRegistration{Subject: "Permohonan data", Sender: "Dinkes"}, at)
	require.NoError(t, err)
	require.NoError(t, store.SaveLetter(ctx, in))

	svc := NewService(nil, store)
	ids, err := svc.SearchLetterIDs(ctx, "permohonan", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{in.LetterID}, ids)

	assert.NoError(t, svc.HandleLetterEvent(ctx, domain.NewLetterEvent(domain.EventLetterCreated, in, "", "u1", at)))
}

// fakeMeili answers the handful of Meilisearch endpoints the adapter uses.
type fakeMeili struct {
	mu      sync.Mutex
	indexed []LetterDocument
}

func (f *fakeMeili) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path == "/health":
		_, _ = io.WriteString(w, `{"status":"available"}`)
	case strings.HasSuffix(r.URL.Path, "/search"):
		_, _ = io.WriteString(w, `{"hits":[{"id":"letter-2"},{"id":"letter-1"}],"query":"anggaran","limit":20,"offset":0,"estimatedTotalHits":2,"processingTimeMs":1}`)
	default:
		if strings.HasSuffix(r.URL.Path, "/documents") {
			var docs []LetterDocument
			_ = json.NewDecoder(r.Body).Decode(&docs)
			f.mu.Lock()
			f.indexed = append(f.indexed, docs...)
			f.mu.Unlock()
		}
		w.WriteHeader(http.StatusAccepted)
		_, _ = io.WriteString(w, `{"taskUid":1,"indexUid":"letters","status":"enqueued","type":"documentAdditionOrUpdate","enqueuedAt":"2024-04-01T08:00:00Z"}`)
	}
}

func TestMeili_IndexAndSearch(t *testing.T) {
	fake := &fakeMeili{}
	server := httptest.NewServer(fake)
	defer server.Close()

	m := NewMeili(server.URL, "key", "letters", nil)
	defer m.Close()
	require.True(t, m.Healthy())

	svc := NewService(m, memory.NewLetterStore())
	out, err := domain.NewOutgoingLetter(creator, domain.OutgoingDraft{Subject: "Rapat anggaran", Recipient: "BPKAD"}, at)
	require.NoError(t, err)
	require.NoError(t, svc.HandleLetterEvent(context.Background(), domain.NewLetterEvent(domain.EventLetterCreated, out, "", "u1", at)))

	fake.mu.Lock()
	require.Len(t, fake.indexed, 1)
	assert.Equal(t, out.LetterID, fake.indexed[0].ID)
	fake.mu.Unlock()

	ids, err := svc.SearchLetterIDs(context.Background(), "anggaran", 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"letter-2", "letter-1"}, ids)
}
