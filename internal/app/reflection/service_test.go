package reflection_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irkoudo/yehoshua-focus/internal/adapters/llm"
	"github.com/irkoudo/yehoshua-focus/internal/adapters/storage/memory"
	"github.com/irkoudo/yehoshua-focus/internal/app/reflection"
	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

type fakeFetcher struct {
	content domain.InboundContent
	err     error
}

func (f *fakeFetcher) FetchBody(ctx context.Context, id domain.MessageID) (domain.InboundContent, error) {
	return f.content, f.err
}

type fakeSender struct {
	sent []string
}

func (f *fakeSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	f.sent = append(f.sent, htmlBody)
	return nil
}

func TestProcessInboundEndToEnd(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{content: domain.InboundContent{
		Text: "Finir le module auth avant 18h\n\nLe 3 mars, Yehoshua a écrit :\n> L'Intention",
	}}
	store := memory.NewReflectionStore()
	sender := &fakeSender{}

	svc := reflection.NewService(fetcher, store, sender, llm.NewMockGenerator(), true)

	out, err := svc.ProcessInbound(ctx, reflection.InboundPayload{
		From:      "user@example.com",
		MessageID: "msg-1",
		Subject:   "[Yehoshua Focus] L'Intention",
	})
	require.NoError(t, err)

	assert.True(t, out.Processed)
	assert.NotEmpty(t, out.ReplyMessage)
	require.Len(t, sender.sent, 1)

	// The record lands in today's memory with the cleaned text.
	snapshot, err := store.QueryToday(ctx, "user@example.com", time.Now())
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "Finir le module auth avant 18h", snapshot[0].Content)
	assert.NotEmpty(t, snapshot[0].ID)
}

func TestProcessInboundFetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("resend down")}
	svc := reflection.NewService(fetcher, memory.NewReflectionStore(), &fakeSender{}, llm.NewMockGenerator(), true)

	_, err := svc.ProcessInbound(context.Background(), reflection.InboundPayload{
		From:      "user@example.com",
		MessageID: "msg-1",
	})
	assert.Error(t, err)
}

func TestProcessInboundLocalModeSkipsDelivery(t *testing.T) {
	fetcher := &fakeFetcher{content: domain.InboundContent{Text: "Oui"}}
	sender := &fakeSender{}
	svc := reflection.NewService(fetcher, memory.NewReflectionStore(), sender, llm.NewMockGenerator(), false)

	out, err := svc.ProcessInbound(context.Background(), reflection.InboundPayload{
		From:      "user@example.com",
		MessageID: "msg-1",
	})
	require.NoError(t, err)

	assert.Empty(t, sender.sent)
	assert.NotEmpty(t, out.ReplyMessage)
}

type failingStore struct{}

func (failingStore) QueryToday(ctx context.Context, sender string, day domain.Timestamp) (domain.MemorySnapshot, error) {
	return nil, errors.New("store down")
}

func (failingStore) AppendReflection(ctx context.Context, rec *domain.ReflectionRecord) error {
	return errors.New("store down")
}

func TestProcessInboundStoreFailureDegrades(t *testing.T) {
	// Memory failure means "no memory today", not a hard failure; the
	// user still gets a reply.
	fetcher := &fakeFetcher{content: domain.InboundContent{Text: "beaucoup de choses"}}
	sender := &fakeSender{}
	svc := reflection.NewService(fetcher, failingStore{}, sender, llm.NewMockGenerator(), true)

	out, err := svc.ProcessInbound(context.Background(), reflection.InboundPayload{
		From:      "user@example.com",
		MessageID: "msg-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ReplyMessage)
	assert.Equal(t, 0, out.MemoryCount)
	assert.Len(t, sender.sent, 1)
}

func TestProcessInboundHTMLOnlyBody(t *testing.T) {
	fetcher := &fakeFetcher{content: domain.InboundContent{
		HTML: "<p>J'ai eu une urgence, je verrai demain</p>",
	}}
	store := memory.NewReflectionStore()
	svc := reflection.NewService(fetcher, store, &fakeSender{}, llm.NewMockGenerator(), false)

	out, err := svc.ProcessInbound(context.Background(), reflection.InboundPayload{
		From:      "user@example.com",
		MessageID: "msg-1",
	})
	require.NoError(t, err)

	assert.True(t, out.Flags.Evasive)
}
