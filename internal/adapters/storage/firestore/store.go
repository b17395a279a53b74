package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

// Store implements domain.ReflectionStore on Firestore. Records live in
// one flat "reflections" collection keyed by record ID.
type Store struct {
	client *firestore.Client
}

func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) reflectionsCol() *firestore.CollectionRef {
	return s.client.Collection("reflections")
}

type reflectionDoc struct {
	UserEmail  string    `firestore:"user_email"`
	Content    string    `firestore:"content"`
	Moment     string    `firestore:"moment"`
	Subject    string    `firestore:"subject"`
	AIResponse string    `firestore:"ai_response"`
	CreatedAt  time.Time `firestore:"created_at"`
}

// QueryToday implements domain.ReflectionStore.
func (s *Store) QueryToday(ctx context.Context, sender string, day domain.Timestamp) (domain.MemorySnapshot, error) {
	year, month, dom := day.Date()
	dayStart := time.Date(year, month, dom, 0, 0, 0, 0, day.Location())

	q := s.reflectionsCol().
		Where("user_email", "==", sender).
		Where("created_at", ">=", dayStart).
		OrderBy("created_at", firestore.Asc)

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out domain.MemorySnapshot
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			if status.Code(err) == codes.NotFound {
				return nil, nil
			}
			return nil, fmt.Errorf("firestore QueryToday: %w", err)
		}

		var doc reflectionDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode reflectionDoc: %w", err)
		}

		out = append(out, domain.ReflectionRecord{
			ID:            snap.Ref.ID,
			SenderAddress: doc.UserEmail,
			Content:       doc.Content,
			Moment:        domain.Moment(doc.Moment),
			Subject:       doc.Subject,
			AIResponse:    doc.AIResponse,
			CreatedAt:     doc.CreatedAt,
		})
	}
	return out, nil
}

// AppendReflection implements domain.ReflectionStore.
func (s *Store) AppendReflection(ctx context.Context, rec *domain.ReflectionRecord) error {
	doc := reflectionDoc{
		UserEmail:  rec.SenderAddress,
		Content:    rec.Content,
		Moment:     string(rec.Moment),
		Subject:    rec.Subject,
		AIResponse: rec.AIResponse,
		CreatedAt:  rec.CreatedAt,
	}

	_, err := s.reflectionsCol().Doc(rec.ID).Create(ctx, doc)
	if err != nil {
		return fmt.Errorf("firestore AppendReflection: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
