package main

import (
	"context"
	"log"
	"net/http"

	"github.com/irkoudo/yehoshua-focus/internal/adapters/httpapi"
	"github.com/irkoudo/yehoshua-focus/internal/adapters/llm"
	"github.com/irkoudo/yehoshua-focus/internal/adapters/mail"
	firestorestore "github.com/irkoudo/yehoshua-focus/internal/adapters/storage/firestore"
	memstore "github.com/irkoudo/yehoshua-focus/internal/adapters/storage/memory"
	pgstore "github.com/irkoudo/yehoshua-focus/internal/adapters/storage/postgres"
	"github.com/irkoudo/yehoshua-focus/internal/app/reflection"
	"github.com/irkoudo/yehoshua-focus/internal/config"
	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Generator backend
	var (
		generator domain.Generator
		err       error
	)
	switch cfg.LLMBackend {
	case "groq":
		log.Println("[LLM] Using Groq generator")
		generator, err = llm.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel)
		if err != nil {
			log.Fatalf("error initializing Groq client: %v", err)
		}
	case "vertex":
		log.Printf("[LLM] Using Vertex generator (project=%s)", cfg.GCPProjectID)
		generator, err = llm.NewVertexClient(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing Vertex client: %v", err)
		}
	default:
		log.Println("[LLM] Using MOCK generator")
		generator = llm.NewMockGenerator()
	}

	// Storage backend
	var store domain.ReflectionStore
	switch cfg.StorageBackend {
	case "firestore":
		if cfg.GCPProjectID == "" {
			log.Fatal("YEHOSHUA_GCP_PROJECT is required for the firestore backend")
		}
		log.Printf("[STORE] Using Firestore storage (project=%s)", cfg.GCPProjectID)
		fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}
		defer fsStore.Close()
		store = fsStore
	case "postgres":
		if cfg.DatabaseURL == "" {
			log.Fatal("DATABASE_URL is required for the postgres backend")
		}
		log.Println("[STORE] Using Postgres storage")
		pg, err := pgstore.NewStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("error initializing Postgres store: %v", err)
		}
		defer pg.Close()
		store = pg
	default:
		log.Println("[STORE] Using in-memory storage")
		store = memstore.NewReflectionStore()
	}

	// Mail transport: one client serves both sending and inbound fetch.
	var (
		sender  domain.MailSender
		fetcher domain.MailFetcher
	)
	if cfg.Mode == config.ModeProduction {
		log.Println("[MAIL] Using Resend transport")
		resend, err := mail.NewResendClient(cfg.ResendAPIKey, cfg.FromAddress, cfg.ReplyTo)
		if err != nil {
			log.Fatalf("error initializing Resend client: %v", err)
		}
		sender = resend
		fetcher = resend
	} else {
		log.Println("[MAIL] Using local mailer (no delivery)")
		local := mail.NewLocalMailer()
		sender = local
		fetcher = local
	}

	svc := reflection.NewService(fetcher, store, sender, generator, cfg.Mode == config.ModeProduction)

	handler := httpapi.NewServer(svc)

	addr := ":" + cfg.Port
	log.Println("Yehoshua Focus API listening on", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
