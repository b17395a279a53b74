package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/irkoudo/yehoshua-focus/internal/adapters/mail"
	"github.com/irkoudo/yehoshua-focus/internal/app/dispatch"
	"github.com/irkoudo/yehoshua-focus/internal/config"
	"github.com/irkoudo/yehoshua-focus/internal/domain"
)

func main() {
	cfg := config.Load()

	if cfg.ReceiverEmail == "" {
		log.Fatal("RECEIVER_EMAIL is required for the scheduler")
	}

	var sender domain.MailSender
	if cfg.Mode == config.ModeProduction {
		log.Println("[MAIL] Using Resend transport")
		resend, err := mail.NewResendClient(cfg.ResendAPIKey, cfg.FromAddress, cfg.ReplyTo)
		if err != nil {
			log.Fatalf("error initializing Resend client: %v", err)
		}
		sender = resend
	} else {
		log.Println("[MAIL] Using local mailer (no delivery)")
		sender = mail.NewLocalMailer()
	}

	dispatcher := dispatch.NewDispatcher(sender, cfg.ReceiverEmail)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Yehoshua Focus scheduler started for", cfg.ReceiverEmail)
	if err := dispatcher.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	log.Println("scheduler stopped")
}
