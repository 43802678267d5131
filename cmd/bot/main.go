package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mdp/qrterminal/v3"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"go.uber.org/zap"

	"whatsapp-assistant/internal/ai"
	"whatsapp-assistant/internal/bot"
	"whatsapp-assistant/internal/session"
	"whatsapp-assistant/internal/sticker"
	"whatsapp-assistant/pkg/config"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if cfg.OpenAI.APIKey == "" {
		logger.Fatal("OPENAI_API_KEY is not set")
	}

	ctx := context.Background()

	dbLog := waLog.Stdout("Database", cfg.WhatsApp.LogLevel, true)
	container, err := sqlstore.New(ctx, "sqlite3", "file:"+cfg.WhatsApp.DBPath+"?_foreign_keys=on", dbLog)
	if err != nil {
		logger.Fatal("failed to open session store", zap.Error(err))
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		logger.Fatal("failed to load device", zap.Error(err))
	}

	client := whatsmeow.NewClient(deviceStore, waLog.Stdout("Client", cfg.WhatsApp.LogLevel, true))

	transport := bot.NewWhatsApp(client, logger)
	gateway := ai.NewGateway(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.MaxTokens, cfg.OpenAI.Temperature, logger)
	converter := sticker.NewConverter(transport, logger)
	router := bot.New(transport, gateway, converter, session.NewRegistry(), logger)

	client.AddEventHandler(func(evt interface{}) {
		switch v := evt.(type) {
		case *events.Message:
			if msg := bot.MessageFromEvent(v); msg != nil {
				router.Handle(ctx, msg)
			}
		case *events.Connected:
			logger.Info("session ready", zap.String("self", transport.SelfID()))
		}
	})

	if client.Store.ID == nil {
		// No stored session: render the pairing QR code to the terminal.
		qrChan, _ := client.GetQRChannel(ctx)
		if err := client.Connect(); err != nil {
			logger.Fatal("failed to connect", zap.Error(err))
		}
		for evt := range qrChan {
			if evt.Event == "code" {
				qrterminal.GenerateHalfBlock(evt.Code, qrterminal.L, os.Stdout)
				logger.Info("scan the QR code with WhatsApp to log in")
			}
		}
	} else {
		if err := client.Connect(); err != nil {
			logger.Fatal("failed to connect", zap.Error(err))
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	client.Disconnect()
}
