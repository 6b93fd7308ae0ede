package discordbot

import (
	"context"
	"fmt"
	"sync"

	"findhome-bot/internal/constants"
	"findhome-bot/internal/core/port"
	"findhome-bot/internal/core/port/usecases_port"

	"github.com/bwmarrin/discordgo"
)

// GatewayConfig - параметры подключения бота
type GatewayConfig struct {
	Token         string
	GuildID       string
	CommandPrefix string
	CommandName   string
}

// DiscordGatewayAdapter - входящий адаптер: слушает события Discord и вызывает use case'ы
type DiscordGatewayAdapter struct {
	cfg     GatewayConfig
	session *discordgo.Session
	logger  port.LoggerPort

	startUC   usecases_port.StartSessionPort
	selectUC  usecases_port.SelectFilterPort
	confirmUC usecases_port.ConfirmSearchPort

	mu       sync.Mutex
	baseCtx  context.Context
	commands []*discordgo.ApplicationCommand
}

// NewDiscordGatewayAdapter создает сессию discordgo, но не подключается к шлюзу
func NewDiscordGatewayAdapter(
	cfg GatewayConfig,
	startUC usecases_port.StartSessionPort,
	selectUC usecases_port.SelectFilterPort,
	confirmUC usecases_port.ConfirmSearchPort,
	logger port.LoggerPort,
) (*DiscordGatewayAdapter, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("discord gateway: bot token is required")
	}
	if cfg.CommandName == "" {
		return nil, fmt.Errorf("discord gateway: command name is required")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("discord gateway: failed to create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	adapter := &DiscordGatewayAdapter{
		cfg:       cfg,
		session:   session,
		logger:    logger.WithFields(port.Fields{"component": "DiscordGatewayAdapter"}),
		startUC:   startUC,
		selectUC:  selectUC,
		confirmUC: confirmUC,
		baseCtx:   context.Background(),
	}

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		adapter.logger.Info("Connected to Discord gateway", port.Fields{"bot_user": r.User.Username, "guilds": len(r.Guilds)})
	})
	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		adapter.handleMessage(s, m)
	})
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		adapter.handleInteraction(s, i)
	})

	return adapter, nil
}

// Start подключается к шлюзу, регистрирует slash-команду и ждет отмены контекста
func (a *DiscordGatewayAdapter) Start(ctx context.Context) error {
	a.mu.Lock()
	a.baseCtx = ctx
	a.mu.Unlock()

	if err := a.session.Open(); err != nil {
		return fmt.Errorf("discord gateway: failed to open websocket: %w", err)
	}
	a.logger.Info("Discord session opened", port.Fields{
		"prefix_command": a.cfg.CommandPrefix + a.cfg.CommandName,
	})

	if err := a.registerCommands(); err != nil {
		// префиксная команда продолжает работать и без slash-команды
		a.logger.Error("Failed to register slash command", err, port.Fields{"command": a.cfg.CommandName})
	}

	<-ctx.Done()

	a.unregisterCommands()
	return nil
}

// Close закрывает websocket-соединение
func (a *DiscordGatewayAdapter) Close() error {
	if err := a.session.Close(); err != nil {
		return fmt.Errorf("discord gateway: failed to close session: %w", err)
	}
	a.logger.Info("Discord session closed", nil)
	return nil
}

func (a *DiscordGatewayAdapter) registerCommands() error {
	if a.session.State == nil || a.session.State.User == nil {
		return fmt.Errorf("bot user is unknown before READY")
	}

	cmd, err := a.session.ApplicationCommandCreate(a.session.State.User.ID, a.cfg.GuildID, &discordgo.ApplicationCommand{
		Name:        a.cfg.CommandName,
		Description: constants.CommandDescription,
	})
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.commands = append(a.commands, cmd)
	a.mu.Unlock()

	a.logger.Info("Slash command registered", port.Fields{"command": cmd.Name, "guild_id": a.cfg.GuildID})
	return nil
}

func (a *DiscordGatewayAdapter) unregisterCommands() {
	a.mu.Lock()
	commands := a.commands
	a.commands = nil
	a.mu.Unlock()

	for _, cmd := range commands {
		if err := a.session.ApplicationCommandDelete(cmd.ApplicationID, a.cfg.GuildID, cmd.ID); err != nil {
			a.logger.Warn("Failed to remove slash command", port.Fields{"command": cmd.Name, "error": err.Error()})
			continue
		}
		a.logger.Debug("Slash command removed", port.Fields{"command": cmd.Name})
	}
}

func (a *DiscordGatewayAdapter) rootContext() context.Context {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.baseCtx
}
