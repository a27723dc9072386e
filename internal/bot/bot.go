package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/uxcanvas/promptflow/internal/analyzer"
	"github.com/uxcanvas/promptflow/internal/generator"
	"github.com/uxcanvas/promptflow/internal/models"
	"github.com/uxcanvas/promptflow/internal/storage"
	"github.com/uxcanvas/promptflow/internal/templates"
)

// Defaults fill in the prompt context when a command omits it.
type Defaults struct {
	Tool      string
	Framework string
}

type Bot struct {
	api       *tgbotapi.BotAPI
	storage   storage.Storage
	generator *generator.Generator
	defaults  Defaults
	logger    *zap.Logger
}

func New(token string, storage storage.Storage, generator *generator.Generator, defaults Defaults, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:       api,
		storage:   storage,
		generator: generator,
		defaults:  defaults,
		logger:    logger,
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		go b.handleMessage(update.Message)
	}

	return nil
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	ctx := context.Background()

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	// Plain text gets dissected as-is
	b.analyzeAndReply(ctx, message, message.Text, nil)
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.handleHelp(message)
	case "tools":
		b.handleTools(message)
	case "prompt":
		b.handlePrompt(ctx, message)
	case "history":
		b.handleHistory(ctx, message)
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Use /help to see available commands.")
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	welcome := `Welcome to PromptFlow! 🧭
I turn UX-research methodology prompts into bite-sized chat guidance.

Send me any text and I'll dissect it into readable steps, or use
/prompt <tool> to generate guidance for a research tool first.
Use /help to see all available commands.`

	b.sendMessage(message.Chat.ID, welcome)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	help := `Available commands:
/start - Start the bot
/help - Show this help message
/tools - List the research tools I know
/prompt <tool> - Generate and dissect guidance for a tool
/history - Show your recent analyses

You can also send any text and I'll split it into chat-sized
segments with the right pacing.`

	b.sendMessage(message.Chat.ID, help)
}

func (b *Bot) handleTools(message *tgbotapi.Message) {
	keys := templates.Keys()
	if len(keys) == 0 {
		b.sendMessage(message.Chat.ID, "No tools are configured yet.")
		return
	}

	response := "*Available tools:*\n"
	for _, key := range keys {
		response += escapeMarkdown(key) + "\n"
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, response)
	msg.ParseMode = "MarkdownV2"
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send tools message",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
	}
}

func (b *Bot) handlePrompt(ctx context.Context, message *tgbotapi.Message) {
	tool := strings.TrimSpace(message.CommandArguments())
	if tool == "" {
		tool = b.defaults.Tool
	}

	result := b.generator.Generate(ctx, generator.Request{
		Tool:      tool,
		Framework: b.defaults.Framework,
	})
	if result.Fallback {
		b.sendMessage(message.Chat.ID, "AI generation is unavailable right now, showing the template instead.")
	}

	pctx := &models.PromptContext{
		Framework: b.defaults.Framework,
		Tool:      tool,
	}
	b.analyzeAndReply(ctx, message, result.Text, pctx)

	if err := b.storage.AddTool(ctx, message.From.ID, tool); err != nil {
		b.logger.Error("Failed to save tool",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID),
			zap.String("tool", tool))
	}
	if err := b.storage.AddFramework(ctx, message.From.ID, b.defaults.Framework); err != nil {
		b.logger.Error("Failed to save framework",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID),
			zap.String("framework", b.defaults.Framework))
	}
}

func (b *Bot) analyzeAndReply(ctx context.Context, message *tgbotapi.Message, content string, pctx *models.PromptContext) {
	analysis := analyzer.AnalyzePrompt(content, pctx)
	analysis.ID = uuid.New().String()
	analysis.UserID = message.From.ID

	if err := b.storage.SaveAnalysis(ctx, analysis); err != nil {
		b.logger.Error("Failed to save analysis",
			zap.Error(err),
			zap.String("analysis_id", analysis.ID),
			zap.Int64("user_id", message.From.ID))
		b.sendErrorMessage(message.Chat.ID, "Sorry, I couldn't save that analysis. Please try again.")
		return
	}

	b.sendBubbles(message.Chat.ID, analyzer.ConvertToChatBubbles(analysis))
}

// sendBubbles delivers each bubble as its own message, honoring the
// per-bubble delay so the chat paces like a conversation.
func (b *Bot) sendBubbles(chatID int64, bubbles []models.ChatBubble) {
	for _, bubble := range bubbles {
		if bubble.Content == "" {
			continue
		}
		time.Sleep(time.Duration(bubble.Delay) * time.Millisecond)
		msg := tgbotapi.NewMessage(chatID, bubble.Content)
		if _, err := b.api.Send(msg); err != nil {
			b.logger.Error("Failed to send bubble",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
				zap.String("segment_id", bubble.Metadata.SegmentID))
		}
	}
}

func (b *Bot) handleHistory(ctx context.Context, message *tgbotapi.Message) {
	analyses, err := b.storage.GetUserAnalyses(ctx, message.From.ID, 5, 0)
	if err != nil {
		b.logger.Error("Failed to get user analyses",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendErrorMessage(message.Chat.ID, "Sorry, I couldn't retrieve your history.")
		return
	}

	if len(analyses) == 0 {
		b.sendMessage(message.Chat.ID, "You don't have any analyses yet.")
		return
	}

	response := "*Your recent analyses:*\n\n"
	for _, analysis := range analyses {
		preview := analysis.Content
		if len(preview) > 80 {
			preview = preview[:80] + "…"
		}
		response += fmt.Sprintf("*%s* \\(%d segments\\)\n", escapeMarkdown(string(analysis.Strategy)), len(analysis.Segments))
		response += fmt.Sprintf("_%s_\n\n", escapeMarkdown(preview))
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, response)
	msg.ParseMode = "MarkdownV2"
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send history message",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
	}
}

// Escape special characters for MarkdownV2
func escapeMarkdown(text string) string {
	specialChars := []string{"_", "*", "[", "]", "(", ")", "~", "`", ">", "#", "+", "-", "=", "|", "{", "}", ".", "!"}
	escaped := text
	for _, char := range specialChars {
		escaped = strings.ReplaceAll(escaped, char, "\\"+char)
	}
	return escaped
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "⚠️ "+text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send error message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
