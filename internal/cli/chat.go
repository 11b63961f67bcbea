package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mavenly/guru/internal/chat"
	"github.com/mavenly/guru/internal/config"
	"github.com/mavenly/guru/internal/llm"
	"github.com/mavenly/guru/internal/persona"
	"github.com/mavenly/guru/internal/research"
	"github.com/mavenly/guru/internal/store"
)

// maxToolHops bounds how many tool round trips one user turn may trigger
// before the conversation is handed back to the user.
const maxToolHops = 3

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive conversation with an expert",
	RunE:  runChat,
}

var (
	flagPersona string
	flagUserID  string
)

func init() {
	chatCmd.Flags().StringVarP(&flagPersona, "persona", "p", "", "Exact expert name, e.g. \"Claude Hopkins\"")
	chatCmd.Flags().StringVarP(&flagUserID, "user", "u", "local", "User id for memory lookups")
	chatCmd.MarkFlagRequired("persona")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, log := setup()

	p, ok := persona.Default().Get(flagPersona)
	if !ok {
		return fmt.Errorf("unknown persona %q; run `guru personas` to list the catalogue", flagPersona)
	}

	fwd := chat.NewForwarder(llm.NewClient(), p)
	tools := buildTools(cfg, log)
	fwd.Tools = toolList(tools, p)

	fmt.Printf("Chatting with %s, %s. Ctrl-D or /quit to leave.\n\n", p.Name, p.Title)

	var history []llm.Message
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "/quit" || input == "/exit" {
			break
		}

		// Trigger phrases get the canned aside immediately, before the
		// model reply arrives.
		if reaction := p.React(input); reaction != "" {
			fmt.Printf("\n%s\n", reaction)
		}

		reply, err := converse(cmd.Context(), fwd, tools, &history, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Printf("\n%s\n\n", reply)
	}
	fmt.Println()
	return scanner.Err()
}

// converse runs one user turn, resolving tool requests inline: when the
// model asks for a tool, the tool runs locally and its findings go back as
// the next user message until the model produces plain text or the hop
// budget runs out.
func converse(ctx context.Context, fwd *chat.Forwarder, tools map[string]research.Tool, history *[]llm.Message, input string) (string, error) {
	message := input
	for hop := 0; ; hop++ {
		raw, err := fwd.Chat(ctx, *history, message, flagUserID)
		if err != nil {
			return "", err
		}
		*history = append(*history,
			llm.Message{Role: "user", Content: message},
			llm.Message{Role: "assistant", Content: raw})

		reply := chat.ParseReply(raw)
		if reply.Kind != chat.ReplyToolRequest || hop >= maxToolHops {
			return reply.Text, nil
		}

		if reply.Text != "" {
			fmt.Printf("\n%s\n", reply.Text)
		}
		message = runTool(ctx, tools, reply)
	}
}

func runTool(ctx context.Context, tools map[string]research.Tool, reply chat.Reply) string {
	tool, ok := tools[reply.Tool]
	if !ok {
		return fmt.Sprintf("TOOL RESULT: no tool named %q is available. Answer from your own knowledge.", reply.Tool)
	}

	fmt.Printf("  [running %s: %s]\n", reply.Tool, reply.Argument)
	res, err := tool.Run(ctx, reply.Argument)
	if err != nil {
		return fmt.Sprintf("TOOL RESULT: %s failed (%v). Answer from your own knowledge.", reply.Tool, err)
	}
	data, _ := json.Marshal(res)
	return "TOOL RESULT:\n" + string(data)
}

// buildTools assembles the research tools the current configuration can
// actually serve. Missing API keys drop the tools that need them.
func buildTools(cfg config.Config, log *slog.Logger) map[string]research.Tool {
	tools := make(map[string]research.Tool)

	if cfg.PerplexityAPIKey != "" {
		px := research.NewPerplexityClient(cfg.PerplexityAPIKey)
		trend := research.NewTrendAnalysis(px)
		news := research.NewNewsMonitor(px)
		tools[trend.Name()] = trend
		tools[news.Name()] = news
	} else {
		log.Warn("PERPLEXITY_API_KEY not set, trend and news tools disabled")
	}

	yt := research.NewYouTubeClient(cfg.YouTubeAPIKey)
	if yt.Configured() {
		ytr := research.NewYouTubeResearch(yt)
		tools[ytr.Name()] = ytr
	} else {
		log.Warn("YOUTUBE_API_KEY not set, youtube research disabled")
	}

	if st, err := store.Open(cfg.DBPath); err == nil {
		mem := research.NewUserMemoryTool(st, nil)
		tools[mem.Name()] = mem
	} else {
		log.Warn("could not open database, memory tool disabled", "error", err)
	}

	return tools
}

// toolList flattens the tool map plus the persona's own story bank into the
// prompt-assembly order.
func toolList(tools map[string]research.Tool, p *persona.Persona) []research.Tool {
	sb := research.NewStoryBankTool(p)
	out := []research.Tool{sb}
	tools[sb.Name()] = sb
	for _, name := range []string{"trend_analysis", "news_monitor", "youtube_research", "user_memory"} {
		if t, ok := tools[name]; ok {
			out = append(out, t)
		}
	}
	return out
}
