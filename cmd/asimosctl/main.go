// Command asimosctl - консольный клиент админки Asimos: те же операции,
// что и в веб-консоли, поверх REST API бэкенда.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"asimos_admin/internal/auth"
	"asimos_admin/internal/config"
	"asimos_admin/internal/logger"
	"asimos_admin/internal/services"
	"asimos_admin/internal/validator"
	"asimos_admin/pkg/apiclient"
	"asimos_admin/pkg/apperrors"
)

// command - подкоманда: args - аргументы после имени команды.
type command struct {
	usage string
	run   func(ctx context.Context, app *cli, args []string) error
}

var commands map[string]command

// заполняется в init: команды читают из неё usage
func init() {
	commands = map[string]command{
		"login":           {"login -email <email> [-password <p>]", runLogin},
		"logout":          {"logout", runLogout},
		"whoami":          {"whoami", runWhoami},
		"dashboard":       {"dashboard", runDashboard},
		"users":           {"users [-q <text>] [-role seeker|employer]", runUsers},
		"user-update":     {"user-update <id> [-role] [-full-name] [-company] [-phone]", runUserUpdate},
		"user-status":     {"user-status <id> <pending|active|suspended>", runUserStatus},
		"user-delete":     {"user-delete <id>", runUserDelete},
		"jobs":            {"jobs [-q <text>]", runJobs},
		"job":             {"job <id>", runJob},
		"job-approve":     {"job-approve <id>", runJobApprove},
		"job-status":      {"job-status <id> <pending|open|closed>", runJobStatus},
		"job-delete":      {"job-delete <id>", runJobDelete},
		"categories":      {"categories [-q <text>]", runCategories},
		"category-create": {"category-create -name <n> [-slug] [-sort] [-parent <id>] [-inactive]", runCategoryCreate},
		"category-delete": {"category-delete <id>", runCategoryDelete},
		"events":          {"events [-type <t>] [-actor <id>]", runEvents},
		"map-areas":       {"map-areas [-category <name>]", runMapAreas},
		"tickets":         {"tickets", runTickets},
		"ticket":          {"ticket <id>", runTicket},
		"reply":           {"reply <id> <message>", runReply},
		"content":         {"content [terms|privacy]", runContent},
		"content-save":    {"content-save <slug> -title <t> (-body <text> | -body-file <path>)", runContentSave},
	}
}

// cli - окружение команды: сервисы, хранилище токена и вывод.
type cli struct {
	cfg      *config.Config
	store    auth.TokenStore
	services *services.ServiceContainer
	out      *printer
}

func main() {
	var (
		configFile = flag.String("config", "", "Configuration file path (default: CONFIG_PATH or config/config.yaml)")
		output     = flag.String("output", "text", "Output format: text, json")
		apiURL     = flag.String("api", "", "API base URL (overrides config)")
		verbose    = flag.Bool("verbose", false, "Log API calls to stderr")
		help       = flag.Bool("help", false, "Show help message")
	)
	flag.Usage = printUsage
	flag.Parse()

	if *help || flag.NArg() == 0 {
		printUsage()
		os.Exit(0)
	}

	cmd, ok := commands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", flag.Arg(0))
		printUsage()
		os.Exit(2)
	}
	if *output != "text" && *output != "json" {
		fmt.Fprintf(os.Stderr, "Unknown output format: %s\n", *output)
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fatal(err)
	}
	if *apiURL != "" {
		cfg.API.BaseURL = *apiURL
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger.InitWithWriter(cfg.Server.Env, os.Stderr, level)

	app, err := newCLI(cfg, *output, os.Stdout)
	if err != nil {
		fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.run(ctx, app, flag.Args()[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fatal(err)
	}
}

func newCLI(cfg *config.Config, output string, w io.Writer) (*cli, error) {
	store := auth.NewFileStore(cfg.TokenFilePath())
	client, err := apiclient.New(cfg.API.BaseURL,
		apiclient.WithTimeout(cfg.APITimeout()),
		apiclient.WithRetries(cfg.API.Retries, 300*time.Millisecond),
		apiclient.WithTokenSource(store),
		apiclient.WithUserAgent("asimosctl"),
	)
	if err != nil {
		return nil, err
	}
	return &cli{
		cfg:      cfg,
		store:    store,
		services: services.NewServiceContainer(cfg, client, validator.New()),
		out:      newPrinter(w, output == "json"),
	}, nil
}

// fatal печатает сообщение для пользователя: у AppError - его текст.
func fatal(err error) {
	msg := err.Error()
	if appErr, ok := apperrors.AsAppError(err); ok {
		msg = appErr.Message
		if apperrors.IsUnauthorized(err) {
			msg += " (asimosctl login)"
		}
	}
	fmt.Fprintln(os.Stderr, "Error:", msg)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: asimosctl [-config path] [-output text|json] [-api url] <command> [args]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s\n", commands[name].usage)
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment: API_BASE_URL, ASIMOS_TOKEN_FILE, ASIMOS_PASSWORD")
}

// parseFlags разбирает флаги команды; позиционные аргументы допускаются
// как до, так и после флагов.
func parseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

// needArgs проверяет число позиционных аргументов.
func needArgs(name string, args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("usage: asimosctl %s", commands[name].usage)
	}
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: asimosctl %s\n", commands[name].usage)
		fs.PrintDefaults()
	}
	return fs
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
