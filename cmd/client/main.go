package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dkurilov/flashdeck/internal/adapter"
	"github.com/dkurilov/flashdeck/internal/client"
	"github.com/dkurilov/flashdeck/internal/config"
	"github.com/dkurilov/flashdeck/internal/localstore"
	"github.com/dkurilov/flashdeck/internal/logger"
	"github.com/dkurilov/flashdeck/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("flashdeck-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	deckClient, err := adapter.NewHTTPDeckClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server client")
	}

	local, err := localstore.New(cfg.Local, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local deck store")
	}

	app := client.NewApp(deckClient, local, log)

	if err = run(context.Background(), app); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// run drives a line-based command loop over the app state container.
func run(ctx context.Context, app *client.App) error {
	if err := app.Refresh(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load decks: %v\n", err)
	}

	fmt.Println(`commands: list | show <id> | create <title> | add <id> <question> | <answer> | remove <id> <cardId> | rename <id> <title> | signin <token> | signout | sync | quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch cmd {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "list":
			printDecks(app.Decks())
		case "show":
			show(app, rest)
		case "create":
			report(app.CreateDeck(ctx, rest, false))
		case "add":
			addCard(ctx, app, rest)
		case "remove":
			removeCard(ctx, app, rest)
		case "rename":
			id, title, _ := strings.Cut(rest, " ")
			report(app.RenameDeck(ctx, id, title))
		case "signin":
			signIn(ctx, app, rest)
		case "signout":
			app.SignOut()
			fmt.Println("signed out, local decks kept")
		case "sync":
			syncDecks(ctx, app)
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}

func show(app *client.App, id string) {
	if err := app.Select(id); err != nil {
		fmt.Println(err)
		return
	}
	deck, _ := app.Selected()
	fmt.Printf("%s (%s, %d cards)\n", deck.Title, deck.Category(), len(deck.Cards))
	for _, card := range deck.Cards {
		fmt.Printf("  [%d] %s | %s\n", card.ID, card.Question, card.Answer)
	}
}

func addCard(ctx context.Context, app *client.App, rest string) {
	id, qa, _ := strings.Cut(rest, " ")
	question, answer, ok := strings.Cut(qa, " | ")
	if !ok {
		fmt.Println("usage: add <id> <question> | <answer>")
		return
	}
	report(app.AddCard(ctx, id, question, answer))
}

func removeCard(ctx context.Context, app *client.App, rest string) {
	id, rawCardID, _ := strings.Cut(rest, " ")
	cardID, err := strconv.ParseInt(strings.TrimSpace(rawCardID), 10, 64)
	if err != nil {
		fmt.Println("usage: remove <id> <cardId>")
		return
	}
	report(app.RemoveCard(ctx, id, cardID))
}

func signIn(ctx context.Context, app *client.App, token string) {
	syncReport, err := app.SignIn(ctx, token)
	if err != nil {
		fmt.Println(err)
		return
	}
	printReport(syncReport)
}

func syncDecks(ctx context.Context, app *client.App) {
	syncReport, err := app.Sync(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	printReport(syncReport)
}

func report(deck models.Deck, err error) {
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s  %s\n", deck.ID, deck.Title)
}

func printDecks(decks []models.Deck) {
	for _, deck := range decks {
		fmt.Printf("%-40s  %-8s  %-7s  %s\n", deck.ID, deck.Category(), deck.SyncStatus, deck.Title)
	}
}

func printReport(r models.SyncReport) {
	for _, outcome := range r.Synced {
		fmt.Printf("synced  %s -> %s\n", outcome.LocalID, outcome.Deck.ID)
	}
	for _, outcome := range r.Failed {
		fmt.Printf("failed  %s: %v\n", outcome.LocalID, outcome.Err)
	}
	if r.Total() == 0 {
		fmt.Println("nothing to sync")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
