// Command shop drives the candy shop and the item menu from a terminal.
//
//	shop -player ash -species squirtle
//	shop -player ash -items -party 25:20,7:18
//	shop -player ash -items -party-file party.json
//
// A party file holds the same JSON body as POST /api/v1/players/{id}/items,
// so movesets, compatible TMs, form keys and fusions are all available.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/osse101/RogueMods_Go/internal/bootstrap"
	"github.com/osse101/RogueMods_Go/internal/catalog"
	"github.com/osse101/RogueMods_Go/internal/cheat"
	"github.com/osse101/RogueMods_Go/internal/config"
	"github.com/osse101/RogueMods_Go/internal/domain"
	"github.com/osse101/RogueMods_Go/internal/handler"
	"github.com/osse101/RogueMods_Go/internal/menu"
)

type options struct {
	player    string
	species   string
	items     bool
	party     string
	partyFile string
}

func main() {
	var opts options
	flag.StringVar(&opts.player, "player", "local", "player whose save is edited")
	flag.StringVar(&opts.species, "species", "", "species for the candy shop (name or dex number)")
	flag.BoolVar(&opts.items, "items", false, "open the item menu instead of the shop")
	flag.StringVar(&opts.party, "party", "", "party for the item menu as species:level pairs")
	flag.StringVar(&opts.partyFile, "party-file", "", "JSON party for the item menu, overrides -party")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if _, err := bootstrap.SetupLogger(cfg); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	if err := run(context.Background(), cfg, opts, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run opens the requested menu and drives it. The app is always shut down
// before run returns.
func run(ctx context.Context, cfg *config.Config, opts options, in io.Reader, out io.Writer) error {
	app, err := bootstrap.New(ctx, cfg, cheat.SinkFunc(modifierPrinter(out)))
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer app.Shutdown(ctx)

	nav, err := openMenu(ctx, app, opts)
	if err != nil {
		return err
	}
	if err := drive(ctx, nav, in, out); err != nil {
		return fmt.Errorf("menu failed: %w", err)
	}
	return nil
}

func openMenu(ctx context.Context, app *bootstrap.App, opts options) (*menu.Navigator, error) {
	if opts.items {
		roster, err := loadRoster(opts)
		if err != nil {
			return nil, fmt.Errorf("invalid party: %w", err)
		}
		nav, err := app.Items.Open(ctx, opts.player, roster)
		if err != nil {
			return nil, fmt.Errorf("failed to open item menu: %w", err)
		}
		return nav, nil
	}

	sp, err := app.GameData.FindByName(opts.species)
	if err != nil {
		return nil, fmt.Errorf("unknown species %q: %w", opts.species, err)
	}
	sess, err := app.Sessions.Get(ctx, opts.player)
	if err != nil {
		return nil, fmt.Errorf("failed to load save: %w", err)
	}
	nav, err := app.Shop.OpenShop(ctx, sess, sp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to open shop: %w", err)
	}
	return nav, nil
}

// drive prints each screen and reads one index per line until the menu exits
func drive(ctx context.Context, nav *menu.Navigator, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for nav.State() != menu.Exited {
		printScreen(out, nav)
		if !scanner.Scan() {
			return scanner.Err()
		}
		index, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "enter a number")
			continue
		}
		outcome, err := nav.Select(ctx, index)
		switch {
		case errors.Is(err, domain.ErrInvalidSelection):
			fmt.Fprintln(out, err)
		case err != nil:
			return err
		case outcome.Applied:
			fmt.Fprintln(out, "done")
		}
	}
	return nil
}

func printScreen(out io.Writer, nav *menu.Navigator) {
	fmt.Fprintf(out, "\n%s\n", strings.Join(nav.Breadcrumbs(), " > "))
	for i, e := range nav.Screen() {
		fmt.Fprintf(out, "%3d  %s\n", i, e.Label)
	}
	fmt.Fprint(out, "> ")
}

func modifierPrinter(out io.Writer) func(context.Context, cheat.Modifier) error {
	return func(_ context.Context, m cheat.Modifier) error {
		raw, err := json.Marshal(m)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(raw))
		return err
	}
}

func loadRoster(opts options) (catalog.Roster, error) {
	if opts.partyFile != "" {
		return readPartyFile(opts.partyFile)
	}
	return parseParty(opts.party)
}

// readPartyFile decodes and validates a party in the items request format
func readPartyFile(path string) (catalog.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return catalog.Roster{}, err
	}
	defer f.Close()

	var req handler.OpenItemsRequest
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return catalog.Roster{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := handler.GetValidator().ValidateStruct(&req); err != nil {
		return catalog.Roster{}, fmt.Errorf("%s: %w", path, err)
	}
	return req.Roster(), nil
}

// parseParty reads species:level pairs. Members carry no moves, so TMs and
// form-gated items need a party file.
func parseParty(list string) (catalog.Roster, error) {
	var roster catalog.Roster
	if list == "" {
		return roster, nil
	}
	for i, pair := range strings.Split(list, ",") {
		id, level, ok := strings.Cut(pair, ":")
		if !ok {
			level = "1"
		}
		sp, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			return roster, fmt.Errorf("species %q: %w", id, err)
		}
		lv, err := strconv.Atoi(strings.TrimSpace(level))
		if err != nil {
			return roster, fmt.Errorf("level %q: %w", level, err)
		}
		roster.Party = append(roster.Party, &domain.Creature{ID: i, Species: domain.SpeciesID(sp), Level: lv})
	}
	return roster, nil
}
