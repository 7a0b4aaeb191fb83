package garden_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"

	garden "github.com/tripledoublev/spores.garden-sub000"
	"github.com/tripledoublev/spores.garden-sub000/atid"
	"github.com/tripledoublev/spores.garden-sub000/repo"
)

// Helper to create a garden without logging
func newQuietGarden(opts ...garden.Option) (garden.Garden, error) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return garden.New(append([]garden.Option{garden.WithLogger(logger)}, opts...)...)
}

// ExampleNew demonstrates deriving a visual identity from an account
// identifier. The same identifier always yields the same theme.
func ExampleNew() {
	g, err := newQuietGarden()
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	th := g.Theme("did:plc:abc123")
	fmt.Println(th.Palette.Background)
	fmt.Println(th.Flower.PetalCount)

	// Output:
	// #86e43f
	// 6
}

// ExampleGarden_CSSVariables demonstrates emitting a palette as CSS
// custom properties.
func ExampleGarden_CSSVariables() {
	g, err := newQuietGarden()
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	css := g.CSSVariables("did:plc:abc123")
	lines := strings.Split(css, "\n")
	fmt.Println(lines[0])
	fmt.Println(lines[1])

	// Output:
	// :root {
	//   --background: #86e43f;
}

// ExampleGarden_Migrate demonstrates moving an account's legacy records
// onto the current namespace.
func ExampleGarden_Migrate() {
	ctx := context.Background()
	owner := "did:plc:abc123"

	store := repo.NewMemoryStore(owner)
	_, err := store.PutRecord(ctx, "com.spores.garden.profile", "self", map[string]any{
		"$type":       "com.spores.garden.profile",
		"displayName": "A Gardener",
	})
	if err != nil {
		log.Fatal(err)
	}

	g, err := newQuietGarden(
		garden.WithStore(store),
		garden.WithIdentity(atid.NewStatic(owner)),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	outcome, err := g.Migrate(ctx, owner)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("writes=%d deletes=%d conflicts=%d\n",
		outcome.Writes, outcome.Deletes, outcome.Conflicts)

	// Output: writes=1 deletes=1 conflicts=0
}
