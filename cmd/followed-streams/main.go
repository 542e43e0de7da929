package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"

	"github.com/golden-vcr/twitchapi/helix"
	"github.com/golden-vcr/twitchapi/internal/twitchauth"
)

type Config struct {
	TwitchClientId        string `env:"TWITCH_CLIENT_ID" required:"true"`
	TwitchClientSecret    string `env:"TWITCH_CLIENT_SECRET" required:"true"`
	TwitchUserAccessToken string `env:"TWITCH_USER_ACCESS_TOKEN" required:"true"`
}

func main() {
	var pageSize int
	var maxPages int
	flag.IntVar(&pageSize, "page-size", 20, "Number of streams to request per page (at most 100)")
	flag.IntVar(&maxPages, "max-pages", 0, "Stop after this many pages; 0 follows every page")
	flag.Parse()

	// Parse config from environment variables
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("error loading .env file: %v", err)
	}
	config := Config{}
	if err := env.Set(&config); err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	// Validate the user's access token, ensuring that it was issued to our client and
	// that it carries the scope required to list followed streams
	authenticator, err := twitchauth.NewAuthenticator(config.TwitchClientId, config.TwitchClientSecret, nil)
	if err != nil {
		log.Fatalf("Failed to initialize Twitch authenticator: %v", err)
	}
	req := helix.NewGetFollowedStreamsRequest("")
	creds, info, err := authenticator.UserCredentials(config.TwitchUserAccessToken, req.Scope())
	if err != nil {
		log.Fatalf("Failed to validate user access token: %v", err)
	}
	req.UserID = info.UserID
	fmt.Printf("Streams followed by %s (token expires in %s):\n\n", info.Login, info.ExpiresIn)

	helixClient, err := helix.NewClient(helix.Options{})
	if err != nil {
		log.Fatalf("Failed to initialize Twitch API client: %v", err)
	}

	// Follow the cursor through every page of results
	ctx := context.Background()
	var opts []helix.PagerOption
	if maxPages > 0 {
		opts = append(opts, helix.WithMaxPages(maxPages))
	}
	pager := helix.NewPager[[]helix.Stream](helixClient, req.WithFirst(pageSize), creds, opts...)
	var streams []helix.Stream
	for pager.Next(ctx) {
		streams = append(streams, pager.Page().Data...)
	}
	if err := pager.Err(); err != nil {
		if !errors.Is(err, helix.ErrPageLimit) {
			log.Fatalf("Failed to get followed streams: %v", err)
		}
		fmt.Printf("Stopped after %d pages.\n", pager.Pages())
	}

	// Look up the games being played, so we can show the canonical name of each one
	games, err := getGames(ctx, helixClient, creds, streams)
	if err != nil {
		log.Fatalf("Failed to get games: %v", err)
	}
	for _, stream := range streams {
		printStream(stream, games[stream.GameID])
	}
	fmt.Printf("%d live streams.\n", len(streams))
}

// maxGamesPerRequest is the number of IDs that Get Games accepts in a single request
const maxGamesPerRequest = 100

// getGames resolves the distinct games being played in the given streams, keyed by ID
func getGames(ctx context.Context, c *helix.Client, creds helix.Credentials, streams []helix.Stream) (map[string]helix.Game, error) {
	ids := make([]string, 0, len(streams))
	seen := make(map[string]struct{})
	for _, stream := range streams {
		if stream.GameID == "" {
			continue
		}
		if _, ok := seen[stream.GameID]; !ok {
			seen[stream.GameID] = struct{}{}
			ids = append(ids, stream.GameID)
		}
	}

	games := make(map[string]helix.Game, len(ids))
	for len(ids) > 0 {
		n := min(len(ids), maxGamesPerRequest)
		r, err := helix.Send[[]helix.Game](ctx, c, helix.NewGetGamesRequest(ids[:n]...), creds)
		if err != nil {
			return nil, err
		}
		for _, game := range r.Data {
			games[game.ID] = game
		}
		ids = ids[n:]
	}
	return games, nil
}

func printStream(stream helix.Stream, game helix.Game) {
	gameName := game.Name
	if gameName == "" {
		gameName = stream.GameName
	}
	uptime := time.Since(stream.StartedAt).Truncate(time.Minute)
	fmt.Printf("%s playing %s for %d viewers (live for %s)\n", stream.UserName, gameName, stream.ViewerCount, uptime)
	fmt.Printf("    %s\n\n", stream.Title)
}
