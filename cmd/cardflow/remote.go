package main

import (
	"context"
	"time"

	"cardflow/internal/cache"
	"cardflow/internal/remote"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const remoteTokenKey = "remote_token"

func (a *app) remoteCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "remote", Short: "Talk to a CardFlow server, using the Redis cache when it is offline"}

	var email, password string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the server and remember the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done := a.remoteClient(cmd.Context())
			defer done()
			session, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := a.repos.Settings.Set(cmd.Context(), remoteTokenKey, session.Token); err != nil {
				return err
			}
			a.printf("logged in to %s as %s\n", a.cfg.APIURL, session.User.Email)
			return nil
		},
	}
	loginCmd.Flags().StringVarP(&email, "email", "e", "", "Email (required)")
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	workspacesCmd := &cobra.Command{
		Use:   "workspaces",
		Short: "List workspaces on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done := a.remoteClient(cmd.Context())
			defer done()
			workspaces, err := client.Workspaces(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(workspaces)
		},
	}

	var workspaceID string
	boardsCmd := &cobra.Command{
		Use:   "boards",
		Short: "List boards on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done := a.remoteClient(cmd.Context())
			defer done()
			boards, err := client.Boards(cmd.Context(), workspaceID)
			if err != nil {
				return err
			}
			return a.printJSON(boards)
		},
	}
	boardsCmd.Flags().StringVarP(&workspaceID, "workspace", "w", "", "Only boards of this workspace")

	var boardID string
	cardsCmd := &cobra.Command{
		Use:   "cards",
		Short: "List a board's cards and links on the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done := a.remoteClient(cmd.Context())
			defer done()
			cards, err := client.Cards(cmd.Context(), boardID)
			if err != nil {
				return err
			}
			links, err := client.Links(cmd.Context(), boardID)
			if err != nil {
				return err
			}
			return a.printJSON(map[string]any{"cards": cards, "links": links})
		},
	}
	cardsCmd.Flags().StringVarP(&boardID, "board", "b", "", "Board ID (required)")
	_ = cardsCmd.MarkFlagRequired("board")

	pendingCmd := &cobra.Command{
		Use:   "pending",
		Short: "Show changes queued while the server was unreachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, done := a.redisCache(cmd.Context())
			defer done()
			if store == nil {
				a.printf("no cache configured\n")
				return nil
			}
			changes, err := store.PendingChanges(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(changes)
		},
	}

	cmd.AddCommand(loginCmd, workspacesCmd, boardsCmd, cardsCmd, a.remoteBoardCmd(), a.remoteExportCmd(), a.remoteCardCmd(), pendingCmd)
	return cmd
}

// remoteClient builds a server client with the saved token. The returned func
// releases the Redis connection.
func (a *app) remoteClient(ctx context.Context) (*remote.Client, func()) {
	store, done := a.redisCache(ctx)
	client := remote.NewClient(a.cfg.APIURL, store, 30*time.Second, a.log)
	if token, ok, err := a.repos.Settings.Get(ctx, remoteTokenKey); err == nil && ok {
		client.SetToken(token)
	}
	return client, done
}

// redisCache connects to the configured Redis. It returns nil when Redis is
// unreachable so callers run without offline fallback.
func (a *app) redisCache(ctx context.Context) (*cache.RedisCache, func()) {
	if a.cfg.Redis.Addr == "" {
		return nil, func() {}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		a.log.Warn().Err(err).Str("addr", a.cfg.Redis.Addr).Msg("redis unavailable, offline cache disabled")
		_ = client.Close()
		return nil, func() {}
	}
	return cache.NewRedisCache(client, a.cfg.Redis.CacheTTL), func() { _ = client.Close() }
}
