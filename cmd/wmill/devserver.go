package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/rflorenc/windmill-client/internal/api"
	"github.com/rflorenc/windmill-client/pkg/client"
)

func newDevServerCmd(a *app) *cobra.Command {
	var (
		listen     string
		token      string
		user       string
		password   string
		workspaces []string
	)
	cmd := &cobra.Command{
		Use:   "dev-server",
		Short: "Serve an in-memory Windmill API for local testing",
		Long:  "Serve an in-memory subset of the Windmill API. Jobs do not execute: they complete with their arguments as result once their scheduled time is reached.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &api.Server{
				Store:    api.NewStore(user, workspaces...),
				Token:    token,
				Version:  client.APIVersion,
				User:     user,
				Password: password,
				Logger:   a.log,
			}
			srv := &http.Server{
				Addr:              listen,
				Handler:           api.NewRouter(s),
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx := cmd.Context()
			errc := make(chan error, 1)
			go func() { errc <- srv.ListenAndServe() }()
			a.log.Info("dev server listening", "addr", listen, "workspaces", workspaces, "auth", token != "")

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			a.log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&listen, "listen", ":8000", "Address to listen on")
	cmd.Flags().StringVar(&token, "api-token", "", "Require this bearer token; empty disables auth")
	cmd.Flags().StringVar(&user, "user", "admin@windmill.dev", "Email of the single user")
	cmd.Flags().StringVar(&password, "password", "changeme", "Password accepted by /auth/login")
	cmd.Flags().StringSliceVar(&workspaces, "workspaces", []string{"demo"}, "Workspaces to create")
	return cmd
}
