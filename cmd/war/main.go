package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/war/application"
	"github.com/luca-patrignani/war/client"
	"github.com/luca-patrignani/war/config"
)

var (
	logLevel  string
	serverCfg config.Server
	clientCfg = config.Client{Count: 1, Limit: client.DefaultLimit}

	rootCmd = &cobra.Command{
		Use:               "war",
		Short:             "Plays the card game War over TCP.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupLogger,
	}

	serverCmd = &cobra.Command{
		Use:   "server <host> <port>",
		Short: "Starts a War server.",
		Args:  cobra.ExactArgs(2),
		RunE:  runServer,
	}

	clientCmd = &cobra.Command{
		Use:   "client <host> <port>",
		Short: "Plays one game against a War server.",
		Args:  cobra.ExactArgs(2),
		RunE:  runClient,
	}

	clientsCmd = &cobra.Command{
		Use:   "clients <host> <port> <count>",
		Short: "Plays count concurrent games against a War server.",
		Args:  cobra.ExactArgs(3),
		RunE:  runClients,
	}
)

func setupLogger(*cobra.Command, []string) error {
	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level))))
	return nil
}

func parseLevel(s string) (pterm.LogLevel, error) {
	switch s {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "warn":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	default:
		return pterm.LogLevelDisabled, fmt.Errorf("unknown log level %q", s)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	addr, err := hostPort(args[0], args[1])
	if err != nil {
		return err
	}
	serverCfg.Addr = addr
	if err := config.Validate(serverCfg); err != nil {
		return err
	}
	printBanner()
	srv := application.NewServer(addr,
		application.WithRoundTimeout(serverCfg.RoundTimeout),
		application.WithHandshakeTimeout(serverCfg.HandshakeTimeout),
		application.WithMaxGames(serverCfg.MaxGames),
		application.WithLogger(slog.Default()),
	)
	return srv.ListenAndServe(cmd.Context())
}

func runClient(cmd *cobra.Command, args []string) error {
	addr, err := hostPort(args[0], args[1])
	if err != nil {
		return err
	}
	clientCfg.Addr = addr
	if err := config.Validate(clientCfg); err != nil {
		return err
	}
	spinner, _ := pterm.DefaultSpinner.Start("Waiting for an opponent on " + addr + " ...")
	res, err := newClient().Play(cmd.Context())
	if err != nil {
		spinner.Fail(err.Error())
		return err
	}
	spinner.Success("Game complete, I " + string(res.Verdict()))
	printResult(res)
	return nil
}

func runClients(cmd *cobra.Command, args []string) error {
	addr, err := hostPort(args[0], args[1])
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("parse client count %q: %w", args[2], err)
	}
	clientCfg.Addr = addr
	clientCfg.Count = count
	if err := config.Validate(clientCfg); err != nil {
		return err
	}
	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Playing %d games against %s ...", count, addr))
	summary := newClient().RunMany(cmd.Context(), clientCfg.Count, clientCfg.Limit)
	if summary.Failed > 0 {
		spinner.Warning(fmt.Sprintf("%d of %d games failed", summary.Failed, count))
	} else {
		spinner.Success(fmt.Sprintf("%d completed clients", summary.Completed))
	}
	printSummary(summary)
	return nil
}

func newClient() *client.Client {
	return client.New(clientCfg.Addr,
		client.WithDialTimeout(clientCfg.DialTimeout),
		client.WithLogger(slog.Default()),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "debug", "log level (trace|debug|info|warn|error)")

	serverCmd.Flags().DurationVar(&serverCfg.RoundTimeout, "round-timeout", 0, "kill a game whose round takes longer than this (0 disables)")
	serverCmd.Flags().DurationVar(&serverCfg.HandshakeTimeout, "handshake-timeout", 0, "close a connection that sends no opening frame within this time (0 disables)")
	serverCmd.Flags().Int64Var(&serverCfg.MaxGames, "max-games", 0, "maximum number of games played at once (0 means no limit)")

	for _, cmd := range []*cobra.Command{clientCmd, clientsCmd} {
		cmd.Flags().DurationVar(&clientCfg.DialTimeout, "dial-timeout", 10*time.Second, "time allowed to connect to the server")
	}
	clientsCmd.Flags().IntVar(&clientCfg.Limit, "limit", client.DefaultLimit, "maximum number of games in flight")

	rootCmd.AddCommand(
		serverCmd,
		clientCmd,
		clientsCmd,
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
