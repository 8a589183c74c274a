// pos is the role-routed terminal client: log in once, then the screen for
// your role refreshes itself until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/laes18/go-restaurant-pos/internal/board"
	"github.com/laes18/go-restaurant-pos/internal/client"
	"github.com/laes18/go-restaurant-pos/internal/config"
	"github.com/laes18/go-restaurant-pos/internal/poller"
	"github.com/laes18/go-restaurant-pos/internal/pos"
	"github.com/laes18/go-restaurant-pos/internal/reports"
	"github.com/laes18/go-restaurant-pos/internal/session"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "log in with this email (otherwise the saved session is used)")
	password := flag.String("password", "", "password for -email")
	logout := flag.Bool("logout", false, "drop the saved session and exit")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	api := client.New(cfg.APIBaseURL)

	path := cfg.SessionFile
	if path == "" {
		path, err = session.DefaultPath()
		if err != nil {
			logger.Fatal("session path", zap.Error(err))
		}
	}
	store := session.NewStore(path)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *logout {
		_ = api.Logout(ctx)
		if err := store.Clear(); err != nil {
			logger.Fatal("clear session", zap.Error(err))
		}
		fmt.Println("logged out")
		return
	}

	rec, err := resolveSession(ctx, api, store, *email, *password)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	api.SetToken(rec.Token)

	view, err := session.LandingView(rec.User.Role)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("signed in as %s (%s), view: %s\n", rec.User.Name, rec.User.Role, view)

	task := poller.Task{Name: string(view), Interval: poller.ListInterval, Log: logger}
	switch view {
	case session.ViewKitchen:
		b := &board.Board{API: api}
		task.Fn = func(ctx context.Context) error { return renderKitchen(ctx, b) }
	case session.ViewCashier:
		task.Fn = func(ctx context.Context) error { return renderCashier(ctx, api) }
	case session.ViewWaiter:
		task.Interval = poller.ReadyInterval
		task.Fn = func(ctx context.Context) error { return renderWaiter(ctx, api) }
	case session.ViewAdmin:
		task.Fn = func(ctx context.Context) error { return renderAdmin(ctx, api) }
	}
	task.Run(ctx)
}

// resolveSession prefers explicit credentials, else the saved record.
func resolveSession(ctx context.Context, api *client.Client, store *session.Store, email, password string) (session.Record, error) {
	if email != "" {
		resp, err := api.Login(ctx, email, password)
		if err != nil {
			return session.Record{}, fmt.Errorf("login: %w", err)
		}
		rec := session.Record{User: resp.User, Token: resp.Token, SavedAt: time.Now().UTC()}
		if err := store.Save(rec); err != nil {
			return session.Record{}, fmt.Errorf("save session: %w", err)
		}
		return rec, nil
	}
	rec, err := store.Load()
	if err != nil {
		return session.Record{}, fmt.Errorf("no session; pass -email/-password (%w)", err)
	}
	return rec, nil
}

func renderKitchen(ctx context.Context, b *board.Board) error {
	orders, err := b.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("--- kitchen board (%d active) ---\n", len(orders))
	now := time.Now()
	for _, o := range orders {
		fmt.Printf("#%-4d table %-6s %-12s %-8s %d dishes\n",
			o.DailyNumber, o.Table, o.Status, pos.PriorityFor(o.CreatedAt, now), len(o.Dishes))
	}
	return nil
}

func renderCashier(ctx context.Context, api *client.Client) error {
	orders, err := api.ListOrders(ctx, client.OrderQuery{Status: pos.StatusServed, UnpaidOnly: true})
	if err != nil {
		return err
	}
	fmt.Printf("--- pending payments (%d orders) ---\n", len(orders))
	for _, o := range orders {
		fmt.Printf("#%-4d table %-6s total %s\n", o.DailyNumber, o.Table, o.Total())
	}
	return nil
}

func renderWaiter(ctx context.Context, api *client.Client) error {
	orders, err := api.ListOrders(ctx, client.OrderQuery{Status: pos.StatusServed, UnpaidOnly: true})
	if err != nil {
		return err
	}
	if len(orders) > 0 {
		fmt.Printf("orders ready to deliver: %d\n", len(orders))
		for _, o := range orders {
			fmt.Printf("  #%-4d table %s\n", o.DailyNumber, o.Table)
		}
	}
	return nil
}

func renderAdmin(ctx context.Context, api *client.Client) error {
	orders, err := api.ListOrders(ctx, client.OrderQuery{})
	if err != nil {
		return err
	}
	payments, err := api.ListPayments(ctx)
	if err != nil {
		return err
	}
	today := reports.FilterPayments(payments, reports.PeriodDay, time.Now())
	fmt.Printf("--- admin: %d orders, %d payments today, %s taken today ---\n",
		len(orders), len(today), reports.Total(today))
	return nil
}
