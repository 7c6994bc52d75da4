package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrijs2005/makanscan/internal/client/api"
	"github.com/dmitrijs2005/makanscan/internal/client/config"
	"github.com/dmitrijs2005/makanscan/internal/client/session"
	"github.com/dmitrijs2005/makanscan/internal/client/storage"
	"github.com/dmitrijs2005/makanscan/internal/filex"
	"github.com/dmitrijs2005/makanscan/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	api     *api.Client
	session *session.Store
	router  *Router
	metrics *prometheus.Registry
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
}

// NewApp opens the session database at c.StoragePath and wires the client
// stack on top of it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if err := filex.EnsureParentDir(c.StoragePath); err != nil {
		return nil, fmt.Errorf("prepare storage: %w", err)
	}
	db, err := storage.Open(ctx, c.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	a := newApp(c, logger, storage.NewSQLiteStorage(db), os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, logger logging.Logger, store storage.Storage, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}

	reg := prometheus.NewRegistry()
	metrics := api.NewMetrics(reg)

	client := api.New(c.BaseURL, store,
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(logger.With("component", "api")),
		api.WithResponseInterceptor(api.LogExchanges(logger.With("component", "api"))),
		api.WithResponseInterceptor(metrics.Interceptor()),
	)
	sess := session.NewStore(client, store, logger)

	return &App{
		config:  c,
		logger:  logger,
		api:     client,
		session: sess,
		router:  NewRouter(sess, logger),
		metrics: reg,
		reader:  bufio.NewReader(in),
		out:     out,
		now:     time.Now,
	}
}

// Run restores the session and then serves the REPL until the user exits or
// input ends. Cancelling ctx aborts the running command and ends the loop at
// the next line.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	unsubscribe := a.session.Subscribe(a.logSessionChange)
	defer unsubscribe()

	a.router.Start(ctx)
	if err := a.router.Err(); err != nil {
		return err
	}

	printlnFn("Welcome to MakanScan (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

// Close releases the session database, if the app owns one.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func (a *App) route() Route {
	return a.router.Current()
}

// status renders the prompt suffix, e.g. " (siti@example.com)".
func (a *App) status() string {
	st := a.session.Snapshot()
	if !st.IsAuthenticated || st.User == nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", st.User.Email)
}

func (a *App) logSessionChange(st session.State) {
	kv := []any{"authenticated", st.IsAuthenticated, "loading", st.IsLoading}
	if st.User != nil {
		kv = append(kv, "user_id", st.User.ID)
	}
	a.logger.Debug(context.Background(), "session changed", kv...)
}

func (a *App) commands(r Route) []command {
	switch r {
	case RouteAuth:
		return []command{
			{name: "login", usage: "login", run: a.Login},
			{name: "register", usage: "register", run: a.Register},
		}
	case RouteMain:
		return []command{
			{name: "foods", usage: "foods [page]", run: a.Foods},
			{name: "food", usage: "food <id>", run: a.Food},
			{name: "addfood", usage: "addfood", run: a.AddFood},
			{name: "rmfood", usage: "rmfood <id>", run: a.RemoveFood},
			{name: "scan", usage: "scan <image-file>", run: a.Scan},
			{name: "expiring", usage: "expiring [days]", run: a.Expiring},
			{name: "stats", usage: "stats", run: a.Stats},
			{name: "journal", usage: "journal [page]", run: a.Journal},
			{name: "eat", usage: "eat", run: a.Eat},
			{name: "recipes", usage: "recipes [query]", run: a.Recipes},
			{name: "cart", usage: "cart", run: a.Cart},
			{name: "addcart", usage: "addcart", run: a.AddCart},
			{name: "bought", usage: "bought <cart-item-id>", run: a.Bought},
			{name: "points", usage: "points", run: a.Points},
			{name: "vouchers", usage: "vouchers [category]", run: a.Vouchers},
			{name: "redeem", usage: "redeem <voucher-id>", run: a.Redeem},
			{name: "markets", usage: "markets", run: a.Markets},
			{name: "donate", usage: "donate", run: a.Donate},
			{name: "donations", usage: "donations", run: a.Donations},
			{name: "supermarkets", usage: "supermarkets", run: a.Supermarkets},
			{name: "products", usage: "products <supermarket-id> [category]", run: a.Products},
			{name: "orders", usage: "orders [status]", run: a.Orders},
			{name: "pickup", usage: "pickup <order-id>", run: a.Pickup},
			{name: "notifications", usage: "notifications", run: a.Notifications},
			{name: "read", usage: "read <notification-id>", run: a.ReadNotification},
			{name: "requests", usage: "requests", run: a.Requests},
			{name: "whoami", usage: "whoami", run: a.WhoAmI},
			{name: "refresh", usage: "refresh", run: a.Refresh},
			{name: "logout", usage: "logout", run: a.Logout},
		}
	}
	return nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
