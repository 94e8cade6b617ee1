// ABOUTME: Admin CLI for the storefront back office
// ABOUTME: Manages product records, order status, and the admin surface flag

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/brightcart/storefront/internal/catalog"
	"github.com/brightcart/storefront/internal/config"
	"github.com/brightcart/storefront/internal/flags"
	"github.com/brightcart/storefront/internal/inventory"
	"github.com/brightcart/storefront/internal/orders"
	"github.com/brightcart/storefront/internal/persist"
	"github.com/brightcart/storefront/internal/view"
)

const banner = `
     _                 __                 _
 ___| |_ ___  _ __ ___ / _|_ __ ___  _ __ | |_
/ __| __/ _ \| '__/ _ \ |_| '__/ _ \| '_ \| __|
\__ \ || (_) | | |  __/  _| | | (_) | | | | |_
|___/\__\___/|_|  \___|_| |_|  \___/|_| |_|\__|  admin
`

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "products":
		err = cmdProducts(ctx, args)
	case "orders":
		err = cmdOrders(ctx, args)
	case "flag":
		err = cmdFlag(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: storefront-admin <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  products list [flags]              List the merged catalog")
	fmt.Println("  products add [flags]               Create a local product")
	fmt.Println("  products update <id> [flags]       Update a product (remote edits last one session)")
	fmt.Println("  products delete <id>               Delete a product from the merged view")
	fmt.Println("  orders list [flags]                List orders (seeds demo data on first run)")
	fmt.Println("  orders set-status <id> <status>    Move an order to pending, shipped, or delivered")
	fmt.Println("  orders counts                      Show per-status order counts and revenue")
	fmt.Println("  flag admin <on|off>                Toggle the admin surface")
}

// getConfigPath returns the path to the storefront config file.
// Priority: STOREFRONT_CONFIG env var > XDG_CONFIG_HOME/storefront/config.yaml > ~/.config/storefront/config.yaml
func getConfigPath() string {
	if envPath := os.Getenv("STOREFRONT_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "storefront", "config.yaml")
}

// getDataPath returns the path to the storefront data directory.
func getDataPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "data" // fallback
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataDir, "storefront")
}

// backOffice bundles the data layer the admin surface works against.
type backOffice struct {
	cfg        *config.Config
	gateway    persist.Gateway
	client     *catalog.Client
	collection *inventory.Collection
	orders     *orders.Collection
	flags      *flags.Flags
}

func openBackOffice() (*backOffice, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	setupLogger(cfg.Logging)

	gateway, err := persist.NewSQLiteGateway(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	client := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	overlay := inventory.NewOverlay(gateway)

	return &backOffice{
		cfg:        cfg,
		gateway:    gateway,
		client:     client,
		collection: inventory.NewCollection(overlay, client),
		orders:     orders.NewCollection(gateway),
		flags:      flags.New(gateway),
	}, nil
}

func (b *backOffice) close() {
	b.collection.Close()
	b.gateway.Close()
}

// ensureOrders seeds the demo order set on first run, drawing items from
// the currently known product collection.
func (b *backOffice) ensureOrders(ctx context.Context) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seeder := orders.NewSeeder(b.client, rng, b.cfg.Orders.SeedCount)
	b.orders.EnsureSeeded(ctx, seeder, b.collection.All())
}

func loadConfig() (*config.Config, error) {
	configPath := getConfigPath()
	if _, err := os.Stat(configPath); err == nil {
		return config.Load(configPath)
	}

	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(getDataPath(), "storefront.db")
	cfg.Catalog.BaseURL = config.DefaultBaseURL
	cfg.Catalog.Timeout = config.DefaultTimeout
	cfg.Catalog.CacheTTL = config.DefaultCacheTTL
	cfg.Catalog.CacheSize = config.DefaultCacheSize
	cfg.Listing.PageSize = config.DefaultPageSize
	return cfg, nil
}

func setupLogger(cfg config.LoggingConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func cmdProducts(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: storefront-admin products <list|add|update|delete>")
	}

	b, err := openBackOffice()
	if err != nil {
		return err
	}
	defer b.close()

	switch args[0] {
	case "list":
		return productsList(ctx, b, args[1:])
	case "add":
		return productsAdd(b, args[1:])
	case "update":
		return productsUpdate(ctx, b, args[1:])
	case "delete":
		return productsDelete(ctx, b, args[1:])
	default:
		return fmt.Errorf("unknown products command: %s", args[0])
	}
}

func productsList(ctx context.Context, b *backOffice, args []string) error {
	fs := flag.NewFlagSet("products list", flag.ExitOnError)
	sortField := fs.String("sort", view.FieldTitle, "title, category, or price")
	desc := fs.Bool("desc", false, "sort descending")
	pageNum := fs.Int("page", 1, "1-indexed page number")
	fs.Parse(args)

	dir := view.Asc
	if *desc {
		dir = view.Desc
	}

	b.collection.Refresh(ctx)

	page := view.Evaluate(b.collection.All(), view.Spec[catalog.Product]{
		Sort:     view.ProductSort(*sortField, dir),
		Page:     *pageNum,
		PageSize: b.cfg.Listing.PageSize,
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE\tORIGIN")
	for _, p := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\t%s\n", p.ID, truncate(p.Title, 40), p.Category, p.Price, p.Origin)
	}
	w.Flush()

	gray := color.New(color.FgHiBlack)
	gray.Printf("\npage %d of %d (%d products)\n", page.Page, page.TotalPages, page.Count)
	return nil
}

func productsAdd(b *backOffice, args []string) error {
	fs := flag.NewFlagSet("products add", flag.ExitOnError)
	title := fs.String("title", "", "product title")
	price := fs.Float64("price", 0, "product price")
	category := fs.String("category", "", "product category (defaults to uncategorized)")
	description := fs.String("description", "", "product description")
	image := fs.String("image", "", "product image URL")
	fs.Parse(args)

	if *title == "" {
		return fmt.Errorf("-title is required")
	}

	p := b.collection.Add(inventory.AddPayload{
		Title:       *title,
		Price:       *price,
		Category:    *category,
		Description: *description,
		Image:       *image,
	})

	color.Green("Created %s", p.ID)
	return nil
}

func productsUpdate(ctx context.Context, b *backOffice, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: storefront-admin products update <id> [flags]")
	}
	id := args[0]

	fs := flag.NewFlagSet("products update", flag.ExitOnError)
	title := fs.String("title", "", "new title")
	price := fs.String("price", "", "new price")
	category := fs.String("category", "", "new category")
	description := fs.String("description", "", "new description")
	image := fs.String("image", "", "new image URL")
	fs.Parse(args[1:])

	var patch inventory.Patch
	if *title != "" {
		patch.Title = title
	}
	if *price != "" {
		parsed, err := strconv.ParseFloat(*price, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", *price)
		}
		patch.Price = &parsed
	}
	if *category != "" {
		patch.Category = category
	}
	if *description != "" {
		patch.Description = description
	}
	if *image != "" {
		patch.Image = image
	}

	b.collection.Refresh(ctx)

	p, ok := b.collection.Get(id)
	if !ok {
		return fmt.Errorf("product %s not found", id)
	}

	b.collection.Update(id, patch)

	if p.Origin == catalog.OriginRemote {
		color.Yellow("Updated %s (remote product: the edit lasts this session only)", id)
	} else {
		color.Green("Updated %s", id)
	}
	return nil
}

func productsDelete(ctx context.Context, b *backOffice, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: storefront-admin products delete <id>")
	}

	b.collection.Refresh(ctx)

	p, ok := b.collection.Get(args[0])
	if !ok {
		return fmt.Errorf("product %s not found", args[0])
	}

	b.collection.Delete(args[0])

	if p.Origin == catalog.OriginRemote {
		color.Yellow("Hid remote product %s for this session", args[0])
	} else {
		color.Green("Deleted %s", args[0])
	}
	return nil
}

func cmdOrders(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: storefront-admin orders <list|set-status|counts>")
	}

	b, err := openBackOffice()
	if err != nil {
		return err
	}
	defer b.close()

	switch args[0] {
	case "list":
		return ordersList(ctx, b, args[1:])
	case "set-status":
		return ordersSetStatus(ctx, b, args[1:])
	case "counts":
		return ordersCounts(ctx, b)
	default:
		return fmt.Errorf("unknown orders command: %s", args[0])
	}
}

func ordersList(ctx context.Context, b *backOffice, args []string) error {
	fs := flag.NewFlagSet("orders list", flag.ExitOnError)
	status := fs.String("status", "", "filter by pending, shipped, or delivered")
	sortField := fs.String("sort", view.FieldDate, "customer, total, or date")
	asc := fs.Bool("asc", false, "sort ascending (default descending)")
	pageNum := fs.Int("page", 1, "1-indexed page number")
	fs.Parse(args)

	dir := view.Desc
	if *asc {
		dir = view.Asc
	}

	b.collection.Refresh(ctx)
	b.ensureOrders(ctx)

	page := view.Evaluate(b.orders.Orders(), view.Spec[orders.Order]{
		Filters: []view.Predicate[orders.Order]{
			view.OrderStatus(orders.Status(*status)),
		},
		Sort:     view.OrderSort(*sortField, dir),
		Page:     *pageNum,
		PageSize: b.cfg.Listing.PageSize,
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCUSTOMER\tITEMS\tTOTAL\tSTATUS\tCREATED")
	for _, o := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%d\t$%.2f\t%s\t%s\n",
			o.ID, o.Customer.Name, len(o.Items), o.Total, o.Status,
			o.CreatedAt.Format("2006-01-02"))
	}
	w.Flush()

	gray := color.New(color.FgHiBlack)
	gray.Printf("\npage %d of %d (%d orders)\n", page.Page, page.TotalPages, page.Count)
	return nil
}

func ordersSetStatus(ctx context.Context, b *backOffice, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: storefront-admin orders set-status <id> <status>")
	}

	status := orders.Status(args[1])
	if !status.Valid() {
		return fmt.Errorf("invalid status %q (want pending, shipped, or delivered)", args[1])
	}

	b.ensureOrders(ctx)

	if _, ok := b.orders.Get(args[0]); !ok {
		return fmt.Errorf("order %s not found", args[0])
	}

	b.orders.SetStatus(args[0], status)
	color.Green("Order %s is now %s", args[0], status)
	return nil
}

func ordersCounts(ctx context.Context, b *backOffice) error {
	b.ensureOrders(ctx)

	counts := b.orders.StatusCounts()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tCOUNT")
	for _, status := range orders.Statuses {
		fmt.Fprintf(w, "%s\t%d\n", status, counts[status])
	}
	w.Flush()

	bold := color.New(color.Bold)
	bold.Printf("\nRevenue: $%.2f\n", b.orders.Revenue())
	return nil
}

func cmdFlag(args []string) error {
	if len(args) < 2 || args[0] != "admin" {
		return fmt.Errorf("usage: storefront-admin flag admin <on|off>")
	}

	b, err := openBackOffice()
	if err != nil {
		return err
	}
	defer b.close()

	switch args[1] {
	case "on":
		b.flags.SetAdminAccess(true)
		color.Green("Admin surface enabled")
	case "off":
		b.flags.SetAdminAccess(false)
		color.Yellow("Admin surface disabled")
	default:
		return fmt.Errorf("usage: storefront-admin flag admin <on|off>")
	}
	return nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-1]) + "…"
}
