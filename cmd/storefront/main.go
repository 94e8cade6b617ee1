// ABOUTME: Entry point for the storefront browsing CLI
// ABOUTME: Lists the merged catalog with filters and drives the session cart

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/brightcart/storefront/internal/cart"
	"github.com/brightcart/storefront/internal/catalog"
	"github.com/brightcart/storefront/internal/config"
	"github.com/brightcart/storefront/internal/inventory"
	"github.com/brightcart/storefront/internal/persist"
	"github.com/brightcart/storefront/internal/render"
	"github.com/brightcart/storefront/internal/view"
)

// Version is set by goreleaser at build time.
var version = "dev"

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
// Priority: XDG_DATA_HOME/storefront > ~/.local/share/storefront
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

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "products":
		err = runProducts(ctx, os.Args[2:])
	case "product":
		err = runProduct(ctx, os.Args[2:])
	case "categories":
		err = runCategories(ctx)
	case "cart":
		err = runCart(ctx, os.Args[2:])
	case "version":
		fmt.Println(version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: storefront <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  products [flags]       List the merged product catalog")
	fmt.Println("  product [-html] <id>   Show one product (optionally as detail-page HTML)")
	fmt.Println("  categories             List catalog categories")
	fmt.Println("  cart add <id>          Add a product to the cart")
	fmt.Println("  cart list              Show cart contents and total")
	fmt.Println("  cart qty <id> <n>      Set a line's quantity (below 1 removes it)")
	fmt.Println("  cart remove <id>       Remove a line")
	fmt.Println("  cart clear             Empty the cart")
	fmt.Println("  version                Print the version")
}

// session bundles the wired-up data layer for one CLI invocation.
type session struct {
	cfg        *config.Config
	gateway    persist.Gateway
	client     *catalog.Client
	collection *inventory.Collection
	cart       *cart.Cart
}

// openSession loads config, opens storage, and builds the merged collection.
// A missing config file falls back to defaults with storage under the data dir.
func openSession() (*session, error) {
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
	client.SetCache(catalog.NewCache(cfg.Catalog.CacheTTL, cfg.Catalog.CacheSize))

	overlay := inventory.NewOverlay(gateway)

	return &session{
		cfg:        cfg,
		gateway:    gateway,
		client:     client,
		collection: inventory.NewCollection(overlay, client),
		cart:       cart.New(gateway),
	}, nil
}

func (s *session) close() {
	s.collection.Close()
	s.gateway.Close()
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

func runProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	search := fs.String("search", "", "substring match on title or description")
	category := fs.String("category", "", "exact category filter")
	minPrice := fs.Float64("min", 0, "minimum price, inclusive")
	maxPrice := fs.Float64("max", 1000000, "maximum price, inclusive")
	sortKey := fs.String("sort", view.SortFeatured, "featured, priceLow, priceHigh, or rating")
	pageNum := fs.Int("page", 1, "1-indexed page number")
	fs.Parse(args)

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	s.collection.Refresh(ctx)

	page := view.Evaluate(s.collection.All(), view.Spec[catalog.Product]{
		Filters: []view.Predicate[catalog.Product]{
			view.Search(*search),
			view.Category(*category),
			view.PriceRange(*minPrice, *maxPrice),
		},
		Sort:     view.CatalogSort(*sortKey),
		Page:     *pageNum,
		PageSize: s.cfg.Listing.PageSize,
	})

	printProducts(page)
	return nil
}

func printProducts(page view.Page[catalog.Product]) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tPRICE\tORIGIN")
	for _, p := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.2f\t%s\n",
			p.ID, truncate(p.Title, 40), p.Category, p.Price, p.Origin)
	}
	w.Flush()

	gray := color.New(color.FgHiBlack)
	gray.Printf("\npage %d of %d (%d products)\n", page.Page, page.TotalPages, page.Count)
}

func runProduct(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("product", flag.ExitOnError)
	asHTML := fs.Bool("html", false, "emit the detail-page description as rendered HTML")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: storefront product [-html] <id>")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	s.collection.Refresh(ctx)

	p, ok := s.collection.Get(fs.Arg(0))
	if !ok {
		return fmt.Errorf("product %s not found", fs.Arg(0))
	}

	if *asHTML {
		fmt.Println(render.Description(p.Description))
		return nil
	}

	bold := color.New(color.Bold)
	bold.Println(p.Title)
	fmt.Printf("  id:       %s\n", p.ID)
	fmt.Printf("  price:    $%.2f\n", p.Price)
	fmt.Printf("  category: %s\n", p.Category)
	fmt.Printf("  origin:   %s\n", p.Origin)
	if p.Rating.Count > 0 {
		fmt.Printf("  rating:   %.1f (%d reviews)\n", p.Rating.Rate, p.Rating.Count)
	}
	if p.Description != "" {
		fmt.Printf("\n%s\n", p.Description)
	}
	return nil
}

func runCategories(ctx context.Context) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	for _, name := range s.client.FetchCategories(ctx) {
		fmt.Println(name)
	}
	return nil
}

func runCart(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: storefront cart <add|list|qty|remove|clear>")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: storefront cart add <id>")
		}
		s.collection.Refresh(ctx)
		p, ok := s.collection.Get(args[1])
		if !ok {
			return fmt.Errorf("product %s not found", args[1])
		}
		s.cart.AddItem(p)
		color.Green("Added %s", p.Title)

	case "list":
		printCart(s.cart)

	case "qty":
		if len(args) < 3 {
			return fmt.Errorf("usage: storefront cart qty <id> <n>")
		}
		var qty int
		if _, err := fmt.Sscanf(args[2], "%d", &qty); err != nil {
			return fmt.Errorf("invalid quantity %q", args[2])
		}
		s.cart.UpdateQuantity(args[1], qty)
		printCart(s.cart)

	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: storefront cart remove <id>")
		}
		s.cart.RemoveItem(args[1])
		printCart(s.cart)

	case "clear":
		s.cart.Clear()
		color.Yellow("Cart cleared")

	default:
		return fmt.Errorf("unknown cart command: %s", args[0])
	}
	return nil
}

func printCart(c *cart.Cart) {
	lines := c.Lines()
	if len(lines) == 0 {
		fmt.Println("Your cart is empty.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRICE\tQTY\tSUBTOTAL")
	for _, line := range lines {
		fmt.Fprintf(w, "%s\t%s\t$%.2f\t%d\t$%.2f\n",
			line.ProductID, truncate(line.Title, 40), line.Price, line.Quantity,
			line.Price*float64(line.Quantity))
	}
	w.Flush()

	bold := color.New(color.Bold)
	bold.Printf("\nTotal: $%.2f (%d items)\n", c.TotalPrice(), c.TotalItems())
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-1]) + "…"
}
