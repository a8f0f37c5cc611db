// Command shop is a terminal storefront session: it loads the catalog
// through the fallback chain, keeps a persisted cart and runs the
// multi-step checkout against the order API.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"optical-storefront/internal/cart"
	"optical-storefront/internal/catalog"
	"optical-storefront/internal/checkout"
	"optical-storefront/internal/config"
	"optical-storefront/internal/kvstore"
	"optical-storefront/internal/quickview"
)

type session struct {
	cfg      config.Config
	logger   zerolog.Logger
	catalog  *catalog.Catalog
	store    *cart.Store
	viewer   *quickview.Viewer
	lastView cart.View
	in       *bufio.Scanner
}

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx := context.Background()

	chain := catalog.NewChain(logger,
		catalog.NewHTTPSource(cfg.APIBaseURL+"/api/products"),
		catalog.NewFileSource(cfg.ProductsFile),
		catalog.NewStaticSource(catalog.Placeholder()),
	)
	cat, err := chain.Load(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("load catalog")
	}

	var kv kvstore.Store
	if cfg.RedisAddr != "" {
		kv = kvstore.NewRedis(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	} else {
		kv = kvstore.NewFile(cfg.CartDir)
	}

	store := cart.NewStore(cat, cart.NewKVPersister(kv), logger)

	s := &session{
		cfg:     cfg,
		logger:  logger,
		catalog: cat,
		store:   store,
		viewer:  quickview.New(cat, store),
		in:      bufio.NewScanner(os.Stdin),
	}

	presenter := &cart.Presenter{
		Threshold: cfg.FreeShippingThreshold,
		Render:    func(v cart.View) { s.lastView = v },
	}
	presenter.Attach(store)
	store.Restore(ctx)

	fmt.Printf("Loaded %d products. Type 'help' for commands.\n", cat.Len())
	s.run(ctx)
}

func (s *session) run(ctx context.Context) {
	for {
		fmt.Print("> ")
		if !s.in.Scan() {
			return
		}
		fields := strings.Fields(s.in.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			fmt.Println("commands: list, view <id>, add <id>, qty <id> <n>, remove <id>, cart, clear, checkout, quit")
		case "list":
			for _, p := range s.catalog.List() {
				fmt.Printf("  [%d] %s  %s  %s\n", p.ID, p.Name, cart.FormatAmount(p.Price), p.Description)
			}
		case "view":
			s.view(ctx, args)
		case "add":
			s.add(ctx, args)
		case "qty":
			s.qty(ctx, args)
		case "remove":
			if id, ok := parseID(args); ok {
				s.store.RemoveItem(ctx, id)
				s.printCart()
			}
		case "cart":
			s.printCart()
		case "clear":
			s.store.Clear(ctx)
			s.printCart()
		case "checkout":
			s.checkout(ctx)
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command, try 'help'")
		}
	}
}

func (s *session) view(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		return
	}
	s.viewer.Open(id)
	p, ok := s.viewer.Active()
	if !ok {
		fmt.Println("no such product")
		return
	}
	fmt.Printf("%s\n%s\n%s\n", p.Name, p.Description, cart.FormatAmount(p.Price))
	fmt.Print("add to cart? [y/N] ")
	if s.in.Scan() && strings.EqualFold(strings.TrimSpace(s.in.Text()), "y") {
		if err := s.viewer.AddToCart(ctx); err != nil {
			fmt.Println("could not add:", err)
			return
		}
		s.printCart()
	} else {
		s.viewer.Close()
	}
}

func (s *session) add(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		return
	}
	if err := s.store.AddItem(ctx, id, 1); err != nil {
		if errors.Is(err, cart.ErrInvalidProduct) {
			fmt.Println("no such product")
			return
		}
		fmt.Println("could not add:", err)
		return
	}
	s.printCart()
}

func (s *session) qty(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("usage: qty <id> <n>")
		return
	}
	id, err1 := strconv.ParseInt(args[0], 10, 64)
	n, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Println("usage: qty <id> <n>")
		return
	}
	s.store.SetQuantity(ctx, id, n)
	s.printCart()
}

func (s *session) printCart() {
	v := s.lastView
	if v.Empty {
		fmt.Println("cart is empty")
		return
	}
	for _, line := range v.Lines {
		fmt.Printf("  %s  %s × %d = %s\n", line.Name, cart.FormatAmount(line.Price), line.Quantity, cart.FormatAmount(line.Subtotal))
	}
	fmt.Printf("  items: %d  total: %s\n", v.ItemCount, cart.FormatAmount(v.GrandTotal))
	if v.Shipping.Message != "" {
		fmt.Println(" ", v.Shipping.Message)
	}
}

func (s *session) checkout(ctx context.Context) {
	if s.store.Len() == 0 {
		fmt.Println("cart is empty")
		return
	}

	submitter := checkout.NewAPISubmitter(s.cfg.APIBaseURL + "/api/orders")
	seq := checkout.NewSequencer(s.store, submitter, s.logger)

	for seq.State() == checkout.StateCollectingInfo {
		info := checkout.ContactInfo{
			Name:    s.prompt("name: "),
			Phone:   s.prompt("phone: "),
			Email:   s.prompt("email (optional): "),
			Address: s.prompt("address: "),
			Notes:   s.prompt("notes (optional): "),
		}
		if err := seq.SubmitInfo(info); err != nil {
			var verr *checkout.ValidationError
			if errors.As(err, &verr) {
				for _, f := range verr.Fields {
					fmt.Println(" !", f.Message)
				}
				continue
			}
			fmt.Println("checkout error:", err)
			return
		}
	}

	for seq.State() == checkout.StateReviewingOrder {
		items, total := seq.Review()
		fmt.Println("order summary:")
		for _, line := range items {
			fmt.Printf("  %s  %s × %d\n", line.Name, cart.FormatAmount(line.Price), line.Quantity)
		}
		fmt.Printf("  total: %s (FREE delivery)\n", cart.FormatAmount(total))

		switch s.prompt("confirm / back / whatsapp / email / cancel: ") {
		case "confirm":
			orderID, err := seq.Confirm(ctx)
			if err != nil {
				fmt.Println("failed to place order, please retry or use whatsapp/email:", err)
				continue
			}
			fmt.Println("order placed! id:", orderID)
		case "back":
			_ = seq.Back()
			s.checkoutBackToInfo(seq)
		case "whatsapp":
			link, err := checkout.WhatsAppLink(s.cfg.WhatsAppPhone, "Hello Janta Optical Centre,\n\n", items)
			if err == nil {
				fmt.Println("open:", link)
			}
		case "email":
			link, err := checkout.MailtoLink(s.cfg.OrderEmail, "New Order", items)
			if err == nil {
				fmt.Println("open:", link)
			}
		case "cancel":
			_ = seq.Cancel()
			fmt.Println("checkout cancelled, cart kept")
		}
	}
}

// checkoutBackToInfo replays the info-collection loop after a Back().
func (s *session) checkoutBackToInfo(seq *checkout.Sequencer) {
	for seq.State() == checkout.StateCollectingInfo {
		info := checkout.ContactInfo{
			Name:    s.prompt("name: "),
			Phone:   s.prompt("phone: "),
			Email:   s.prompt("email (optional): "),
			Address: s.prompt("address: "),
			Notes:   s.prompt("notes (optional): "),
		}
		if err := seq.SubmitInfo(info); err != nil {
			var verr *checkout.ValidationError
			if errors.As(err, &verr) {
				for _, f := range verr.Fields {
					fmt.Println(" !", f.Message)
				}
				continue
			}
			return
		}
	}
}

func (s *session) prompt(label string) string {
	fmt.Print(label)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func parseID(args []string) (int64, bool) {
	if len(args) == 0 {
		fmt.Println("product id required")
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("invalid product id")
		return 0, false
	}
	return id, true
}
