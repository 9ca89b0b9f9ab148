// procurectl exercises the procurement client layer from the command line:
//
//	procurectl <pr|rfq|po> <command> [args]
//
// Commands: list [search], approved, get <id>, create <file.json>,
// send <file.json>, update <id> <file.json>, submit|approve|reject <id>,
// reset <id> (po only), convert <id> (pr/rfq), delete <id>.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fastrasuites/fastra-procure-go/internal/cache"
	"github.com/fastrasuites/fastra-procure-go/internal/config"
	"github.com/fastrasuites/fastra-procure-go/internal/httpx"
	"github.com/fastrasuites/fastra-procure-go/internal/models"
	"github.com/fastrasuites/fastra-procure-go/internal/repo"
	"github.com/fastrasuites/fastra-procure-go/internal/services"
	"github.com/fastrasuites/fastra-procure-go/internal/tenant"
)

func main() {
	// Load environment variables from .env file, then config from file/env.
	_ = godotenv.Load()
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}
	if len(os.Args) < 3 {
		usage()
	}

	source := tenant.StaticSource(tenant.Session{
		Schema:       cfg.Tenant.Schema,
		AccessToken:  cfg.Tenant.AccessToken,
		RefreshToken: cfg.Tenant.RefreshToken,
	})
	factory := tenant.NewFactory(cfg.API.Domain, source,
		tenant.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second}))

	var store *cache.Store
	if cfg.Cache.Path != "" {
		store, err = cache.OpenStore(cfg.Cache.Path)
		if err != nil {
			log.Fatalf("Could not open cache store: %v", err)
		}
	}
	lists := cache.New(store)

	ctx := context.Background()
	kind, command, args := os.Args[1], os.Args[2], os.Args[3:]
	switch kind {
	case "pr":
		prs := repo.NewPurchaseRequests(factory, lists)
		if command == "convert" {
			convertPR(ctx, prs, args)
			return
		}
		runCommand[models.PurchaseRequest](ctx, prs, command, args)
	case "rfq":
		rfqs := repo.NewQuotations(factory, lists)
		if command == "convert" {
			convertRFQ(ctx, rfqs, args)
			return
		}
		runCommand[models.RequestForQuotation](ctx, rfqs, command, args)
	case "po":
		runCommand[models.PurchaseOrder](ctx, repo.NewPurchaseOrders(factory, lists), command, args)
	default:
		usage()
	}
}

// documentRepo is the slice of repository behaviour the CLI drives; all three
// repositories satisfy it for their own document type.
type documentRepo[T models.Document] interface {
	List(ctx context.Context, search string) (httpx.Result[[]models.Summary], error)
	ApprovedList(ctx context.Context, formOnly bool) (httpx.Result[[]models.Summary], error)
	Get(ctx context.Context, id string) (httpx.Result[T], error)
	Create(ctx context.Context, doc T) (httpx.Result[T], error)
	CreateAndSend(ctx context.Context, doc T) (httpx.Result[T], error)
	Update(ctx context.Context, id string, doc T) (httpx.Result[T], error)
	Transition(ctx context.Context, action services.Action, id string, doc T) (httpx.Result[T], error)
	SoftDelete(ctx context.Context, id string) (httpx.Result[struct{}], error)
}

func runCommand[T models.Document](ctx context.Context, r documentRepo[T], command string, args []string) {
	switch command {
	case "list":
		search := ""
		if len(args) > 0 {
			search = args[0]
		}
		res, err := r.List(ctx, search)
		report(res, err)
	case "approved":
		res, err := r.ApprovedList(ctx, true)
		report(res, err)
	case "get":
		res, err := r.Get(ctx, arg(args, 0))
		report(res, err)
	case "create", "send":
		doc := readDoc[T](arg(args, 0))
		var res httpx.Result[T]
		var err error
		if command == "create" {
			res, err = r.Create(ctx, doc)
		} else {
			res, err = r.CreateAndSend(ctx, doc)
		}
		report(res, err)
	case "update":
		id := arg(args, 0)
		doc := readDoc[T](arg(args, 1))
		res, err := r.Update(ctx, id, doc)
		report(res, err)
	case "submit", "approve", "reject", "reset":
		id := arg(args, 0)
		cur, err := r.Get(ctx, id)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if !cur.Success {
			log.Fatalf("fetch %s: %s", id, cur.Message())
		}
		res, err := r.Transition(ctx, services.Action(command), id, cur.Data)
		report(res, err)
	case "delete":
		res, err := r.SoftDelete(ctx, arg(args, 0))
		report(res, err)
	default:
		usage()
	}
}

// convertPR prints the RFQ draft pre-filled from an approved purchase
// request; creating it is a separate "rfq create" step.
func convertPR(ctx context.Context, prs *repo.PurchaseRequests, args []string) {
	res, err := prs.Get(ctx, arg(args, 0))
	if err != nil {
		log.Fatalf("%v", err)
	}
	if !res.Success {
		log.Fatalf("fetch purchase request: %s", res.Message())
	}
	printJSON(services.PRToRFQ(res.Data))
}

func convertRFQ(ctx context.Context, rfqs *repo.Quotations, args []string) {
	res, err := rfqs.Get(ctx, arg(args, 0))
	if err != nil {
		log.Fatalf("%v", err)
	}
	if !res.Success {
		log.Fatalf("fetch quotation: %s", res.Message())
	}
	printJSON(services.RFQToPO(res.Data))
}

func report[T any](res httpx.Result[T], err error) {
	if err != nil {
		log.Fatalf("%v", err)
	}
	if !res.Success {
		log.Fatalf("request failed (%d): %s", res.Status, res.Message())
	}
	printJSON(res.Data)
}

func readDoc[T any](path string) T {
	var doc T
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read payload: %v", err)
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Fatalf("parse payload: %v", err)
	}
	return doc
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("encode output: %v", err)
	}
	fmt.Println(string(out))
}

func arg(args []string, i int) string {
	if i >= len(args) {
		usage()
	}
	return args[i]
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: procurectl <pr|rfq|po> <list|approved|get|create|send|update|submit|approve|reject|reset|convert|delete> [args]")
	os.Exit(2)
}
