// Command report-export renders an order export file into one or more report
// formats. The input is one JSON order per line, in the same shape the API
// returns, optionally gzip-compressed. Each requested format is rendered
// concurrently and written to its own output file.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/order-pricing-engine/internal/domain/order"
	"github.com/xenking/order-pricing-engine/internal/domain/pricing"
	"github.com/xenking/order-pricing-engine/internal/report"
)

func main() {
	var (
		input    string
		formats  string
		outDir   string
		title    string
		compress bool
	)

	flag.StringVar(&input, "input", "", "order export file, one JSON order per line (.gz supported)")
	flag.StringVar(&formats, "formats", "text", "comma-separated formats: "+strings.Join(report.Formats(), ", "))
	flag.StringVar(&outDir, "out", ".", "output directory")
	flag.StringVar(&title, "title", "Orders", "report title")
	flag.BoolVar(&compress, "compress", false, "gzip-compress output files")
	flag.Parse()

	if input == "" {
		slog.Error("input file is required: set --input")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, input, strings.Split(formats, ","), outDir, title, compress); err != nil {
		slog.Error("report export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("report export completed successfully")
}

func run(ctx context.Context, input string, formats []string, outDir, title string, compress bool) error {
	orders, err := readOrders(ctx, input)
	if err != nil {
		return errors.Wrap(err, "read orders")
	}

	slog.Info("orders loaded", slog.Int("count", len(orders)))

	table := report.Table{
		Title:   title,
		Columns: order.ReportColumns,
		Rows:    make([][]string, len(orders)),
	}
	for i, o := range orders {
		table.Rows[i] = o.ReportRow()
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrapf(err, "create output dir %s", outDir)
	}

	base := strings.TrimSuffix(filepath.Base(input), ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))

	g, _ := errgroup.WithContext(ctx)
	for _, f := range formats {
		g.Go(renderFormat(table, strings.TrimSpace(f), outDir, base, compress))
	}

	return g.Wait()
}

func renderFormat(table report.Table, format, outDir, base string, compress bool) func() error {
	return func() error {
		renderer, err := report.New(format)
		if err != nil {
			return errors.Wrapf(err, "format %s", format)
		}

		data, err := renderer.Render(table)
		if err != nil {
			return errors.Wrapf(err, "render %s", format)
		}

		path := filepath.Join(outDir, base+"."+formatExt(format))
		if compress {
			path += ".gz"
		}

		if err := writeFile(path, data, compress); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}

		slog.Info("report written",
			slog.String("format", strings.ToUpper(format)),
			slog.String("path", path),
			slog.Int("bytes", len(data)),
		)

		return nil
	}
}

func formatExt(format string) string {
	switch strings.ToUpper(strings.TrimSpace(format)) {
	case string(report.FormatHTML):
		return "html"
	case string(report.FormatCSV):
		return "csv"
	case string(report.FormatJSON):
		return "json"
	default:
		return "txt"
	}
}

func writeFile(path string, data []byte, compress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var w io.Writer = f
	if compress {
		gz := pgzip.NewWriter(f)
		defer func() { _ = gz.Close() }()
		w = gz
	}

	_, err = w.Write(data)
	return err
}

// exportedOrder mirrors the API's order JSON for decoding export lines.
type exportedOrder struct {
	OrderID      string `json:"orderId"`
	CustomerType string `json:"customerType"`
	Items        []struct {
		Name     string          `json:"name"`
		Price    decimal.Decimal `json:"price"`
		Quantity int             `json:"quantity"`
	} `json:"items"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	TaxAmount          decimal.Decimal `json:"taxAmount"`
	ShippingCost       decimal.Decimal `json:"shippingCost"`
	Total              decimal.Decimal `json:"total"`
	Status             string          `json:"status"`
	CreatedAt          string          `json:"createdAt"`
}

// readOrders streams the export file line by line, transparently handling
// gzip-compressed inputs.
func readOrders(ctx context.Context, path string) ([]*order.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "create gzip reader for %s", path)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	var (
		orders []*order.Order
		line   int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		o, err := parseOrder([]byte(text))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		orders = append(orders, o)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "scan %s", path)
	}

	return orders, nil
}

func parseOrder(data []byte) (*order.Order, error) {
	var exp exportedOrder
	if err := json.Unmarshal(data, &exp); err != nil {
		return nil, err
	}

	createdAt, err := time.Parse(time.RFC3339, exp.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse createdAt %q: %w", exp.CreatedAt, err)
	}

	items := make([]order.LineItem, len(exp.Items))
	for i, it := range exp.Items {
		items[i] = order.LineItem{
			Name:      it.Name,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
		}
	}

	return &order.Order{
		ID:             exp.OrderID,
		Tier:           pricing.ParseTier(exp.CustomerType),
		Items:          items,
		Subtotal:       exp.Subtotal,
		DiscountRate:   exp.DiscountPercentage,
		DiscountAmount: exp.DiscountAmount,
		TaxAmount:      exp.TaxAmount,
		ShippingCost:   exp.ShippingCost,
		Total:          exp.Total,
		Status:         order.Status(exp.Status),
		CreatedAt:      createdAt,
	}, nil
}
