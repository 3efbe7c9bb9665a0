package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/nicograef/jotti/internal/client/gateway"
	"github.com/nicograef/jotti/internal/client/models"
)

var errInvalidLine = errors.New("invalid line")

const timeLayout = "02.01. 15:04"

// parseLine reads "<number> [quantity]"; the quantity defaults to 1.
func parseLine(s string) (int, int, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 || len(parts) > 2 {
		return 0, 0, errInvalidLine
	}

	n, err := strconv.Atoi(parts[0])
	if err != nil || n < 1 {
		return 0, 0, errInvalidLine
	}

	qty := 1
	if len(parts) == 2 {
		if qty, err = strconv.Atoi(parts[1]); err != nil || qty < 1 {
			return 0, 0, errInvalidLine
		}
	}
	return n, qty, nil
}

// addLine merges qty of p into lines.
func addLine(lines []models.OrderProduct, p models.OrderProduct, qty int) []models.OrderProduct {
	for i := range lines {
		if lines[i].ID == p.ID && lines[i].NetPriceCents == p.NetPriceCents {
			lines[i].Quantity += qty
			return lines
		}
	}
	p.Quantity = qty
	return append(lines, p)
}

func (a *App) printLines(lines []models.OrderProduct, numbered bool) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for i, l := range lines {
		if numbered {
			fmt.Fprintf(tw, "%d)\t", i+1)
		}
		fmt.Fprintf(tw, "%dx\t%s\t%s\n", l.Quantity, l.Name, models.FormatCents(l.NetPriceCents*l.Quantity))
	}
	_ = tw.Flush()
}

func (a *App) Menu(ctx context.Context, _ []string) error {
	products, err := a.products.GetActiveProducts(ctx)
	if err != nil {
		report(formOrder, err)
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tKategorie\tPreis")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, models.FormatCents(p.NetPriceCents))
	}
	return tw.Flush()
}

// Order collects "<product id> [quantity]" lines until an empty line and
// places them as one order for the table.
func (a *App) Order(ctx context.Context, args []string) error {
	tableID, err := a.intArg(args, "Tisch-ID")
	if err != nil {
		return err
	}

	menu, err := a.products.GetActiveProducts(ctx)
	if err != nil {
		report(formOrder, err)
		return err
	}
	byID := make(map[int]models.ProductPublic, len(menu))
	for _, p := range menu {
		byID[p.ID] = p
	}

	var lines []models.OrderProduct
	for {
		in, err := getSimpleText(a.reader, "Produkt-ID und Menge (leer zum Abschließen)", a.out)
		if err != nil {
			return err
		}
		if in == "" {
			break
		}

		id, qty, err := parseLine(in)
		if err != nil {
			printlnFn("Ungültige Eingabe: " + in)
			continue
		}
		p, ok := byID[id]
		if !ok {
			printlnFn(fmt.Sprintf("Unbekanntes Produkt: %d", id))
			continue
		}
		lines = addLine(lines, models.OrderProduct{ID: p.ID, Name: p.Name, NetPriceCents: p.NetPriceCents}, qty)
	}

	if err := a.orders.PlaceOrder(ctx, tableID, lines); err != nil {
		report(formOrder, err)
		return err
	}

	a.printLines(lines, false)
	printlnFn("Bestellung aufgenommen: " + models.FormatCents(models.LinesTotal(lines)))
	return nil
}

// Pay shows the table's unpaid lines and registers a payment for the
// chosen ones. "alle" pays everything that is open.
func (a *App) Pay(ctx context.Context, args []string) error {
	tableID, err := a.intArg(args, "Tisch-ID")
	if err != nil {
		return err
	}

	unpaid, err := a.orders.GetTableUnpaidProducts(ctx, tableID)
	if err != nil {
		report(formOrder, err)
		return err
	}
	if len(unpaid) == 0 {
		printlnFn("Keine offenen Positionen.")
		return nil
	}
	a.printLines(unpaid, true)

	left := make([]int, len(unpaid))
	for i, l := range unpaid {
		left[i] = l.Quantity
	}

	var lines []models.OrderProduct
	for {
		in, err := getSimpleText(a.reader, "Position und Menge ('alle' für alles, leer zum Abschließen)", a.out)
		if err != nil {
			return err
		}
		if in == "" {
			break
		}
		if strings.EqualFold(in, "alle") {
			lines = append([]models.OrderProduct(nil), unpaid...)
			break
		}

		n, qty, err := parseLine(in)
		if err != nil || n > len(unpaid) {
			printlnFn("Ungültige Eingabe: " + in)
			continue
		}
		if qty > left[n-1] {
			printlnFn(fmt.Sprintf("Höchstens %d offen.", left[n-1]))
			continue
		}
		left[n-1] -= qty
		lines = addLine(lines, unpaid[n-1], qty)
	}

	if err := a.orders.RegisterPayment(ctx, tableID, lines); err != nil {
		report(formOrder, err)
		return err
	}
	printlnFn("Zahlung erfasst: " + models.FormatCents(models.LinesTotal(lines)))
	return nil
}

func (a *App) TableBalance(ctx context.Context, args []string) error {
	tableID, err := a.intArg(args, "Tisch-ID")
	if err != nil {
		return err
	}

	balance, err := a.orders.GetTableBalance(ctx, tableID)
	if err != nil {
		report(formOrder, err)
		return err
	}
	printlnFn("Offener Betrag: " + models.FormatCents(balance))
	return nil
}

// History prints a table's orders and payments and the backend's balance.
// When the backend lists payments, the balance derived from the history is
// cross-checked and a disagreement is shown and logged. A backend without
// the payments endpoint (404) gets orders and balance only.
func (a *App) History(ctx context.Context, args []string) error {
	tableID, err := a.intArg(args, "Tisch-ID")
	if err != nil {
		return err
	}

	orders, err := a.orders.GetTableOrders(ctx, tableID)
	if err != nil {
		report(formOrder, err)
		return err
	}

	withPayments := true
	payments, err := a.orders.GetTablePayments(ctx, tableID)
	if err != nil {
		var be *gateway.BackendError
		if !errors.As(err, &be) || be.Status != http.StatusNotFound {
			report(formOrder, err)
			return err
		}
		a.log.Debug(ctx, "backend lists no payments, skipping balance check", "table", tableID)
		withPayments = false
	}

	remote, err := a.orders.GetTableBalance(ctx, tableID)
	if err != nil {
		report(formOrder, err)
		return err
	}

	for _, o := range orders {
		printlnFn(fmt.Sprintf("Bestellung %s  %s", o.PlacedAt.Local().Format(timeLayout), models.FormatCents(o.TotalNetPriceCents)))
		a.printLines(o.Products, false)
	}
	for _, p := range payments {
		printlnFn(fmt.Sprintf("Zahlung %s  %s", p.RegisteredAt.Local().Format(timeLayout), models.FormatCents(p.TotalPaymentCents)))
		a.printLines(p.Products, false)
	}

	if withPayments {
		if open := models.UnpaidProducts(orders, payments); len(open) > 0 {
			printlnFn("Offen:")
			a.printLines(open, false)
		}
	}

	printlnFn("Offener Betrag: " + models.FormatCents(remote))
	if !withPayments {
		return nil
	}

	if local := models.Balance(orders, payments); local != remote {
		a.log.Warn(ctx, "balance mismatch", "table", tableID, "local", local, "remote", remote)
		printlnFn("Achtung: laut Verlauf " + models.FormatCents(local))
	}
	return nil
}
