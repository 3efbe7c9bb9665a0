package models

import "fmt"

// Balance is what a table still owes: ordered minus paid, in cents.
func Balance(orders []Order, payments []Payment) int {
	balance := 0
	for _, o := range orders {
		balance += o.TotalNetPriceCents
	}
	for _, p := range payments {
		balance -= p.TotalPaymentCents
	}
	return balance
}

type lineKey struct {
	id    int
	price int
}

// UnpaidProducts folds a table's orders and payments into the lines that
// are still open. Lines are merged by product id and price, so a product
// ordered before and after a price change appears twice. Fully paid lines
// are dropped. The result keeps first-ordered order.
func UnpaidProducts(orders []Order, payments []Payment) []OrderProduct {
	open := make(map[lineKey]*OrderProduct)
	var keys []lineKey

	for _, o := range orders {
		for _, p := range o.Products {
			k := lineKey{id: p.ID, price: p.NetPriceCents}
			if line, ok := open[k]; ok {
				line.Quantity += p.Quantity
				continue
			}
			line := p
			open[k] = &line
			keys = append(keys, k)
		}
	}

	for _, pay := range payments {
		for _, p := range pay.Products {
			if line, ok := open[lineKey{id: p.ID, price: p.NetPriceCents}]; ok {
				line.Quantity -= p.Quantity
			}
		}
	}

	unpaid := make([]OrderProduct, 0, len(keys))
	for _, k := range keys {
		if line := open[k]; line.Quantity > 0 {
			unpaid = append(unpaid, *line)
		}
	}
	return unpaid
}

// LinesTotal sums price times quantity over lines.
func LinesTotal(lines []OrderProduct) int {
	total := 0
	for _, l := range lines {
		total += l.NetPriceCents * l.Quantity
	}
	return total
}

// FormatCents renders an amount the way the service staff read it: "12,50 €".
func FormatCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d,%02d €", sign, cents/100, cents%100)
}
