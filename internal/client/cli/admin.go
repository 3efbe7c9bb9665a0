package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/nicograef/jotti/internal/client/models"
	"github.com/nicograef/jotti/internal/client/services"
)

func (a *App) Users(ctx context.Context, _ []string) error {
	users, err := a.users.GetAllUsers(ctx)
	if err != nil {
		report(formUser, err)
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tBenutzername\tRolle\tStatus")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Username, u.Role, u.Status)
	}
	return tw.Flush()
}

func (a *App) AddUser(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	username, err := a.promptDefault("Benutzername", models.ToUsername(name))
	if err != nil {
		return err
	}
	role, err := a.promptDefault("Rolle (admin/service)", string(models.RoleService))
	if err != nil {
		return err
	}

	created, err := a.users.CreateUser(ctx, services.CreateUserRequest{
		Name:     name,
		Username: username,
		Role:     models.Role(role),
	})
	if err != nil {
		report(formUser, err)
		return err
	}

	printlnFn(fmt.Sprintf("Benutzer %s angelegt (ID %d). Einmalcode: %s", username, created.ID, created.OnetimePassword))
	return nil
}

func (a *App) EditUser(ctx context.Context, args []string) error {
	id, err := a.intArg(args, "Benutzer-ID")
	if err != nil {
		return err
	}

	users, err := a.users.GetAllUsers(ctx)
	if err != nil {
		report(formUser, err)
		return err
	}
	var current models.User
	for _, u := range users {
		if u.ID == id {
			current = u
		}
	}
	if current.ID == 0 {
		printlnFn("Benutzer nicht gefunden.")
		return errInvalidID
	}

	name, err := a.promptDefault("Name", current.Name)
	if err != nil {
		return err
	}
	username, err := a.promptDefault("Benutzername", current.Username)
	if err != nil {
		return err
	}
	role, err := a.promptDefault("Rolle (admin/service)", string(current.Role))
	if err != nil {
		return err
	}

	err = a.users.UpdateUser(ctx, services.UpdateUserRequest{
		ID:       id,
		Name:     name,
		Username: username,
		Role:     models.Role(role),
	})
	if err != nil {
		report(formUser, err)
		return err
	}
	printlnFn("Benutzer gespeichert.")
	return nil
}

func (a *App) ActivateUser(ctx context.Context, args []string) error {
	return a.byID(ctx, args, "Benutzer-ID", formUser, a.users.ActivateUser, "Benutzer aktiviert.")
}

func (a *App) DeactivateUser(ctx context.Context, args []string) error {
	return a.byID(ctx, args, "Benutzer-ID", formUser, a.users.DeactivateUser, "Benutzer deaktiviert.")
}

func (a *App) ResetPassword(ctx context.Context, args []string) error {
	id, err := a.intArg(args, "Benutzer-ID")
	if err != nil {
		return err
	}

	code, err := a.users.ResetPassword(ctx, id)
	if err != nil {
		report(formUser, err)
		return err
	}
	printlnFn("Passwort zurückgesetzt. Neuer Einmalcode: " + code)
	return nil
}

func (a *App) Products(ctx context.Context, _ []string) error {
	products, err := a.products.GetAllProducts(ctx)
	if err != nil {
		report(formProduct, err)
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tName\tKategorie\tPreis\tStatus")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, models.FormatCents(p.NetPriceCents), p.Status)
	}
	return tw.Flush()
}

// productForm prompts for every product field, offering cur as defaults.
func (a *App) productForm(cur models.Product) (models.Product, error) {
	var err error
	p := cur

	if p.Name, err = a.promptDefault("Name", cur.Name); err != nil {
		return p, err
	}
	if p.Description, err = a.promptDefault("Beschreibung", cur.Description); err != nil {
		return p, err
	}

	def := ""
	if cur.ID != 0 {
		def = models.FormatCents(cur.NetPriceCents)
	}
	price, err := a.promptDefault("Nettopreis in Euro", def)
	if err != nil {
		return p, err
	}
	if p.NetPriceCents, err = parseCents(price); err != nil {
		printlnFn(fieldError{Field: "netPriceCents", Message: "Ungültiger Betrag."}.String())
		return p, err
	}

	defCat := string(cur.Category)
	if defCat == "" {
		defCat = string(models.CategoryFood)
	}
	cat, err := a.promptDefault("Kategorie (food/beverage/other)", defCat)
	if err != nil {
		return p, err
	}
	p.Category = models.Category(cat)
	return p, nil
}

func (a *App) AddProduct(ctx context.Context, _ []string) error {
	p, err := a.productForm(models.Product{})
	if err != nil {
		return err
	}

	id, err := a.products.CreateProduct(ctx, services.CreateProductRequest{
		Name:          p.Name,
		Description:   p.Description,
		NetPriceCents: p.NetPriceCents,
		Category:      p.Category,
	})
	if err != nil {
		report(formProduct, err)
		return err
	}
	printlnFn(fmt.Sprintf("Produkt %s angelegt (ID %d).", p.Name, id))
	return nil
}

func (a *App) EditProduct(ctx context.Context, args []string) error {
	id, err := a.intArg(args, "Produkt-ID")
	if err != nil {
		return err
	}

	products, err := a.products.GetAllProducts(ctx)
	if err != nil {
		report(formProduct, err)
		return err
	}
	var current models.Product
	for _, p := range products {
		if p.ID == id {
			current = p
		}
	}
	if current.ID == 0 {
		printlnFn("Produkt nicht gefunden.")
		return errInvalidID
	}

	p, err := a.productForm(current)
	if err != nil {
		return err
	}

	err = a.products.UpdateProduct(ctx, services.UpdateProductRequest{
		ID:            id,
		Name:          p.Name,
		Description:   p.Description,
		NetPriceCents: p.NetPriceCents,
		Category:      p.Category,
	})
	if err != nil {
		report(formProduct, err)
		return err
	}
	printlnFn("Produkt gespeichert.")
	return nil
}

func (a *App) ActivateProduct(ctx context.Context, args []string) error {
	return a.byID(ctx, args, "Produkt-ID", formProduct, a.products.ActivateProduct, "Produkt aktiviert.")
}

func (a *App) DeactivateProduct(ctx context.Context, args []string) error {
	return a.byID(ctx, args, "Produkt-ID", formProduct, a.products.DeactivateProduct, "Produkt deaktiviert.")
}

// Tables lists every table for admins and the active ones for service staff.
func (a *App) Tables(ctx context.Context, _ []string) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)

	if a.session.IsAdmin(ctx) {
		tables, err := a.tables.GetAllTables(ctx)
		if err != nil {
			report(formTable, err)
			return err
		}
		fmt.Fprintln(tw, "ID\tName\tStatus")
		for _, t := range tables {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", t.ID, t.Name, t.Status)
		}
		return tw.Flush()
	}

	tables, err := a.tables.GetActiveTables(ctx)
	if err != nil {
		report(formTable, err)
		return err
	}
	fmt.Fprintln(tw, "ID\tName")
	for _, t := range tables {
		fmt.Fprintf(tw, "%d\t%s\n", t.ID, t.Name)
	}
	return tw.Flush()
}

func (a *App) AddTable(ctx context.Context, _ []string) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}

	id, err := a.tables.CreateTable(ctx, name)
	if err != nil {
		report(formTable, err)
		return err
	}
	printlnFn(fmt.Sprintf("Tisch %s angelegt (ID %d).", name, id))
	return nil
}

func (a *App) EditTable(ctx context.Context, args []string) error {
	id, err := a.intArg(args, "Tisch-ID")
	if err != nil {
		return err
	}

	current, err := a.tables.GetTable(ctx, id)
	if err != nil {
		report(formTable, err)
		return err
	}

	name, err := a.promptDefault("Name", current.Name)
	if err != nil {
		return err
	}

	if err := a.tables.UpdateTable(ctx, id, name); err != nil {
		report(formTable, err)
		return err
	}
	printlnFn("Tisch gespeichert.")
	return nil
}

func (a *App) ActivateTable(ctx context.Context, args []string) error {
	return a.byID(ctx, args, "Tisch-ID", formTable, a.tables.ActivateTable, "Tisch aktiviert.")
}

func (a *App) DeactivateTable(ctx context.Context, args []string) error {
	return a.byID(ctx, args, "Tisch-ID", formTable, a.tables.DeactivateTable, "Tisch deaktiviert.")
}

// byID runs one of the activate/deactivate calls.
func (a *App) byID(ctx context.Context, args []string, prompt string, f form, call func(context.Context, int) error, done string) error {
	id, err := a.intArg(args, prompt)
	if err != nil {
		return err
	}
	if err := call(ctx, id); err != nil {
		report(f, err)
		return err
	}
	printlnFn(done)
	return nil
}
