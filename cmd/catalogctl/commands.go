package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"catalog-manager/internal/models"
	"catalog-manager/internal/selection"
	"catalog-manager/internal/validation"
)

func newListCmd() *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			state := selection.NewListState(c.cfg.PageSize)
			state.SetTotal(c.repo.Count())
			current := state.SetPage(page)

			out := cmd.OutOrStdout()
			if state.Total() == 0 {
				fmt.Fprintln(out, "No products available yet.")
				return nil
			}

			printProducts(out, c.repo.Page(current, state.PageSize()))
			fmt.Fprintf(out, "\npage %d/%d (%d products)\n", current, state.PageCount(), state.Total())
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page to show")
	return cmd
}

func newAddCmd() *cobra.Command {
	form := models.Form{}
	fields := []struct {
		name  string
		usage string
	}{
		{models.FieldType, "product type: DVD, Book or Furniture"},
		{models.FieldName, "product name"},
		{models.FieldPrice, "price"},
		{models.FieldImageURL, "image url"},
		{models.FieldSize, "DVD size in MB"},
		{models.FieldWeight, "Book weight in KG"},
		{models.FieldHeight, "Furniture height in CM"},
		{models.FieldWidth, "Furniture width in CM"},
		{models.FieldLength, "Furniture length in CM"},
	}
	values := make(map[string]*string, len(fields))

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Example: `  catalogctl add --type DVD --name Matrix --price 12.5 --imageUrl http://img --size 700
  catalogctl add --type Furniture --name Chair --price 40 --imageUrl http://img --height 90 --width 45 --length 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for name, v := range values {
				form[name] = *v
			}

			if errs := validation.Validate(form); !errs.Valid() {
				for _, field := range errs.Fields() {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, errs[field])
				}
				return fmt.Errorf("invalid product")
			}

			draft, err := form.Draft()
			if err != nil {
				return err
			}

			c, err := openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			product, err := c.repo.Add(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), product.SKU)
			return nil
		},
	}

	for _, f := range fields {
		values[f.name] = cmd.Flags().String(f.name, "", f.usage)
	}
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SKU...",
		Short: "Delete products by SKU",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			deleted, err := c.repo.DeleteMany(cmd.Context(), args)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d product(s)\n", deleted)
			return nil
		},
	}
}

func printProducts(out io.Writer, products []models.Product) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SKU\tNAME\tPRICE\tTYPE\tATTRIBUTE")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.SKU, p.Name, p.PriceLabel(), p.Type(), p.AttributeLabel())
	}
	w.Flush()
}
