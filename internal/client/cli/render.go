package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/bookstore/internal/client/models"
	"github.com/dmitrijs2005/bookstore/internal/i18n"
)

const (
	maxTitleWidth  = 48
	maxAuthorWidth = 32
)

func (a *App) renderBooks(books []models.Book) {
	p := a.printer
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		p.Sprintf(i18n.LabelID), p.Sprintf(i18n.LabelBarcode), p.Sprintf(i18n.LabelTitle),
		p.Sprintf(i18n.LabelAuthors), p.Sprintf(i18n.LabelPrice), p.Sprintf(i18n.LabelStock))
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.Barcode, truncate(b.Title, maxTitleWidth), truncate(b.AuthorNames(), maxAuthorWidth),
			formatAmount(b.ListPrice), formatAmount(b.Stock))
	}
	_ = tw.Flush()
}

func (a *App) renderBook(b *models.Book) {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", a.printer.Sprintf(label), value)
		}
	}

	row(i18n.LabelID, strconv.FormatInt(b.ID, 10))
	row(i18n.LabelTitle, b.Title)
	row(i18n.LabelBarcode, b.Barcode)
	row(i18n.LabelCode, b.Code)
	row(i18n.LabelAuthors, b.AuthorNames())
	row(i18n.LabelPublisher, b.Producer.Name)
	row(i18n.LabelPrice, formatAmount(b.ListPrice))
	if b.DiscountedPrice > 0 && b.DiscountedPrice != b.ListPrice {
		row(i18n.LabelDiscount, formatAmount(b.DiscountedPrice))
	}
	row(i18n.LabelStock, formatAmount(b.Stock))
	if b.Category != nil {
		row(i18n.LabelCategory, b.Category.Name)
	}
	if b.PageCount > 0 {
		row(i18n.LabelPages, strconv.Itoa(b.PageCount))
	}
	if b.Language != nil {
		row(i18n.LabelLanguage, b.Language.Name)
	}
	row(i18n.LabelImage, b.Image())
	_ = tw.Flush()

	if b.Summary != "" {
		fmt.Fprintf(a.out, "\n%s:\n%s\n", a.printer.Sprintf(i18n.LabelSummary), b.Summary)
	}
}

// formatAmount drops the fraction for whole numbers: 12 -> "12", 12.5 -> "12.50".
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
