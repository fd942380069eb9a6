package models

import "strings"

// Book is a catalog stock record ("stok") as served by the API.
type Book struct {
	ID              int64     `json:"id"`
	Barcode         string    `json:"barkod"`
	Code            string    `json:"kod"`
	Title           string    `json:"stokcins"`
	ImageFile       string    `json:"resfile"`
	ImageURL        string    `json:"resim_url,omitempty"`
	ThumbnailURL    string    `json:"kucuk_resim_url,omitempty"`
	ListPrice       float64   `json:"kfiyat"`
	DiscountedPrice float64   `json:"pfiyat1"`
	DiscountPercent float64   `json:"kisk"`
	TaxPercent      float64   `json:"kkdv"`
	Stock           float64   `json:"smiktar"`
	Producer        Producer  `json:"uretici"`
	UpdatedAt       string    `json:"stk_date_update"`
	Authors         []Author  `json:"authors,omitempty"`
	Category        *Category `json:"kategori,omitempty"`
	PageCount       int       `json:"sayfasayisi,omitempty"`
	PrintPlace      string    `json:"basimyeri,omitempty"`
	Language        *Language `json:"yayin_dili,omitempty"`
	Summary         string    `json:"ozet,omitempty"`
}

type Producer struct {
	Name string `json:"ureticiad"`
}

type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"at_name"`
	Role int    `json:"at_who"`
}

type Category struct {
	Name string `json:"kategoriad"`
}

type Language struct {
	Name string `json:"ln_name"`
}

// Image returns the first non-empty image reference, falling back from the
// full image URL to the thumbnail and then the stored resource file.
func (b *Book) Image() string {
	for _, s := range []string{b.ImageURL, b.ThumbnailURL, b.ImageFile} {
		if s != "" {
			return s
		}
	}
	return ""
}

// AuthorNames joins author names with ", ".
func (b *Book) AuthorNames() string {
	names := make([]string, 0, len(b.Authors))
	for _, a := range b.Authors {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return strings.Join(names, ", ")
}

// BookList is the data payload of the catalog list endpoint.
type BookList struct {
	Page     int    `json:"page"`
	PageIn   int    `json:"pageIn"`
	RowCount int    `json:"rowCount"`
	Stok     []Book `json:"stok"`
}

// BookDetail is the data payload of the detail-by-barcode endpoint.
type BookDetail struct {
	Stok *Book `json:"stok"`
}
