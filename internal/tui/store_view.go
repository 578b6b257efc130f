package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/cyphers-laptop/internal/service"
)

func RenderStore(ownerID int64, v service.StoreView) string {
	var b strings.Builder
	for i, id := range v.OfferIDs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, id)
	}

	rows := renderRows([][2]string{
		{"Owner", fmt.Sprintf("%d", ownerID)},
		{"Date", v.Date.Format("2006-01-02")},
		{"Region", valueOrNA(v.Region.DisplayName())},
		{"Resets in", v.Remaining.Round(time.Second).String()},
		{"Wishlisted", fmt.Sprintf("%d", v.Wishlisted)},
	})

	return renderPage("Storefront", rows+"\n\n"+strings.TrimRight(b.String(), "\n"), "")
}
