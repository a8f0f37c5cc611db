package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"optical-storefront/internal/cart"
)

// ComposeOrderMessage renders cart lines and the total in the shared
// human-readable form used by both fallback channels.
func ComposeOrderMessage(items []cart.LineItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "• %s (x%d) - %s\n", item.Name, item.Quantity, cart.FormatAmount(item.Subtotal()))
	}
	total := cart.Compute(items, 0).GrandTotal
	fmt.Fprintf(&b, "\nTotal: %s", cart.FormatAmount(total))
	return b.String()
}

// WhatsAppLink builds a wa.me link with the order pre-filled. The cart is
// not cleared; the order only exists once the user actually sends it.
func WhatsAppLink(phone, greeting string, items []cart.LineItem) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyCart
	}
	text := greeting + "Order:\n" + ComposeOrderMessage(items)
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(text), nil
}

// MailtoLink builds a mailto compose link with the order pre-filled.
func MailtoLink(to, subject string, items []cart.LineItem) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyCart
	}
	body := "Order:\n" + ComposeOrderMessage(items)
	q := url.Values{}
	q.Set("subject", subject)
	q.Set("body", body)
	return "mailto:" + to + "?" + strings.ReplaceAll(q.Encode(), "+", "%20"), nil
}
