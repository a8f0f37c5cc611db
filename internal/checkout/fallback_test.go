package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optical-storefront/internal/cart"
)

func fallbackItems() []cart.LineItem {
	return []cart.LineItem{
		{ProductID: 7, Name: "Aviator Frame", Price: 500, Quantity: 2},
		{ProductID: 9, Name: "Reading Glasses", Price: 1200, Quantity: 1},
	}
}

func TestComposeOrderMessage(t *testing.T) {
	msg := ComposeOrderMessage(fallbackItems())

	assert.Contains(t, msg, "• Aviator Frame (x2) - ₹1000")
	assert.Contains(t, msg, "• Reading Glasses (x1) - ₹1200")
	assert.True(t, strings.HasSuffix(msg, "Total: ₹2200"))
}

func TestWhatsAppLink(t *testing.T) {
	link, err := WhatsAppLink("918768837581", "Hello Janta Optical Centre,\n\n", fallbackItems())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(link, "https://wa.me/918768837581?text="))

	raw := strings.TrimPrefix(link, "https://wa.me/918768837581?text=")
	text, err := url.QueryUnescape(raw)
	require.NoError(t, err)
	assert.Contains(t, text, "Hello Janta Optical Centre,")
	assert.Contains(t, text, "• Aviator Frame (x2) - ₹1000")
	assert.Contains(t, text, "Total: ₹2200")
}

func TestMailtoLink(t *testing.T) {
	link, err := MailtoLink("support@jantaoptical.com", "New Order", fallbackItems())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(link, "mailto:support@jantaoptical.com?"))
	assert.NotContains(t, link, "+", "spaces must be percent-encoded for mailto")

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "New Order", q.Get("subject"))
	assert.Contains(t, q.Get("body"), "Total: ₹2200")
}

func TestFallbackLinksRequireItems(t *testing.T) {
	_, err := WhatsAppLink("1", "", nil)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = MailtoLink("a@b.c", "s", nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}
