package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/storekit/shopctl/internal/api"
	"github.com/storekit/shopctl/internal/cart"
)

// ShopView represents the current storefront view
type ShopView int

const (
	// ShopViewCatalog shows the product catalog
	ShopViewCatalog ShopView = iota
	// ShopViewCart shows the in-memory cart
	ShopViewCart
)

// ShopStyles contains lipgloss styles for the storefront
type ShopStyles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Price    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Total    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultShopStyles returns the default storefront styles
func DefaultShopStyles() ShopStyles {
	return ShopStyles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		Normal: lipgloss.NewStyle(),
		Price: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Total: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}

type catalogLoadedMsg struct {
	products []api.Product
}

type catalogErrMsg struct {
	err error
}

// ShopModel is the interactive storefront: it owns the cursor and view
// state while all cart mutations go through the cart container.
type ShopModel struct {
	client  *api.Client
	cart    *cart.Cart
	catalog []api.Product

	view    ShopView
	cursor  int
	loading bool
	errMsg  string

	// CheckoutRequested is set when the user asked to check out; the
	// calling command runs the checkout flow after the TUI exits.
	CheckoutRequested bool

	spinner spinner.Model
	styles  ShopStyles
	width   int
	height  int
}

// NewShopModel creates a storefront model over the given client and cart
func NewShopModel(client *api.Client, c *cart.Cart) ShopModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return ShopModel{
		client:  client,
		cart:    c,
		loading: true,
		spinner: sp,
		styles:  DefaultShopStyles(),
	}
}

// Init starts the catalog fetch and the loading spinner
func (m ShopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCatalog())
}

func (m ShopModel) fetchCatalog() tea.Cmd {
	return func() tea.Msg {
		products, err := m.client.ListCatalog(context.Background())
		if err != nil {
			return catalogErrMsg{err: err}
		}
		return catalogLoadedMsg{products: products}
	}
}

// Update handles messages and user input
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case catalogLoadedMsg:
		m.loading = false
		m.catalog = msg.products
		return m, nil

	case catalogErrMsg:
		m.loading = false
		m.errMsg = msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m ShopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "tab", "c":
		if m.view == ShopViewCatalog {
			m.view = ShopViewCart
		} else {
			m.view = ShopViewCatalog
		}
		m.cursor = 0
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}
		return m, nil
	}

	if m.view == ShopViewCatalog {
		return m.handleCatalogKey(msg)
	}
	return m.handleCartKey(msg)
}

func (m ShopModel) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "a":
		if m.cursor < len(m.catalog) {
			p := m.catalog[m.cursor]
			m.cart.Add(cart.Item{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Image:     p.Image,
			})
		}
	}
	return m, nil
}

func (m ShopModel) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.cart.Items()

	switch msg.String() {
	case "+", "l":
		if m.cursor < len(items) {
			item := items[m.cursor]
			m.cart.UpdateQuantity(item.ProductID, item.Quantity+1)
		}

	case "-", "h":
		// The container accepts any quantity; the view guards against
		// dropping below one and uses delete for removal instead.
		if m.cursor < len(items) && items[m.cursor].Quantity > 1 {
			item := items[m.cursor]
			m.cart.UpdateQuantity(item.ProductID, item.Quantity-1)
		}

	case "d", "backspace":
		if m.cursor < len(items) {
			m.cart.Remove(items[m.cursor].ProductID)
			if m.cursor > 0 {
				m.cursor--
			}
		}

	case "x":
		if m.cart.Len() > 0 {
			m.CheckoutRequested = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m ShopModel) listLen() int {
	if m.view == ShopViewCatalog {
		return len(m.catalog)
	}
	return m.cart.Len()
}

// View renders the storefront
func (m ShopModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("🛍  Storefront"))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render("Error: " + m.errMsg))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("q quit"))
		return b.String()
	}

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading catalog…\n")
		return b.String()
	}

	if m.view == ShopViewCatalog {
		m.renderCatalog(&b)
	} else {
		m.renderCart(&b)
	}

	return b.String()
}

func (m ShopModel) renderCatalog(b *strings.Builder) {
	if len(m.catalog) == 0 {
		b.WriteString(m.styles.Muted.Render("No products available."))
		b.WriteString("\n")
	}

	for i, p := range m.catalog {
		line := fmt.Sprintf("%-30s %s", p.Name, m.styles.Price.Render(fmt.Sprintf("$%.2f", p.Price)))
		if p.Stock == 0 {
			line += m.styles.Muted.Render("  (out of stock)")
		}
		if qty := m.cart.Quantity(p.ID); qty > 0 {
			line += m.styles.Muted.Render(fmt.Sprintf("  [%d in cart]", qty))
		}

		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Cart: %d items, %s",
		m.cart.Len(), fmt.Sprintf("$%.2f", m.cart.Total()))))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ move · enter add to cart · c cart · q quit"))
}

func (m ShopModel) renderCart(b *strings.Builder) {
	items := m.cart.Items()
	if len(items) == 0 {
		b.WriteString(m.styles.Muted.Render("Your cart is empty."))
		b.WriteString("\n")
	}

	for i, item := range items {
		line := fmt.Sprintf("%-30s ×%-3d %s", item.Name, item.Quantity,
			m.styles.Price.Render(fmt.Sprintf("$%.2f", item.Price*float64(item.Quantity))))

		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Total.Render(fmt.Sprintf("Total: $%.2f", m.cart.Total())))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ move · +/- quantity · d remove · x checkout · c catalog · q quit"))
}

// RunShop runs the interactive storefront over the given cart and
// reports whether the user asked to check out.
func RunShop(client *api.Client, c *cart.Cart) (bool, error) {
	model := NewShopModel(client, c)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("storefront failed: %w", err)
	}

	if m, ok := final.(ShopModel); ok {
		return m.CheckoutRequested, nil
	}
	return false, nil
}
