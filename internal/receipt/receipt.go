package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Thompsonclutchman02/Point-of-sale-system/internal/models"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Generator renders one PDF receipt per sale under Dir. Regenerating a
// receipt overwrites the previous file.
type Generator struct {
	Dir string
}

func NewGenerator(dir string) *Generator { return &Generator{Dir: dir} }

// Path returns the deterministic receipt location for a sale.
func (g *Generator) Path(saleID uint) string {
	return filepath.Join(g.Dir, fmt.Sprintf("receipt_%d.pdf", saleID))
}

// Generate writes the receipt for a sale. Items must be preloaded with their
// products so line names can be printed.
func (g *Generator) Generate(sale *models.Sale) (string, error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create receipts dir: %w", err)
	}

	cfg := config.NewBuilder().WithPageSize(pagesize.A4).Build()
	m := maroto.New(cfg)

	m.AddRow(12, text.NewCol(12, "Cartgo POS Receipt", props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}))
	m.AddRow(6, text.NewCol(12, fmt.Sprintf("Sale ID: %d", sale.ID), props.Text{Size: 10}))
	m.AddRow(6, text.NewCol(12, "Date: "+sale.CreatedAt.Format("2006-01-02 15:04:05"), props.Text{Size: 10}))

	m.AddRow(10,
		text.NewCol(6, "Product", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(2, "Qty", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Price", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Subtotal", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}),
	)
	for _, item := range sale.Items {
		m.AddRow(6,
			text.NewCol(6, item.Product.Name, props.Text{Size: 10}),
			text.NewCol(2, strconv.Itoa(item.Quantity), props.Text{Size: 10, Align: align.Right}),
			text.NewCol(2, fmt.Sprintf("%.2f", item.Price), props.Text{Size: 10, Align: align.Right}),
			text.NewCol(2, fmt.Sprintf("%.2f", item.Subtotal), props.Text{Size: 10, Align: align.Right}),
		)
	}

	m.AddRow(6, line.NewCol(12))
	m.AddRow(8, text.NewCol(12, fmt.Sprintf("Subtotal: %.2f", sale.TotalBeforeTax), props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}))
	m.AddRow(8, text.NewCol(12, fmt.Sprintf("Tax (16%%): %.2f", sale.TaxAmount), props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}))
	m.AddRow(8, text.NewCol(12, fmt.Sprintf("Total: %.2f", sale.TotalAmount), props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}))

	doc, err := m.Generate()
	if err != nil {
		return "", fmt.Errorf("render receipt: %w", err)
	}
	path := g.Path(sale.ID)
	if err := doc.Save(path); err != nil {
		return "", fmt.Errorf("save receipt: %w", err)
	}
	return path, nil
}
