package views

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

// Layout is the wrapper every page is rendered into.
const Layout = "layouts/main"

// NewEngine returns the HTML engine over the embedded templates.
func NewEngine() *html.Engine {
	root, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(fmt.Sprintf("views: embedded templates missing: %v", err))
	}

	engine := html.NewFileSystem(http.FS(root), ".html")
	engine.AddFunc("money", FormatMoney)
	return engine
}

// FormatMoney renders an amount with two decimal places and thousands separators.
func FormatMoney(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	whole, cents := raw[:len(raw)-3], raw[len(raw)-3:]

	grouped := make([]byte, 0, len(whole)+len(whole)/3)
	for i := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, whole[i])
	}

	return sign + string(grouped) + cents
}
