package pdfrender

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"time"

	"studio_pricing/internal/domain/entities"
	"studio_pricing/internal/usecase/interfaces"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromiumRenderer renders a quote to PDF through headless Chromium.
//
// The quote HTML is built from the embedded snapshot only; rendering never
// reads the estimates or catalog tables, so a PDF downloaded months later
// still shows exactly what the client accepted.

type ChromiumRenderer struct {
	chromePath string
}

var _ interfaces.IQuoteRenderer = (*ChromiumRenderer)(nil)

func NewChromiumRenderer() *ChromiumRenderer {
	return &ChromiumRenderer{chromePath: detectChromePath()}
}

func (r *ChromiumRenderer) RenderPDF(ctx context.Context, q entities.Quote) ([]byte, error) {
	htmlDoc, err := buildQuoteHTML(q)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, err
	}
	return pdf, nil
}

var quoteTemplate = template.Must(template.New("quote").Funcs(template.FuncMap{
	"usd": func(v float64) string { return fmt.Sprintf("$%.0f", v) },
	"pct": func(v float64) string { return fmt.Sprintf("%.0f%%", v*100) },
}).Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>Project Quote</title>
<style>
body{font-family:Georgia,serif;color:#1c1917;margin:0;padding:1rem 1.5rem;}
h1{font-size:1.5rem;border-bottom:2px solid #92400e;padding-bottom:0.4rem;}
.band{font-size:1.8rem;font-weight:700;margin:0.8rem 0;}
.meta{color:#57534e;font-size:0.85rem;}
table{width:100%;border-collapse:collapse;font-size:0.85rem;margin:0.8rem 0;}
th,td{border:1px solid #a8a29e;padding:0.35rem 0.5rem;text-align:left;}
thead th{background:#f1f5f9;}
.impact-high{color:#b91c1c;font-weight:700;}
.impact-medium{color:#b45309;}
.impact-low{color:#57534e;}
.assumptions li{margin-bottom:0.25rem;}
.degraded{background:#fef3c7;border:1px solid #fcd34d;padding:0.5rem 0.75rem;font-size:0.85rem;}
</style></head><body>
<h1>Project Quote</h1>
<div class="meta">Reference {{.ShareID}} &middot; issued {{.CreatedAt.Format "January 2, 2006"}}</div>
<div class="band">{{usd .Snapshot.PriceMin}} &ndash; {{usd .Snapshot.PriceMax}}</div>
<div class="meta">Typical outcome {{usd .Snapshot.PriceMid}} &middot; {{.Snapshot.DaysMin}}&ndash;{{.Snapshot.DaysMax}} working days &middot; confidence {{pct .Snapshot.Confidence}}</div>
{{if .Snapshot.DegradedMode}}<p class="degraded">This estimate was produced with incomplete information{{with .Snapshot.DegradedReason}} ({{.}}){{end}}; treat the range as indicative.</p>{{end}}
<h2>What drives the price</h2>
<table><thead><tr><th>Driver</th><th>Impact</th><th>Amount</th></tr></thead><tbody>
{{range .Snapshot.CostDrivers}}<tr><td>{{.Name}}</td><td class="impact-{{.Impact}}">{{.Impact}}</td><td>{{usd .Amount}}</td></tr>
{{end}}</tbody></table>
{{if .Snapshot.Assumptions}}<h2>Assumptions</h2><ul class="assumptions">
{{range .Snapshot.Assumptions}}<li>{{.}}</li>
{{end}}</ul>{{end}}
<p class="meta">Prepared for {{.RecipientEmail}}. Accepting this quote confirms the assumptions above.</p>
</body></html>`))

func buildQuoteHTML(q entities.Quote) (string, error) {
	var buf bytes.Buffer
	if err := quoteTemplate.Execute(&buf, q); err != nil {
		return "", fmt.Errorf("quote template: %w", err)
	}
	return buf.String(), nil
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
